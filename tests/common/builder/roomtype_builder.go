//go:build unit || e2e

package builder

import (
	"time"

	domroomtype "stayops/internal/domain/roomtype"
	reqdto "stayops/internal/handler/dto/request"
	"stayops/internal/usecase/queries"
	"stayops/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomTypeBuilder struct {
	HotelID     uuid.UUID
	Name        string
	Description string
	Capacity    int
	BaseRate    float64
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewRoomTypeBuilder() *RoomTypeBuilder {
	now := time.Now()
	return &RoomTypeBuilder{
		HotelID:     uuid.New(),
		Name:        "Standard Double",
		Description: "Double bed with city view",
		Capacity:    2,
		BaseRate:    120.00,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (r *RoomTypeBuilder) BuildDomain() (*domroomtype.RoomType, error) {
	status, err := domroomtype.NewStatus(r.Status)
	if err != nil {
		return nil, err
	}
	return domroomtype.NewRoomType(uuid.Nil, r.HotelID, r.Name, r.Description, r.Capacity, r.BaseRate, status, r.CreatedAt)
}

func (r *RoomTypeBuilder) BuildCreateRequestDTO() reqdto.CreateRoomTypeRequest {
	return reqdto.CreateRoomTypeRequest{
		HotelID:     r.HotelID,
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
		BaseRate:    r.BaseRate,
		Status:      r.Status,
	}
}

func (r *RoomTypeBuilder) BuildViewQuery() *queries.RoomTypeView {
	return &queries.RoomTypeView{
		ID:          uuid.New(),
		HotelID:     r.HotelID,
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
		BaseRate:    r.BaseRate,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *RoomTypeBuilder) BuildSnapshot() *shared.RoomTypeSnapshot {
	return &shared.RoomTypeSnapshot{
		ID:          uuid.New(),
		HotelID:     r.HotelID,
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
		BaseRate:    r.BaseRate,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *RoomTypeBuilder) WithHotelID(hotelID uuid.UUID) *RoomTypeBuilder {
	r.HotelID = hotelID
	return r
}

func (r *RoomTypeBuilder) WithName(name string) *RoomTypeBuilder {
	r.Name = name
	return r
}

func (r *RoomTypeBuilder) WithCapacity(capacity int) *RoomTypeBuilder {
	r.Capacity = capacity
	return r
}

func (r *RoomTypeBuilder) WithBaseRate(rate float64) *RoomTypeBuilder {
	r.BaseRate = rate
	return r
}

func (r *RoomTypeBuilder) WithStatus(status string) *RoomTypeBuilder {
	r.Status = status
	return r
}
