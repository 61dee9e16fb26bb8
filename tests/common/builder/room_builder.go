//go:build unit || e2e

package builder

import (
	"time"

	domroom "stayops/internal/domain/room"
	reqdto "stayops/internal/handler/dto/request"
	"stayops/internal/usecase/queries"
	"stayops/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	HotelID            uuid.UUID
	RoomTypeID         uuid.UUID
	RoomTypeName       string
	Number             string
	Floor              *int
	Status             string
	HousekeepingStatus string
	Version            int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewRoomBuilder() *RoomBuilder {
	now := time.Now()
	floor := 3
	return &RoomBuilder{
		HotelID:            uuid.New(),
		RoomTypeID:         uuid.New(),
		RoomTypeName:       "Standard Double",
		Number:             "301",
		Floor:              &floor,
		Status:             "active",
		HousekeepingStatus: "clean",
		Version:            1,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (r *RoomBuilder) BuildDomain() (*domroom.Room, error) {
	status, err := domroom.NewStatus(r.Status)
	if err != nil {
		return nil, err
	}
	housekeeping, err := domroom.NewHousekeepingStatus(r.HousekeepingStatus)
	if err != nil {
		return nil, err
	}
	return domroom.NewRoom(uuid.Nil, r.HotelID, r.RoomTypeID, r.Number, r.Floor, status, housekeeping, r.CreatedAt)
}

func (r *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	hk := r.HousekeepingStatus
	return reqdto.CreateRoomRequest{
		HotelID:            r.HotelID,
		RoomTypeID:         r.RoomTypeID,
		Number:             r.Number,
		Floor:              r.Floor,
		Status:             r.Status,
		HousekeepingStatus: &hk,
	}
}

func (r *RoomBuilder) BuildUpdateRequestDTO(rowVersion *string) reqdto.UpdateRoomRequest {
	return reqdto.UpdateRoomRequest{
		RoomTypeID:         r.RoomTypeID,
		Number:             r.Number,
		Floor:              r.Floor,
		Status:             r.Status,
		HousekeepingStatus: r.HousekeepingStatus,
		RowVersion:         rowVersion,
	}
}

func (r *RoomBuilder) BuildViewQuery() *queries.RoomView {
	return &queries.RoomView{
		ID:                 uuid.New(),
		HotelID:            r.HotelID,
		RoomTypeID:         r.RoomTypeID,
		RoomTypeName:       r.RoomTypeName,
		Number:             r.Number,
		Floor:              r.Floor,
		Status:             r.Status,
		HousekeepingStatus: r.HousekeepingStatus,
		RowVersion:         r.Version,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

func (r *RoomBuilder) BuildListItem() *queries.RoomListItem {
	return &queries.RoomListItem{
		ID:                 uuid.New(),
		RoomTypeID:         r.RoomTypeID,
		RoomTypeName:       r.RoomTypeName,
		Number:             r.Number,
		Floor:              r.Floor,
		Status:             r.Status,
		HousekeepingStatus: r.HousekeepingStatus,
		RowVersion:         r.Version,
		UpdatedAt:          r.UpdatedAt,
	}
}

func (r *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:                 uuid.New(),
		HotelID:            r.HotelID,
		RoomTypeID:         r.RoomTypeID,
		Number:             r.Number,
		Floor:              r.Floor,
		Status:             r.Status,
		HousekeepingStatus: r.HousekeepingStatus,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
		Version:            r.Version,
	}
}

func (r *RoomBuilder) WithHotelID(hotelID uuid.UUID) *RoomBuilder {
	r.HotelID = hotelID
	return r
}

func (r *RoomBuilder) WithRoomTypeID(roomTypeID uuid.UUID) *RoomBuilder {
	r.RoomTypeID = roomTypeID
	return r
}

func (r *RoomBuilder) WithNumber(number string) *RoomBuilder {
	r.Number = number
	return r
}

func (r *RoomBuilder) WithFloor(floor *int) *RoomBuilder {
	r.Floor = floor
	return r
}

func (r *RoomBuilder) WithStatus(status string) *RoomBuilder {
	r.Status = status
	return r
}

func (r *RoomBuilder) WithHousekeepingStatus(status string) *RoomBuilder {
	r.HousekeepingStatus = status
	return r
}

func (r *RoomBuilder) WithVersion(version int64) *RoomBuilder {
	r.Version = version
	return r
}

func (r *RoomBuilder) AsOutOfService() *RoomBuilder {
	r.Status = "out_of_service"
	return r
}

func (r *RoomBuilder) AsDirty() *RoomBuilder {
	r.HousekeepingStatus = "dirty"
	return r
}
