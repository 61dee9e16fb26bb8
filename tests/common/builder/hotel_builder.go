//go:build unit || e2e

package builder

import (
	"time"

	domhotel "stayops/internal/domain/hotel"
	reqdto "stayops/internal/handler/dto/request"
	"stayops/internal/usecase/queries"
	"stayops/internal/usecase/shared"

	"github.com/google/uuid"
)

type HotelBuilder struct {
	Code      string
	Name      string
	Timezone  string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewHotelBuilder() *HotelBuilder {
	now := time.Now()
	return &HotelBuilder{
		Code:      "GRAND-TOKYO",
		Name:      "Grand Tokyo Hotel",
		Timezone:  "Asia/Tokyo",
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (h *HotelBuilder) BuildDomain() (*domhotel.Hotel, error) {
	status, err := domhotel.NewStatus(h.Status)
	if err != nil {
		return nil, err
	}
	return domhotel.NewHotel(uuid.Nil, h.Code, h.Name, h.Timezone, status, h.CreatedAt)
}

func (h *HotelBuilder) BuildCreateRequestDTO() reqdto.CreateHotelRequest {
	return reqdto.CreateHotelRequest{
		Code:     h.Code,
		Name:     h.Name,
		Timezone: h.Timezone,
		Status:   h.Status,
	}
}

func (h *HotelBuilder) BuildViewQuery() *queries.HotelView {
	return &queries.HotelView{
		ID:        uuid.New(),
		Code:      h.Code,
		Name:      h.Name,
		Timezone:  h.Timezone,
		Status:    h.Status,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

func (h *HotelBuilder) BuildSnapshot() *shared.HotelSnapshot {
	return &shared.HotelSnapshot{
		ID:        uuid.New(),
		Code:      h.Code,
		Name:      h.Name,
		Timezone:  h.Timezone,
		Status:    h.Status,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

func (h *HotelBuilder) WithCode(code string) *HotelBuilder {
	h.Code = code
	return h
}

func (h *HotelBuilder) WithName(name string) *HotelBuilder {
	h.Name = name
	return h
}

func (h *HotelBuilder) WithTimezone(timezone string) *HotelBuilder {
	h.Timezone = timezone
	return h
}

func (h *HotelBuilder) WithStatus(status string) *HotelBuilder {
	h.Status = status
	return h
}

func (h *HotelBuilder) AsInactive() *HotelBuilder {
	h.Status = "inactive"
	return h
}
