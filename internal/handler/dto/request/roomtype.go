package request

import (
	domroomtype "stayops/internal/domain/roomtype"
	"stayops/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRoomTypeRequest struct {
	HotelID     uuid.UUID `json:"hotel_id" binding:"required"`
	Name        string    `json:"name" binding:"required,max=100"`
	Description string    `json:"description" binding:"max=1000"`
	Capacity    int       `json:"capacity" binding:"required,min=1,max=10"`
	BaseRate    float64   `json:"base_rate" binding:"min=0"`
	Status      string    `json:"status" binding:"required,oneof=active inactive"`
}

func (r *CreateRoomTypeRequest) ToCommand() (shared.CreateRoomTypeRequest, error) {
	status, err := domroomtype.NewStatus(r.Status)
	if err != nil {
		return shared.CreateRoomTypeRequest{}, err
	}
	return shared.CreateRoomTypeRequest{
		HotelID:     r.HotelID,
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
		BaseRate:    r.BaseRate,
		Status:      status,
	}, nil
}

type UpdateRoomTypeRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description" binding:"max=1000"`
	Capacity    int     `json:"capacity" binding:"required,min=1,max=10"`
	BaseRate    float64 `json:"base_rate" binding:"min=0"`
	Status      string  `json:"status" binding:"required,oneof=active inactive"`
}

func (r *UpdateRoomTypeRequest) ToCommand() (shared.UpdateRoomTypeRequest, error) {
	status, err := domroomtype.NewStatus(r.Status)
	if err != nil {
		return shared.UpdateRoomTypeRequest{}, err
	}
	return shared.UpdateRoomTypeRequest{
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
		BaseRate:    r.BaseRate,
		Status:      status,
	}, nil
}
