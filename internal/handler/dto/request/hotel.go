package request

import (
	domhotel "stayops/internal/domain/hotel"
	"stayops/internal/usecase/shared"
)

type CreateHotelRequest struct {
	Code     string `json:"code" binding:"required,max=32"`
	Name     string `json:"name" binding:"required,max=200"`
	Timezone string `json:"timezone" binding:"required,max=64"`
	Status   string `json:"status" binding:"required,oneof=active inactive"`
}

func (r *CreateHotelRequest) ToCommand() (shared.CreateHotelRequest, error) {
	status, err := domhotel.NewStatus(r.Status)
	if err != nil {
		return shared.CreateHotelRequest{}, err
	}
	return shared.CreateHotelRequest{
		Code:     r.Code,
		Name:     r.Name,
		Timezone: r.Timezone,
		Status:   status,
	}, nil
}

type UpdateHotelRequest struct {
	Code     string `json:"code" binding:"required,max=32"`
	Name     string `json:"name" binding:"required,max=200"`
	Timezone string `json:"timezone" binding:"required,max=64"`
	Status   string `json:"status" binding:"required,oneof=active inactive"`
}

func (r *UpdateHotelRequest) ToCommand() (shared.UpdateHotelRequest, error) {
	status, err := domhotel.NewStatus(r.Status)
	if err != nil {
		return shared.UpdateHotelRequest{}, err
	}
	return shared.UpdateHotelRequest{
		Code:     r.Code,
		Name:     r.Name,
		Timezone: r.Timezone,
		Status:   status,
	}, nil
}
