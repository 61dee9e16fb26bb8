package request

import (
	domroom "stayops/internal/domain/room"
	"stayops/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	HotelID            uuid.UUID `json:"hotel_id" binding:"required"`
	RoomTypeID         uuid.UUID `json:"room_type_id" binding:"required"`
	Number             string    `json:"number" binding:"required,max=20"`
	Floor              *int      `json:"floor" binding:"omitempty,min=-10,max=200"`
	Status             string    `json:"status" binding:"required,oneof=active out_of_service inactive"`
	HousekeepingStatus *string   `json:"housekeeping_status" binding:"omitempty,oneof=clean dirty inspected out_of_order"`
}

func (r *CreateRoomRequest) ToCommand() (shared.CreateRoomRequest, error) {
	status, err := domroom.NewStatus(r.Status)
	if err != nil {
		return shared.CreateRoomRequest{}, err
	}

	// Housekeeping defaults to clean for freshly registered rooms.
	housekeeping := domroom.HousekeepingClean
	if r.HousekeepingStatus != nil {
		housekeeping, err = domroom.NewHousekeepingStatus(*r.HousekeepingStatus)
		if err != nil {
			return shared.CreateRoomRequest{}, err
		}
	}

	return shared.CreateRoomRequest{
		HotelID:            r.HotelID,
		RoomTypeID:         r.RoomTypeID,
		Number:             r.Number,
		Floor:              r.Floor,
		Status:             status,
		HousekeepingStatus: housekeeping,
	}, nil
}

type UpdateRoomRequest struct {
	RoomTypeID         uuid.UUID `json:"room_type_id" binding:"required"`
	Number             string    `json:"number" binding:"required,max=20"`
	Floor              *int      `json:"floor" binding:"omitempty,min=-10,max=200"`
	Status             string    `json:"status" binding:"required,oneof=active out_of_service inactive"`
	HousekeepingStatus string    `json:"housekeeping_status" binding:"required,oneof=clean dirty inspected out_of_order"`
	RowVersion         *string   `json:"row_version"`
}

func (r *UpdateRoomRequest) ToCommand() (shared.UpdateRoomRequest, error) {
	status, err := domroom.NewStatus(r.Status)
	if err != nil {
		return shared.UpdateRoomRequest{}, err
	}
	housekeeping, err := domroom.NewHousekeepingStatus(r.HousekeepingStatus)
	if err != nil {
		return shared.UpdateRoomRequest{}, err
	}
	return shared.UpdateRoomRequest{
		RoomTypeID:         r.RoomTypeID,
		Number:             r.Number,
		Floor:              r.Floor,
		Status:             status,
		HousekeepingStatus: housekeeping,
	}, nil
}

type ChangeRoomStatusRequest struct {
	Status string  `json:"status" binding:"required,oneof=active out_of_service inactive"`
	Reason *string `json:"reason" binding:"omitempty,max=500"`
}

type ChangeHousekeepingStatusRequest struct {
	HousekeepingStatus string  `json:"housekeeping_status" binding:"required,oneof=clean dirty inspected out_of_order"`
	Reason             *string `json:"reason" binding:"omitempty,max=500"`
}
