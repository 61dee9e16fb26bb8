package shared

import (
	domhotel "stayops/internal/domain/hotel"
	domroom "stayops/internal/domain/room"
	domroomtype "stayops/internal/domain/roomtype"

	"github.com/google/uuid"
)

type CreateHotelRequest struct {
	Code     string
	Name     string
	Timezone string
	Status   domhotel.Status
}

type UpdateHotelRequest struct {
	Code     string
	Name     string
	Timezone string
	Status   domhotel.Status
}

type CreateRoomRequest struct {
	HotelID            uuid.UUID
	RoomTypeID         uuid.UUID
	Number             string
	Floor              *int
	Status             domroom.Status
	HousekeepingStatus domroom.HousekeepingStatus
}

type UpdateRoomRequest struct {
	RoomTypeID         uuid.UUID
	Number             string
	Floor              *int
	Status             domroom.Status
	HousekeepingStatus domroom.HousekeepingStatus
}

type CreateRoomTypeRequest struct {
	HotelID     uuid.UUID
	Name        string
	Description string
	Capacity    int
	BaseRate    float64
	Status      domroomtype.Status
}

type UpdateRoomTypeRequest struct {
	Name        string
	Description string
	Capacity    int
	BaseRate    float64
	Status      domroomtype.Status
}
