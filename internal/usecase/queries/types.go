package queries

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ValidateLimit clamps a caller-supplied page size into a sane range.
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// RoomView represents read-optimized room data. RowVersion is never
// serialized directly; handlers encode it as an opaque token.
type RoomView struct {
	ID                 uuid.UUID `json:"id"`
	HotelID            uuid.UUID `json:"hotel_id"`
	RoomTypeID         uuid.UUID `json:"room_type_id"`
	RoomTypeName       string    `json:"room_type_name"`
	Number             string    `json:"number"`
	Floor              *int      `json:"floor,omitempty"`
	Status             string    `json:"status"`
	HousekeepingStatus string    `json:"housekeeping_status"`
	RowVersion         int64     `json:"-"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type RoomListItem struct {
	ID                 uuid.UUID `json:"id"`
	RoomTypeID         uuid.UUID `json:"room_type_id"`
	RoomTypeName       string    `json:"room_type_name"`
	Number             string    `json:"number"`
	Floor              *int      `json:"floor,omitempty"`
	Status             string    `json:"status"`
	HousekeepingStatus string    `json:"housekeeping_status"`
	RowVersion         int64     `json:"-"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type RoomHistoryView struct {
	ID                 uuid.UUID `json:"id"`
	RoomID             uuid.UUID `json:"room_id"`
	Status             *string   `json:"status,omitempty"`
	HousekeepingStatus *string   `json:"housekeeping_status,omitempty"`
	Action             string    `json:"action"`
	Reason             string    `json:"reason,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// RoomSummaryItem aggregates live rooms per room type within one hotel.
type RoomSummaryItem struct {
	RoomTypeID   uuid.UUID `json:"room_type_id"`
	RoomTypeName string    `json:"room_type_name"`
	Total        int64     `json:"total"`
	Active       int64     `json:"active"`
	OutOfService int64     `json:"out_of_service"`
	Dirty        int64     `json:"dirty"`
}

// RoomFilters narrows room listings; nil fields are not applied.
type RoomFilters struct {
	Status             *string
	HousekeepingStatus *string
	RoomTypeID         *uuid.UUID
	Number             *string
	Floor              *int
}

type HotelView struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Timezone  string    `json:"timezone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RoomTypeView struct {
	ID          uuid.UUID `json:"id"`
	HotelID     uuid.UUID `json:"hotel_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Capacity    int       `json:"capacity"`
	BaseRate    float64   `json:"base_rate"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
