package room

import (
	"strings"
	"time"

	"stayops/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNumberRequired = errs.New("room number is required")

// Room is the aggregate root for a physical room. It owns field-level
// validity and the pure state transitions; persistence and cross-aggregate
// rules live in the usecase and infra layers.
type Room struct {
	id                 uuid.UUID
	hotelID            uuid.UUID
	roomTypeID         uuid.UUID
	number             string
	floor              *int
	status             Status
	housekeepingStatus HousekeepingStatus
	createdAt          time.Time
	updatedAt          time.Time
	isDeleted          bool
	version            int64
}

func NewRoom(id, hotelID, roomTypeID uuid.UUID, number string, floor *int, status Status, housekeepingStatus HousekeepingStatus, now time.Time) (*Room, error) {
	number, err := validateNumber(number)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Room{
		id:                 id,
		hotelID:            hotelID,
		roomTypeID:         roomTypeID,
		number:             number,
		floor:              floor,
		status:             status,
		housekeepingStatus: housekeepingStatus,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// ReconstructRoom rebuilds an aggregate from storage, version included.
func ReconstructRoom(id, hotelID, roomTypeID uuid.UUID, number string, floor *int, status Status, housekeepingStatus HousekeepingStatus, createdAt, updatedAt time.Time, isDeleted bool, version int64) *Room {
	return &Room{
		id:                 id,
		hotelID:            hotelID,
		roomTypeID:         roomTypeID,
		number:             number,
		floor:              floor,
		status:             status,
		housekeepingStatus: housekeepingStatus,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		isDeleted:          isDeleted,
		version:            version,
	}
}

func (r *Room) ID() uuid.UUID                          { return r.id }
func (r *Room) HotelID() uuid.UUID                     { return r.hotelID }
func (r *Room) RoomTypeID() uuid.UUID                  { return r.roomTypeID }
func (r *Room) Number() string                         { return r.number }
func (r *Room) Floor() *int                            { return r.floor }
func (r *Room) Status() Status                         { return r.status }
func (r *Room) HousekeepingStatus() HousekeepingStatus { return r.housekeepingStatus }
func (r *Room) CreatedAt() time.Time                   { return r.createdAt }
func (r *Room) UpdatedAt() time.Time                   { return r.updatedAt }
func (r *Room) IsDeleted() bool                        { return r.isDeleted }
func (r *Room) Version() int64                         { return r.version }

// UpdateDetails replaces all mutable fields. Number uniqueness within the
// hotel is the store's responsibility, not the aggregate's.
func (r *Room) UpdateDetails(roomTypeID uuid.UUID, number string, floor *int, status Status, housekeepingStatus HousekeepingStatus, now time.Time) error {
	number, err := validateNumber(number)
	if err != nil {
		return err
	}

	r.roomTypeID = roomTypeID
	r.number = number
	r.floor = floor
	r.status = status
	r.housekeepingStatus = housekeepingStatus
	r.touch(now)
	return nil
}

// ChangeStatus reports whether the status actually changed; a same-status
// transition leaves the aggregate untouched, updatedAt included.
func (r *Room) ChangeStatus(status Status, now time.Time) bool {
	if r.status == status {
		return false
	}
	r.status = status
	r.touch(now)
	return true
}

func (r *Room) ChangeHousekeepingStatus(status HousekeepingStatus, now time.Time) bool {
	if r.housekeepingStatus == status {
		return false
	}
	r.housekeepingStatus = status
	r.touch(now)
	return true
}

// Delete is idempotent. Soft-deleting forces the room inactive.
func (r *Room) Delete(now time.Time) bool {
	if r.isDeleted {
		return false
	}
	r.isDeleted = true
	r.status = StatusInactive
	r.touch(now)
	return true
}

func (r *Room) touch(now time.Time) {
	r.updatedAt = now
}

func validateNumber(number string) (string, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return "", ErrNumberRequired
	}
	return number, nil
}
