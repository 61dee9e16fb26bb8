package roomtype

import (
	"strings"
	"time"

	"stayops/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNameRequired     = errs.New("room type name is required")
	ErrInvalidCapacity  = errs.New("capacity must be between 1 and 10")
	ErrNegativeBaseRate = errs.New("base rate must be greater than or equal to zero")
	ErrInvalidStatus    = errs.New("invalid room type status")
)

const (
	minCapacity = 1
	maxCapacity = 10
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type RoomType struct {
	id          uuid.UUID
	hotelID     uuid.UUID
	name        string
	description string
	capacity    int
	baseRate    float64
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
	isDeleted   bool
}

func NewRoomType(id, hotelID uuid.UUID, name, description string, capacity int, baseRate float64, status Status, now time.Time) (*RoomType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if capacity < minCapacity || capacity > maxCapacity {
		return nil, ErrInvalidCapacity
	}
	if baseRate < 0 {
		return nil, ErrNegativeBaseRate
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &RoomType{
		id:          id,
		hotelID:     hotelID,
		name:        name,
		description: strings.TrimSpace(description),
		capacity:    capacity,
		baseRate:    baseRate,
		status:      status,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructRoomType(id, hotelID uuid.UUID, name, description string, capacity int, baseRate float64, status Status, createdAt, updatedAt time.Time, isDeleted bool) *RoomType {
	return &RoomType{
		id:          id,
		hotelID:     hotelID,
		name:        name,
		description: description,
		capacity:    capacity,
		baseRate:    baseRate,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		isDeleted:   isDeleted,
	}
}

func (t *RoomType) ID() uuid.UUID        { return t.id }
func (t *RoomType) HotelID() uuid.UUID   { return t.hotelID }
func (t *RoomType) Name() string         { return t.name }
func (t *RoomType) Description() string  { return t.description }
func (t *RoomType) Capacity() int        { return t.capacity }
func (t *RoomType) BaseRate() float64    { return t.baseRate }
func (t *RoomType) Status() Status       { return t.status }
func (t *RoomType) CreatedAt() time.Time { return t.createdAt }
func (t *RoomType) UpdatedAt() time.Time { return t.updatedAt }
func (t *RoomType) IsDeleted() bool      { return t.isDeleted }

func (t *RoomType) UpdateDetails(name, description string, capacity int, baseRate float64, status Status, now time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if capacity < minCapacity || capacity > maxCapacity {
		return ErrInvalidCapacity
	}
	if baseRate < 0 {
		return ErrNegativeBaseRate
	}

	t.name = name
	t.description = strings.TrimSpace(description)
	t.capacity = capacity
	t.baseRate = baseRate
	t.status = status
	t.updatedAt = now
	return nil
}

func (t *RoomType) Delete(now time.Time) bool {
	if t.isDeleted {
		return false
	}
	t.isDeleted = true
	t.status = StatusInactive
	t.updatedAt = now
	return true
}
