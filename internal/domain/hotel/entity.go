package hotel

import (
	"strings"
	"time"

	"stayops/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCodeRequired     = errs.New("hotel code is required")
	ErrNameRequired     = errs.New("hotel name is required")
	ErrTimezoneRequired = errs.New("hotel timezone is required")
	ErrInvalidStatus    = errs.New("invalid hotel status")
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

type Hotel struct {
	id        uuid.UUID
	code      string
	name      string
	timezone  string
	status    Status
	createdAt time.Time
	updatedAt time.Time
	isDeleted bool
}

func NewHotel(id uuid.UUID, code, name, timezone string, status Status, now time.Time) (*Hotel, error) {
	code, err := requireTrimmed(code, ErrCodeRequired)
	if err != nil {
		return nil, err
	}
	name, err = requireTrimmed(name, ErrNameRequired)
	if err != nil {
		return nil, err
	}
	timezone, err = requireTrimmed(timezone, ErrTimezoneRequired)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Hotel{
		id:        id,
		code:      code,
		name:      name,
		timezone:  timezone,
		status:    status,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructHotel(id uuid.UUID, code, name, timezone string, status Status, createdAt, updatedAt time.Time, isDeleted bool) *Hotel {
	return &Hotel{
		id:        id,
		code:      code,
		name:      name,
		timezone:  timezone,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
		isDeleted: isDeleted,
	}
}

func (h *Hotel) ID() uuid.UUID        { return h.id }
func (h *Hotel) Code() string         { return h.code }
func (h *Hotel) Name() string         { return h.name }
func (h *Hotel) Timezone() string     { return h.timezone }
func (h *Hotel) Status() Status       { return h.status }
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }
func (h *Hotel) UpdatedAt() time.Time { return h.updatedAt }
func (h *Hotel) IsDeleted() bool      { return h.isDeleted }

func (h *Hotel) UpdateDetails(code, name, timezone string, status Status, now time.Time) error {
	code, err := requireTrimmed(code, ErrCodeRequired)
	if err != nil {
		return err
	}
	name, err = requireTrimmed(name, ErrNameRequired)
	if err != nil {
		return err
	}
	timezone, err = requireTrimmed(timezone, ErrTimezoneRequired)
	if err != nil {
		return err
	}

	h.code = code
	h.name = name
	h.timezone = timezone
	h.status = status
	h.updatedAt = now
	return nil
}

func (h *Hotel) Delete(now time.Time) bool {
	if h.isDeleted {
		return false
	}
	h.isDeleted = true
	h.status = StatusInactive
	h.updatedAt = now
	return true
}

func requireTrimmed(s string, errRequired error) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errRequired
	}
	return s, nil
}
