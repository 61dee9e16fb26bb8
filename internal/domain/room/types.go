package room

import "stayops/internal/pkg/errs"

var (
	ErrInvalidStatus             = errs.New("invalid room status")
	ErrInvalidHousekeepingStatus = errs.New("invalid housekeeping status")
)

type Status string

const (
	StatusActive       Status = "active"
	StatusOutOfService Status = "out_of_service"
	StatusInactive     Status = "inactive"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusOutOfService, StatusInactive:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// HousekeepingStatus is an operational axis independent from Status:
// a room can be out of service and still be marked clean.
type HousekeepingStatus string

const (
	HousekeepingClean      HousekeepingStatus = "clean"
	HousekeepingDirty      HousekeepingStatus = "dirty"
	HousekeepingInspected  HousekeepingStatus = "inspected"
	HousekeepingOutOfOrder HousekeepingStatus = "out_of_order"
)

func (s HousekeepingStatus) String() string {
	return string(s)
}

func (s HousekeepingStatus) IsValid() bool {
	switch s {
	case HousekeepingClean, HousekeepingDirty, HousekeepingInspected, HousekeepingOutOfOrder:
		return true
	default:
		return false
	}
}

func NewHousekeepingStatus(s string) (HousekeepingStatus, error) {
	status := HousekeepingStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidHousekeepingStatus
	}
	return status, nil
}
