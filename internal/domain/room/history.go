package room

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type HistoryAction string

const (
	HistoryCreated             HistoryAction = "Created"
	HistoryStatusChanged       HistoryAction = "StatusChanged"
	HistoryHousekeepingChanged HistoryAction = "HousekeepingChanged"
)

func (a HistoryAction) String() string {
	return string(a)
}

// HistoryEntry is an append-only audit record of one room transition.
// Hotel and room type ids are copied at construction time so the entry
// stays accurate even if the room is later reassigned or deleted.
type HistoryEntry struct {
	id                 uuid.UUID
	roomID             uuid.UUID
	hotelID            uuid.UUID
	roomTypeID         uuid.UUID
	status             *Status
	housekeepingStatus *HousekeepingStatus
	action             HistoryAction
	reason             string
	createdAt          time.Time
}

func NewCreatedEntry(r *Room, now time.Time) *HistoryEntry {
	status := r.Status()
	housekeeping := r.HousekeepingStatus()
	return newHistoryEntry(r, &status, &housekeeping, HistoryCreated, nil, now)
}

func NewStatusChangedEntry(r *Room, status Status, reason *string, now time.Time) *HistoryEntry {
	return newHistoryEntry(r, &status, nil, HistoryStatusChanged, reason, now)
}

func NewHousekeepingChangedEntry(r *Room, status HousekeepingStatus, reason *string, now time.Time) *HistoryEntry {
	return newHistoryEntry(r, nil, &status, HistoryHousekeepingChanged, reason, now)
}

func newHistoryEntry(r *Room, status *Status, housekeeping *HousekeepingStatus, action HistoryAction, reason *string, now time.Time) *HistoryEntry {
	trimmed := ""
	if reason != nil {
		trimmed = strings.TrimSpace(*reason)
	}
	return &HistoryEntry{
		id:                 uuid.New(),
		roomID:             r.ID(),
		hotelID:            r.HotelID(),
		roomTypeID:         r.RoomTypeID(),
		status:             status,
		housekeepingStatus: housekeeping,
		action:             action,
		reason:             trimmed,
		createdAt:          now,
	}
}

func (h *HistoryEntry) ID() uuid.UUID                           { return h.id }
func (h *HistoryEntry) RoomID() uuid.UUID                       { return h.roomID }
func (h *HistoryEntry) HotelID() uuid.UUID                      { return h.hotelID }
func (h *HistoryEntry) RoomTypeID() uuid.UUID                   { return h.roomTypeID }
func (h *HistoryEntry) Status() *Status                         { return h.status }
func (h *HistoryEntry) HousekeepingStatus() *HousekeepingStatus { return h.housekeepingStatus }
func (h *HistoryEntry) Action() HistoryAction                   { return h.action }
func (h *HistoryEntry) Reason() string                          { return h.reason }
func (h *HistoryEntry) CreatedAt() time.Time                    { return h.createdAt }
