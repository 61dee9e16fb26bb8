//go:build unit

package room_test

import (
	"testing"
	"time"

	"stayops/internal/domain/room"
	"stayops/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "301", actual.Number())
		assert.Equal(t, room.StatusActive, actual.Status())
		assert.Equal(t, room.HousekeepingClean, actual.HousekeepingStatus())
		assert.Equal(t, int64(0), actual.Version())
		assert.False(t, actual.IsDeleted())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("number validation", func(t *testing.T) {
		cases := []struct {
			name   string
			number string
			errIs  error
		}{
			{name: "empty number", number: "", errIs: room.ErrNumberRequired},
			{name: "whitespace only number", number: "   ", errIs: room.ErrNumberRequired},
			{name: "valid number", number: "101"},
			{name: "number with surrounding spaces is trimmed", number: " 101 "},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				actual, err := builder.NewRoomBuilder().WithNumber(tc.number).BuildDomain()
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, "101", actual.Number())
			})
		}
	})

	t.Run("status parsing", func(t *testing.T) {
		for _, valid := range []string{"active", "out_of_service", "inactive"} {
			_, err := room.NewStatus(valid)
			assert.NoError(t, err, valid)
		}
		for _, invalid := range []string{"", "Active", "deleted", "maintenance"} {
			_, err := room.NewStatus(invalid)
			assert.ErrorIs(t, err, room.ErrInvalidStatus, invalid)
		}
	})

	t.Run("housekeeping status parsing", func(t *testing.T) {
		for _, valid := range []string{"clean", "dirty", "inspected", "out_of_order"} {
			_, err := room.NewHousekeepingStatus(valid)
			assert.NoError(t, err, valid)
		}
		for _, invalid := range []string{"", "Clean", "cleaning"} {
			_, err := room.NewHousekeepingStatus(invalid)
			assert.ErrorIs(t, err, room.ErrInvalidHousekeepingStatus, invalid)
		}
	})
}

func TestRoomTransitions(t *testing.T) {
	newRoom := func(t *testing.T) *room.Room {
		t.Helper()
		r, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		return r
	}

	t.Run("change status touches updatedAt", func(t *testing.T) {
		r := newRoom(t)
		later := r.UpdatedAt().Add(time.Minute)

		changed := r.ChangeStatus(room.StatusOutOfService, later)

		assert.True(t, changed)
		assert.Equal(t, room.StatusOutOfService, r.Status())
		assert.Equal(t, later, r.UpdatedAt())
	})

	t.Run("same status change is a no-op", func(t *testing.T) {
		r := newRoom(t)
		before := r.UpdatedAt()

		changed := r.ChangeStatus(room.StatusActive, before.Add(time.Minute))

		assert.False(t, changed)
		assert.Equal(t, room.StatusActive, r.Status())
		assert.Equal(t, before, r.UpdatedAt())
	})

	t.Run("housekeeping change is independent from status", func(t *testing.T) {
		r := newRoom(t)
		later := r.UpdatedAt().Add(time.Minute)

		require.True(t, r.ChangeStatus(room.StatusOutOfService, later))
		require.True(t, r.ChangeHousekeepingStatus(room.HousekeepingDirty, later))

		assert.Equal(t, room.StatusOutOfService, r.Status())
		assert.Equal(t, room.HousekeepingDirty, r.HousekeepingStatus())
	})

	t.Run("same housekeeping change is a no-op", func(t *testing.T) {
		r := newRoom(t)
		before := r.UpdatedAt()

		changed := r.ChangeHousekeepingStatus(room.HousekeepingClean, before.Add(time.Minute))

		assert.False(t, changed)
		assert.Equal(t, before, r.UpdatedAt())
	})

	t.Run("update details replaces all mutable fields", func(t *testing.T) {
		r := newRoom(t)
		newType := uuid.New()
		floor := 7
		later := r.UpdatedAt().Add(time.Minute)

		err := r.UpdateDetails(newType, "707", &floor, room.StatusInactive, room.HousekeepingInspected, later)

		require.NoError(t, err)
		assert.Equal(t, newType, r.RoomTypeID())
		assert.Equal(t, "707", r.Number())
		assert.Equal(t, &floor, r.Floor())
		assert.Equal(t, room.StatusInactive, r.Status())
		assert.Equal(t, room.HousekeepingInspected, r.HousekeepingStatus())
		assert.Equal(t, later, r.UpdatedAt())
	})

	t.Run("update details rejects empty number", func(t *testing.T) {
		r := newRoom(t)

		err := r.UpdateDetails(r.RoomTypeID(), "  ", nil, r.Status(), r.HousekeepingStatus(), r.UpdatedAt())

		require.ErrorIs(t, err, room.ErrNumberRequired)
	})

	t.Run("delete is idempotent and forces inactive", func(t *testing.T) {
		r := newRoom(t)
		now := r.UpdatedAt().Add(time.Minute)

		require.True(t, r.Delete(now))
		assert.True(t, r.IsDeleted())
		assert.Equal(t, room.StatusInactive, r.Status())

		assert.False(t, r.Delete(now.Add(time.Minute)))
		assert.Equal(t, now, r.UpdatedAt())
	})
}

func TestHistoryEntries(t *testing.T) {
	newRoom := func(t *testing.T) *room.Room {
		t.Helper()
		r, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		return r
	}

	t.Run("created entry records both axes", func(t *testing.T) {
		r := newRoom(t)
		now := time.Now()

		entry := room.NewCreatedEntry(r, now)

		assert.Equal(t, room.HistoryCreated, entry.Action())
		assert.Equal(t, r.ID(), entry.RoomID())
		assert.Equal(t, r.HotelID(), entry.HotelID())
		assert.Equal(t, r.RoomTypeID(), entry.RoomTypeID())
		require.NotNil(t, entry.Status())
		require.NotNil(t, entry.HousekeepingStatus())
		assert.Equal(t, r.Status(), *entry.Status())
		assert.Equal(t, r.HousekeepingStatus(), *entry.HousekeepingStatus())
		assert.Empty(t, entry.Reason())
		assert.Equal(t, now, entry.CreatedAt())
	})

	t.Run("status entry leaves housekeeping nil", func(t *testing.T) {
		r := newRoom(t)
		reason := "boiler inspection"

		entry := room.NewStatusChangedEntry(r, room.StatusOutOfService, &reason, time.Now())

		assert.Equal(t, room.HistoryStatusChanged, entry.Action())
		require.NotNil(t, entry.Status())
		assert.Equal(t, room.StatusOutOfService, *entry.Status())
		assert.Nil(t, entry.HousekeepingStatus())
		assert.Equal(t, reason, entry.Reason())
	})

	t.Run("housekeeping entry leaves status nil", func(t *testing.T) {
		r := newRoom(t)

		entry := room.NewHousekeepingChangedEntry(r, room.HousekeepingDirty, nil, time.Now())

		assert.Equal(t, room.HistoryHousekeepingChanged, entry.Action())
		assert.Nil(t, entry.Status())
		require.NotNil(t, entry.HousekeepingStatus())
		assert.Equal(t, room.HousekeepingDirty, *entry.HousekeepingStatus())
		assert.Empty(t, entry.Reason())
	})

	t.Run("reason is trimmed", func(t *testing.T) {
		r := newRoom(t)
		reason := "  water damage  "

		entry := room.NewStatusChangedEntry(r, room.StatusOutOfService, &reason, time.Now())

		assert.Equal(t, "water damage", entry.Reason())
	})
}
