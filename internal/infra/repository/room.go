package repository

import (
	"context"

	"stayops/internal/domain/room"
	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

const insertRoomQuery = `
INSERT INTO rooms (
    id, hotel_id, room_type_id, number, floor,
    status, housekeeping_status, created_at, updated_at, is_deleted, row_version
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, false, 1)
RETURNING id
`

func (r *RoomRepository) Create(ctx context.Context, tx db.DBTX, rm *room.Room) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertRoomQuery,
		rm.ID(),
		rm.HotelID(),
		rm.RoomTypeID(),
		rm.Number(),
		pgconv.IntPtrToPgtype(rm.Floor()),
		rm.Status().String(),
		rm.HousekeepingStatus().String(),
		pgconv.TimeToPgtype(rm.CreatedAt()),
		pgconv.TimeToPgtype(rm.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room", err)
	}
	return id, nil
}

const updateRoomQuery = `
UPDATE rooms SET
    room_type_id = $2,
    number = $3,
    floor = $4,
    status = $5,
    housekeeping_status = $6,
    updated_at = $7,
    is_deleted = $8,
    row_version = row_version + 1
WHERE id = $1
RETURNING row_version
`

const updateRoomCheckedQuery = `
UPDATE rooms SET
    room_type_id = $2,
    number = $3,
    floor = $4,
    status = $5,
    housekeeping_status = $6,
    updated_at = $7,
    is_deleted = $8,
    row_version = row_version + 1
WHERE id = $1 AND row_version = $9
RETURNING row_version
`

// Update writes every mutable column and bumps row_version. With a non-nil
// expectedVersion the WHERE clause carries the version so a concurrent
// writer makes this statement touch zero rows, reported as CONFLICT.
func (r *RoomRepository) Update(ctx context.Context, tx db.DBTX, rm *room.Room, expectedVersion *int64) (int64, error) {
	args := []any{
		rm.ID(),
		rm.RoomTypeID(),
		rm.Number(),
		pgconv.IntPtrToPgtype(rm.Floor()),
		rm.Status().String(),
		rm.HousekeepingStatus().String(),
		pgconv.TimeToPgtype(rm.UpdatedAt()),
		rm.IsDeleted(),
	}

	query := updateRoomQuery
	if expectedVersion != nil {
		query = updateRoomCheckedQuery
		args = append(args, *expectedVersion)
	}

	var newVersion int64
	err := tx.QueryRow(ctx, query, args...).Scan(&newVersion)
	if err != nil {
		if pgconv.IsNoRows(err) {
			if expectedVersion != nil {
				return 0, infra.NewRepoErr(infra.KindConflict, "room was modified by another request")
			}
			return 0, infra.NewRepoErr(infra.KindNotFound, "room not found")
		}
		return 0, infra.WrapRepoErr("failed to update room", err)
	}
	return newVersion, nil
}

const roomNumberExistsQuery = `
SELECT EXISTS (
    SELECT 1 FROM rooms
    WHERE hotel_id = $1
      AND number = $2
      AND NOT is_deleted
      AND ($3::uuid IS NULL OR id <> $3)
)
`

func (r *RoomRepository) NumberExists(ctx context.Context, tx db.DBTX, hotelID uuid.UUID, number string, excludeRoomID *uuid.UUID) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, roomNumberExistsQuery,
		hotelID,
		number,
		pgconv.UUIDPtrToPgtype(excludeRoomID),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check room number existence", err)
	}
	return exists, nil
}

const insertRoomHistoryQuery = `
INSERT INTO room_history (
    id, room_id, hotel_id, room_type_id,
    status, housekeeping_status, action, reason, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

func (r *RoomRepository) AppendHistory(ctx context.Context, tx db.DBTX, entry *room.HistoryEntry) error {
	_, err := tx.Exec(ctx, insertRoomHistoryQuery,
		entry.ID(),
		entry.RoomID(),
		entry.HotelID(),
		entry.RoomTypeID(),
		pgconv.StringPtrToPgtype(statusPtrToString(entry.Status())),
		pgconv.StringPtrToPgtype(housekeepingPtrToString(entry.HousekeepingStatus())),
		entry.Action().String(),
		entry.Reason(),
		pgconv.TimeToPgtype(entry.CreatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append room history", err)
	}
	return nil
}

func statusPtrToString(s *room.Status) *string {
	if s == nil {
		return nil
	}
	v := s.String()
	return &v
}

func housekeepingPtrToString(s *room.HousekeepingStatus) *string {
	if s == nil {
		return nil
	}
	v := s.String()
	return &v
}
