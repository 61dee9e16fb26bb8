package uow

import (
	"context"

	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/pgconv"
	"stayops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// commandReads serves the snapshots commands validate against before
// writing. Deleted rows are included on purpose: idempotent deletes and
// precise error reporting both need to see them.
type commandReads struct {
	dbtx db.DBTX
}

const hotelSnapshotQuery = `
SELECT id, code, name, timezone, status, created_at, updated_at, is_deleted
FROM hotels WHERE id = $1
`

func (r *commandReads) HotelByID(ctx context.Context, id uuid.UUID) (*shared.HotelSnapshot, error) {
	var (
		snapshot  shared.HotelSnapshot
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.dbtx.QueryRow(ctx, hotelSnapshotQuery, id).Scan(
		&snapshot.ID,
		&snapshot.Code,
		&snapshot.Name,
		&snapshot.Timezone,
		&snapshot.Status,
		&createdAt,
		&updatedAt,
		&snapshot.IsDeleted,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read hotel snapshot", err)
	}
	snapshot.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snapshot.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &snapshot, nil
}

const roomTypeSnapshotQuery = `
SELECT id, hotel_id, name, description, capacity, base_rate, status,
       created_at, updated_at, is_deleted
FROM room_types WHERE id = $1
`

func (r *commandReads) RoomTypeByID(ctx context.Context, id uuid.UUID) (*shared.RoomTypeSnapshot, error) {
	var (
		snapshot  shared.RoomTypeSnapshot
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.dbtx.QueryRow(ctx, roomTypeSnapshotQuery, id).Scan(
		&snapshot.ID,
		&snapshot.HotelID,
		&snapshot.Name,
		&snapshot.Description,
		&snapshot.Capacity,
		&snapshot.BaseRate,
		&snapshot.Status,
		&createdAt,
		&updatedAt,
		&snapshot.IsDeleted,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read room type snapshot", err)
	}
	snapshot.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snapshot.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &snapshot, nil
}

const roomSnapshotQuery = `
SELECT id, hotel_id, room_type_id, number, floor, status, housekeeping_status,
       created_at, updated_at, is_deleted, row_version
FROM rooms WHERE id = $1
`

func (r *commandReads) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	var (
		snapshot  shared.RoomSnapshot
		floor     pgtype.Int4
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.dbtx.QueryRow(ctx, roomSnapshotQuery, id).Scan(
		&snapshot.ID,
		&snapshot.HotelID,
		&snapshot.RoomTypeID,
		&snapshot.Number,
		&floor,
		&snapshot.Status,
		&snapshot.HousekeepingStatus,
		&createdAt,
		&updatedAt,
		&snapshot.IsDeleted,
		&snapshot.Version,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read room snapshot", err)
	}
	snapshot.Floor = pgconv.IntPtrFromPgtype(floor)
	snapshot.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snapshot.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &snapshot, nil
}
