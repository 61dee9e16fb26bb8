package readstore

import (
	"context"
	"fmt"
	"strings"

	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/pgconv"
	"stayops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

const findRoomByIDQuery = `
SELECT r.id, r.hotel_id, r.room_type_id, rt.name AS room_type_name,
       r.number, r.floor, r.status, r.housekeeping_status,
       r.row_version, r.created_at, r.updated_at
FROM rooms r
JOIN room_types rt ON rt.id = r.room_type_id
WHERE r.id = $1 AND NOT r.is_deleted
`

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	var (
		view      queries.RoomView
		floor     pgtype.Int4
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findRoomByIDQuery, id).Scan(
		&view.ID,
		&view.HotelID,
		&view.RoomTypeID,
		&view.RoomTypeName,
		&view.Number,
		&floor,
		&view.Status,
		&view.HousekeepingStatus,
		&view.RowVersion,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by id", err)
	}

	view.Floor = pgconv.IntPtrFromPgtype(floor)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

func (r *RoomReadStore) FindByHotel(ctx context.Context, hotelID uuid.UUID, filters queries.RoomFilters, limit, offset int32) ([]*queries.RoomListItem, int64, error) {
	conditions := []string{"r.hotel_id = $1", "NOT r.is_deleted"}
	args := []any{hotelID}

	appendCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filters.Status != nil {
		appendCondition("r.status = $%d", *filters.Status)
	}
	if filters.HousekeepingStatus != nil {
		appendCondition("r.housekeeping_status = $%d", *filters.HousekeepingStatus)
	}
	if filters.RoomTypeID != nil {
		appendCondition("r.room_type_id = $%d", *filters.RoomTypeID)
	}
	if filters.Number != nil {
		appendCondition("r.number ILIKE '%%' || $%d || '%%'", *filters.Number)
	}
	if filters.Floor != nil {
		appendCondition("r.floor = $%d", *filters.Floor)
	}

	where := strings.Join(conditions, " AND ")

	// Total over the same conditions so clients can page deterministically
	countQuery := fmt.Sprintf("SELECT count(*) FROM rooms r WHERE %s", where)
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count rooms by hotel", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`
SELECT r.id, r.room_type_id, rt.name AS room_type_name,
       r.number, r.floor, r.status, r.housekeeping_status,
       r.row_version, r.updated_at
FROM rooms r
JOIN room_types rt ON rt.id = r.room_type_id
WHERE %s
ORDER BY r.number
LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list rooms by hotel", err)
	}
	defer rows.Close()

	var result []*queries.RoomListItem
	for rows.Next() {
		var (
			item      queries.RoomListItem
			floor     pgtype.Int4
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID,
			&item.RoomTypeID,
			&item.RoomTypeName,
			&item.Number,
			&floor,
			&item.Status,
			&item.HousekeepingStatus,
			&item.RowVersion,
			&updatedAt,
		); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan room row", err)
		}
		item.Floor = pgconv.IntPtrFromPgtype(floor)
		item.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return result, total, nil
}

// History is returned newest first; seq breaks ties between entries
// written in the same transaction with identical timestamps.
const findRoomHistoryQuery = `
SELECT id, room_id, status, housekeeping_status, action, reason, created_at
FROM room_history
WHERE room_id = $1
ORDER BY created_at DESC, seq DESC
LIMIT $2 OFFSET $3
`

const countRoomHistoryQuery = `
SELECT count(*) FROM room_history WHERE room_id = $1
`

func (r *RoomReadStore) FindHistory(ctx context.Context, roomID uuid.UUID, limit, offset int32) ([]*queries.RoomHistoryView, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, countRoomHistoryQuery, roomID).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count room history", err)
	}

	rows, err := r.db.Query(ctx, findRoomHistoryQuery, roomID, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list room history", err)
	}
	defer rows.Close()

	var result []*queries.RoomHistoryView
	for rows.Next() {
		var (
			view         queries.RoomHistoryView
			status       pgtype.Text
			housekeeping pgtype.Text
			createdAt    pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID,
			&view.RoomID,
			&status,
			&housekeeping,
			&view.Action,
			&view.Reason,
			&createdAt,
		); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan room history row", err)
		}
		view.Status = pgconv.StringPtrFromPgtype(status)
		view.HousekeepingStatus = pgconv.StringPtrFromPgtype(housekeeping)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate room history rows", err)
	}
	return result, total, nil
}

// Room types without any live rooms are omitted, the summary covers
// rooms, not the type catalogue.
const roomSummaryQuery = `
SELECT rt.id, rt.name,
       count(r.id),
       count(r.id) FILTER (WHERE r.status = 'active'),
       count(r.id) FILTER (WHERE r.status = 'out_of_service'),
       count(r.id) FILTER (WHERE r.housekeeping_status = 'dirty')
FROM room_types rt
JOIN rooms r ON r.room_type_id = rt.id AND NOT r.is_deleted
WHERE rt.hotel_id = $1 AND NOT rt.is_deleted
GROUP BY rt.id, rt.name
ORDER BY rt.name
`

func (r *RoomReadStore) FindSummary(ctx context.Context, hotelID uuid.UUID) ([]*queries.RoomSummaryItem, error) {
	rows, err := r.db.Query(ctx, roomSummaryQuery, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get room summary", err)
	}
	defer rows.Close()

	var result []*queries.RoomSummaryItem
	for rows.Next() {
		var item queries.RoomSummaryItem
		if err := rows.Scan(
			&item.RoomTypeID,
			&item.RoomTypeName,
			&item.Total,
			&item.Active,
			&item.OutOfService,
			&item.Dirty,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room summary row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room summary rows", err)
	}
	return result, nil
}
