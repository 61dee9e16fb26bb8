package readstore

import (
	"context"

	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/pgconv"
	"stayops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomTypeReadStore struct {
	db db.DBTX
}

func NewRoomTypeReadStore(dbtx db.DBTX) *RoomTypeReadStore {
	return &RoomTypeReadStore{db: dbtx}
}

const findRoomTypeByIDQuery = `
SELECT id, hotel_id, name, description, capacity, base_rate, status, created_at, updated_at
FROM room_types
WHERE id = $1 AND NOT is_deleted
`

func (r *RoomTypeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomTypeView, error) {
	var (
		view      queries.RoomTypeView
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findRoomTypeByIDQuery, id).Scan(
		&view.ID,
		&view.HotelID,
		&view.Name,
		&view.Description,
		&view.Capacity,
		&view.BaseRate,
		&view.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room type by id", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

const findRoomTypesByHotelQuery = `
SELECT id, hotel_id, name, description, capacity, base_rate, status, created_at, updated_at
FROM room_types
WHERE hotel_id = $1 AND NOT is_deleted
ORDER BY name
`

func (r *RoomTypeReadStore) FindByHotel(ctx context.Context, hotelID uuid.UUID) ([]*queries.RoomTypeView, error) {
	rows, err := r.db.Query(ctx, findRoomTypesByHotelQuery, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types by hotel", err)
	}
	defer rows.Close()

	var result []*queries.RoomTypeView
	for rows.Next() {
		var (
			view      queries.RoomTypeView
			createdAt pgtype.Timestamptz
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID,
			&view.HotelID,
			&view.Name,
			&view.Description,
			&view.Capacity,
			&view.BaseRate,
			&view.Status,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room type rows", err)
	}
	return result, nil
}
