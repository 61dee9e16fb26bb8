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

type HotelReadStore struct {
	db db.DBTX
}

func NewHotelReadStore(dbtx db.DBTX) *HotelReadStore {
	return &HotelReadStore{db: dbtx}
}

const findHotelByIDQuery = `
SELECT id, code, name, timezone, status, created_at, updated_at
FROM hotels
WHERE id = $1 AND NOT is_deleted
`

func (r *HotelReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HotelView, error) {
	var (
		view      queries.HotelView
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findHotelByIDQuery, id).Scan(
		&view.ID,
		&view.Code,
		&view.Name,
		&view.Timezone,
		&view.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by id", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

const findAllHotelsQuery = `
SELECT id, code, name, timezone, status, created_at, updated_at
FROM hotels
WHERE NOT is_deleted
ORDER BY code
LIMIT $1 OFFSET $2
`

const countHotelsQuery = `
SELECT count(*) FROM hotels WHERE NOT is_deleted
`

func (r *HotelReadStore) FindAll(ctx context.Context, limit, offset int32) ([]*queries.HotelView, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, countHotelsQuery).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count hotels", err)
	}

	rows, err := r.db.Query(ctx, findAllHotelsQuery, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list hotels", err)
	}
	defer rows.Close()

	var result []*queries.HotelView
	for rows.Next() {
		var (
			view      queries.HotelView
			createdAt pgtype.Timestamptz
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID,
			&view.Code,
			&view.Name,
			&view.Timezone,
			&view.Status,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan hotel row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate hotel rows", err)
	}
	return result, total, nil
}
