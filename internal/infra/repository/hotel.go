package repository

import (
	"context"

	"stayops/internal/domain/hotel"
	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type HotelRepository struct{}

func NewHotelRepository() *HotelRepository {
	return &HotelRepository{}
}

const insertHotelQuery = `
INSERT INTO hotels (id, code, name, timezone, status, created_at, updated_at, is_deleted)
VALUES ($1, $2, $3, $4, $5, $6, $7, false)
RETURNING id
`

func (r *HotelRepository) Create(ctx context.Context, tx db.DBTX, h *hotel.Hotel) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertHotelQuery,
		h.ID(),
		h.Code(),
		h.Name(),
		h.Timezone(),
		h.Status().String(),
		pgconv.TimeToPgtype(h.CreatedAt()),
		pgconv.TimeToPgtype(h.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create hotel", err)
	}
	return id, nil
}

const updateHotelQuery = `
UPDATE hotels SET
    code = $2,
    name = $3,
    timezone = $4,
    status = $5,
    updated_at = $6,
    is_deleted = $7
WHERE id = $1
`

func (r *HotelRepository) Update(ctx context.Context, tx db.DBTX, h *hotel.Hotel) error {
	tag, err := tx.Exec(ctx, updateHotelQuery,
		h.ID(),
		h.Code(),
		h.Name(),
		h.Timezone(),
		h.Status().String(),
		pgconv.TimeToPgtype(h.UpdatedAt()),
		h.IsDeleted(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "hotel not found")
	}
	return nil
}
