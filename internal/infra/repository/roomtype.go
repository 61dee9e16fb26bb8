package repository

import (
	"context"

	"stayops/internal/domain/roomtype"
	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomTypeRepository struct{}

func NewRoomTypeRepository() *RoomTypeRepository {
	return &RoomTypeRepository{}
}

const insertRoomTypeQuery = `
INSERT INTO room_types (id, hotel_id, name, description, capacity, base_rate, status, created_at, updated_at, is_deleted)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, false)
RETURNING id
`

func (r *RoomTypeRepository) Create(ctx context.Context, tx db.DBTX, rt *roomtype.RoomType) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertRoomTypeQuery,
		rt.ID(),
		rt.HotelID(),
		rt.Name(),
		rt.Description(),
		rt.Capacity(),
		rt.BaseRate(),
		rt.Status().String(),
		pgconv.TimeToPgtype(rt.CreatedAt()),
		pgconv.TimeToPgtype(rt.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room type", err)
	}
	return id, nil
}

const updateRoomTypeQuery = `
UPDATE room_types SET
    name = $2,
    description = $3,
    capacity = $4,
    base_rate = $5,
    status = $6,
    updated_at = $7,
    is_deleted = $8
WHERE id = $1
`

func (r *RoomTypeRepository) Update(ctx context.Context, tx db.DBTX, rt *roomtype.RoomType) error {
	tag, err := tx.Exec(ctx, updateRoomTypeQuery,
		rt.ID(),
		rt.Name(),
		rt.Description(),
		rt.Capacity(),
		rt.BaseRate(),
		rt.Status().String(),
		pgconv.TimeToPgtype(rt.UpdatedAt()),
		rt.IsDeleted(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "room type not found")
	}
	return nil
}
