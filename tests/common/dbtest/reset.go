//go:build unit || e2e

package dbtest

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB truncates all mutable tables and reseeds the reference users
// so each subtest starts from a known state.
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		"TRUNCATE room_history, rooms, room_types, hotels, users RESTART IDENTITY CASCADE")
	if err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
