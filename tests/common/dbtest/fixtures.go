//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestHotel(t *testing.T, db DBLike, code string) uuid.UUID {
	t.Helper()

	hotelID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO hotels (id, code, name, timezone, status, created_at, updated_at) VALUES ($1, $2, $3, 'Asia/Tokyo', 'active', now(), now()) ON CONFLICT (code) DO NOTHING",
		hotelID, code, "Hotel "+code)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM hotels WHERE code = $1", code).Scan(&hotelID)
	}

	return hotelID
}

func CreateTestRoomType(t *testing.T, db DBLike, hotelID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	roomTypeID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO room_types (id, hotel_id, name, description, capacity, base_rate, status, created_at, updated_at) VALUES ($1, $2, $3, '', 2, 100, 'active', now(), now())",
		roomTypeID, hotelID, name)
	require.NoError(t, err)

	return roomTypeID
}

func CreateTestRoom(t *testing.T, db DBLike, hotelID, roomTypeID uuid.UUID, number string) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO rooms (id, hotel_id, room_type_id, number, status, housekeeping_status, created_at, updated_at) VALUES ($1, $2, $3, $4, 'active', 'clean', now(), now())",
		roomID, hotelID, roomTypeID, number)
	require.NoError(t, err)

	return roomID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		"INSERT INTO users (email, password_hash, role, is_active) VALUES ('admin@example.com', $1, 'admin', true), ('operator@example.com', $1, 'operator', true), ('viewer@example.com', $1, 'viewer', true) ON CONFLICT (email) DO NOTHING",
		testPasswordHash)
	return err
}
