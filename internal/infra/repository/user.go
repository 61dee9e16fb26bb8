package repository

import (
	"context"

	"stayops/internal/domain/user"
	"stayops/internal/infra"
	"stayops/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const insertUserQuery = `
INSERT INTO users (id, email, password_hash, role, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())
RETURNING id
`

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertUserQuery,
		u.ID(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role().String(),
		u.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

const updateLastLoginQuery = `
UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1
`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	tag, err := tx.Exec(ctx, updateLastLoginQuery, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	return nil
}
