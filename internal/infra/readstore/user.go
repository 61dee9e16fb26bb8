package readstore

import (
	"context"

	"github.com/google/uuid"

	"stayops/internal/infra"
	"stayops/internal/infra/db"
	"stayops/internal/pkg/pgconv"
	"stayops/internal/usecase/queries"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const findUserByIDQuery = `
SELECT id, email, role, is_active FROM users WHERE id = $1
`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, findUserByIDQuery, id).Scan(
		&view.ID,
		&view.Email,
		&view.Role,
		&view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

const findUserByEmailQuery = `
SELECT id, email, role, is_active, password_hash FROM users WHERE email = $1
`

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view         queries.AuthorizedUserView
		passwordHash string
	)
	err := r.db.QueryRow(ctx, findUserByEmailQuery, email).Scan(
		&view.ID,
		&view.Email,
		&view.Role,
		&view.IsActive,
		&passwordHash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, passwordHash, nil
}
