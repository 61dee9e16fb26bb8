package commands

import (
	"context"

	"stayops/internal/domain/user"
	reqdto "stayops/internal/handler/dto/request"
	"stayops/internal/infra"
	"stayops/internal/pkg/errs"
	"stayops/internal/pkg/password"
	"stayops/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateEmail     = errs.New("email already registered")
	ErrUserCreationFailed = errs.New("user creation failed")
)

type UserCommands interface {
	CreateUser(ctx context.Context, req reqdto.CreateUserRequest) (uuid.UUID, error)
}

type userCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userCommandsImpl{uow: uow}
}

func (u *userCommandsImpl) CreateUser(ctx context.Context, req reqdto.CreateUserRequest) (uuid.UUID, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrUserCreationFailed)
	}
	if _, err = user.NewPassword(req.Password); err != nil {
		return uuid.Nil, errs.Mark(err, ErrUserCreationFailed)
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrUserCreationFailed)
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrUserCreationFailed)
	}

	var createdID uuid.UUID
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Users().Create(ctx, tx.DB(), user.NewUser(email, hash, role))
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateEmail
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}
