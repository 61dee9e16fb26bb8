//go:build unit || e2e

package builder

import (
	domuser "stayops/internal/domain/user"
	reqdto "stayops/internal/handler/dto/request"
	"stayops/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email    string
	Password string
	Role     string
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:    "operator@example.com",
		Password: "password123",
		Role:     "operator",
		IsActive: true,
	}
}

func (u *UserBuilder) BuildDomain() (*domuser.User, error) {
	email, err := domuser.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := domuser.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return domuser.NewUser(email, "hashed-"+u.Password, role), nil
}

func (u *UserBuilder) BuildCreateRequestDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{
		Email:    u.Email,
		Password: u.Password,
		Role:     u.Role,
	}
}

func (u *UserBuilder) BuildAuthorizedView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Email = "admin@example.com"
	u.Role = "admin"
	return u
}

func (u *UserBuilder) AsViewer() *UserBuilder {
	u.Email = "viewer@example.com"
	u.Role = "viewer"
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
