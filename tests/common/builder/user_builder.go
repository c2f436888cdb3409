//go:build unit || e2e

package builder

import (
	"netcard-manager/internal/domain/user"
	"netcard-manager/internal/usecase/readmodel"
)

type UserBuilder struct {
	Username string
	Password string
	Role     string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Username: "admin",
		Password: "admin123",
		Role:     "admin",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithPassword(password string) *UserBuilder {
	u.Password = password
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) BuildCredentials() (user.Credentials, error) {
	return user.NewCredentials(u.Username, u.Password, u.Role)
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	creds, err := u.BuildCredentials()
	if err != nil {
		return nil, err
	}
	return user.NewUser(creds.Username(), creds.Role()), nil
}

func (u *UserBuilder) BuildReadModel() *readmodel.AuthorizedUserRM {
	d, err := u.BuildDomain()
	if err != nil {
		panic(err)
	}
	return &readmodel.AuthorizedUserRM{
		ID:       d.ID(),
		Username: d.Username(),
		Role:     d.Role().String(),
		IsAdmin:  d.IsAdmin(),
	}
}
