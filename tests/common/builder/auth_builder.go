//go:build unit || e2e

package builder

import (
	reqdto "netcard-manager/internal/handler/dto/request"
)

type AuthBuilder struct {
	Username string
	Password string
	Role     string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Username: "guest",
		Password: "password123",
		Role:     "user",
	}
}

// AsAdmin uses the credentials of config.NewTestConfig.
func (a *AuthBuilder) AsAdmin() *AuthBuilder {
	a.Username = "admin"
	a.Password = "admin123"
	a.Role = "admin"
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: a.Username,
		Password: a.Password,
		Role:     a.Role,
	}
}
