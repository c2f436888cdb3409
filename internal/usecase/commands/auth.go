package commands

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"netcard-manager/internal/domain/user"
	reqdto "netcard-manager/internal/handler/dto/request"
	"netcard-manager/internal/pkg/errs"
	"netcard-manager/internal/pkg/jwt"
	"netcard-manager/internal/pkg/password"
	"netcard-manager/internal/usecase/readmodel"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	User        *readmodel.AuthorizedUserRM
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

// AdminAccount is the single configured management account.
type AdminAccount struct {
	Username string
	Password *password.Verifier
}

type authCommandsImpl struct {
	admin      AdminAccount
	jwtService *jwt.Service
	logger     *slog.Logger
}

func NewAuthCommands(admin AdminAccount, jwtService *jwt.Service, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		admin:      admin,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login accepts any non-empty credentials for the user role. The admin role
// requires the configured account.
func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if credentials.Role() == user.RoleAdmin {
		if err := a.verifyAdmin(credentials); err != nil {
			a.logger.WarnContext(ctx, "admin login rejected", "username", credentials.Username())
			return nil, err
		}
	}

	u := user.NewUser(credentials.Username(), credentials.Role())
	token, err := a.jwtService.GenerateToken(u)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		User:        ToAuthorizedUser(u),
		AccessToken: token,
	}, nil
}

func (a *authCommandsImpl) verifyAdmin(credentials user.Credentials) error {
	if a.admin.Password == nil {
		return ErrInvalidCredentials
	}
	nameOK := subtle.ConstantTimeCompare([]byte(credentials.Username()), []byte(a.admin.Username)) == 1
	// Always run bcrypt so a wrong username costs the same as a wrong password.
	pwErr := a.admin.Password.Verify(credentials.Password())
	if !nameOK || pwErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func ToAuthorizedUser(u *user.User) *readmodel.AuthorizedUserRM {
	return &readmodel.AuthorizedUserRM{
		ID:       u.ID(),
		Username: u.Username(),
		Role:     u.Role().String(),
		IsAdmin:  u.IsAdmin(),
	}
}
