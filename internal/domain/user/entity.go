package user

import (
	"github.com/google/uuid"
)

// User is the session identity handed out by the stand-in login. There is
// no user store; the id is derived from the username.
type User struct {
	id       uuid.UUID
	username string
	role     Role
}

func NewUser(username string, role Role) *User {
	return &User{
		id:       uuid.NewSHA1(uuid.NameSpaceOID, []byte(role.String()+":"+username)),
		username: username,
		role:     role,
	}
}

func (u *User) ID() uuid.UUID    { return u.id }
func (u *User) Username() string { return u.username }
func (u *User) Role() Role       { return u.role }
func (u *User) IsAdmin() bool    { return u.role == RoleAdmin }
