package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"civic-issues-api/pkg/optional"
)

type Role string

const (
	RoleCitizen Role = "citizen"
	RoleManager Role = "manager"
)

var Roles = []string{string(RoleCitizen), string(RoleManager)}

var (
	ErrNotFound      = errors.New("user not found")
	ErrDuplicateName = errors.New("a user with the same firstname and lastname already exists")
)

type (
	UUID = uuid.UUID
	User struct {
		ID        UUID
		Firstname string
		Lastname  string
		Role      Role
		CreatedAt time.Time
		Revision  int
	}
	Users []*User

	// Fields is the mutable part of a user as sent by clients.
	Fields struct {
		Firstname string
		Lastname  string
		Role      Role
	}

	Patch struct {
		Firstname optional.Value[string]
		Lastname  optional.Value[string]
		Role      optional.Value[Role]
	}
)

// New builds an unsaved user from client fields.
func New(f Fields, now time.Time) User {
	u := User{CreatedAt: now}
	u.set(f)
	return u
}

// ApplyFull replaces every mutable field; omitted ones end up empty.
func ApplyFull(existing User, f Fields) User {
	existing.set(f)
	return existing
}

// ApplyPartial overwrites only the fields present in p.
func ApplyPartial(existing User, p Patch) User {
	if p.Firstname.Present {
		existing.Firstname = normalize(p.Firstname.Or(""))
	}
	if p.Lastname.Present {
		existing.Lastname = normalize(p.Lastname.Or(""))
	}
	if p.Role.Present {
		existing.Role = p.Role.Or("")
	}
	return existing
}

func (u *User) set(f Fields) {
	u.Firstname = normalize(f.Firstname)
	u.Lastname = normalize(f.Lastname)
	u.Role = f.Role
}

// normalize keeps composed and decomposed spellings of a name equal,
// so length limits and the name uniqueness constraint see one form.
func normalize(s string) string { return norm.NFC.String(s) }
