package user

import (
	"civic-issues-api/internal/domain/validation"
)

const (
	minNameLen = 2
	maxNameLen = 20
)

// Validate checks every field constraint of u and reports all violations.
func Validate(u User) error {
	v := new(validation.Error)

	nameField(v, "firstname", u.Firstname)
	nameField(v, "lastname", u.Lastname)

	if u.Role == "" {
		v.Required("role")
	} else {
		v.Enum("role", string(u.Role), Roles)
	}

	return v.Err()
}

func nameField(v *validation.Error, field, s string) {
	if s == "" {
		v.Required(field)
		return
	}
	v.Length(field, s, minNameLen, maxNameLen)
}
