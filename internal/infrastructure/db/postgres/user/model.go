package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID        uuid.UUID
		Firstname string
		Lastname  string
		Role      string
		CreatedAt time.Time
		Revision  int
	}
	Users []*User
)
