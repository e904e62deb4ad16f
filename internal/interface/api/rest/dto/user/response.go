package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID        uuid.UUID `json:"id"`
		Firstname string    `json:"firstname"`
		Lastname  string    `json:"lastname"`
		Role      string    `json:"role"`
		CreatedAt time.Time `json:"createdAt"`
		Revision  int       `json:"revision"`
	}
	Users        []User
	ResponseData struct {
		Data Users `json:"data"`
	}
)
