package issue

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"civic-issues-api/internal/domain/validation"
)

const (
	maxDescriptionLen = 1000
	maxImageURLLen    = 500

	// TODO: confirm the latitude lower bound with the city; southern
	// latitudes are rejected.
	minLatitude  = 0
	maxLatitude  = 90
	minLongitude = -180
	maxLongitude = 180
)

// UserChecker looks up the user an issue refers to.
type UserChecker interface {
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Validate checks every field constraint of i, including that i.User
// references an existing user at the time of the call. A failing lookup is
// returned as is; constraint violations come back as *validation.Error.
func Validate(ctx context.Context, i Issue, users UserChecker) error {
	v := new(validation.Error)

	if i.Status == "" {
		v.Required("status")
	} else {
		v.Enum("status", string(i.Status), Statuses)
	}
	if i.Description != nil {
		v.Length("description", *i.Description, 0, maxDescriptionLen)
	}
	if i.ImageURL != nil {
		v.Length("imageUrl", *i.ImageURL, 0, maxImageURLLen)
	}

	if i.Latitude == nil {
		v.Required("latitude")
	} else {
		v.Range("latitude", *i.Latitude, minLatitude, maxLatitude)
	}
	if i.Longitude == nil {
		v.Required("longitude")
	} else {
		v.Range("longitude", *i.Longitude, minLongitude, maxLongitude)
	}

	if i.Tags == nil {
		v.Required("tags")
	}

	if err := checkUser(ctx, v, i, users); err != nil {
		return err
	}

	return v.Err()
}

func checkUser(ctx context.Context, v *validation.Error, i Issue, users UserChecker) error {
	if i.User == "" {
		v.Required("user")
		return nil
	}

	id, ok := i.UserID()
	if !ok {
		v.Add("user", validation.KindResourceNotFound, "Path `user` is not a valid User reference")
		return nil
	}

	exists, err := users.UserExists(ctx, id)
	if err != nil {
		return fmt.Errorf("check user %s: %w", id, err)
	}
	if !exists {
		v.Add("user", validation.KindResourceNotFound, "Path `user` does not reference a User that exists")
	}

	return nil
}
