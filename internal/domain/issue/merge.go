package issue

import "time"

// New builds an unsaved issue; status defaults to new.
func New(f Fields, now time.Time) Issue {
	i := Issue{CreatedAt: now}
	i.set(f)
	if i.Status == "" {
		i.Status = StatusNew
	}
	return i
}

// ApplyFull sets every mutable field from f. Fields omitted by the client
// are cleared rather than kept from existing.
func ApplyFull(existing Issue, f Fields, now time.Time) Issue {
	existing.set(f)
	existing.UpdatedAt = &now
	return existing
}

// ApplyPartial overwrites the fields present in p, null included, and
// leaves the others untouched.
func ApplyPartial(existing Issue, p Patch, now time.Time) Issue {
	if p.Status.Present {
		existing.Status = p.Status.Or("")
	}
	if p.Description.Present {
		existing.Description = p.Description.Value
	}
	if p.ImageURL.Present {
		existing.ImageURL = p.ImageURL.Value
	}
	if p.Latitude.Present {
		existing.Latitude = p.Latitude.Value
	}
	if p.Longitude.Present {
		existing.Longitude = p.Longitude.Value
	}
	if p.Tags.Present {
		existing.Tags = p.Tags.Or(nil)
	}
	if p.User.Present {
		existing.User = p.User.Or("")
	}
	existing.UpdatedAt = &now
	return existing
}

func (i *Issue) set(f Fields) {
	i.Status = f.Status
	i.Description = f.Description
	i.ImageURL = f.ImageURL
	i.Latitude = f.Latitude
	i.Longitude = f.Longitude
	i.Tags = f.Tags
	i.User = f.User
}
