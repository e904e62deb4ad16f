package user

import (
	"civic-issues-api/internal/domain/user"
	"civic-issues-api/pkg/optional"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:        uDomain.ID,
		Firstname: uDomain.Firstname,
		Lastname:  uDomain.Lastname,
		Role:      string(uDomain.Role),
		CreatedAt: uDomain.CreatedAt,
		Revision:  uDomain.Revision,
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToDomainFields(uRequest Request) user.Fields {
	return user.Fields{
		Firstname: uRequest.Firstname,
		Lastname:  uRequest.Lastname,
		Role:      user.Role(uRequest.Role),
	}
}

func ToDomainPatch(p PatchRequest) user.Patch {
	var role optional.Value[user.Role]
	if p.Role.Present {
		role = optional.Null[user.Role]()
		if p.Role.Value != nil {
			role = optional.Of(user.Role(*p.Role.Value))
		}
	}

	return user.Patch{
		Firstname: p.Firstname,
		Lastname:  p.Lastname,
		Role:      role,
	}
}
