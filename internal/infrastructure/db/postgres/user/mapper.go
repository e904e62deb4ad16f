package user

import (
	domain "civic-issues-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:        model.ID,
		Firstname: model.Firstname,
		Lastname:  model.Lastname,
		Role:      domain.Role(model.Role),
		CreatedAt: model.CreatedAt,
		Revision:  model.Revision,
	}

	return u
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}
