package issue

import (
	"fmt"

	domain "civic-issues-api/internal/domain/issue"
)

func fromDBModel(model *Issue) *domain.Issue {
	lat, lng := model.Latitude, model.Longitude
	tags := model.Tags
	if tags == nil {
		tags = []string{}
	}

	var i = &domain.Issue{
		ID:          model.ID,
		Status:      domain.Status(model.Status),
		Description: model.Description,
		ImageURL:    model.ImageURL,
		Latitude:    &lat,
		Longitude:   &lng,
		Tags:        tags,
		User:        model.UserID.String(),
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
		Revision:    model.Revision,
	}

	return i
}

func fromDBModels(models *Issues) domain.Issues {
	is := make(domain.Issues, len(*models))
	for idx, i := range *models {
		is[idx] = fromDBModel(i)
	}

	return is
}

// toDBModel expects a validated issue.
func toDBModel(i domain.Issue) (*Issue, error) {
	userID, ok := i.UserID()
	if !ok {
		return nil, fmt.Errorf("issue user %q is not a valid id", i.User)
	}
	if i.Latitude == nil || i.Longitude == nil {
		return nil, fmt.Errorf("issue coordinates are required")
	}

	return &Issue{
		ID:          i.ID,
		Status:      string(i.Status),
		Description: i.Description,
		ImageURL:    i.ImageURL,
		Latitude:    *i.Latitude,
		Longitude:   *i.Longitude,
		Tags:        i.Tags,
		UserID:      userID,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
		Revision:    i.Revision,
	}, nil
}
