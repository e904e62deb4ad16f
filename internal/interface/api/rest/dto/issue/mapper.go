package issue

import (
	"civic-issues-api/internal/domain/issue"
	"civic-issues-api/pkg/optional"
)

func ToResponseIssue(iDomain issue.Issue) Issue {
	tags := iDomain.Tags
	if tags == nil {
		tags = []string{}
	}

	var i = Issue{
		ID:          iDomain.ID,
		Status:      string(iDomain.Status),
		Description: iDomain.Description,
		ImageURL:    iDomain.ImageURL,
		Latitude:    iDomain.Latitude,
		Longitude:   iDomain.Longitude,
		Tags:        tags,
		User:        iDomain.User,
		UserHref:    UserHref(iDomain.User),
		CreatedAt:   iDomain.CreatedAt,
		UpdatedAt:   iDomain.UpdatedAt,
		Revision:    iDomain.Revision,
	}

	return i
}

func ToResponseIssues(isDomain issue.Issues) Issues {
	is := make(Issues, len(isDomain))
	for idx, i := range isDomain {
		is[idx] = ToResponseIssue(*i)
	}

	return is
}

// UserHref is the derived link to the issue's owner; it is never stored.
func UserHref(userID string) string {
	return UsersPath + "/" + userID
}

func ToDomainFields(r Request) issue.Fields {
	f := issue.Fields{
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Tags:        r.Tags,
	}
	if r.Status != nil {
		f.Status = issue.Status(*r.Status)
	}
	if r.User != nil {
		f.User = *r.User
	}

	return f
}

func ToDomainPatch(p PatchRequest) issue.Patch {
	var status optional.Value[issue.Status]
	if p.Status.Present {
		status = optional.Null[issue.Status]()
		if p.Status.Value != nil {
			status = optional.Of(issue.Status(*p.Status.Value))
		}
	}

	return issue.Patch{
		Status:      status,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		Tags:        p.Tags,
		User:        p.User,
	}
}
