package mq

import (
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

const (
	ResourceUser  = "user"
	ResourceIssue = "issue"
)

// Event is a change notification for one stored document. Payload is the
// document as it was served, or nil on delete.
type Event struct {
	Id         uuid.UUID `json:"event_id"`
	TS         time.Time `json:"time_stamp"`
	Resource   string    `json:"resource"`
	Action     Action    `json:"event_action"`
	ResourceID string    `json:"resource_id"`
	Payload    any       `json:"payload,omitempty"`
}

func NewEvent(resource string, action Action, resourceID string, payload any) Event {
	return Event{
		Id:         uuid.New(),
		TS:         time.Now().UTC(),
		Resource:   resource,
		Action:     action,
		ResourceID: resourceID,
		Payload:    payload,
	}
}

// RoutingKey is "<resource>.<action>", e.g. "issue.updated".
func (e Event) RoutingKey() string {
	return e.Resource + "." + string(e.Action)
}

// RoutingKeys lists every key the publisher can emit.
func RoutingKeys() []string {
	var keys []string
	for _, r := range []string{ResourceUser, ResourceIssue} {
		for _, a := range []Action{ActionCreated, ActionUpdated, ActionDeleted} {
			keys = append(keys, r+"."+string(a))
		}
	}
	return keys
}
