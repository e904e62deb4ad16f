package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"civic-issues-api/internal/domain/issue"
	"civic-issues-api/internal/domain/user"
	"civic-issues-api/internal/infrastructure/mq"
)

// memUsers is an in-memory user.Repository enforcing the unique name pair.
type memUsers struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]user.User
	err   error
	order []uuid.UUID
}

func newMemUsers() *memUsers { return &memUsers{byID: map[uuid.UUID]user.User{}} }

func (m *memUsers) FetchUserByID(_ context.Context, id user.UUID) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.byID[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return &u, nil
}

func (m *memUsers) FetchUsers(context.Context) (user.Users, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	us := user.Users{}
	for _, id := range m.order {
		if u, ok := m.byID[id]; ok {
			us = append(us, &u)
		}
	}
	return us, nil
}

func (m *memUsers) UserExists(_ context.Context, id user.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.byID[id]
	return ok, nil
}

func (m *memUsers) clash(u user.User) bool {
	for id, other := range m.byID {
		if id != u.ID && other.Firstname == u.Firstname && other.Lastname == u.Lastname {
			return true
		}
	}
	return false
}

func (m *memUsers) CreateUser(_ context.Context, u user.User) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clash(u) {
		return nil, user.ErrDuplicateName
	}
	u.ID = uuid.New()
	m.byID[u.ID] = u
	m.order = append(m.order, u.ID)
	return &u, nil
}

func (m *memUsers) UpdateUser(_ context.Context, u user.User) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[u.ID]; !ok {
		return nil, user.ErrNotFound
	}
	if m.clash(u) {
		return nil, user.ErrDuplicateName
	}
	u.Revision++
	m.byID[u.ID] = u
	return &u, nil
}

func (m *memUsers) DeleteUser(_ context.Context, id user.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return user.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memIssues struct {
	mu   sync.Mutex
	byID map[uuid.UUID]issue.Issue
}

func newMemIssues() *memIssues { return &memIssues{byID: map[uuid.UUID]issue.Issue{}} }

func (m *memIssues) FetchIssueByID(_ context.Context, id issue.UUID) (*issue.Issue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.byID[id]
	if !ok {
		return nil, issue.ErrNotFound
	}
	return &i, nil
}

func (m *memIssues) all() issue.Issues {
	is := issue.Issues{}
	for _, i := range m.byID {
		i := i
		is = append(is, &i)
	}
	return is
}

func (m *memIssues) FetchIssues(_ context.Context, key issue.SortKey) (issue.Issues, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	is := m.all()
	sort.Slice(is, func(a, b int) bool {
		switch key {
		case issue.SortLatitude:
			return *is[a].Latitude < *is[b].Latitude
		case issue.SortStatus:
			return is[a].Status < is[b].Status
		default:
			return is[a].CreatedAt.Before(is[b].CreatedAt)
		}
	})
	return is, nil
}

func (m *memIssues) FetchIssuesByUser(_ context.Context, id issue.UUID) (issue.Issues, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	is := issue.Issues{}
	for _, i := range m.all() {
		if i.User == id.String() {
			is = append(is, i)
		}
	}
	return is, nil
}

func (m *memIssues) CreateIssue(_ context.Context, i issue.Issue) (*issue.Issue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i.ID = uuid.New()
	m.byID[i.ID] = i
	return &i, nil
}

func (m *memIssues) UpdateIssue(_ context.Context, i issue.Issue) (*issue.Issue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[i.ID]; !ok {
		return nil, issue.ErrNotFound
	}
	i.Revision++
	m.byID[i.ID] = i
	return &i, nil
}

func (m *memIssues) DeleteIssue(_ context.Context, id issue.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return issue.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []mq.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e mq.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var ks []string
	for _, e := range p.events {
		ks = append(ks, e.RoutingKey())
	}
	return ks
}

func newCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_counters"}, []string{"result"})
}

// tick returns a clock advancing one second per call.
func tick(start time.Time) func() time.Time {
	var mu sync.Mutex
	t := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

var errStore = errors.New("store unavailable")
