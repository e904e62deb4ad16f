package user

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civic-issues-api/internal/domain/user"
)

func TestToDomainPatch(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantRole *user.Role
		present  bool
	}{
		{name: "absent", body: `{}`},
		{name: "null", body: `{"role":null}`, present: true},
		{name: "value", body: `{"role":"manager"}`, present: true, wantRole: func() *user.Role { r := user.RoleManager; return &r }()},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var req PatchRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			p := ToDomainPatch(req)
			assert.Equal(t, tt.present, p.Role.Present)
			assert.Equal(t, tt.wantRole, p.Role.Value)
			assert.False(t, p.Firstname.Present)
		})
	}
}

func TestToResponseUsers(t *testing.T) {
	us := user.Users{
		{Firstname: "Ada", Lastname: "Lovelace", Role: user.RoleCitizen},
		{Firstname: "Grace", Lastname: "Hopper", Role: user.RoleManager},
	}

	got := ToResponseUsers(us)

	require.Len(t, got, 2)
	assert.Equal(t, "manager", got[1].Role)
}
