package security_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-cms/inkwell/domain"
	"github.com/inkwell-cms/inkwell/internal/security"
)

func TestRoleRights(t *testing.T) {
	gate := security.NewGate()

	cases := []struct {
		role  string
		right domain.Right
		want  bool
	}{
		{security.RoleAdmin, domain.RightModerateComments, true},
		{security.RoleAdmin, domain.RightEditOthersPosts, true},
		{security.RoleEditor, domain.RightModerateComments, true},
		{security.RoleEditor, domain.RightEditOthersPosts, true},
		{security.RoleAuthor, domain.RightViewPublicComments, true},
		{security.RoleAuthor, domain.RightCreateComments, true},
		{security.RoleAuthor, domain.RightModerateComments, false},
		{security.RoleAuthor, domain.RightEditOthersPosts, false},
		{"stranger", domain.RightViewPublicComments, false},
	}
	for _, tc := range cases {
		ctx := security.WithPrincipal(context.Background(), domain.Principal{Name: "u", Role: tc.role})
		assert.Equal(t, tc.want, gate.IsAuthorizedTo(ctx, tc.right),
			"role %s right %s", tc.role, tc.right)
	}
}

func TestAnonymousHasNoRights(t *testing.T) {
	gate := security.NewGate()
	ctx := context.Background()

	assert.False(t, gate.IsAuthorizedTo(ctx, domain.RightViewPublicComments))

	_, ok := gate.CurrentUser(ctx)
	assert.False(t, ok)
}

func TestCurrentUser(t *testing.T) {
	gate := security.NewGate()
	ctx := security.WithPrincipal(context.Background(), domain.Principal{Name: "zoe", Role: security.RoleEditor})

	p, ok := gate.CurrentUser(ctx)

	require.True(t, ok)
	assert.Equal(t, "zoe", p.Name)
	assert.Equal(t, security.RoleEditor, p.Role)
}
