package security

import (
	"context"

	"github.com/inkwell-cms/inkwell/domain"
)

type principalKey struct{}

// WithPrincipal binds the authenticated caller to the context.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the caller bound to the context, if any.
func PrincipalFrom(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}

// Role names resolved to rights by the gate.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleAuthor = "author"
)

var roleRights = map[string][]domain.Right{
	RoleAdmin: {
		domain.RightViewPublicComments,
		domain.RightCreateComments,
		domain.RightModerateComments,
		domain.RightEditOthersPosts,
	},
	RoleEditor: {
		domain.RightViewPublicComments,
		domain.RightCreateComments,
		domain.RightModerateComments,
		domain.RightEditOthersPosts,
	},
	RoleAuthor: {
		domain.RightViewPublicComments,
		domain.RightCreateComments,
	},
}

// Gate resolves the caller's role to a set of rights.
type Gate struct {
	rights map[string]map[domain.Right]bool
}

var _ domain.SecurityGate = (*Gate)(nil)

// NewGate creates a gate with the built-in role table.
func NewGate() *Gate {
	g := &Gate{rights: make(map[string]map[domain.Right]bool, len(roleRights))}
	for role, rights := range roleRights {
		set := make(map[domain.Right]bool, len(rights))
		for _, r := range rights {
			set[r] = true
		}
		g.rights[role] = set
	}
	return g
}

func (g *Gate) IsAuthorizedTo(ctx context.Context, right domain.Right) bool {
	p, ok := PrincipalFrom(ctx)
	if !ok {
		return false
	}
	return g.rights[p.Role][right]
}

func (g *Gate) CurrentUser(ctx context.Context) (domain.Principal, bool) {
	return PrincipalFrom(ctx)
}
