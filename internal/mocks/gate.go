package mocks

import (
	"context"

	"github.com/inkwell-cms/inkwell/domain"
)

// Gate is a test double for domain.SecurityGate with a fixed caller and
// right set.
type Gate struct {
	User   domain.Principal
	Anon   bool
	Rights map[domain.Right]bool
}

var _ domain.SecurityGate = (*Gate)(nil)

func NewGate(user domain.Principal, rights ...domain.Right) *Gate {
	g := &Gate{
		User:   user,
		Rights: make(map[domain.Right]bool, len(rights)),
	}
	for _, r := range rights {
		g.Rights[r] = true
	}
	return g
}

func (g *Gate) IsAuthorizedTo(_ context.Context, right domain.Right) bool {
	return g.Rights[right]
}

func (g *Gate) CurrentUser(context.Context) (domain.Principal, bool) {
	if g.Anon {
		return domain.Principal{}, false
	}
	return g.User, true
}
