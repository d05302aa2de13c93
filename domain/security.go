package domain

import "context"

// Right is a named permission checked against the authenticated caller
// before an operation proceeds.
type Right string

const (
	RightViewPublicComments Right = "ViewPublicComments"
	RightCreateComments     Right = "CreateComments"
	RightModerateComments   Right = "ModerateComments"
	RightEditOthersPosts    Right = "EditOtherUsersPosts"
)

// Principal is the authenticated caller bound to a request context.
type Principal struct {
	Name string
	Role string
}

// SecurityGate evaluates whether the caller bound to the context holds a
// named right. Stateless given a caller identity and a right.
type SecurityGate interface {
	// IsAuthorizedTo reports whether the current caller holds the right.
	IsAuthorizedTo(ctx context.Context, right Right) bool

	// CurrentUser returns the caller identity, if any.
	CurrentUser(ctx context.Context) (Principal, bool)
}
