package domain

// EnforceRequest carries the authenticated identity and the capability being
// asked for. Handlers never pass fabricated profiles to reuse another role's
// code path; they ask for the capability explicitly.
type EnforceRequest struct {
	UserID   string
	Role     string
	Resource string
	Action   string
}
