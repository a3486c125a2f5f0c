package model

// Identity is the acting caller of a service operation. It is passed
// explicitly instead of being read from an ambient session so that
// ownership and role checks stay deterministic under test.
type Identity struct {
	UserID  string
	IsAdmin bool
}

// IsAnonymous reports whether there is no authenticated caller.
func (i Identity) IsAnonymous() bool {
	return i.UserID == ""
}
