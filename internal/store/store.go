package store

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when signing up with an email that is
	// already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Owned is implemented by every record that belongs to a single user.
type Owned interface {
	Owner() string
}

// Authorize is the single ownership check applied before every read, update,
// or delete of an owned resource. A missing resource and a resource owned by
// someone else both come back as ErrNotFound: callers MUST NOT be able to
// tell "doesn't exist" from "exists but isn't yours".
func Authorize(resource Owned, ownerID string) error {
	if resource == nil || resource.Owner() != ownerID {
		return ErrNotFound
	}
	return nil
}
