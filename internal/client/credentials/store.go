package credentials

import "context"

// TokenKey is the key the backend's ID token is stored under.
const TokenKey = "firebaseIdToken"

// Store is a read-only view of the credential store. ok is false when
// nothing (or an empty value) is stored under key.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
}

// Static is an in-memory Store, mostly for tests and one-off runs.
type Static map[string]string

func (s Static) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s[key]
	if !ok || v == "" {
		return "", false, nil
	}
	return v, true, nil
}
