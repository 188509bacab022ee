package prefstore

import (
	"fmt"

	"github.com/phanxgames/galaxy"
)

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open returns the store for a backend name. The returned close function
// is never nil.
func Open(backend, path string) (galaxy.PreferenceStore, func() error, error) {
	noop := func() error { return nil }
	switch backend {
	case "", BackendMemory:
		return galaxy.NewMemoryStore(), noop, nil
	case BackendFile:
		s, err := OpenFile(path)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	case BackendSQLite:
		s, err := OpenSQLite(path)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown preference backend %q", backend)
	}
}
