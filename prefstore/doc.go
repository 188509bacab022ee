// Package prefstore provides persistent galaxy.PreferenceStore backends: a
// YAML file for desktop installs and a SQLite database for hosts that
// already keep one.
//
// Both stores are safe for concurrent use. Open failures are returned to
// the caller, which typically falls back to galaxy.NewMemoryStore.
package prefstore
