// Package runid tags a single invocation of the scanner with a stable
// identifier, so verbose logs from the same run can be correlated after the
// fact. The identifier is not written into offset dump files.
package runid

import "github.com/google/uuid"

// New returns a fresh run identifier.
func New() string {
	return uuid.NewString()
}

// IsValid reports whether s looks like a run identifier produced by New,
// for callers validating one supplied externally.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
