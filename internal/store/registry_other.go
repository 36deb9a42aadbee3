//go:build !windows

package store

// OpenSystem returns ErrUnsupported outside Windows; use the file backend instead.
func OpenSystem() (Store, error) {
	return nil, ErrUnsupported
}
