// Package storage persists small JSON documents such as the mentor portal
// session. Every repository reports a missing document as (nil, nil).
package storage

import "errors"

// ErrCorrupt wraps decode failures so callers can discard the stored value.
var ErrCorrupt = errors.New("stored document is corrupt")
