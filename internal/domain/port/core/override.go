package core

import "github.com/amirhossein-jamali/logcat/internal/domain/entity"

// OverrideSource is the externally administered mapping from application
// tag to minimum admitted priority (log.tag.<AppTag>)
type OverrideSource interface {
	// Lookup returns the override for tag; ok is false when there is none
	Lookup(tag string) (priority entity.Priority, ok bool)
}

// OverrideStore is an OverrideSource that can also be written
type OverrideStore interface {
	OverrideSource
	// Set stores the override for tag
	Set(tag string, priority entity.Priority) error
	// Delete removes the override for tag
	Delete(tag string) error
}
