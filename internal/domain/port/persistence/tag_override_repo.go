package persistence

import (
	"context"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
)

// TagOverrideRepository defines methods for persisting level overrides
type TagOverrideRepository interface {
	// Find returns the override stored for tag
	//
	// Possible errors:
	// - ErrOverrideNotFound: If no override is stored for tag
	// - ErrDatabaseConnection: If database connection fails
	Find(ctx context.Context, tag string) (entity.Priority, error)

	// List returns every stored override keyed by tag
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	List(ctx context.Context) (map[string]entity.Priority, error)

	// Upsert stores the override for tag, replacing any previous one
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Upsert(ctx context.Context, tag string, priority entity.Priority) error

	// Delete removes the override for tag
	//
	// Possible errors:
	// - ErrOverrideNotFound: If no override is stored for tag
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, tag string) error
}
