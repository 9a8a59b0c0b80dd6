package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
	domainErr "github.com/amirhossein-jamali/logcat/internal/domain/error"
	coreport "github.com/amirhossein-jamali/logcat/internal/domain/port/core"
	"github.com/amirhossein-jamali/logcat/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/model"
)

var _ persistence.TagOverrideRepository = (*TagOverrideRepository)(nil)

// TagOverrideRepository stores level overrides in the log_tag_overrides table
type TagOverrideRepository struct {
	db           *gorm.DB
	log          coreport.Logger
	timeProvider coreport.TimeProvider
	errorMapper  *database.ErrorMapper
	classifier   *ErrorClassifier
	retry        database.RetryConfig
}

// NewTagOverrideRepository creates a repository on a connected database
func NewTagOverrideRepository(db *gorm.DB, log coreport.Logger, timeProvider coreport.TimeProvider) *TagOverrideRepository {
	return &TagOverrideRepository{
		db:           db,
		log:          log,
		timeProvider: timeProvider,
		errorMapper:  database.NewErrorMapper(),
		classifier:   NewErrorClassifier(),
		retry:        database.DefaultRetryConfig(),
	}
}

// Find returns the override stored for tag
func (r *TagOverrideRepository) Find(ctx context.Context, tag string) (entity.Priority, error) {
	var row model.TagOverride
	err := r.withRetry(ctx, func() error {
		return r.db.WithContext(ctx).Where("tag = ?", tag).Take(&row).Error
	})
	if err != nil {
		return 0, r.mapError(err, "find")
	}

	priority, err := entity.ParsePriority(row.Level)
	if err != nil {
		return 0, fmt.Errorf("stored override for %q: %w", tag, err)
	}
	return priority, nil
}

// List returns every stored override keyed by tag. Rows holding a level
// that no longer parses are skipped with a warning.
func (r *TagOverrideRepository) List(ctx context.Context) (map[string]entity.Priority, error) {
	var rows []model.TagOverride
	err := r.withRetry(ctx, func() error {
		return r.db.WithContext(ctx).Order("tag").Find(&rows).Error
	})
	if err != nil {
		return nil, r.mapError(err, "list")
	}

	levels := make(map[string]entity.Priority, len(rows))
	for _, row := range rows {
		priority, err := entity.ParsePriority(row.Level)
		if err != nil {
			_, _ = r.log.Warnf(database.LogTag, "Skipping override for %s: %v", row.Tag, err)
			continue
		}
		levels[row.Tag] = priority
	}
	return levels, nil
}

// Upsert stores the override for tag, replacing any previous one
func (r *TagOverrideRepository) Upsert(ctx context.Context, tag string, priority entity.Priority) error {
	now := r.timeProvider.Now()
	row := model.TagOverride{
		Tag:       tag,
		Level:     priority.String(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := r.withRetry(ctx, func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tag"}},
			DoUpdates: clause.AssignmentColumns([]string{"level", "updated_at"}),
		}).Create(&row).Error
	})
	if err != nil {
		return r.mapError(err, "upsert")
	}
	return nil
}

// Delete removes the override for tag
func (r *TagOverrideRepository) Delete(ctx context.Context, tag string) error {
	var affected int64
	err := r.withRetry(ctx, func() error {
		result := r.db.WithContext(ctx).Where("tag = ?", tag).Delete(&model.TagOverride{})
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return r.mapError(err, "delete")
	}
	if affected == 0 {
		return domainErr.ErrOverrideNotFound
	}
	return nil
}

func (r *TagOverrideRepository) withRetry(ctx context.Context, operation func() error) error {
	return database.RetryOnTransientError(ctx, r.retry, r.timeProvider, operation, r.log)
}

func (r *TagOverrideRepository) mapError(err error, operation string) error {
	mapped := r.errorMapper.MapError(err, operation)
	if !domainErr.IsNotFoundError(mapped) {
		_, _ = r.log.Errorf(database.LogTag, "Override %s failed (%s): %v", operation, r.classifier.Classify(err), err)
	}
	return mapped
}
