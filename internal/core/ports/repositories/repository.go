package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/asset_tracker/internal/utils/queryfilter"
)

// Page is one page of a filtered listing plus the total number of matches.
type Page[T any] struct {
	Items    []T
	Total    int
	Page     int
	PageSize int
}

// Reader defines read operations shared by every entity repository.
// Soft-deleted rows are never returned.
type Reader[T any] interface {
	// FindByID returns apperrors.ErrNotFound when no live row has this id.
	FindByID(ctx context.Context, id string) (*T, error)

	// FindOne returns the first row matching spec, or apperrors.ErrNotFound.
	FindOne(ctx context.Context, spec queryfilter.Spec) (*T, error)

	// Exists reports whether a live row has this id.
	Exists(ctx context.Context, id string) (bool, error)

	// List returns every row matching spec, ignoring its page settings.
	List(ctx context.Context, spec queryfilter.Spec) ([]T, error)

	// PaginatedList returns the page of rows requested by spec.
	PaginatedList(ctx context.Context, spec queryfilter.Spec) (Page[T], error)
}

// Writer defines write operations shared by every entity repository.
type Writer[T any] interface {
	// Add persists a new entity. Unique violations surface as apperrors.ErrDuplicate.
	Add(ctx context.Context, entity T) error

	// Update replaces the stored state of id with entity.
	Update(ctx context.Context, id string, entity T) error

	// Remove soft-deletes id by stamping the deletion audit fields.
	Remove(ctx context.Context, id string, deletedBy string, deletedAt time.Time) error
}

// Repository combines Reader and Writer for one entity type.
type Repository[T any] interface {
	Reader[T]
	Writer[T]
}
