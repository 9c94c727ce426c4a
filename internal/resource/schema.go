package resource

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/academy-scheduler/internal/infra/repository"
)

// Store is the persistence a Controller needs.
type Store[T any] interface {
	List(ctx context.Context, q repository.ListQuery) ([]T, int64, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, v *T) error
	Save(ctx context.Context, v *T) error
	Delete(ctx context.Context, id uint) error
}

// Schema describes one admin-managed entity.
type Schema[T any] struct {
	// Name is the singular entity name used in error codes and audit
	// actions, e.g. "teacher".
	Name string

	SearchColumns []string
	Order         string

	// Filters maps query parameters to the column they filter exactly.
	Filters map[string]string

	// Prepare runs on create before validation, with the caller's context.
	Prepare func(c *gin.Context, v *T)

	// Validate adds cross-field checks on top of struct tags.
	Validate func(v *T) map[string]string
}
