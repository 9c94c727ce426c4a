package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

type ListQuery struct {
	Search string
	// Filters maps whitelisted column names to exact-match values.
	Filters map[string]any
	Page    int
	Limit   int
}

// ResourceGormRepository is the shared persistence for admin-managed
// entities (classes, teachers, batches, admissions, singers).
type ResourceGormRepository[T any] struct {
	db            *gorm.DB
	searchColumns []string
	order         string
}

func NewResourceGormRepository[T any](db *gorm.DB, searchColumns []string, order string) *ResourceGormRepository[T] {
	if order == "" {
		order = "id ASC"
	}
	return &ResourceGormRepository[T]{db: db, searchColumns: searchColumns, order: order}
}

func (r *ResourceGormRepository[T]) List(ctx context.Context, q ListQuery) ([]T, int64, error) {
	tx := r.db.WithContext(ctx).Model(new(T))

	for col, v := range q.Filters {
		tx = tx.Where(col+" = ?", v)
	}

	if s := strings.ToLower(strings.TrimSpace(q.Search)); s != "" && len(r.searchColumns) > 0 {
		like := "%" + s + "%"
		conds := make([]string, 0, len(r.searchColumns))
		args := make([]any, 0, len(r.searchColumns))
		for _, col := range r.searchColumns {
			conds = append(conds, "LOWER("+col+") LIKE ?")
			args = append(args, like)
		}
		tx = tx.Where(strings.Join(conds, " OR "), args...)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if q.Limit > 0 {
		page := q.Page
		if page <= 0 {
			page = 1
		}
		tx = tx.Limit(q.Limit).Offset((page - 1) * q.Limit)
	}

	var out []T
	if err := tx.Order(r.order).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *ResourceGormRepository[T]) Get(ctx context.Context, id uint) (*T, error) {
	var v T
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ResourceGormRepository[T]) Create(ctx context.Context, v *T) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *ResourceGormRepository[T]) Save(ctx context.Context, v *T) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *ResourceGormRepository[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
