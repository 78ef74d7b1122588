package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"
)

type CategoryDatabaseAdapter struct {
	db DBTX
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db DBTX) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// ListCategories returns all categories ordered by id
func (r *CategoryDatabaseAdapter) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	var categories []models.Category
	query := "SELECT id, type FROM categories ORDER BY id"
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	domainCategories := make([]*domain.Category, len(categories))
	for i := range categories {
		domainCategories[i] = convertToDomainCategory(&categories[i])
	}
	return domainCategories, nil
}

// GetCategoryByID returns the category with the given id, or nil if absent
func (r *CategoryDatabaseAdapter) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	exec := GetExecutor(ctx, r.db)
	var category models.Category
	query := exec.Rebind("SELECT id, type FROM categories WHERE id = ?")
	if err := exec.GetContext(ctx, &category, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	return convertToDomainCategory(&category), nil
}

// CreateCategory persists a new category
func (r *CategoryDatabaseAdapter) CreateCategory(ctx context.Context, category *domain.Category) error {
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind("INSERT INTO categories (type) VALUES (?) RETURNING id")
	var id int64
	if err := exec.QueryRowxContext(ctx, query, category.Type).Scan(&id); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	category.ID = id
	return nil
}

func convertToDomainCategory(category *models.Category) *domain.Category {
	return &domain.Category{
		ID:   category.ID,
		Type: category.Type,
	}
}
