package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
)

// CategoryRepositoryImpl implements domain.CategoryRepository using GORM
type CategoryRepositoryImpl struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

// List implements domain.CategoryRepository; alphabetical by name
func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]domain.Category, error) {
	var dbCategories []DBCategory
	err := r.db.WithContext(ctx).
		Order("category_name").
		Find(&dbCategories).Error
	if err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(dbCategories))
	for i := range dbCategories {
		categories = append(categories, *categoryToDomain(&dbCategories[i]))
	}
	return categories, nil
}

// FindByUUID implements domain.CategoryRepository; loads category items
func (r *CategoryRepositoryImpl) FindByUUID(ctx context.Context, uuid string) (*domain.Category, error) {
	var dbCategory DBCategory
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("items.item_name")
		}).
		Where("uuid = ?", uuid).
		First(&dbCategory).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return categoryToDomain(&dbCategory), nil
}
