package category

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	FindAll() ([]Category, error)
	FindByID(id uint) (*Category, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll() ([]Category, error) {
	var categories []Category
	if err := r.db.Order("category_name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *repository) FindByID(id uint) (*Category, error) {
	var c Category
	if err := r.db.First(&c, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
