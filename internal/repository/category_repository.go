package repository

import (
	"github.com/skillforge/skillforge/internal/model"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.SkillCategory) error
	FindByID(id uint) (*model.SkillCategory, error)
	FindAll() ([]model.SkillCategory, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.SkillCategory) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) FindByID(id uint) (*model.SkillCategory, error) {
	var category model.SkillCategory
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindAll() ([]model.SkillCategory, error) {
	var categories []model.SkillCategory
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
