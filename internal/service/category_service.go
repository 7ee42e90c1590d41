package service

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/skillforge/skillforge/internal/apperror"
	"github.com/skillforge/skillforge/internal/dto"
	"github.com/skillforge/skillforge/internal/model"
	"github.com/skillforge/skillforge/internal/repository"
)

type CategoryService interface {
	CreateCategory(req dto.CategoryCreateRequest) (*dto.CategoryResponse, error)
	ListCategories() ([]dto.CategoryResponse, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(req dto.CategoryCreateRequest) (*dto.CategoryResponse, error) {
	category := &model.SkillCategory{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, apperror.NewIntegrity("a category with this name already exists")
		}
		return nil, err
	}

	log.Info().Uint("categoryID", category.ID).Str("name", category.Name).Msg("Skill category created")
	return categoryToDTO(category), nil
}

func (s *categoryService) ListCategories() ([]dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, *categoryToDTO(&categories[i]))
	}
	return responses, nil
}

func categoryToDTO(category *model.SkillCategory) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}
