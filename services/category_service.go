package services

import (
	"errors"

	"harvestworld/models"
	"harvestworld/repositories"

	"gorm.io/gorm"
)

type CategoryService interface {
	CreateCategory(req models.CreateCategoryRequest, role models.UserRole) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	DeleteCategory(id uint, role models.UserRole) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(req models.CreateCategoryRequest, role models.UserRole) (*models.Category, error) {
	if role != models.RoleAdmin {
		return nil, ErrUnauthorized
	}

	_, err := s.categoryRepo.GetByName(req.Name)
	if err == nil {
		return nil, errors.New("category already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *categoryService) DeleteCategory(id uint, role models.UserRole) error {
	if role != models.RoleAdmin {
		return ErrUnauthorized
	}

	if _, err := s.categoryRepo.GetByID(id); err != nil {
		return err
	}

	return s.categoryRepo.Delete(id)
}
