package services

import (
	"errors"

	"harvestworld/models"
	"harvestworld/repositories"

	"gorm.io/gorm"
)

type PlantService interface {
	CreatePlant(req models.CreatePlantRequest, role models.UserRole) (*models.Plant, error)
	GetPlant(id uint) (*models.Plant, error)
	GetPlants(params models.PlantListParams) ([]models.Plant, int64, error)
	UpdatePlant(id uint, req models.UpdatePlantRequest, role models.UserRole) (*models.Plant, error)
	DeletePlant(id uint, role models.UserRole) error
}

type plantService struct {
	plantRepo    repositories.PlantRepository
	categoryRepo repositories.CategoryRepository
}

func NewPlantService(plantRepo repositories.PlantRepository, categoryRepo repositories.CategoryRepository) PlantService {
	return &plantService{
		plantRepo:    plantRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *plantService) CreatePlant(req models.CreatePlantRequest, role models.UserRole) (*models.Plant, error) {
	if role != models.RoleAdmin {
		return nil, ErrUnauthorized
	}

	if _, err := s.categoryRepo.GetByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, err
	}

	plant := &models.Plant{
		Name:           req.Name,
		ScientificName: req.ScientificName,
		CategoryID:     req.CategoryID,
		Difficulty:     req.Difficulty,
		Description:    req.Description,
		Watering:       req.Watering,
		Sunlight:       req.Sunlight,
		SoilType:       req.SoilType,
		HarvestTime:    req.HarvestTime,
		Image:          req.Image,
	}

	if err := s.plantRepo.Create(plant); err != nil {
		return nil, err
	}

	return s.plantRepo.GetByID(plant.ID)
}

func (s *plantService) GetPlant(id uint) (*models.Plant, error) {
	return s.plantRepo.GetByID(id)
}

func (s *plantService) GetPlants(params models.PlantListParams) ([]models.Plant, int64, error) {
	return s.plantRepo.GetList(params)
}

func (s *plantService) UpdatePlant(id uint, req models.UpdatePlantRequest, role models.UserRole) (*models.Plant, error) {
	if role != models.RoleAdmin {
		return nil, ErrUnauthorized
	}

	plant, err := s.plantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if _, err := s.categoryRepo.GetByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, err
	}

	plant.Name = req.Name
	plant.ScientificName = req.ScientificName
	plant.CategoryID = req.CategoryID
	plant.Difficulty = req.Difficulty
	plant.Description = req.Description
	plant.Watering = req.Watering
	plant.Sunlight = req.Sunlight
	plant.SoilType = req.SoilType
	plant.HarvestTime = req.HarvestTime
	if req.Image != "" {
		plant.Image = req.Image
	}

	if err := s.plantRepo.Update(plant); err != nil {
		return nil, err
	}

	return s.plantRepo.GetByID(plant.ID)
}

func (s *plantService) DeletePlant(id uint, role models.UserRole) error {
	if role != models.RoleAdmin {
		return ErrUnauthorized
	}

	if _, err := s.plantRepo.GetByID(id); err != nil {
		return err
	}

	return s.plantRepo.Delete(id)
}
