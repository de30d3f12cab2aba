package repositories

import (
	"harvestworld/models"

	"gorm.io/gorm"
)

type PlantRepository interface {
	Create(plant *models.Plant) error
	GetByID(id uint) (*models.Plant, error)
	GetList(params models.PlantListParams) ([]models.Plant, int64, error)
	Update(plant *models.Plant) error
	Delete(id uint) error
}

type plantRepository struct {
	db *gorm.DB
}

func NewPlantRepository(db *gorm.DB) PlantRepository {
	return &plantRepository{db: db}
}

func (r *plantRepository) Create(plant *models.Plant) error {
	return r.db.Create(plant).Error
}

func (r *plantRepository) GetByID(id uint) (*models.Plant, error) {
	var plant models.Plant
	err := r.db.Preload("Category").First(&plant, id).Error
	return &plant, err
}

func (r *plantRepository) GetList(params models.PlantListParams) ([]models.Plant, int64, error) {
	var plants []models.Plant
	var total int64

	query := r.db.Model(&models.Plant{}).Preload("Category")

	if params.Search != "" {
		search := "%" + params.Search + "%"
		query = query.Where("plants.name ILIKE ? OR plants.scientific_name ILIKE ?", search, search)
	}

	if params.Category != "" {
		query = query.Joins("JOIN categories ON categories.id = plants.category_id").
			Where("categories.name = ?", params.Category)
	}

	if len(params.Difficulties) > 0 {
		query = query.Where("plants.difficulty IN ?", params.Difficulties)
	}

	query.Count(&total)

	offset := (params.Page - 1) * params.Limit
	err := query.Order("plants.name asc").Offset(offset).Limit(params.Limit).Find(&plants).Error

	return plants, total, err
}

func (r *plantRepository) Update(plant *models.Plant) error {
	return r.db.Save(plant).Error
}

func (r *plantRepository) Delete(id uint) error {
	return r.db.Delete(&models.Plant{}, id).Error
}
