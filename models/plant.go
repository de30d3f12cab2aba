package models

import (
	"time"

	"gorm.io/gorm"
)

type PlantDifficulty string

const (
	DifficultyMudah  PlantDifficulty = "mudah"
	DifficultySedang PlantDifficulty = "sedang"
	DifficultySulit  PlantDifficulty = "sulit"
)

func (d PlantDifficulty) Valid() bool {
	switch d {
	case DifficultyMudah, DifficultySedang, DifficultySulit:
		return true
	}
	return false
}

type Plant struct {
	ID             uint            `json:"id" gorm:"primarykey"`
	Name           string          `json:"name" gorm:"not null"`
	ScientificName string          `json:"scientific_name"`
	CategoryID     uint            `json:"category_id" gorm:"not null"`
	Category       Category        `json:"category" gorm:"foreignKey:CategoryID"`
	Difficulty     PlantDifficulty `json:"difficulty" gorm:"default:'mudah'"`
	Description    string          `json:"description" gorm:"type:text"`
	Watering       string          `json:"watering"`
	Sunlight       string          `json:"sunlight"`
	SoilType       string          `json:"soil_type"`
	HarvestTime    string          `json:"harvest_time"`
	Image          string          `json:"image"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `json:"-" gorm:"index"`
}
