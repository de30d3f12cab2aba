package repositories

import (
	"harvestworld/models"

	"gorm.io/gorm"
)

type ExpertRequestRepository interface {
	Create(request *models.ExpertRequest) error
	GetByID(id uint) (*models.ExpertRequest, error)
	GetList(status string, page, limit int) ([]models.ExpertRequest, int64, error)
	GetByUserID(userID uint) ([]models.ExpertRequest, error)
	HasPending(userID uint) (bool, error)
	Approve(id uint) error
	Reject(id uint, reason string) error
}

type expertRequestRepository struct {
	db *gorm.DB
}

func NewExpertRequestRepository(db *gorm.DB) ExpertRequestRepository {
	return &expertRequestRepository{db: db}
}

func (r *expertRequestRepository) Create(request *models.ExpertRequest) error {
	return r.db.Create(request).Error
}

func (r *expertRequestRepository) GetByID(id uint) (*models.ExpertRequest, error) {
	var request models.ExpertRequest
	err := r.db.Preload("User").First(&request, id).Error
	return &request, err
}

func (r *expertRequestRepository) GetList(status string, page, limit int) ([]models.ExpertRequest, int64, error) {
	var requests []models.ExpertRequest
	var total int64

	query := r.db.Model(&models.ExpertRequest{}).Preload("User")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	query.Count(&total)

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&requests).Error

	return requests, total, err
}

func (r *expertRequestRepository) GetByUserID(userID uint) ([]models.ExpertRequest, error) {
	var requests []models.ExpertRequest
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&requests).Error
	return requests, err
}

func (r *expertRequestRepository) HasPending(userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.ExpertRequest{}).
		Where("user_id = ? AND status = ?", userID, models.StatusPending).
		Count(&count).Error
	return count > 0, err
}

// Approve marks the request approved and promotes its owner to expert.
// Both writes commit or roll back together.
func (r *expertRequestRepository) Approve(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var request models.ExpertRequest
		if err := tx.First(&request, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.ExpertRequest{}).Where("id = ?", id).Updates(map[string]interface{}{
			"status":         models.StatusApproved,
			"admin_comments": "",
		}).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).Where("id = ?", request.UserID).
			Update("role", models.RoleExpert).Error
	})
}

func (r *expertRequestRepository) Reject(id uint, reason string) error {
	return r.db.Model(&models.ExpertRequest{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":         models.StatusRejected,
		"admin_comments": reason,
	}).Error
}
