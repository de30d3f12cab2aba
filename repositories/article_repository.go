package repositories

import (
	"harvestworld/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetList(params models.ArticleListParams, viewerID uint, viewerRole models.UserRole) ([]models.Article, int64, error)
	Update(article *models.Article) error
	UpdateStatus(id uint, status models.ModerationStatus, adminComments string) error
	Delete(id uint) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").First(&article, id).Error
	return &article, err
}

// GetList returns approved articles, plus the viewer's own regardless of
// status, plus everything when the viewer is an admin. Explicit filters
// narrow within that visible set.
func (r *articleRepository) GetList(params models.ArticleListParams, viewerID uint, viewerRole models.UserRole) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{}).Preload("Author")

	if viewerRole != models.RoleAdmin {
		if viewerID > 0 {
			query = query.Where("status = ? OR author_id = ?", models.StatusApproved, viewerID)
		} else {
			query = query.Where("status = ?", models.StatusApproved)
		}
	}

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if params.Mine && viewerID > 0 {
		query = query.Where("author_id = ?", viewerID)
	}

	if params.Search != "" {
		query = query.Where("title ILIKE ?", "%"+params.Search+"%")
	}

	query.Count(&total)

	offset := (params.Page - 1) * params.Limit
	err := query.Order("created_at desc").Offset(offset).Limit(params.Limit).Find(&articles).Error

	return articles, total, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) UpdateStatus(id uint, status models.ModerationStatus, adminComments string) error {
	return r.db.Model(&models.Article{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":         status,
		"admin_comments": adminComments,
	}).Error
}

func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}
