package repositories

import (
	"harvestworld/models"

	"gorm.io/gorm"
)

type ForumRepository interface {
	CreateTopic(topic *models.ForumTopic) error
	GetTopicByID(id uint) (*models.ForumTopic, error)
	GetTopics(search string, page, limit int) ([]models.ForumTopic, int64, error)
	DeleteTopic(id uint) error
	CreateReply(reply *models.ForumReply) error
	GetReplyByID(id uint) (*models.ForumReply, error)
	GetReplies(topicID uint) ([]models.ForumReply, error)
	DeleteReply(id uint) error
}

type forumRepository struct {
	db *gorm.DB
}

func NewForumRepository(db *gorm.DB) ForumRepository {
	return &forumRepository{db: db}
}

func (r *forumRepository) CreateTopic(topic *models.ForumTopic) error {
	return r.db.Create(topic).Error
}

func (r *forumRepository) GetTopicByID(id uint) (*models.ForumTopic, error) {
	var topic models.ForumTopic
	err := r.db.Preload("User").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("forum_replies.created_at asc")
		}).
		Preload("Replies.User").
		First(&topic, id).Error
	return &topic, err
}

func (r *forumRepository) GetTopics(search string, page, limit int) ([]models.ForumTopic, int64, error) {
	var topics []models.ForumTopic
	var total int64

	query := r.db.Model(&models.ForumTopic{}).Preload("User")
	if search != "" {
		query = query.Where("title ILIKE ?", "%"+search+"%")
	}

	query.Count(&total)

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&topics).Error

	return topics, total, err
}

func (r *forumRepository) DeleteTopic(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("topic_id = ?", id).Delete(&models.ForumReply{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ForumTopic{}, id).Error
	})
}

func (r *forumRepository) CreateReply(reply *models.ForumReply) error {
	return r.db.Create(reply).Error
}

func (r *forumRepository) GetReplyByID(id uint) (*models.ForumReply, error) {
	var reply models.ForumReply
	err := r.db.First(&reply, id).Error
	return &reply, err
}

func (r *forumRepository) GetReplies(topicID uint) ([]models.ForumReply, error) {
	var replies []models.ForumReply
	err := r.db.Where("topic_id = ?", topicID).
		Preload("User").
		Order("created_at asc").
		Find(&replies).Error
	return replies, err
}

func (r *forumRepository) DeleteReply(id uint) error {
	return r.db.Delete(&models.ForumReply{}, id).Error
}
