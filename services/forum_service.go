package services

import (
	"errors"

	"harvestworld/metrics"
	"harvestworld/models"
	"harvestworld/repositories"

	"gorm.io/gorm"
)

type ForumService interface {
	CreateTopic(req models.CreateTopicRequest, userID uint) (*models.ForumTopic, error)
	GetTopic(id uint) (*models.ForumTopic, error)
	GetTopics(search string, page, limit int) ([]models.ForumTopic, int64, error)
	DeleteTopic(id uint, userID uint, role models.UserRole) error
	CreateReply(topicID uint, req models.CreateReplyRequest, userID uint) (*models.ForumReply, error)
	DeleteReply(id uint, userID uint, role models.UserRole) error
}

type forumService struct {
	forumRepo repositories.ForumRepository
}

func NewForumService(forumRepo repositories.ForumRepository) ForumService {
	return &forumService{forumRepo: forumRepo}
}

func (s *forumService) CreateTopic(req models.CreateTopicRequest, userID uint) (*models.ForumTopic, error) {
	topic := &models.ForumTopic{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}

	if err := s.forumRepo.CreateTopic(topic); err != nil {
		return nil, err
	}

	metrics.ContentCreatedTotal.WithLabelValues("forum_topic").Inc()

	return s.forumRepo.GetTopicByID(topic.ID)
}

func (s *forumService) GetTopic(id uint) (*models.ForumTopic, error) {
	return s.forumRepo.GetTopicByID(id)
}

func (s *forumService) GetTopics(search string, page, limit int) ([]models.ForumTopic, int64, error) {
	return s.forumRepo.GetTopics(search, page, limit)
}

func (s *forumService) DeleteTopic(id uint, userID uint, role models.UserRole) error {
	topic, err := s.forumRepo.GetTopicByID(id)
	if err != nil {
		return err
	}

	if topic.UserID != userID && role != models.RoleAdmin {
		return ErrUnauthorized
	}

	return s.forumRepo.DeleteTopic(id)
}

func (s *forumService) CreateReply(topicID uint, req models.CreateReplyRequest, userID uint) (*models.ForumReply, error) {
	if _, err := s.forumRepo.GetTopicByID(topicID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("topic not found")
		}
		return nil, err
	}

	reply := &models.ForumReply{
		TopicID: topicID,
		UserID:  userID,
		Content: req.Content,
	}

	if err := s.forumRepo.CreateReply(reply); err != nil {
		return nil, err
	}

	metrics.ContentCreatedTotal.WithLabelValues("forum_reply").Inc()

	return s.forumRepo.GetReplyByID(reply.ID)
}

func (s *forumService) DeleteReply(id uint, userID uint, role models.UserRole) error {
	reply, err := s.forumRepo.GetReplyByID(id)
	if err != nil {
		return err
	}

	if reply.UserID != userID && role != models.RoleAdmin {
		return ErrUnauthorized
	}

	return s.forumRepo.DeleteReply(id)
}
