package services

import (
	"errors"

	"harvestworld/metrics"
	"harvestworld/models"
	"harvestworld/repositories"
)

type CommentService interface {
	CreateComment(articleID uint, req models.CreateCommentRequest, userID uint) (*models.Comment, error)
	GetComments(articleID uint, viewerID uint, viewerRole models.UserRole) ([]models.Comment, error)
	DeleteComment(id uint, userID uint, role models.UserRole) error
}

type commentService struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, articleRepo repositories.ArticleRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
	}
}

// CreateComment only accepts comments on approved articles; pending and
// rejected ones are not publicly discussable.
func (s *commentService) CreateComment(articleID uint, req models.CreateCommentRequest, userID uint) (*models.Comment, error) {
	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		return nil, err
	}

	if article.Status != models.StatusApproved {
		return nil, errors.New("article not found")
	}

	comment := &models.Comment{
		ArticleID: articleID,
		UserID:    userID,
		Content:   req.Content,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	metrics.ContentCreatedTotal.WithLabelValues("comment").Inc()

	return s.commentRepo.GetByID(comment.ID)
}

func (s *commentService) GetComments(articleID uint, viewerID uint, viewerRole models.UserRole) ([]models.Comment, error) {
	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		return nil, err
	}

	if article.Status != models.StatusApproved &&
		article.AuthorID != viewerID &&
		viewerRole != models.RoleAdmin {
		return nil, errors.New("article not found")
	}

	return s.commentRepo.GetByArticleID(articleID)
}

func (s *commentService) DeleteComment(id uint, userID uint, role models.UserRole) error {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		return err
	}

	if comment.UserID != userID && role != models.RoleAdmin {
		return ErrUnauthorized
	}

	return s.commentRepo.Delete(id)
}
