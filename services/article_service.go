package services

import (
	"errors"

	"harvestworld/metrics"
	"harvestworld/models"
	"harvestworld/repositories"
)

type ArticleService interface {
	CreateArticle(req models.CreateArticleRequest, userID uint) (*models.Article, error)
	GetArticle(id uint, viewerID uint, viewerRole models.UserRole) (*models.Article, error)
	GetArticles(params models.ArticleListParams, viewerID uint, viewerRole models.UserRole) ([]models.Article, int64, error)
	UpdateArticle(id uint, req models.UpdateArticleRequest, userID uint) (*models.Article, error)
	DeleteArticle(id uint, userID uint, role models.UserRole) error
}

type articleService struct {
	articleRepo repositories.ArticleRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository) ArticleService {
	return &articleService{articleRepo: articleRepo}
}

func (s *articleService) CreateArticle(req models.CreateArticleRequest, userID uint) (*models.Article, error) {
	article := &models.Article{
		AuthorID: userID,
		Title:    req.Title,
		Content:  req.Content,
		Image:    req.Image,
		Status:   models.StatusPending,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	metrics.ContentCreatedTotal.WithLabelValues("article").Inc()

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) GetArticle(id uint, viewerID uint, viewerRole models.UserRole) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	// Unapproved articles exist only for their owner and admins.
	if article.Status != models.StatusApproved &&
		article.AuthorID != viewerID &&
		viewerRole != models.RoleAdmin {
		return nil, errors.New("article not found")
	}

	return article, nil
}

func (s *articleService) GetArticles(params models.ArticleListParams, viewerID uint, viewerRole models.UserRole) ([]models.Article, int64, error) {
	return s.articleRepo.GetList(params, viewerID, viewerRole)
}

// UpdateArticle applies an owner edit. Editing a rejected article is a
// resubmission: status goes back to pending and the reviewer note is cleared.
func (s *articleService) UpdateArticle(id uint, req models.UpdateArticleRequest, userID uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if article.AuthorID != userID {
		return nil, ErrUnauthorized
	}

	article.Title = req.Title
	article.Content = req.Content
	if req.Image != "" {
		article.Image = req.Image
	}

	if article.Status == models.StatusRejected {
		article.Status = models.StatusPending
		article.AdminComments = ""
	}

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) DeleteArticle(id uint, userID uint, role models.UserRole) error {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return err
	}

	if article.AuthorID != userID && role != models.RoleAdmin {
		return ErrUnauthorized
	}

	return s.articleRepo.Delete(id)
}
