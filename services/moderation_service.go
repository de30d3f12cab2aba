package services

import (
	"errors"
	"strings"

	"harvestworld/logger"
	"harvestworld/metrics"
	"harvestworld/models"
	"harvestworld/repositories"
)

// ModerationService covers the admin side of the platform: reviewing
// articles and expert requests, and managing user roles. Every operation
// checks the caller's role before touching a record; the route-level
// RequireRole gate is not trusted on its own.
type ModerationService interface {
	ApproveArticle(id uint, reviewerRole models.UserRole) error
	RejectArticle(id uint, reason string, reviewerRole models.UserRole) error
	ApproveExpertRequest(id uint, reviewerRole models.UserRole) error
	RejectExpertRequest(id uint, reason string, reviewerRole models.UserRole) error
	GetExpertRequests(status string, page, limit int, reviewerRole models.UserRole) ([]models.ExpertRequest, int64, error)
	GetUsers(page, limit int, reviewerRole models.UserRole) ([]models.User, int64, error)
	UpdateUserRole(targetID uint, role models.UserRole, reviewerID uint, reviewerRole models.UserRole) error
}

type moderationService struct {
	articleRepo       repositories.ArticleRepository
	expertRequestRepo repositories.ExpertRequestRepository
	userRepo          repositories.UserRepository
}

func NewModerationService(
	articleRepo repositories.ArticleRepository,
	expertRequestRepo repositories.ExpertRequestRepository,
	userRepo repositories.UserRepository,
) ModerationService {
	return &moderationService{
		articleRepo:       articleRepo,
		expertRequestRepo: expertRequestRepo,
		userRepo:          userRepo,
	}
}

func (s *moderationService) ApproveArticle(id uint, reviewerRole models.UserRole) error {
	if reviewerRole != models.RoleAdmin {
		return ErrUnauthorized
	}

	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return err
	}

	// Re-approving is idempotent.
	if article.Status == models.StatusApproved {
		return nil
	}

	if err := s.articleRepo.UpdateStatus(id, models.StatusApproved, ""); err != nil {
		return err
	}

	metrics.ModerationDecisionsTotal.WithLabelValues("article", "approved").Inc()
	log := logger.Get()
	log.Info().Uint("article_id", id).Msg("article approved")
	return nil
}

func (s *moderationService) RejectArticle(id uint, reason string, reviewerRole models.UserRole) error {
	if reviewerRole != models.RoleAdmin {
		return ErrUnauthorized
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonRequired
	}

	if _, err := s.articleRepo.GetByID(id); err != nil {
		return err
	}

	if err := s.articleRepo.UpdateStatus(id, models.StatusRejected, reason); err != nil {
		return err
	}

	metrics.ModerationDecisionsTotal.WithLabelValues("article", "rejected").Inc()
	log := logger.Get()
	log.Info().Uint("article_id", id).Msg("article rejected")
	return nil
}

func (s *moderationService) ApproveExpertRequest(id uint, reviewerRole models.UserRole) error {
	if reviewerRole != models.RoleAdmin {
		return ErrUnauthorized
	}

	request, err := s.expertRequestRepo.GetByID(id)
	if err != nil {
		return err
	}

	if request.Status == models.StatusApproved {
		return nil
	}

	if err := s.expertRequestRepo.Approve(id); err != nil {
		return err
	}

	metrics.ModerationDecisionsTotal.WithLabelValues("expert_request", "approved").Inc()
	log := logger.Get()
	log.Info().Uint("request_id", id).Uint("user_id", request.UserID).Msg("expert request approved")
	return nil
}

func (s *moderationService) RejectExpertRequest(id uint, reason string, reviewerRole models.UserRole) error {
	if reviewerRole != models.RoleAdmin {
		return ErrUnauthorized
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonRequired
	}

	if _, err := s.expertRequestRepo.GetByID(id); err != nil {
		return err
	}

	if err := s.expertRequestRepo.Reject(id, reason); err != nil {
		return err
	}

	metrics.ModerationDecisionsTotal.WithLabelValues("expert_request", "rejected").Inc()
	return nil
}

func (s *moderationService) GetExpertRequests(status string, page, limit int, reviewerRole models.UserRole) ([]models.ExpertRequest, int64, error) {
	if reviewerRole != models.RoleAdmin {
		return nil, 0, ErrUnauthorized
	}
	return s.expertRequestRepo.GetList(status, page, limit)
}

func (s *moderationService) GetUsers(page, limit int, reviewerRole models.UserRole) ([]models.User, int64, error) {
	if reviewerRole != models.RoleAdmin {
		return nil, 0, ErrUnauthorized
	}
	return s.userRepo.GetAll(page, limit)
}

func (s *moderationService) UpdateUserRole(targetID uint, role models.UserRole, reviewerID uint, reviewerRole models.UserRole) error {
	if reviewerRole != models.RoleAdmin {
		return ErrUnauthorized
	}

	if targetID == reviewerID {
		return ErrSelfRoleChange
	}

	if !role.Valid() {
		return errors.New("invalid role")
	}

	if _, err := s.userRepo.GetByID(targetID); err != nil {
		return err
	}

	if err := s.userRepo.UpdateRole(targetID, role); err != nil {
		return err
	}

	log := logger.Get()
	log.Info().Uint("user_id", targetID).Str("role", string(role)).Msg("user role updated")
	return nil
}
