package services

import (
	"errors"

	"harvestworld/metrics"
	"harvestworld/models"
	"harvestworld/repositories"
)

type ExpertRequestService interface {
	CreateRequest(req models.CreateExpertRequestRequest, userID uint) (*models.ExpertRequest, error)
	GetMyRequests(userID uint) ([]models.ExpertRequest, error)
}

type expertRequestService struct {
	expertRequestRepo repositories.ExpertRequestRepository
	userRepo          repositories.UserRepository
}

func NewExpertRequestService(expertRequestRepo repositories.ExpertRequestRepository, userRepo repositories.UserRepository) ExpertRequestService {
	return &expertRequestService{
		expertRequestRepo: expertRequestRepo,
		userRepo:          userRepo,
	}
}

func (s *expertRequestService) CreateRequest(req models.CreateExpertRequestRequest, userID uint) (*models.ExpertRequest, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if user.Role == models.RoleExpert || user.Role == models.RoleAdmin {
		return nil, errors.New("account already has elevated role")
	}

	pending, err := s.expertRequestRepo.HasPending(userID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, errors.New("a pending expert request already exists")
	}

	request := &models.ExpertRequest{
		UserID:    userID,
		Expertise: req.Expertise,
		Reason:    req.Reason,
		Status:    models.StatusPending,
	}

	if err := s.expertRequestRepo.Create(request); err != nil {
		return nil, err
	}

	metrics.ContentCreatedTotal.WithLabelValues("expert_request").Inc()

	return s.expertRequestRepo.GetByID(request.ID)
}

func (s *expertRequestService) GetMyRequests(userID uint) ([]models.ExpertRequest, error) {
	return s.expertRequestRepo.GetByUserID(userID)
}
