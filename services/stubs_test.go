package services

import (
	"sort"
	"strings"

	"harvestworld/models"

	"gorm.io/gorm"
)

// In-memory stub repositories. They mirror the filters the real GORM
// repositories apply so services can be exercised without a database.

type stubArticleRepo struct {
	articles map[uint]*models.Article
	nextID   uint
	saveErr  error
}

func newStubArticleRepo() *stubArticleRepo {
	return &stubArticleRepo{articles: make(map[uint]*models.Article), nextID: 1}
}

func (r *stubArticleRepo) Create(article *models.Article) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	article.ID = r.nextID
	r.nextID++
	clone := *article
	r.articles[article.ID] = &clone
	return nil
}

func (r *stubArticleRepo) GetByID(id uint) (*models.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubArticleRepo) GetList(params models.ArticleListParams, viewerID uint, viewerRole models.UserRole) ([]models.Article, int64, error) {
	var matched []models.Article
	for _, a := range r.articles {
		if viewerRole != models.RoleAdmin {
			if viewerID > 0 {
				if a.Status != models.StatusApproved && a.AuthorID != viewerID {
					continue
				}
			} else if a.Status != models.StatusApproved {
				continue
			}
		}
		if params.Status != "" && string(a.Status) != params.Status {
			continue
		}
		if params.Mine && a.AuthorID != viewerID {
			continue
		}
		if params.Search != "" && !strings.Contains(strings.ToLower(a.Title), strings.ToLower(params.Search)) {
			continue
		}
		matched = append(matched, *a)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, int64(len(matched)), nil
}

func (r *stubArticleRepo) Update(article *models.Article) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	clone := *article
	r.articles[article.ID] = &clone
	return nil
}

func (r *stubArticleRepo) UpdateStatus(id uint, status models.ModerationStatus, adminComments string) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	a, ok := r.articles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Status = status
	a.AdminComments = adminComments
	return nil
}

func (r *stubArticleRepo) Delete(id uint) error {
	delete(r.articles, id)
	return nil
}

type stubUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *stubUserRepo) Create(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) GetByID(id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) GetAll(page, limit int) ([]models.User, int64, error) {
	var users []models.User
	for _, u := range r.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, int64(len(users)), nil
}

func (r *stubUserRepo) Update(user *models.User) error {
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) UpdateRole(id uint, role models.UserRole) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Role = role
	return nil
}

type stubExpertRequestRepo struct {
	requests map[uint]*models.ExpertRequest
	nextID   uint
	users    *stubUserRepo
	txErr    error // injected failure for the promote transaction
}

func newStubExpertRequestRepo(users *stubUserRepo) *stubExpertRequestRepo {
	return &stubExpertRequestRepo{
		requests: make(map[uint]*models.ExpertRequest),
		nextID:   1,
		users:    users,
	}
}

func (r *stubExpertRequestRepo) Create(request *models.ExpertRequest) error {
	request.ID = r.nextID
	r.nextID++
	clone := *request
	r.requests[request.ID] = &clone
	return nil
}

func (r *stubExpertRequestRepo) GetByID(id uint) (*models.ExpertRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *req
	return &clone, nil
}

func (r *stubExpertRequestRepo) GetList(status string, page, limit int) ([]models.ExpertRequest, int64, error) {
	var requests []models.ExpertRequest
	for _, req := range r.requests {
		if status != "" && string(req.Status) != status {
			continue
		}
		requests = append(requests, *req)
	}
	return requests, int64(len(requests)), nil
}

func (r *stubExpertRequestRepo) GetByUserID(userID uint) ([]models.ExpertRequest, error) {
	var requests []models.ExpertRequest
	for _, req := range r.requests {
		if req.UserID == userID {
			requests = append(requests, *req)
		}
	}
	return requests, nil
}

func (r *stubExpertRequestRepo) HasPending(userID uint) (bool, error) {
	for _, req := range r.requests {
		if req.UserID == userID && req.Status == models.StatusPending {
			return true, nil
		}
	}
	return false, nil
}

// Approve mirrors the transactional repository: neither write sticks if
// the transaction fails.
func (r *stubExpertRequestRepo) Approve(id uint) error {
	if r.txErr != nil {
		return r.txErr
	}
	req, ok := r.requests[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	req.Status = models.StatusApproved
	req.AdminComments = ""
	return r.users.UpdateRole(req.UserID, models.RoleExpert)
}

func (r *stubExpertRequestRepo) Reject(id uint, reason string) error {
	req, ok := r.requests[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	req.Status = models.StatusRejected
	req.AdminComments = reason
	return nil
}

type stubCommentRepo struct {
	comments map[uint]*models.Comment
	nextID   uint
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[uint]*models.Comment), nextID: 1}
}

func (r *stubCommentRepo) Create(comment *models.Comment) error {
	comment.ID = r.nextID
	r.nextID++
	clone := *comment
	r.comments[comment.ID] = &clone
	return nil
}

func (r *stubCommentRepo) GetByID(id uint) (*models.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCommentRepo) GetByArticleID(articleID uint) ([]models.Comment, error) {
	var comments []models.Comment
	for _, c := range r.comments {
		if c.ArticleID == articleID {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

func (r *stubCommentRepo) Delete(id uint) error {
	delete(r.comments, id)
	return nil
}
