package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"harvestworld/config"
	"harvestworld/handlers"
	"harvestworld/middleware"
	"harvestworld/models"
	"harvestworld/repositories"
	"harvestworld/services"
)

// The suite runs against a local Postgres; migration/init.sql resets the
// schema on startup.
type IntegrationTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	seq    int
}

type envelope struct {
	Code    int             `json:"code"`
	Message json.RawMessage `json:"code_message"`
	Data    json.RawMessage `json:"data"`
}

func (suite *IntegrationTestSuite) SetupSuite() {
	config.JWTSecret = []byte("test-secret")

	dsn := os.Getenv("TEST_DATABASE_DSN")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		suite.T().Fatal("Failed to connect to test database:", err)
	}

	suite.db = db

	if err := RunSQLFile(db, "../migration/init.sql"); err != nil {
		suite.T().Fatal("Failed to run migration:", err)
	}

	suite.setupRouter()
}

func (suite *IntegrationTestSuite) setupRouter() {
	gin.SetMode(gin.TestMode)

	userRepo := repositories.NewUserRepository(suite.db)
	categoryRepo := repositories.NewCategoryRepository(suite.db)
	plantRepo := repositories.NewPlantRepository(suite.db)
	articleRepo := repositories.NewArticleRepository(suite.db)
	expertRequestRepo := repositories.NewExpertRequestRepository(suite.db)
	forumRepo := repositories.NewForumRepository(suite.db)
	commentRepo := repositories.NewCommentRepository(suite.db)

	authService := services.NewAuthService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	plantService := services.NewPlantService(plantRepo, categoryRepo)
	articleService := services.NewArticleService(articleRepo)
	moderationService := services.NewModerationService(articleRepo, expertRequestRepo, userRepo)
	expertRequestService := services.NewExpertRequestService(expertRequestRepo, userRepo)
	forumService := services.NewForumService(forumRepo)
	commentService := services.NewCommentService(commentRepo, articleRepo)

	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	plantHandler := handlers.NewPlantHandler(plantService)
	articleHandler := handlers.NewArticleHandler(articleService)
	moderationHandler := handlers.NewModerationHandler(moderationService)
	expertRequestHandler := handlers.NewExpertRequestHandler(expertRequestService)
	forumHandler := handlers.NewForumHandler(forumService)
	commentHandler := handlers.NewCommentHandler(commentService)

	router := gin.New()

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		public := v1.Group("/public")
		{
			public.GET("/plants", plantHandler.GetPlants)
			public.GET("/plants/:id", plantHandler.GetPlant)
			public.GET("/categories", categoryHandler.GetCategories)
			public.GET("/articles", articleHandler.GetPublicArticles)
			public.GET("/articles/:id", articleHandler.GetPublicArticle)
			public.GET("/forum/topics", forumHandler.GetTopics)
			public.GET("/forum/topics/:id", forumHandler.GetTopic)
		}

		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", authHandler.GetProfile)
			protected.PUT("/profile", authHandler.UpdateProfile)

			articles := protected.Group("/articles")
			{
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("", articleHandler.GetArticles)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id", articleHandler.UpdateArticle)
				articles.DELETE("/:id", articleHandler.DeleteArticle)
				articles.POST("/:id/comments", commentHandler.CreateComment)
				articles.GET("/:id/comments", commentHandler.GetComments)
			}
			protected.DELETE("/comments/:id", commentHandler.DeleteComment)

			forum := protected.Group("/forum")
			{
				forum.POST("/topics", forumHandler.CreateTopic)
				forum.POST("/topics/:id/replies", forumHandler.CreateReply)
				forum.DELETE("/topics/:id", forumHandler.DeleteTopic)
				forum.DELETE("/replies/:id", forumHandler.DeleteReply)
			}

			protected.POST("/expert-requests", expertRequestHandler.CreateRequest)
			protected.GET("/expert-requests/mine", expertRequestHandler.GetMyRequests)

			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.PUT("/articles/:id/approve", moderationHandler.ApproveArticle)
				admin.PUT("/articles/:id/reject", moderationHandler.RejectArticle)
				admin.GET("/expert-requests", moderationHandler.GetExpertRequests)
				admin.PUT("/expert-requests/:id/approve", moderationHandler.ApproveExpertRequest)
				admin.PUT("/expert-requests/:id/reject", moderationHandler.RejectExpertRequest)
				admin.GET("/users", moderationHandler.GetUsers)
				admin.PUT("/users/:id/role", moderationHandler.UpdateUserRole)

				admin.POST("/plants", plantHandler.CreatePlant)
				admin.PUT("/plants/:id", plantHandler.UpdatePlant)
				admin.DELETE("/plants/:id", plantHandler.DeletePlant)
				admin.POST("/categories", categoryHandler.CreateCategory)
				admin.DELETE("/categories/:id", categoryHandler.DeleteCategory)
			}
		}
	}

	suite.router = router
}

func (suite *IntegrationTestSuite) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// registerUser creates a fresh account and returns its token and id.
func (suite *IntegrationTestSuite) registerUser(prefix string) (string, uint) {
	suite.seq++
	username := fmt.Sprintf("%s%d", prefix, suite.seq)

	w := suite.do("POST", "/api/v1/auth/register", "", models.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "rahasia123",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var env envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))

	var auth models.AuthResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &auth))
	return auth.Token, auth.User.ID
}

// registerAdmin registers a user, promotes it directly in the database and
// logs in again so the token carries the admin role.
func (suite *IntegrationTestSuite) registerAdmin() (string, uint) {
	_, id := suite.registerUser("admin")

	err := suite.db.Model(&models.User{}).Where("id = ?", id).Update("role", models.RoleAdmin).Error
	suite.Require().NoError(err)

	var user models.User
	suite.Require().NoError(suite.db.First(&user, id).Error)

	w := suite.do("POST", "/api/v1/auth/login", "", models.LoginRequest{
		Email:    user.Email,
		Password: "rahasia123",
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var env envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	var auth models.AuthResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &auth))
	return auth.Token, id
}

func (suite *IntegrationTestSuite) createArticle(token, title string) models.Article {
	w := suite.do("POST", "/api/v1/articles", token, models.CreateArticleRequest{
		Title:   title,
		Content: "Konten percobaan untuk " + title,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var article models.Article
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &article))
	return article
}

func (suite *IntegrationTestSuite) publicArticleTitles(query string) []string {
	w := suite.do("GET", "/api/v1/public/articles"+query, "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Articles []models.Article `json:"articles"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))

	titles := make([]string, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		titles = append(titles, a.Title)
	}
	return titles
}

func (suite *IntegrationTestSuite) TestArticleModerationWorkflow() {
	userToken, _ := suite.registerUser("penulis")
	adminToken, _ := suite.registerAdmin()

	article := suite.createArticle(userToken, "Merawat Anggrek Bulan")
	suite.Equal(models.StatusPending, article.Status)

	// Pending: hidden from the public listing and detail page.
	suite.NotContains(suite.publicArticleTitles(""), "Merawat Anggrek Bulan")
	w := suite.do("GET", fmt.Sprintf("/api/v1/public/articles/%d", article.ID), "", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	// Owner still sees it.
	w = suite.do("GET", fmt.Sprintf("/api/v1/articles/%d", article.ID), userToken, nil)
	suite.Equal(http.StatusOK, w.Code)

	// A non-admin cannot approve.
	w = suite.do("PUT", fmt.Sprintf("/api/v1/admin/articles/%d/approve", article.ID), userToken, nil)
	suite.Equal(http.StatusForbidden, w.Code)
	w = suite.do("GET", fmt.Sprintf("/api/v1/articles/%d", article.ID), userToken, nil)
	var unchanged models.Article
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &unchanged))
	suite.Equal(models.StatusPending, unchanged.Status)

	// Admin approves; the article goes public.
	w = suite.do("PUT", fmt.Sprintf("/api/v1/admin/articles/%d/approve", article.ID), adminToken, nil)
	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Contains(suite.publicArticleTitles(""), "Merawat Anggrek Bulan")
}

func (suite *IntegrationTestSuite) TestArticleRejectionStoresReason() {
	userToken, _ := suite.registerUser("penulis")
	adminToken, _ := suite.registerAdmin()

	article := suite.createArticle(userToken, "Artikel Kurang Lengkap")

	// Rejecting without a reason is refused and nothing changes.
	w := suite.do("PUT", fmt.Sprintf("/api/v1/admin/articles/%d/reject", article.ID), adminToken, map[string]string{})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do("PUT", fmt.Sprintf("/api/v1/admin/articles/%d/reject", article.ID), adminToken,
		models.RejectRequest{Reason: "Tambahkan sumber referensi"})
	suite.Equal(http.StatusOK, w.Code, w.Body.String())

	// Hidden from the public, visible to the owner with the reason attached.
	suite.NotContains(suite.publicArticleTitles(""), "Artikel Kurang Lengkap")

	w = suite.do("GET", fmt.Sprintf("/api/v1/articles/%d", article.ID), userToken, nil)
	suite.Equal(http.StatusOK, w.Code)
	var rejected models.Article
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &rejected))
	suite.Equal(models.StatusRejected, rejected.Status)
	suite.Equal("Tambahkan sumber referensi", rejected.AdminComments)

	// Owner edit resubmits: back to pending, reviewer note cleared.
	w = suite.do("PUT", fmt.Sprintf("/api/v1/articles/%d", article.ID), userToken, models.UpdateArticleRequest{
		Title:   "Artikel Kurang Lengkap (revisi)",
		Content: "Sekarang dengan referensi lengkap.",
	})
	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resubmitted models.Article
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resubmitted))
	suite.Equal(models.StatusPending, resubmitted.Status)
	suite.Empty(resubmitted.AdminComments)
}

func (suite *IntegrationTestSuite) TestArticleSearchRespectsStatus() {
	userToken, _ := suite.registerUser("penulis")
	adminToken, _ := suite.registerAdmin()

	article := suite.createArticle(userToken, "Fermentasi Pupuk Bokashi")

	suite.Empty(suite.publicArticleTitles("?q=Bokashi"))

	w := suite.do("PUT", fmt.Sprintf("/api/v1/admin/articles/%d/approve", article.ID), adminToken, nil)
	suite.Equal(http.StatusOK, w.Code)

	titles := suite.publicArticleTitles("?q=Bokashi")
	suite.Equal([]string{"Fermentasi Pupuk Bokashi"}, titles)
}

func (suite *IntegrationTestSuite) TestExpertRequestPromotion() {
	userToken, userID := suite.registerUser("tani")
	adminToken, _ := suite.registerAdmin()

	w := suite.do("POST", "/api/v1/expert-requests", userToken, models.CreateExpertRequestRequest{
		Expertise: "Hortikultura",
		Reason:    "Sepuluh tahun mengelola kebun sayur.",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var env envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	var request models.ExpertRequest
	suite.Require().NoError(json.Unmarshal(env.Data, &request))
	suite.Equal(models.StatusPending, request.Status)

	w = suite.do("PUT", fmt.Sprintf("/api/v1/admin/expert-requests/%d/approve", request.ID), adminToken, nil)
	suite.Equal(http.StatusOK, w.Code, w.Body.String())

	// Both writes landed: request approved, user promoted.
	var stored models.ExpertRequest
	suite.Require().NoError(suite.db.First(&stored, request.ID).Error)
	suite.Equal(models.StatusApproved, stored.Status)

	var user models.User
	suite.Require().NoError(suite.db.First(&user, userID).Error)
	suite.Equal(models.RoleExpert, user.Role)
}

func (suite *IntegrationTestSuite) TestAdminCannotToggleOwnRole() {
	adminToken, adminID := suite.registerAdmin()

	w := suite.do("PUT", fmt.Sprintf("/api/v1/admin/users/%d/role", adminID), adminToken,
		models.UpdateUserRoleRequest{Role: models.RoleUser})
	suite.Equal(http.StatusBadRequest, w.Code)

	var user models.User
	suite.Require().NoError(suite.db.First(&user, adminID).Error)
	suite.Equal(models.RoleAdmin, user.Role)
}

func (suite *IntegrationTestSuite) TestAdminTogglesOtherUserRole() {
	adminToken, _ := suite.registerAdmin()
	_, targetID := suite.registerUser("calon")

	w := suite.do("PUT", fmt.Sprintf("/api/v1/admin/users/%d/role", targetID), adminToken,
		models.UpdateUserRoleRequest{Role: models.RoleAdmin})
	suite.Equal(http.StatusOK, w.Code, w.Body.String())

	var user models.User
	suite.Require().NoError(suite.db.First(&user, targetID).Error)
	suite.Equal(models.RoleAdmin, user.Role)
}

func (suite *IntegrationTestSuite) TestPlantFiltering() {
	adminToken, _ := suite.registerAdmin()

	var sayuran, buah models.Category
	suite.Require().NoError(suite.db.Where("name = ?", "Sayuran").First(&sayuran).Error)
	suite.Require().NoError(suite.db.Where("name = ?", "Buah-buahan").First(&buah).Error)

	plants := []models.CreatePlantRequest{
		{Name: "Cabai Rawit", CategoryID: sayuran.ID, Difficulty: models.DifficultySedang},
		{Name: "Bayam Hijau", CategoryID: sayuran.ID, Difficulty: models.DifficultyMudah},
		{Name: "Mangga Harum Manis", CategoryID: buah.ID, Difficulty: models.DifficultySulit},
	}
	for _, p := range plants {
		w := suite.do("POST", "/api/v1/admin/plants", adminToken, p)
		suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	}

	// Category filter, ordered by name ascending.
	w := suite.do("GET", "/api/v1/public/plants?category=Sayuran", "", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp struct {
		Plants []models.Plant `json:"plants"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Plants, 2)
	suite.Equal("Bayam Hijau", resp.Plants[0].Name)
	suite.Equal("Cabai Rawit", resp.Plants[1].Name)
	for _, p := range resp.Plants {
		suite.Equal("Sayuran", p.Category.Name)
	}

	// Difficulty filter.
	w = suite.do("GET", "/api/v1/public/plants?difficulty=sulit", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	resp.Plants = nil
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Plants, 1)
	suite.Equal("Mangga Harum Manis", resp.Plants[0].Name)

	// Free-text search.
	w = suite.do("GET", "/api/v1/public/plants?q=bayam", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	resp.Plants = nil
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Plants, 1)
}

func (suite *IntegrationTestSuite) TestForumTopicsAndReplies() {
	userToken, _ := suite.registerUser("warga")
	otherToken, _ := suite.registerUser("warga")

	w := suite.do("POST", "/api/v1/forum/topics", userToken, models.CreateTopicRequest{
		Title:   "Hama wereng di musim hujan",
		Content: "Bagaimana mengatasinya tanpa pestisida kimia?",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var topic models.ForumTopic
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &topic))

	w = suite.do("POST", fmt.Sprintf("/api/v1/forum/topics/%d/replies", topic.ID), otherToken,
		models.CreateReplyRequest{Content: "Coba pakai predator alami."})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = suite.do("GET", fmt.Sprintf("/api/v1/public/forum/topics/%d", topic.ID), "", nil)
	suite.Equal(http.StatusOK, w.Code)
	var loaded models.ForumTopic
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &loaded))
	suite.Len(loaded.Replies, 1)

	// Only the owner or an admin may delete.
	w = suite.do("DELETE", fmt.Sprintf("/api/v1/forum/topics/%d", topic.ID), otherToken, nil)
	suite.Equal(http.StatusForbidden, w.Code)
	w = suite.do("DELETE", fmt.Sprintf("/api/v1/forum/topics/%d", topic.ID), userToken, nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *IntegrationTestSuite) TestCommentsOnApprovedArticleOnly() {
	userToken, _ := suite.registerUser("penulis")
	readerToken, _ := suite.registerUser("pembaca")
	adminToken, _ := suite.registerAdmin()

	article := suite.createArticle(userToken, "Menanam Selada Hidroponik")

	// Pending article cannot be commented on.
	w := suite.do("POST", fmt.Sprintf("/api/v1/articles/%d/comments", article.ID), readerToken,
		models.CreateCommentRequest{Content: "Menarik!"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do("PUT", fmt.Sprintf("/api/v1/admin/articles/%d/approve", article.ID), adminToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.do("POST", fmt.Sprintf("/api/v1/articles/%d/comments", article.ID), readerToken,
		models.CreateCommentRequest{Content: "Menarik!"})
	suite.Equal(http.StatusCreated, w.Code, w.Body.String())

	w = suite.do("GET", fmt.Sprintf("/api/v1/articles/%d/comments", article.ID), readerToken, nil)
	suite.Equal(http.StatusOK, w.Code)
	var comments []models.Comment
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &comments))
	suite.Len(comments, 1)
}

func TestIntegrationSuite(t *testing.T) {
	if os.Getenv("TEST_DATABASE_DSN") == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	suite.Run(t, new(IntegrationTestSuite))
}

func RunSQLFile(db *gorm.DB, filepath string) error {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return err
	}
	return db.Exec(string(content)).Error
}
