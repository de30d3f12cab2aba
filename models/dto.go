package models

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" binding:"max=100"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio" binding:"max=1000"`
}

type CreatePlantRequest struct {
	Name           string          `json:"name" binding:"required,min=1,max=255"`
	ScientificName string          `json:"scientific_name" binding:"max=255"`
	CategoryID     uint            `json:"category_id" binding:"required"`
	Difficulty     PlantDifficulty `json:"difficulty" binding:"required,oneof=mudah sedang sulit"`
	Description    string          `json:"description"`
	Watering       string          `json:"watering"`
	Sunlight       string          `json:"sunlight"`
	SoilType       string          `json:"soil_type"`
	HarvestTime    string          `json:"harvest_time"`
	Image          string          `json:"image"`
}

type UpdatePlantRequest struct {
	Name           string          `json:"name" binding:"required,min=1,max=255"`
	ScientificName string          `json:"scientific_name" binding:"max=255"`
	CategoryID     uint            `json:"category_id" binding:"required"`
	Difficulty     PlantDifficulty `json:"difficulty" binding:"required,oneof=mudah sedang sulit"`
	Description    string          `json:"description"`
	Watering       string          `json:"watering"`
	Sunlight       string          `json:"sunlight"`
	SoilType       string          `json:"soil_type"`
	HarvestTime    string          `json:"harvest_time"`
	Image          string          `json:"image"`
}

// PlantListParams maps the plant listing query string. Absent fields mean
// "no filter"; results are always ordered by name ascending.
type PlantListParams struct {
	Search       string   `form:"q"`
	Category     string   `form:"category"`
	Difficulties []string `form:"difficulty"`
	Page         int      `form:"page,default=1"`
	Limit        int      `form:"limit,default=12"`
}

type CreateArticleRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=255"`
	Content string `json:"content" binding:"required"`
	Image   string `json:"image"`
}

type UpdateArticleRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=255"`
	Content string `json:"content" binding:"required"`
	Image   string `json:"image"`
}

type ArticleListParams struct {
	Search string `form:"q"`
	Status string `form:"status"`
	Mine   bool   `form:"mine"`
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required,min=1"`
}

type UpdateUserRoleRequest struct {
	Role UserRole `json:"role" binding:"required,oneof=user expert admin"`
}

type CreateExpertRequestRequest struct {
	Expertise string `json:"expertise" binding:"required,min=1,max=255"`
	Reason    string `json:"reason" binding:"required"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=500"`
}

type CreateTopicRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=255"`
	Content string `json:"content" binding:"required"`
}

type CreateReplyRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}
