package types

// StepSpec describes a desired step. ID is set when the step already
// exists and should be kept or updated.
type StepSpec struct {
	ID              *uint  `json:"id,omitempty"`
	StepName        string `json:"step_name" binding:"required"`
	StepDescription string `json:"step_description"`
}

// IngredientSpec describes a desired ingredient. ID works as for StepSpec.
type IngredientSpec struct {
	ID               *uint  `json:"id,omitempty"`
	IngredientName   string `json:"ingredient_name" binding:"required"`
	IngredientAmount string `json:"ingredient_amount"`
}

// RecipeRequest is the body of both create and update calls.
type RecipeRequest struct {
	Title            string           `json:"title" binding:"required"`
	Description      string           `json:"description"`
	CookingTime      int              `json:"cooking_time" binding:"required,gt=0"`
	Difficulty       string           `json:"difficulty" binding:"required,oneof=EASY MEDIUM HARD"`
	PreviewImageLink *string          `json:"preview_image_link"`
	TopicID          uint             `json:"topic_id" binding:"required"`
	Steps            []StepSpec       `json:"steps" binding:"dive"`
	Ingredients      []IngredientSpec `json:"ingredients" binding:"dive"`
}

// CreateRecipeInput is a RecipeRequest attributed to its authenticated author.
type CreateRecipeInput struct {
	RecipeRequest
	AuthorID uint
}

// ListRecipesParams selects a page of recipes. Zero values disable a filter.
type ListRecipesParams struct {
	TopicID    *uint  `form:"topicId"`
	Difficulty string `form:"difficulty"`
	Search     string `form:"search"`
	UserID     *uint  `form:"userId"`
	Page       int    `form:"_page"`
	Limit      int    `form:"_limit"`
}

// CreateTopicRequest is the body of POST /topics.
type CreateTopicRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// PreviewImageRequest asks for an upload URL for a recipe preview image.
type PreviewImageRequest struct {
	ContentType string `json:"content_type" binding:"required,oneof=image/jpeg image/png image/webp"`
}

// PreviewImageResponse tells the client where to upload and which link to
// store on the recipe afterwards.
type PreviewImageResponse struct {
	UploadURL        string `json:"upload_url"`
	ObjectKey        string `json:"object_key"`
	PreviewImageLink string `json:"preview_image_link"`
}

// RegisterRequest is the body of POST /users/registration.
type RegisterRequest struct {
	Username             string `json:"username" binding:"required,max=50"`
	FirstName            string `json:"first_name" binding:"max=100"`
	LastName             string `json:"last_name" binding:"max=100"`
	Password             string `json:"password" binding:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued token and the public view of the user.
type AuthResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}
