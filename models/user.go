package models

// User is a site user record as returned by the remote catalog service.
// first_name/last_name/photo_url mirror the Telegram widget payload; email
// users only carry email and username.
type User struct {
	ID         int    `json:"id"`
	Username   string `json:"username,omitempty"`
	Email      string `json:"email,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	PhotoURL   string `json:"photo_url,omitempty"`
	TelegramID int64  `json:"telegram_id,omitempty"`
	IsAdmin    bool   `json:"is_admin"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// LoginRequest is the request to login with email and password
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=1"`
}

// RegisterRequest is the request to create a new account
type RegisterRequest struct {
	Username        string `json:"username" binding:"required,min=3"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// TelegramAuthRequest carries the fields the Telegram Login Widget posts.
// Hash is the HMAC-SHA256 the widget signs the other fields with.
type TelegramAuthRequest struct {
	ID        int64  `json:"id" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	PhotoURL  string `json:"photo_url"`
	AuthDate  int64  `json:"auth_date" binding:"required"`
	Hash      string `json:"hash" binding:"required"`
}

// UpdateUserRequest toggles the admin flag on a user
type UpdateUserRequest struct {
	IsAdmin *bool `json:"is_admin" binding:"required"`
}

// AuthResponse is the response after login or registration
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
