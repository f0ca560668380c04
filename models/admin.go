package models

import "time"

// ════════════════════════════════════════════════════════════
// Admin Models
// ════════════════════════════════════════════════════════════

// AdminLoginRequest is the request to login to the back office
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=1"`
}

// AdminLoginResponse is the response after a successful login
type AdminLoginResponse struct {
	Username  string    `json:"username"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// WarningRequest updates the site-wide warning banner.
// An empty text hides the banner on the landing page.
type WarningRequest struct {
	Warning string `json:"warning"`
}
