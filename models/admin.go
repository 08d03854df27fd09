package models

// LoginRequest is the JSON payload for admin login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SubscribeRequest is the newsletter signup payload.
type SubscribeRequest struct {
	Email string `json:"email"`
}

// ContactRequest is the contact form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Stats summarizes stored content for the admin dashboard.
type Stats struct {
	TotalProducts int64 `json:"total_products"`
	TotalPosts    int64 `json:"total_posts"`
}
