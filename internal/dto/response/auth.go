package response

import (
	"time"
)

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`

	// HasPendingIntent tells the client a booking selection made before
	// login is waiting to be resumed.
	HasPendingIntent bool `json:"has_pending_intent"`
}

type UserResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Role     string  `json:"role"`
}
