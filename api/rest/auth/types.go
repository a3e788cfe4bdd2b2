package auth

import "codeberg.org/adpulse/server/adpulse/users"

// returned from a successful OAuth callback
type AuthResponse struct {
	User  *users.User `json:"user"`
	Token string      `json:"token"`
}

// wraps a user profile
type UserResponse struct {
	User *users.User `json:"user"`
}
