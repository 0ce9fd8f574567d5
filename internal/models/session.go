package models

import "time"

// User is the read-only projection of an identity-provider account
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Session represents an authenticated identity issued by the provider.
// Issuance and expiry are controlled provider-side; token refresh is
// transparent to callers.
type Session struct {
	User         User      `json:"user"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}
