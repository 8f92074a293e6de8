package domain

import "time"

type Session struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionView is returned from sign-in: the bearer token plus enough session
// metadata for the client to manage it. The token itself is never stored.
type SessionView struct {
	SessionID string    `json:"sessionId"`
	AccountID string    `json:"accountId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
