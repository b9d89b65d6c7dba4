package auth

import (
	"context"

	"github.com/dawar-shafaque/restaurant-application/api"
	"github.com/dawar-shafaque/restaurant-application/session"
)

// LoginResult is what a successful authentication hands back to the edge:
// the new session ID, the stored session and where the UI should land.
type LoginResult struct {
	SessionID string          `json:"sessionId"`
	Session   session.Session `json:"session"`
	Message   string          `json:"message"`
	Redirect  string          `json:"redirect"`
}

// AuthService owns the login, signup, logout and password workflows. It is
// the only writer of the session store.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Signup(ctx context.Context, req SignupRequest) (string, error)
	Logout(ctx context.Context, sessionID string) error
	ChangePassword(ctx context.Context, sess session.Session, req PasswordChangeRequest) (string, error)
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Client    *api.Client
	Endpoints api.Endpoints
	Sessions  *session.Manager
}

// SignupRequest is the registration payload.
type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// PasswordChangeRequest carries the old and new password plus the
// confirmation typed by the user.
type PasswordChangeRequest struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}
