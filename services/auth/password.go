package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dawar-shafaque/restaurant-application/session"
)

// ChangePassword validates the full criteria set locally, then issues the
// PUT with the session's bearer token. The backend's answer may be JSON or
// plain text; both surface as the notification message.
func (s *DefaultAuthService) ChangePassword(ctx context.Context, sess session.Session, req PasswordChangeRequest) (string, error) {
	criteria := EvaluatePassword(req.OldPassword, req.NewPassword, req.ConfirmPassword)
	if !criteria.Satisfied() {
		return "", fmt.Errorf("%w: %+v", ErrWeakPassword, criteria)
	}
	if !sess.IsAuthenticated() {
		return "", ErrNotAuthenticated
	}

	payload := map[string]string{
		"oldPassword": req.OldPassword,
		"newPassword": req.NewPassword,
	}
	msg, err := s.Client.DoMessage(ctx, http.MethodPut, s.Endpoints.Password, sess.Token, payload)
	if err != nil {
		return "", err
	}
	if msg == "" {
		msg = "Password changed successfully"
	}
	return msg, nil
}
