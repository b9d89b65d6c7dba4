package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/dawar-shafaque/restaurant-application/models"
	"github.com/dawar-shafaque/restaurant-application/session"
	"github.com/dawar-shafaque/restaurant-application/utils"

	"go.uber.org/zap"
)

// Route targets the UI lands on after login.
const (
	landingPath           = "/"
	waiterReservationPath = "/waiter-reservation"
)

// loginResponse is the authentication success shape of the reservation API.
type loginResponse struct {
	AccessToken string `json:"accessToken"`
	Role        string `json:"role"`
	Name        string `json:"name"`
	Message     string `json:"message"`
}

// Login authenticates against the reservation API and creates a session from
// the returned token, display name and role. Waiters land on the staff
// reservations view, everyone else on the landing page.
func (s *DefaultAuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}
	if strings.TrimSpace(password) == "" {
		return nil, ErrPasswordRequired
	}

	var resp loginResponse
	payload := map[string]string{"email": email, "password": password}
	if err := s.Client.DoJSON(ctx, http.MethodPost, s.Endpoints.Login, "", payload, &resp); err != nil {
		return nil, err
	}

	role, err := models.ParseRole(resp.Role)
	if err != nil {
		// An unknown role never falls through to the customer view.
		utils.GetLogger().Error("Login: backend returned unknown role", zap.String("role", resp.Role))
		return nil, err
	}

	sess := session.Session{Token: resp.AccessToken, Username: resp.Name, Role: role}
	id, err := s.Sessions.Create(ctx, sess)
	if err != nil {
		return nil, err
	}

	message := resp.Message
	if message == "" {
		message = "Logged in successfully"
	}
	redirect := landingPath
	if role == models.RoleWaiter {
		redirect = waiterReservationPath
	}
	return &LoginResult{SessionID: id, Session: sess, Message: message, Redirect: redirect}, nil
}

// Signup registers a new customer. The backend answers with {message} or a
// raw text fallback; either way the text is surfaced verbatim.
func (s *DefaultAuthService) Signup(ctx context.Context, req SignupRequest) (string, error) {
	if !ValidateName(req.FirstName) {
		return "", ErrFirstNameInvalid
	}
	if !ValidateName(req.LastName) {
		return "", ErrLastNameInvalid
	}
	if !ValidateEmail(req.Email) {
		return "", ErrEmailInvalid
	}
	if !EvaluatePassword("", req.Password, req.Password).Satisfied() {
		return "", ErrWeakPassword
	}

	msg, err := s.Client.DoMessage(ctx, http.MethodPost, s.Endpoints.Signup, "", req)
	if err != nil {
		return "", err
	}
	if msg == "" {
		msg = "Registration successful!"
	}
	return msg, nil
}

// Logout destroys the session. Token, username and role disappear together.
func (s *DefaultAuthService) Logout(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}
