// Package profile manages the authenticated user's profile singleton.
package profile

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dawar-shafaque/restaurant-application/api"
	"github.com/dawar-shafaque/restaurant-application/models"
	"github.com/dawar-shafaque/restaurant-application/session"
	"github.com/dawar-shafaque/restaurant-application/store"
)

// ProfileService reads and updates the user profile.
type ProfileService interface {
	Get(ctx context.Context, sess session.Session) (*models.UserProfile, error)
	Update(ctx context.Context, sessionID string, sess session.Session, p models.UserProfile) (*models.UserProfile, error)
}

// DefaultProfileService is the production implementation. It owns the
// Profile store slice and is the one workflow allowed to rewrite the
// session's display name.
type DefaultProfileService struct {
	Client    *api.Client
	Endpoints api.Endpoints
	Sessions  *session.Manager
	Profile   *store.Store[models.UserProfile]
}

// Get fetches the profile into the Profile store.
func (s *DefaultProfileService) Get(ctx context.Context, sess session.Session) (*models.UserProfile, error) {
	gen := s.Profile.Begin()
	var p models.UserProfile
	if err := s.Client.DoJSON(ctx, http.MethodGet, s.Endpoints.UsersProfile, sess.Token, nil, &p); err != nil {
		s.Profile.Fail(gen, err.Error())
		return nil, err
	}
	s.Profile.Resolve(gen, p)
	return &p, nil
}

// Update PUTs the profile. The backend may answer with the updated profile
// or with a plain success message; in the latter case the submitted profile
// stands in for the echo. The session username becomes "First Last".
func (s *DefaultProfileService) Update(ctx context.Context, sessionID string, sess session.Session, p models.UserProfile) (*models.UserProfile, error) {
	raw, err := s.Client.DoMessage(ctx, http.MethodPut, s.Endpoints.UsersProfile, sess.Token, p)
	if err != nil {
		return nil, err
	}

	updated := p
	var echoed models.UserProfile
	if json.Unmarshal([]byte(raw), &echoed) == nil && echoed.FirstName != "" {
		updated = echoed
	}
	gen := s.Profile.Begin()
	s.Profile.Resolve(gen, updated)

	sess.Username = updated.FirstName + " " + updated.LastName
	if err := s.Sessions.Update(ctx, sessionID, sess); err != nil {
		return nil, err
	}
	return &updated, nil
}
