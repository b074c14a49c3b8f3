package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/harborview/realestate/backend/shared/go-models"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	ThemeCookieName = "theme"
	themeCookieTTL  = 365 * 24 * time.Hour
)

// State is the per-request view of the visitor: who they are, which
// listings they saved and their display theme. It is built once per request
// and handed to renderers explicitly.
type State struct {
	UserID uuid.UUID
	User   *models.UserProfile
	Theme  string

	saved map[uuid.UUID]struct{}
}

// Anonymous returns the state of a visitor without identity.
func Anonymous(theme string) *State {
	return &State{Theme: ParseTheme(theme), saved: map[uuid.UUID]struct{}{}}
}

func (s *State) Authenticated() bool {
	return s != nil && s.UserID != uuid.Nil
}

// DisplayName is what the header greets the visitor with.
func (s *State) DisplayName() string {
	if s.User == nil {
		return ""
	}
	if s.User.FullName != "" {
		return s.User.FullName
	}
	return s.User.Email
}

func (s *State) IsSaved(propertyID uuid.UUID) bool {
	_, ok := s.saved[propertyID]
	return ok
}

func (s *State) SavedCount() int {
	return len(s.saved)
}

// MarkSaved records the outcome of a toggle.
func (s *State) MarkSaved(propertyID uuid.UUID, saved bool) {
	if s.saved == nil {
		s.saved = map[uuid.UUID]struct{}{}
	}
	if saved {
		s.saved[propertyID] = struct{}{}
		return
	}
	delete(s.saved, propertyID)
}

func (s *State) SetTheme(theme string) {
	s.Theme = ParseTheme(theme)
}

// ParseTheme accepts "dark"; anything else is light.
func ParseTheme(raw string) string {
	if raw == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// ThemeFromRequest reads the theme cookie.
func ThemeFromRequest(r *http.Request) string {
	c, err := r.Cookie(ThemeCookieName)
	if err != nil {
		return ThemeLight
	}
	return ParseTheme(c.Value)
}

// WriteThemeCookie persists the theme for a year.
func WriteThemeCookie(w http.ResponseWriter, theme string) {
	http.SetCookie(w, &http.Cookie{
		Name:     ThemeCookieName,
		Value:    ParseTheme(theme),
		Path:     "/",
		MaxAge:   int(themeCookieTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Store is what the loader reads the visitor from.
type Store interface {
	GetUserProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	ListSavedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type Loader struct {
	store Store
}

func NewLoader(store Store) *Loader {
	return &Loader{store: store}
}

// Load builds the state for userID (uuid.Nil for anonymous visitors). A
// failing lookup degrades the state instead of failing the page.
func (l *Loader) Load(ctx context.Context, userID uuid.UUID, theme string) *State {
	s := Anonymous(theme)
	if userID == uuid.Nil {
		return s
	}
	s.UserID = userID

	var (
		profile *models.UserProfile
		ids     []uuid.UUID
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := l.store.GetUserProfile(gctx, userID)
		if err != nil {
			if utils.KindOf(err) != utils.KindNotFound {
				utils.Logger.WithError(err).Warnf("Session: profile lookup failed for %s", userID)
			}
			return nil
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		got, err := l.store.ListSavedIDs(gctx, userID)
		if err != nil {
			utils.Logger.WithError(err).Warnf("Session: saved properties lookup failed for %s", userID)
			return nil
		}
		ids = got
		return nil
	})
	_ = g.Wait()

	s.User = profile
	for _, id := range ids {
		s.saved[id] = struct{}{}
	}
	return s
}
