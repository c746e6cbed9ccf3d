package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.SessionService = Session{}

// Session simulates authentication: no password verification happens
// anywhere, a valid form simply becomes the session user.
type Session struct {
	store *Store
	now   func() time.Time
}

func NewSession(store *Store) Session {
	return Session{store: store, now: time.Now}
}

// Login validates the credentials and installs the demo account under the
// given email. Validation failures come back as domain.FieldErrors and
// never touch the store.
func (s Session) Login(c domain.Credentials) (domain.User, error) {
	const op = "Session.Login"

	if err := c.Validate(); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	name := "John Doe"
	user := domain.User{
		ID:       s.now().UnixMilli(),
		Name:     name,
		Email:    c.Email,
		Avatar:   domain.AvatarInitials(name),
		JoinedAt: s.now(),
	}
	s.store.SetUser(&user)
	s.store.AddNotification(
		domain.NotifySuccess, "Welcome Back!",
		fmt.Sprintf("You are signed in as %s.", user.Email), true,
	)

	slog.With("op", op).Info("user logged in", "email", user.Email)
	return user, nil
}

// Register validates the registration form and creates the session user.
func (s Session) Register(r domain.Registration) (domain.User, error) {
	const op = "Session.Register"

	if err := r.Validate(); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	name := r.FirstName + " " + r.LastName
	user := domain.User{
		ID:       s.now().UnixMilli(),
		Name:     name,
		Email:    r.Email,
		Avatar:   domain.AvatarInitials(name),
		JoinedAt: s.now(),
	}
	s.store.SetUser(&user)
	s.store.AddNotification(
		domain.NotifySuccess, "Account Created",
		fmt.Sprintf("Welcome, %s!", user.Name), true,
	)

	slog.With("op", op).Info("user registered", "email", user.Email)
	return user, nil
}

// Logout clears the session user and its persisted blob.
func (s Session) Logout() {
	const op = "Session.Logout"

	s.store.SetUser(nil)
	slog.With("op", op).Info("user logged out")
}
