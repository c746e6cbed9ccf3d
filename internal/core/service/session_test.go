package service_test

import (
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLogin(t *testing.T) {
	t.Run("InstallsDemoUser", func(t *testing.T) {
		s := newTestStore(t, newMemBlob(), &manualScheduler{})
		session := service.NewSession(s)

		user, err := session.Login(domain.Credentials{
			Email:    "jane@example.com",
			Password: "secret1",
		})
		require.NoError(t, err)

		assert.Equal(t, "John Doe", user.Name)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.Equal(t, "JD", user.Avatar)

		stored, ok := s.User()
		require.True(t, ok)
		assert.Equal(t, user, stored)

		ns := s.Notifications()
		require.Len(t, ns, 1)
		assert.Equal(t, "Welcome Back!", ns[0].Title)
	})

	t.Run("InvalidCredentialsLeaveStoreUntouched", func(t *testing.T) {
		s := newTestStore(t, newMemBlob(), &manualScheduler{})
		session := service.NewSession(s)

		_, err := session.Login(domain.Credentials{Email: "nope", Password: "x"})

		var fieldErrs domain.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)

		_, ok := s.User()
		assert.False(t, ok)
		assert.Empty(t, s.Notifications())
	})
}

func TestSessionRegister(t *testing.T) {
	t.Run("CreatesAndPersistsUser", func(t *testing.T) {
		blob := newMemBlob()
		s := newTestStore(t, blob, &manualScheduler{})
		session := service.NewSession(s)

		user, err := session.Register(domain.Registration{
			FirstName:       "Jane",
			LastName:        "Roe",
			Email:           "jane@example.com",
			Password:        "longenough",
			ConfirmPassword: "longenough",
		})
		require.NoError(t, err)

		assert.Equal(t, "Jane Roe", user.Name)
		assert.Equal(t, "JR", user.Avatar)

		restored := newTestStore(t, blob, &manualScheduler{})
		restored.Hydrate()
		hydrated, ok := restored.User()
		require.True(t, ok)
		assert.Equal(t, user.Email, hydrated.Email)

		ns := s.Notifications()
		require.Len(t, ns, 1)
		assert.Equal(t, "Account Created", ns[0].Title)
	})

	t.Run("RejectsMismatchedPasswords", func(t *testing.T) {
		s := newTestStore(t, newMemBlob(), &manualScheduler{})
		session := service.NewSession(s)

		_, err := session.Register(domain.Registration{
			FirstName:       "Jane",
			LastName:        "Roe",
			Email:           "jane@example.com",
			Password:        "longenough",
			ConfirmPassword: "different",
		})

		var fieldErrs domain.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Contains(t, fieldErrs, "confirmPassword")

		_, ok := s.User()
		assert.False(t, ok)
	})
}

func TestSessionLogout(t *testing.T) {
	blob := newMemBlob()
	s := newTestStore(t, blob, &manualScheduler{})
	session := service.NewSession(s)

	_, err := session.Login(domain.Credentials{
		Email:    "jane@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	session.Logout()

	_, ok := s.User()
	assert.False(t, ok)

	restored := newTestStore(t, blob, &manualScheduler{})
	restored.Hydrate()
	_, ok = restored.User()
	assert.False(t, ok)
}
