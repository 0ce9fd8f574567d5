package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topup_store_echo/internal/models"
	"topup_store_echo/internal/services"
)

type fakeProvider struct {
	session *models.Session
}

func (p *fakeProvider) SignUp(ctx context.Context, email, password, name string) (*models.Session, *models.AuthError) {
	return p.session, nil
}

func (p *fakeProvider) SignIn(ctx context.Context, email, password string) (*models.Session, *models.AuthError) {
	return p.session, nil
}

func (p *fakeProvider) SignOut(ctx context.Context, session *models.Session) *models.AuthError {
	return nil
}

func newTestContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestRequireSessionRejectsSignedOut(t *testing.T) {
	auth := services.NewAuthService(&fakeProvider{})
	mw := RequireSession(auth)

	err := mw(func(c echo.Context) error { return nil })(newTestContext())

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequireSessionExposesSession(t *testing.T) {
	sess := &models.Session{User: models.User{ID: "u1", Email: "u1@example.com"}}
	auth := services.NewAuthService(&fakeProvider{session: sess})
	auth.SignIn(context.Background(), "u1@example.com", "secret")
	mw := RequireSession(auth)

	var nextCalled bool
	c := newTestContext()
	err := mw(func(c echo.Context) error {
		nextCalled = true
		got, ok := c.Get("session").(*models.Session)
		require.True(t, ok)
		assert.Equal(t, "u1", got.User.ID)
		assert.Equal(t, "u1@example.com", got.User.Email)
		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
}
