package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topup_store_echo/internal/models"
	"topup_store_echo/internal/services"
)

type fakeProvider struct {
	session *models.Session
	err     *models.AuthError
}

func (p *fakeProvider) SignUp(ctx context.Context, email, password, name string) (*models.Session, *models.AuthError) {
	if p.err != nil {
		return nil, p.err
	}
	return p.session, nil
}

func (p *fakeProvider) SignIn(ctx context.Context, email, password string) (*models.Session, *models.AuthError) {
	if p.err != nil {
		return nil, p.err
	}
	return p.session, nil
}

func (p *fakeProvider) SignOut(ctx context.Context, session *models.Session) *models.AuthError {
	return p.err
}

func testSession(userID string) *models.Session {
	return &models.Session{
		User:        models.User{ID: userID, Email: userID + "@example.com", Name: "Mahes"},
		AccessToken: "token-" + userID,
	}
}

func jsonContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandleLogin(t *testing.T) {
	auth := services.NewAuthService(&fakeProvider{session: testSession("u1")})
	h := NewAuthHandler(auth, services.NewOrderLedger())

	c, rec := jsonContext(http.MethodPost, "/auth/login", `{"email":"u1@example.com","password":"secret"}`)
	require.NoError(t, h.HandleLogin(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"u1"`)

	current, _ := auth.GetCurrentSession(context.Background())
	require.NotNil(t, current)
	assert.Equal(t, "u1", current.User.ID)
}

func TestHandleLoginInvalidCredentials(t *testing.T) {
	auth := services.NewAuthService(&fakeProvider{
		err: &models.AuthError{Code: models.AuthErrInvalidCredentials, Message: "INVALID_LOGIN_CREDENTIALS"},
	})
	h := NewAuthHandler(auth, services.NewOrderLedger())

	c, rec := jsonContext(http.MethodPost, "/auth/login", `{"email":"u1@example.com","password":"wrongpass"}`)
	require.NoError(t, h.HandleLogin(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), string(models.AuthErrInvalidCredentials))
}

func TestHandleLoginMissingFields(t *testing.T) {
	h := NewAuthHandler(services.NewAuthService(&fakeProvider{}), services.NewOrderLedger())

	c, _ := jsonContext(http.MethodPost, "/auth/login", `{"email":"u1@example.com"}`)
	err := h.HandleLogin(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestHandleRegister(t *testing.T) {
	auth := services.NewAuthService(&fakeProvider{session: testSession("u9")})
	h := NewAuthHandler(auth, services.NewOrderLedger())

	c, rec := jsonContext(http.MethodPost, "/auth/register", `{"email":"u9@example.com","password":"secret","name":"Mahes"}`)
	require.NoError(t, h.HandleRegister(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	current, _ := auth.GetCurrentSession(context.Background())
	require.NotNil(t, current)
	assert.Equal(t, "u9", current.User.ID)
}

func TestHandleRegisterDuplicateEmail(t *testing.T) {
	auth := services.NewAuthService(&fakeProvider{
		err: &models.AuthError{Code: models.AuthErrEmailExists, Message: "EMAIL_EXISTS"},
	})
	h := NewAuthHandler(auth, services.NewOrderLedger())

	c, rec := jsonContext(http.MethodPost, "/auth/register", `{"email":"taken@example.com","password":"secret"}`)
	require.NoError(t, h.HandleRegister(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), string(models.AuthErrEmailExists))
}

func TestHandleLogoutClearsOwnOrders(t *testing.T) {
	auth := services.NewAuthService(&fakeProvider{session: testSession("u1")})
	ledger := services.NewOrderLedger()
	h := NewAuthHandler(auth, ledger)

	auth.SignIn(context.Background(), "u1@example.com", "secret")
	ledger.Append(models.NewOrder{GameName: "Mobile Legends", ProductName: "86 Diamond", Amount: 12000, Status: models.OrderStatusSuccess, UserID: "u1"})
	ledger.Append(models.NewOrder{GameName: "Free Fire", ProductName: "70 Diamond", Amount: 10000, Status: models.OrderStatusSuccess, UserID: "u2"})

	c, rec := jsonContext(http.MethodPost, "/auth/logout", "")
	require.NoError(t, h.HandleLogout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, ledger.ListByUser("u1"))
	assert.Len(t, ledger.ListByUser("u2"), 1)

	current, _ := auth.GetCurrentSession(context.Background())
	assert.Nil(t, current)
}

func TestHandleLogoutWhileSignedOut(t *testing.T) {
	h := NewAuthHandler(services.NewAuthService(&fakeProvider{}), services.NewOrderLedger())

	c, rec := jsonContext(http.MethodPost, "/auth/logout", "")
	require.NoError(t, h.HandleLogout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSession(t *testing.T) {
	auth := services.NewAuthService(&fakeProvider{session: testSession("u1")})
	h := NewAuthHandler(auth, services.NewOrderLedger())

	c, rec := jsonContext(http.MethodGet, "/auth/session", "")
	require.NoError(t, h.Session(c))
	assert.Contains(t, rec.Body.String(), `"session":null`)

	auth.SignIn(context.Background(), "u1@example.com", "secret")

	c, rec = jsonContext(http.MethodGet, "/auth/session", "")
	require.NoError(t, h.Session(c))
	assert.Contains(t, rec.Body.String(), `"u1"`)
}
