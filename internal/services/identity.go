package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"topup_store_echo/internal/models"
)

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

// InitFirebase initializes the Firebase Admin SDK and returns an auth client
func InitFirebase(credPath string) (*fbauth.Client, error) {
	opt := option.WithCredentialsFile(credPath)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		return nil, err
	}
	return app.Auth(context.Background())
}

// IdentityProvider is the contract the session manager relies on. Any
// password-based identity backend that can register, verify credentials and
// invalidate sessions is substitutable.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password, name string) (*models.Session, *models.AuthError)
	SignIn(ctx context.Context, email, password string) (*models.Session, *models.AuthError)
	SignOut(ctx context.Context, session *models.Session) *models.AuthError
}

// FirebaseProvider talks to Firebase Authentication: the Identity Toolkit
// REST API for the password exchanges and the Admin SDK for refresh-token
// revocation. admin may be nil when credentials are not configured; sign-out
// then invalidates locally only.
type FirebaseProvider struct {
	admin   *fbauth.Client
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewFirebaseProvider creates a provider using the given admin client and
// web API key.
func NewFirebaseProvider(admin *fbauth.Client, apiKey string) *FirebaseProvider {
	return &FirebaseProvider{
		admin:   admin,
		apiKey:  apiKey,
		baseURL: identityToolkitURL,
		client:  &http.Client{},
	}
}

// identityResponse is the shared shape of Identity Toolkit account responses
type identityResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"` // seconds, as a string
}

type identityErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// SignUp registers a new account. The display name is stored as provider-side
// profile metadata when given.
func (p *FirebaseProvider) SignUp(ctx context.Context, email, password, name string) (*models.Session, *models.AuthError) {
	var resp identityResponse
	payload := map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}
	if authErr := p.post(ctx, "accounts:signUp", payload, &resp); authErr != nil {
		return nil, authErr
	}

	if name != "" {
		var updated identityResponse
		update := map[string]interface{}{
			"idToken":           resp.IDToken,
			"displayName":       name,
			"returnSecureToken": false,
		}
		if authErr := p.post(ctx, "accounts:update", update, &updated); authErr != nil {
			return nil, authErr
		}
		resp.DisplayName = name
	}

	return p.session(&resp), nil
}

// SignIn exchanges an email/password pair for a session.
func (p *FirebaseProvider) SignIn(ctx context.Context, email, password string) (*models.Session, *models.AuthError) {
	var resp identityResponse
	payload := map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}
	if authErr := p.post(ctx, "accounts:signInWithPassword", payload, &resp); authErr != nil {
		return nil, authErr
	}

	// The REST exchange succeeds for unverified accounts; the verification
	// flag lives on the admin-side user record.
	if p.admin != nil {
		if rec, err := p.admin.GetUser(ctx, resp.LocalID); err == nil && !rec.EmailVerified {
			return nil, &models.AuthError{Code: models.AuthErrEmailNotConfirmed, Message: "EMAIL_NOT_VERIFIED"}
		}
	}

	return p.session(&resp), nil
}

// SignOut revokes the user's refresh tokens with the provider. Without admin
// credentials the session is only dropped locally.
func (p *FirebaseProvider) SignOut(ctx context.Context, session *models.Session) *models.AuthError {
	if p.admin == nil || session == nil {
		return nil
	}
	if err := p.admin.RevokeRefreshTokens(ctx, session.User.ID); err != nil {
		if fbauth.IsUserNotFound(err) {
			return nil
		}
		return &models.AuthError{Code: models.AuthErrServer, Message: err.Error()}
	}
	return nil
}

func (p *FirebaseProvider) post(ctx context.Context, action string, payload, out interface{}) *models.AuthError {
	data, err := json.Marshal(payload)
	if err != nil {
		return &models.AuthError{Code: models.AuthErrServer, Message: err.Error()}
	}

	url := fmt.Sprintf("%s/%s?key=%s", p.baseURL, action, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(data))
	if err != nil {
		return &models.AuthError{Code: models.AuthErrServer, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return &models.AuthError{Code: models.AuthErrNetwork, Message: "could not reach identity provider: " + err.Error()}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		var ie identityErrorBody
		if err := json.Unmarshal(body, &ie); err != nil || ie.Error.Message == "" {
			return &models.AuthError{Code: models.AuthErrServer, Message: fmt.Sprintf("provider returned status %d", resp.StatusCode)}
		}
		return classifyIdentityError(ie.Error.Message)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &models.AuthError{Code: models.AuthErrServer, Message: "malformed provider response"}
	}
	return nil
}

func (p *FirebaseProvider) session(r *identityResponse) *models.Session {
	expires := time.Now()
	if secs, err := strconv.Atoi(r.ExpiresIn); err == nil {
		expires = expires.Add(time.Duration(secs) * time.Second)
	}
	return &models.Session{
		User: models.User{
			ID:    r.LocalID,
			Email: r.Email,
			Name:  r.DisplayName,
		},
		AccessToken:  r.IDToken,
		RefreshToken: r.RefreshToken,
		ExpiresAt:    expires,
	}
}

// classifyIdentityError maps Identity Toolkit error codes onto the closed
// AuthErrorCode set. Messages sometimes carry a detail suffix after the code
// ("WEAK_PASSWORD : Password should be..."), so only the first token counts.
func classifyIdentityError(message string) *models.AuthError {
	code := message
	if i := strings.IndexAny(code, " :"); i >= 0 {
		code = code[:i]
	}

	authErr := &models.AuthError{Message: message}
	switch code {
	case "EMAIL_EXISTS":
		authErr.Code = models.AuthErrEmailExists
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS",
		"INVALID_EMAIL", "MISSING_PASSWORD", "WEAK_PASSWORD":
		authErr.Code = models.AuthErrInvalidCredentials
	case "USER_DISABLED", "EMAIL_NOT_CONFIRMED", "EMAIL_NOT_VERIFIED":
		authErr.Code = models.AuthErrEmailNotConfirmed
	default:
		authErr.Code = models.AuthErrServer
	}
	return authErr
}
