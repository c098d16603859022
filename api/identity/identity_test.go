package identity

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct {
	registerErr error
	user        *domain.User
	signInErr   error
}

func (s *stubAuth) Register(string, string) error { return s.registerErr }

func (s *stubAuth) SignIn(string, string) (*domain.User, string, error) {
	if s.signInErr != nil {
		return nil, "", s.signInErr
	}
	return s.user, "signed", nil
}

type claimsTokenizer map[string]interface{}

func (claimsTokenizer) Generate(map[string]interface{}, time.Duration) (string, error) {
	return "", nil
}

func (c claimsTokenizer) Decode(token string) (map[string]interface{}, error) {
	if token != "valid" {
		return nil, errors.New("invalid token")
	}
	return c, nil
}

func newEngine(a *stubAuth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewIdentityServer(a).RegisterPublic(engine.Group("/v1"))
	return engine
}

func post(t *testing.T, h http.Handler, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	body := AuthRequest{Username: "ada", Password: "Xk9#qT2!vLm8$wPz"}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "Created", want: http.StatusCreated},
		{name: "Taken", err: service.ErrUsernameTaken, want: http.StatusConflict},
		{name: "Weak password", err: domain.ErrWeakPassword, want: http.StatusBadRequest},
		{name: "Bad username", err: domain.ErrUsernameFormat, want: http.StatusBadRequest},
		{name: "Storage failure", err: errors.New("mongo: no reachable servers"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(t, newEngine(&stubAuth{registerErr: tt.err}), "/v1/auth/register", body)
			assert.Equal(t, tt.want, w.Code)
			assert.NotContains(t, w.Body.String(), "mongo")
		})
	}

	t.Run("Missing password", func(t *testing.T) {
		w := post(t, newEngine(&stubAuth{}), "/v1/auth/register", gin.H{"username": "ada"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogin(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Username: "ada"}

	t.Run("Success", func(t *testing.T) {
		w := post(t, newEngine(&stubAuth{user: user}), "/v1/auth/login", AuthRequest{Username: "ada", Password: "pw"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, user.ID.String(), resp.ID)
		assert.Equal(t, "signed", resp.Token)
	})

	t.Run("Bad credentials", func(t *testing.T) {
		w := post(t, newEngine(&stubAuth{signInErr: service.ErrInvalidCredentials}), "/v1/auth/login", AuthRequest{Username: "ada", Password: "pw"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthorize(t *testing.T) {
	userID := uuid.New()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/me", Authorize(claimsTokenizer{"userID": userID.String()}), func(c *gin.Context) {
		id, err := UserID(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id.String())
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "Missing header", want: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic valid", want: http.StatusUnauthorized},
		{name: "Bad token", header: "Bearer forged", want: http.StatusUnauthorized},
		{name: "Valid", header: "Bearer valid", want: http.StatusOK},
		{name: "Lowercase scheme", header: "bearer valid", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, userID.String(), w.Body.String())
			}
		})
	}
}

func TestUserIDWithoutClaims(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, err := UserID(c)
	assert.ErrorIs(t, err, ErrNoUserClaims)

	c.Set(ContextUserClaims, map[string]interface{}{"userID": 42})
	_, err = UserID(c)
	assert.ErrorIs(t, err, ErrNoUserClaims)
}
