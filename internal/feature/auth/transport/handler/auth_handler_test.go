package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quote_backend/internal/feature/auth/domain/entity"
	"quote_backend/internal/feature/auth/usecase"
	"quote_backend/internal/platform/session"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	SignupFunc      func(ctx context.Context, email, password string) (*entity.User, error)
	LoginFunc       func(ctx context.Context, email, password, userAgent, ipAddress string) (*entity.User, string, error)
	LogoutFunc      func(ctx context.Context, token string) error
	CurrentUserFunc func(ctx context.Context, userID uint) (*entity.User, error)
}

func (m *mockAuthUsecase) Signup(ctx context.Context, email, password string) (*entity.User, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, email, password)
	}
	return &entity.User{ID: 1, Email: email}, nil
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password, userAgent, ipAddress string) (*entity.User, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password, userAgent, ipAddress)
	}
	return nil, "", usecase.ErrInvalidCredentials
}

func (m *mockAuthUsecase) Logout(ctx context.Context, token string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, token)
	}
	return nil
}

func (m *mockAuthUsecase) CurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx, userID)
	}
	return nil, usecase.ErrUserNotFound
}

func postJSON(router *gin.Engine, path string, body gin.H, cookie *http.Cookie) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockSignupFunc func(ctx context.Context, email, password string) (*entity.User, error)
		expectedStatus int
	}{
		{
			name:        "success: user registration",
			requestBody: gin.H{"email": "test@example.com", "password": "pw1"},
			mockSignupFunc: func(ctx context.Context, email, password string) (*entity.User, error) {
				return &entity.User{ID: 42, Email: email}, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: missing email",
			requestBody:    gin.H{"password": "pw1"},
			mockSignupFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"email": "test@example.com"},
			mockSignupFunc: nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: empty password",
			requestBody:    gin.H{"email": "test@example.com", "password": ""},
			mockSignupFunc: nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: duplicate email",
			requestBody: gin.H{"email": "existing@example.com", "password": "pw1"},
			mockSignupFunc: func(ctx context.Context, email, password string) (*entity.User, error) {
				return nil, usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "failure: database error",
			requestBody: gin.H{"email": "test@example.com", "password": "pw1"},
			mockSignupFunc: func(ctx context.Context, email, password string) (*entity.User, error) {
				return nil, errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&mockAuthUsecase{SignupFunc: tt.mockSignupFunc})

			router := gin.New()
			router.POST("/auth/signup", handler.Signup)

			w := postJSON(router, "/auth/signup", tt.requestBody, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.expectedStatus == http.StatusCreated {
				assert.Equal(t, float64(42), body["userId"], "response should carry the new user ID")
			} else {
				assert.NotEmpty(t, body["error"], "failure responses carry an error string")
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success sets the session cookie", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password, userAgent, ipAddress string) (*entity.User, string, error) {
				return &entity.User{ID: 9, Email: email}, "tok-123", nil
			},
		}
		handler := NewAuthHandler(mockUC)

		router := gin.New()
		router.POST("/auth/login", handler.Login)

		w := postJSON(router, "/auth/login", gin.H{"email": "test@example.com", "password": "pw1"}, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(9), body["userId"])

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1, "exactly one cookie expected")
		assert.Equal(t, session.CookieName, cookies[0].Name)
		assert.Equal(t, "tok-123", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly, "session cookie must be httpOnly")
		assert.False(t, cookies[0].Secure, "session cookie is not marked secure")
		assert.Equal(t, 86400, cookies[0].MaxAge, "cookie lifetime should match the session TTL")
	})

	t.Run("invalid credentials return 401 without a cookie", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthUsecase{})

		router := gin.New()
		router.POST("/auth/login", handler.Login)

		w := postJSON(router, "/auth/login", gin.H{"email": "wrong@example.com", "password": "wrong"}, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Result().Cookies(), "no cookie on failed login")

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "invalid credentials", body["error"])
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthUsecase{})

		router := gin.New()
		router.POST("/auth/login", handler.Login)

		w := postJSON(router, "/auth/login", gin.H{"email": "test@example.com"}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store failure returns 500", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password, userAgent, ipAddress string) (*entity.User, string, error) {
				return nil, "", errors.New("session store down")
			},
		}
		handler := NewAuthHandler(mockUC)

		router := gin.New()
		router.POST("/auth/login", handler.Login)

		w := postJSON(router, "/auth/login", gin.H{"email": "test@example.com", "password": "pw1"}, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("destroys the session and clears the cookie", func(t *testing.T) {
		var revoked string
		mockUC := &mockAuthUsecase{
			LogoutFunc: func(ctx context.Context, token string) error {
				revoked = token
				return nil
			},
		}
		handler := NewAuthHandler(mockUC)

		router := gin.New()
		router.POST("/auth/logout", handler.Logout)

		w := postJSON(router, "/auth/logout", nil, &http.Cookie{Name: session.CookieName, Value: "tok-123"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "tok-123", revoked, "session token should be revoked")

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, session.CookieName, cookies[0].Name)
		assert.Empty(t, cookies[0].Value, "cookie value should be cleared")
		assert.Negative(t, cookies[0].MaxAge, "cookie should be expired")
	})

	t.Run("no cookie still succeeds", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthUsecase{
			LogoutFunc: func(ctx context.Context, token string) error {
				t.Error("usecase should not be called without a cookie")
				return nil
			},
		})

		router := gin.New()
		router.POST("/auth/logout", handler.Logout)

		w := postJSON(router, "/auth/logout", nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("store failure returns 500", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			LogoutFunc: func(ctx context.Context, token string) error {
				return errors.New("store down")
			},
		}
		handler := NewAuthHandler(mockUC)

		router := gin.New()
		router.POST("/auth/logout", handler.Logout)

		w := postJSON(router, "/auth/logout", nil, &http.Cookie{Name: session.CookieName, Value: "tok-123"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	// withUser simulates the session middleware having resolved a cookie.
	withUser := func(userID uint) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set(session.ContextUserID, userID)
			c.Next()
		}
	}

	t.Run("returns the current user's public fields", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			CurrentUserFunc: func(ctx context.Context, userID uint) (*entity.User, error) {
				return &entity.User{ID: userID, Email: "me@example.com", Password: "secret-hash", CreatedAt: created}, nil
			},
		}
		handler := NewAuthHandler(mockUC)

		router := gin.New()
		router.GET("/auth/me", withUser(5), handler.Me)

		req, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		user := body["user"]
		assert.Equal(t, float64(5), user["id"])
		assert.Equal(t, "me@example.com", user["email"])
		assert.NotEmpty(t, user["createdAt"])
		assert.NotContains(t, w.Body.String(), "secret-hash", "password hash must never be exposed")
	})

	t.Run("no session returns 401", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthUsecase{})

		router := gin.New()
		router.GET("/auth/me", handler.Me)

		req, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("vanished user returns 401", func(t *testing.T) {
		handler := NewAuthHandler(&mockAuthUsecase{})

		router := gin.New()
		router.GET("/auth/me", withUser(5), handler.Me)

		req, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
