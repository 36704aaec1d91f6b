package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globalhub_backend/internal/feature/auth/domain/entity"
	"globalhub_backend/internal/feature/auth/usecase"
	jwtmw "globalhub_backend/internal/platform/jwt"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc      func(ctx context.Context, email, password, firstName, lastName string) (*entity.User, string, error)
	LoginFunc         func(ctx context.Context, email, password string) (*entity.User, string, error)
	LogoutFunc        func(ctx context.Context, sessionID string) error
	CurrentUserFunc   func(ctx context.Context, sessionID string) (*entity.User, error)
	UpdateProfileFunc func(ctx context.Context, sessionID string, update usecase.ProfileUpdate) (*entity.User, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, email, password, firstName, lastName string) (*entity.User, string, error) {
	return m.RegisterFunc(ctx, email, password, firstName, lastName)
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	return m.LoginFunc(ctx, email, password)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, sessionID string) error {
	return m.LogoutFunc(ctx, sessionID)
}

func (m *mockAuthUsecase) CurrentUser(ctx context.Context, sessionID string) (*entity.User, error) {
	return m.CurrentUserFunc(ctx, sessionID)
}

func (m *mockAuthUsecase) UpdateProfile(ctx context.Context, sessionID string, update usecase.ProfileUpdate) (*entity.User, error) {
	return m.UpdateProfileFunc(ctx, sessionID, update)
}

// withSession injects the session ID the JWT middleware would have set.
func withSession(sessionID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(jwtmw.ContextSessionID, sessionID)
		c.Next()
	}
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(mock *mockAuthUsecase) *gin.Engine {
		r := gin.New()
		r.POST("/signup", NewAuthHandler(mock).Signup)
		return r
	}

	t.Run("successful signup", func(t *testing.T) {
		mock := &mockAuthUsecase{
			RegisterFunc: func(ctx context.Context, email, password, firstName, lastName string) (*entity.User, string, error) {
				return &entity.User{ID: 1, Email: email, FirstName: firstName, LastName: lastName, CreatedAt: time.Now()}, "test-token", nil
			},
		}
		w := performRequest(newRouter(mock), http.MethodPost, "/signup",
			`{"email":"tariro@students.msu.ac.zw","password":"password123","firstName":"Tariro","lastName":"Moyo"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		var res struct {
			User  entity.User `json:"user"`
			Token string      `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "test-token", res.Token)
		assert.Equal(t, "Tariro", res.User.FirstName)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock := &mockAuthUsecase{
			RegisterFunc: func(ctx context.Context, email, password, firstName, lastName string) (*entity.User, string, error) {
				return nil, "", usecase.ErrDuplicateAccount
			},
		}
		w := performRequest(newRouter(mock), http.MethodPost, "/signup",
			`{"email":"taken@students.msu.ac.zw","password":"password123","firstName":"A","lastName":"B"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "already exists")
	})

	t.Run("validation failures", func(t *testing.T) {
		mock := &mockAuthUsecase{
			RegisterFunc: func(ctx context.Context, email, password, firstName, lastName string) (*entity.User, string, error) {
				t.Fatal("usecase must not be reached on validation failure")
				return nil, "", nil
			},
		}
		r := newRouter(mock)

		tests := []struct {
			name string
			body string
		}{
			{"invalid email", `{"email":"not-an-email","password":"password123","firstName":"A","lastName":"B"}`},
			{"short password", `{"email":"a@b.com","password":"short","firstName":"A","lastName":"B"}`},
			{"missing names", `{"email":"a@b.com","password":"password123"}`},
			{"malformed json", `{`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := performRequest(r, http.MethodPost, "/signup", tt.body)
				assert.Equal(t, http.StatusBadRequest, w.Code)
			})
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("successful login", func(t *testing.T) {
		mock := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string) (*entity.User, string, error) {
				return &entity.User{ID: 1, Email: email, FirstName: "Tariro", ProfileComplete: true}, "test-token", nil
			},
		}
		r := gin.New()
		r.POST("/login", NewAuthHandler(mock).Login)

		w := performRequest(r, http.MethodPost, "/login",
			`{"email":"tariro@students.msu.ac.zw","password":"password123"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "test-token")
		assert.Contains(t, w.Body.String(), "Tariro")
	})

	t.Run("invalid credentials stay generic", func(t *testing.T) {
		mock := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string) (*entity.User, string, error) {
				return nil, "", usecase.ErrInvalidCredentials
			},
		}
		r := gin.New()
		r.POST("/login", NewAuthHandler(mock).Login)

		w := performRequest(r, http.MethodPost, "/login",
			`{"email":"tariro@students.msu.ac.zw","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid email or password")
		// The response must not reveal whether the account exists
		assert.NotContains(t, w.Body.String(), "not found")
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotSessionID string
	mock := &mockAuthUsecase{
		LogoutFunc: func(ctx context.Context, sessionID string) error {
			gotSessionID = sessionID
			return nil
		},
	}
	r := gin.New()
	r.POST("/logout", withSession("sid-1"), NewAuthHandler(mock).Logout)

	w := performRequest(r, http.MethodPost, "/logout", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sid-1", gotSessionID)
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("active session", func(t *testing.T) {
		mock := &mockAuthUsecase{
			CurrentUserFunc: func(ctx context.Context, sessionID string) (*entity.User, error) {
				return &entity.User{ID: 1, Email: "tariro@students.msu.ac.zw"}, nil
			},
		}
		r := gin.New()
		r.GET("/me", withSession("sid-1"), NewAuthHandler(mock).Me)

		w := performRequest(r, http.MethodGet, "/me", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "tariro@students.msu.ac.zw")
	})

	t.Run("no active session", func(t *testing.T) {
		mock := &mockAuthUsecase{
			CurrentUserFunc: func(ctx context.Context, sessionID string) (*entity.User, error) {
				return nil, usecase.ErrNoActiveSession
			},
		}
		r := gin.New()
		r.GET("/me", withSession("sid-gone"), NewAuthHandler(mock).Me)

		w := performRequest(r, http.MethodGet, "/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("partial update forwards only provided fields", func(t *testing.T) {
		var gotUpdate usecase.ProfileUpdate
		mock := &mockAuthUsecase{
			UpdateProfileFunc: func(ctx context.Context, sessionID string, update usecase.ProfileUpdate) (*entity.User, error) {
				gotUpdate = update
				return &entity.User{ID: 1, Campus: entity.CampusHarare, ProfileComplete: true}, nil
			},
		}
		r := gin.New()
		r.PATCH("/me", withSession("sid-1"), NewAuthHandler(mock).UpdateProfile)

		w := performRequest(r, http.MethodPatch, "/me", `{"campus":"Harare","major":"Data Science"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, gotUpdate.Campus)
		assert.Equal(t, entity.CampusHarare, *gotUpdate.Campus)
		require.NotNil(t, gotUpdate.Major)
		assert.Equal(t, "Data Science", *gotUpdate.Major)
		assert.Nil(t, gotUpdate.FirstName)
		assert.Nil(t, gotUpdate.Email)
	})

	t.Run("unknown campus rejected", func(t *testing.T) {
		mock := &mockAuthUsecase{
			UpdateProfileFunc: func(ctx context.Context, sessionID string, update usecase.ProfileUpdate) (*entity.User, error) {
				t.Fatal("usecase must not be reached on validation failure")
				return nil, nil
			},
		}
		r := gin.New()
		r.PATCH("/me", withSession("sid-1"), NewAuthHandler(mock).UpdateProfile)

		w := performRequest(r, http.MethodPatch, "/me", `{"campus":"Bulawayo"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock := &mockAuthUsecase{
			UpdateProfileFunc: func(ctx context.Context, sessionID string, update usecase.ProfileUpdate) (*entity.User, error) {
				return nil, usecase.ErrDuplicateAccount
			},
		}
		r := gin.New()
		r.PATCH("/me", withSession("sid-1"), NewAuthHandler(mock).UpdateProfile)

		w := performRequest(r, http.MethodPatch, "/me", `{"email":"taken@students.msu.ac.zw"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
