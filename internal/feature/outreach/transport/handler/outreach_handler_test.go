package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// mockOutreachUsecase is a mock implementation of the OutreachUsecase interface.
type mockOutreachUsecase struct {
	GenerateMessageFunc func(ctx context.Context, alumniName, role, company string) (string, error)
}

func (m *mockOutreachUsecase) GenerateMessage(ctx context.Context, alumniName, role, company string) (string, error) {
	return m.GenerateMessageFunc(ctx, alumniName, role, company)
}

func performRequest(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/outreach", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOutreachHandler_Generate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(mock *mockOutreachUsecase) *gin.Engine {
		r := gin.New()
		r.POST("/outreach", NewOutreachHandler(mock).Generate)
		return r
	}

	t.Run("successful generation", func(t *testing.T) {
		mock := &mockOutreachUsecase{
			GenerateMessageFunc: func(ctx context.Context, alumniName, role, company string) (string, error) {
				return "Hi " + alumniName + ", ...", nil
			},
		}
		w := performRequest(newRouter(mock),
			`{"alumniName":"Gift Zulu","role":"Manager","company":"Antelope Park"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Gift Zulu")
	})

	t.Run("missing fields", func(t *testing.T) {
		mock := &mockOutreachUsecase{
			GenerateMessageFunc: func(ctx context.Context, alumniName, role, company string) (string, error) {
				t.Fatal("usecase must not be reached on validation failure")
				return "", nil
			},
		}
		w := performRequest(newRouter(mock), `{"alumniName":"Gift Zulu"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("usecase validation error", func(t *testing.T) {
		mock := &mockOutreachUsecase{
			GenerateMessageFunc: func(ctx context.Context, alumniName, role, company string) (string, error) {
				return "", errors.New("alumniName exceeds maximum of 100 characters")
			},
		}
		w := performRequest(newRouter(mock),
			`{"alumniName":"Gift Zulu","role":"Manager","company":"Antelope Park"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
