package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/skill-swap/internal/config"
	mw "github.com/iliyamo/skill-swap/internal/middleware"
	"github.com/iliyamo/skill-swap/internal/repository"
	"github.com/iliyamo/skill-swap/internal/store"
	"github.com/iliyamo/skill-swap/internal/workflow"
)

// newTestServer wires the full HTTP surface against an in-memory store
// with rate limiting and caching switched off (nil Redis client).
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	cfg := config.Config{
		Env:          "test",
		JWTSecret:    "test-secret",
		AccessTTLMin: 15,
		BcryptCost:   4,
	}
	repo := repository.New(store.NewMemory())
	require.NoError(t, repo.Load(context.Background()))
	wf := workflow.New(repo)

	auth := NewAuthHandler(cfg, repo)
	skills := NewSkillsHandler(repo)
	requests := NewRequestsHandler(wf, repo)
	sessions := NewSessionsHandler(wf, repo)

	e := echo.New()
	e.GET("/v1/skills", skills.Catalog)
	g := e.Group("/v1/auth")
	g.POST("/register", auth.Register)
	g.POST("/login", auth.Login)

	api := e.Group("/v1")
	api.Use(mw.JWTAuth(cfg.JWTSecret))
	api.GET("/me", auth.Me)
	api.POST("/me/skills", skills.Add)
	api.DELETE("/me/skills/:id", skills.Remove)
	api.GET("/requests", requests.List)
	api.POST("/requests", requests.Create)
	api.POST("/requests/:id/accept", requests.Accept)
	api.POST("/requests/:id/reject", requests.Reject)
	api.GET("/sessions", sessions.List)
	api.POST("/sessions/:id/complete", sessions.Complete)
	cal := NewCalendarHandler(repo)
	api.GET("/calendar/day", cal.Day)
	api.GET("/calendar/:year/:month", cal.Month)
	return e
}

func do(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func registerUser(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := do(e, http.MethodPost, "/v1/auth/register", "",
		`{"name":"ada","email":"ada@example.com","password":"hunter2"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp struct {
		Access struct {
			Token string `json:"token"`
		} `json:"access"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Access.Token)
	return resp.Access.Token
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	e := newTestServer(t)
	rec := do(e, http.MethodGet, "/v1/requests", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSkillCatalogIsPublic(t *testing.T) {
	e := newTestServer(t)
	rec := do(e, http.MethodGet, "/v1/skills", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Skills []string `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Skills, 16)
	assert.Contains(t, resp.Skills, "Photography")
}

func TestLoginAfterRegister(t *testing.T) {
	e := newTestServer(t)
	registerUser(t, e)

	rec := do(e, http.MethodPost, "/v1/auth/login", "",
		`{"email":"ada@example.com","password":"hunter2"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodPost, "/v1/auth/login", "",
		`{"email":"ada@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequestAcceptFlow(t *testing.T) {
	e := newTestServer(t)
	token := registerUser(t, e)

	rec := do(e, http.MethodPost, "/v1/requests", token,
		`{"teacherId":200,"skillId":300,"message":"teach me guitar"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		Request struct {
			ID     int64  `json:"id"`
			Status string `json:"status"`
		} `json:"request"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "pending", created.Request.Status)

	acceptPath := fmt.Sprintf("/v1/requests/%d/accept", created.Request.ID)
	rec = do(e, http.MethodPost, acceptPath, token, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var accepted struct {
		Request struct {
			Status string `json:"status"`
		} `json:"request"`
		Session struct {
			ID        int64  `json:"id"`
			RequestID int64  `json:"requestId"`
			Status    string `json:"status"`
		} `json:"session"`
		Sessions []json.RawMessage `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &accepted))
	assert.Equal(t, "accepted", accepted.Request.Status)
	assert.Equal(t, "scheduled", accepted.Session.Status)
	assert.Equal(t, created.Request.ID, accepted.Session.RequestID)
	assert.Len(t, accepted.Sessions, 1)

	// Accepting again returns the same session and creates nothing.
	rec = do(e, http.MethodPost, acceptPath, token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var again struct {
		Session struct {
			ID int64 `json:"id"`
		} `json:"session"`
		Sessions []json.RawMessage `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &again))
	assert.Equal(t, accepted.Session.ID, again.Session.ID)
	assert.Len(t, again.Sessions, 1)

	// A terminal request cannot flip to rejected.
	rec = do(e, http.MethodPost, fmt.Sprintf("/v1/requests/%d/reject", created.Request.ID), token, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAcceptUnknownRequestID(t *testing.T) {
	e := newTestServer(t)
	token := registerUser(t, e)

	rec := do(e, http.MethodPost, "/v1/requests/9999999/accept", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, http.MethodGet, "/v1/sessions", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Sessions []json.RawMessage `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Sessions)
}

func TestCompleteSessionEndpoint(t *testing.T) {
	e := newTestServer(t)
	token := registerUser(t, e)

	rec := do(e, http.MethodPost, "/v1/requests", token, `{"teacherId":2,"skillId":3}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		Request struct {
			ID int64 `json:"id"`
		} `json:"request"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = do(e, http.MethodPost, fmt.Sprintf("/v1/requests/%d/accept", created.Request.ID), token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var accepted struct {
		Session struct {
			ID int64 `json:"id"`
		} `json:"session"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &accepted))

	rec = do(e, http.MethodPost, fmt.Sprintf("/v1/sessions/%d/complete", accepted.Session.ID), token, `{"rating":5}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var completed struct {
		Session struct {
			Status string `json:"status"`
			Rating int    `json:"rating"`
		} `json:"session"`
		User struct {
			CompletedSessions int     `json:"completedSessions"`
			Rating            float64 `json:"rating"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &completed))
	assert.Equal(t, "completed", completed.Session.Status)
	assert.Equal(t, 5, completed.Session.Rating)
	assert.Equal(t, 1, completed.User.CompletedSessions)
	assert.InDelta(t, 5.0, completed.User.Rating, 1e-9)

	// Completing twice conflicts.
	rec = do(e, http.MethodPost, fmt.Sprintf("/v1/sessions/%d/complete", accepted.Session.ID), token, `{"rating":4}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCompleteSessionRatingContract(t *testing.T) {
	e := newTestServer(t)
	token := registerUser(t, e)

	rec := do(e, http.MethodPost, "/v1/requests", token, `{"teacherId":2,"skillId":3}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		Request struct {
			ID int64 `json:"id"`
		} `json:"request"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	rec = do(e, http.MethodPost, fmt.Sprintf("/v1/requests/%d/accept", created.Request.ID), token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var accepted struct {
		Session struct {
			ID int64 `json:"id"`
		} `json:"session"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &accepted))
	completePath := fmt.Sprintf("/v1/sessions/%d/complete", accepted.Session.ID)

	// Out-of-range ratings are rejected with a message that spells
	// out the unrated case.
	rec = do(e, http.MethodPost, completePath, token, `{"rating":6}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var bad struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bad))
	assert.Contains(t, bad.Error, "0 to complete without a rating")

	// Rating 0 completes unrated: the counter bumps, the average
	// stays untouched.
	rec = do(e, http.MethodPost, completePath, token, `{"rating":0}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var completed struct {
		Session struct {
			Status string `json:"status"`
		} `json:"session"`
		User struct {
			CompletedSessions int     `json:"completedSessions"`
			Rating            float64 `json:"rating"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &completed))
	assert.Equal(t, "completed", completed.Session.Status)
	assert.Equal(t, 1, completed.User.CompletedSessions)
	assert.Zero(t, completed.User.Rating)
}
