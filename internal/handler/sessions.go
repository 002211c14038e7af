package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/skill-swap/internal/queue"
	"github.com/iliyamo/skill-swap/internal/repository"
	queue_publisher "github.com/iliyamo/skill-swap/internal/service"
	"github.com/iliyamo/skill-swap/internal/workflow"
)

// SessionsHandler exposes the session side of the workflow: listing,
// completion with an optional rating, and cancellation.
type SessionsHandler struct {
	Wf   *workflow.Workflow
	Repo *repository.Repository
}

func NewSessionsHandler(wf *workflow.Workflow, repo *repository.Repository) *SessionsHandler {
	return &SessionsHandler{Wf: wf, Repo: repo}
}

// List handles GET /v1/sessions.
func (h *SessionsHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"sessions": h.Repo.Sessions})
}

type completeReq struct {
	Rating int `json:"rating"` // 1..5, 0 for unrated
}

// Complete handles POST /v1/sessions/:id/complete. The rating folds
// into the user's running average and the completed counter is bumped.
func (h *SessionsHandler) Complete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid session id"})
	}
	var req completeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Rating < 0 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be 1 to 5, or 0 to complete without a rating"})
	}

	session, err := h.Wf.CompleteSession(c.Request().Context(), id, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSessionNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
		case errors.Is(err, repository.ErrSessionClosed):
			return c.JSON(http.StatusConflict, echo.Map{"error": "session already closed"})
		case errors.Is(err, repository.ErrNoCurrentUser):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no profile"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "complete failed"})
	}

	event := queue.SessionCompletedEvent{
		SessionID:   session.ID,
		StudentID:   session.StudentID,
		TeacherID:   session.TeacherID,
		SkillID:     session.SkillID,
		Rating:      session.Rating,
		CompletedAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishSessionCompleted(ctx, event)
	}()

	return c.JSON(http.StatusOK, echo.Map{
		"session":  session,
		"sessions": h.Repo.Sessions,
		"user":     publicUser(*h.Repo.CurrentUser),
	})
}

// Cancel handles POST /v1/sessions/:id/cancel.
func (h *SessionsHandler) Cancel(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid session id"})
	}
	session, err := h.Wf.CancelSession(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSessionNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
		case errors.Is(err, repository.ErrSessionClosed):
			return c.JSON(http.StatusConflict, echo.Map{"error": "session already closed"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"session":  session,
		"sessions": h.Repo.Sessions,
	})
}
