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

// RequestsHandler exposes the request side of the scheduling workflow:
// creating a request and deciding it. Accepting publishes a
// session.scheduled event best-effort after the state change is
// durable.
type RequestsHandler struct {
	Wf   *workflow.Workflow
	Repo *repository.Repository
}

func NewRequestsHandler(wf *workflow.Workflow, repo *repository.Repository) *RequestsHandler {
	return &RequestsHandler{Wf: wf, Repo: repo}
}

// List handles GET /v1/requests.
func (h *RequestsHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"requests": h.Repo.Requests})
}

type createRequestReq struct {
	StudentID int64  `json:"studentId"`
	TeacherID int64  `json:"teacherId"`
	SkillID   int64  `json:"skillId"`
	Message   string `json:"message"`
}

// Create handles POST /v1/requests. When studentId is omitted the
// authenticated user is the student.
func (h *RequestsHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.StudentID == 0 {
		req.StudentID = uid
	}
	if req.TeacherID == 0 || req.SkillID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "teacherId and skillId are required"})
	}

	created, err := h.Wf.CreateRequest(c.Request().Context(), req.StudentID, req.TeacherID, req.SkillID, req.Message)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create request failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"request":  created,
		"requests": h.Repo.Requests,
	})
}

// Accept handles POST /v1/requests/:id/accept. On success exactly one
// scheduled session exists for the request; repeating the call returns
// the same session without creating another.
func (h *RequestsHandler) Accept(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request id"})
	}
	req, session, err := h.Wf.AcceptRequest(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRequestNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "request not found"})
		case errors.Is(err, repository.ErrRequestClosed):
			return c.JSON(http.StatusConflict, echo.Map{"error": "request already closed"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "accept failed"})
	}

	// Notify listeners once the transition is durable. Failures only
	// log; the accept has already happened.
	event := queue.SessionScheduledEvent{
		RequestID:   req.ID,
		SessionID:   session.ID,
		StudentID:   session.StudentID,
		TeacherID:   session.TeacherID,
		SkillID:     session.SkillID,
		Date:        session.Date.UTC().Format(time.RFC3339),
		MeetingLink: session.MeetingLink,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishSessionScheduled(ctx, event)
	}()

	return c.JSON(http.StatusOK, echo.Map{
		"request":  req,
		"session":  session,
		"requests": h.Repo.Requests,
		"sessions": h.Repo.Sessions,
	})
}

// Reject handles POST /v1/requests/:id/reject. No session is created.
func (h *RequestsHandler) Reject(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request id"})
	}
	req, err := h.Wf.RejectRequest(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRequestNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "request not found"})
		case errors.Is(err, repository.ErrRequestClosed):
			return c.JSON(http.StatusConflict, echo.Map{"error": "request already closed"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reject failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"request":  req,
		"requests": h.Repo.Requests,
	})
}
