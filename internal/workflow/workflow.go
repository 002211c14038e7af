// Package workflow implements the request/session state machine. A
// request moves pending -> accepted | rejected, both terminal, and the
// accepted transition is the only place in the system that creates a
// session. Sessions then move scheduled -> completed | cancelled.
package workflow

import (
	"context"

	"github.com/google/uuid"

	"github.com/iliyamo/skill-swap/internal/model"
	"github.com/iliyamo/skill-swap/internal/repository"
)

// MeetingBase is the prefix for generated meeting links. The random
// path segment keeps links unguessable across sessions.
const MeetingBase = "https://meet.skillswap.local/"

// Workflow drives request and session transitions against the domain
// repository. All methods persist through the repository before
// returning, so a successful call is already durable.
type Workflow struct {
	repo *repository.Repository
}

// New returns a workflow bound to the given repository.
func New(repo *repository.Repository) *Workflow {
	return &Workflow{repo: repo}
}

// CreateRequest appends a new pending request stamped with the current
// time. The caller is responsible for ensuring the student and teacher
// differ and that the skill belongs to the teacher's teaching list;
// the workflow records what it is given.
func (w *Workflow) CreateRequest(ctx context.Context, studentID, teacherID, skillID int64, message string) (model.Request, error) {
	req := model.Request{
		ID:            w.repo.NextID(),
		StudentID:     studentID,
		TeacherID:     teacherID,
		SkillID:       skillID,
		Status:        model.RequestPending,
		RequestedDate: w.repo.Now(),
		Message:       message,
	}
	err := w.repo.MutateRequests(ctx, func(reqs []model.Request) []model.Request {
		return append(reqs, req)
	})
	if err != nil {
		return model.Request{}, err
	}
	return req, nil
}

// AcceptRequest marks the request accepted and creates exactly one
// scheduled session copying the request's student, teacher and skill.
// The session date is the acceptance time. The request collection is
// persisted before the session collection. Accepting an already
// accepted request is idempotent: the originating session is returned
// and nothing new is created. Accepting a rejected request reports
// ErrRequestClosed.
func (w *Workflow) AcceptRequest(ctx context.Context, requestID int64) (model.Request, model.Session, error) {
	req := w.repo.RequestByID(requestID)
	if req == nil {
		return model.Request{}, model.Session{}, repository.ErrRequestNotFound
	}
	switch req.Status {
	case model.RequestAccepted:
		if s := w.repo.SessionByRequestID(requestID); s != nil {
			return *req, *s, nil
		}
		// Accepted but no session on record: fall through and repair
		// by creating the missing session.
	case model.RequestRejected:
		return model.Request{}, model.Session{}, repository.ErrRequestClosed
	}

	session := model.Session{
		ID:          w.repo.NextID(),
		RequestID:   req.ID,
		StudentID:   req.StudentID,
		TeacherID:   req.TeacherID,
		SkillID:     req.SkillID,
		Date:        w.repo.Now(),
		Status:      model.SessionScheduled,
		MeetingLink: MeetingBase + uuid.NewString(),
	}

	req.Status = model.RequestAccepted
	if err := w.repo.MutateRequests(ctx, func(reqs []model.Request) []model.Request { return reqs }); err != nil {
		return model.Request{}, model.Session{}, err
	}
	err := w.repo.MutateSessions(ctx, func(sessions []model.Session) []model.Session {
		return append(sessions, session)
	})
	if err != nil {
		return model.Request{}, model.Session{}, err
	}
	return *req, session, nil
}

// RejectRequest marks the request rejected and persists. No session is
// created. Rejecting an already rejected request is a no-op; rejecting
// an accepted request reports ErrRequestClosed.
func (w *Workflow) RejectRequest(ctx context.Context, requestID int64) (model.Request, error) {
	req := w.repo.RequestByID(requestID)
	if req == nil {
		return model.Request{}, repository.ErrRequestNotFound
	}
	switch req.Status {
	case model.RequestRejected:
		return *req, nil
	case model.RequestAccepted:
		return model.Request{}, repository.ErrRequestClosed
	}
	req.Status = model.RequestRejected
	if err := w.repo.MutateRequests(ctx, func(reqs []model.Request) []model.Request { return reqs }); err != nil {
		return model.Request{}, err
	}
	return *req, nil
}

// CompleteSession marks a scheduled session completed, records the
// 1..5 rating on the session, bumps the current user's completed
// counter and folds the rating into their running average. Rated 0
// means "no rating given" and leaves the average untouched.
func (w *Workflow) CompleteSession(ctx context.Context, sessionID int64, rating int) (model.Session, error) {
	s := w.repo.SessionByID(sessionID)
	if s == nil {
		return model.Session{}, repository.ErrSessionNotFound
	}
	if s.Status.Terminal() {
		return model.Session{}, repository.ErrSessionClosed
	}
	// The user stats update below needs a profile; refuse before the
	// session is touched so a failed call leaves it schedulable.
	if w.repo.CurrentUser == nil {
		return model.Session{}, repository.ErrNoCurrentUser
	}
	s.Status = model.SessionCompleted
	s.Rating = rating
	if err := w.repo.MutateSessions(ctx, func(sessions []model.Session) []model.Session { return sessions }); err != nil {
		return model.Session{}, err
	}
	err := w.repo.MutateUser(ctx, func(u *model.User) {
		if rating > 0 {
			total := u.Rating*float64(u.CompletedSessions) + float64(rating)
			u.Rating = total / float64(u.CompletedSessions+1)
		}
		u.CompletedSessions++
	})
	if err != nil {
		return model.Session{}, err
	}
	return *s, nil
}

// CancelSession marks a scheduled session cancelled. Terminal sessions
// report ErrSessionClosed.
func (w *Workflow) CancelSession(ctx context.Context, sessionID int64) (model.Session, error) {
	s := w.repo.SessionByID(sessionID)
	if s == nil {
		return model.Session{}, repository.ErrSessionNotFound
	}
	if s.Status.Terminal() {
		return model.Session{}, repository.ErrSessionClosed
	}
	s.Status = model.SessionCancelled
	if err := w.repo.MutateSessions(ctx, func(sessions []model.Session) []model.Session { return sessions }); err != nil {
		return model.Session{}, err
	}
	return *s, nil
}
