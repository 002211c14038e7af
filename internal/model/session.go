package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// SessionStatus is the closed set of states of a scheduled session.
// Completed and cancelled are terminal.
type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// Terminal reports whether no further transition is defined from s.
func (s SessionStatus) Terminal() bool {
	return s == SessionCompleted || s == SessionCancelled
}

// UnmarshalJSON rejects unknown status strings at the decoding boundary.
func (s *SessionStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch SessionStatus(raw) {
	case SessionScheduled, SessionCompleted, SessionCancelled:
		*s = SessionStatus(raw)
		return nil
	}
	return fmt.Errorf("unknown session status %q", raw)
}

// Session is a scheduled teaching appointment. Sessions are created
// only as the side effect of accepting a Request, never directly; at
// most one request originates each session.
//
// Fields:
//  ID          – identifier assigned at creation.
//  RequestID   – the request whose acceptance produced this session.
//  StudentID   – learner, copied from the originating request.
//  TeacherID   – teacher, copied from the originating request.
//  SkillID     – skill, copied from the originating request.
//  Date        – session timestamp; calendar lookups compare it at
//                local calendar-day granularity.
//  Status      – scheduled, completed or cancelled.
//  MeetingLink – URL for joining the session.
//  Rating      – 1..5 rating recorded at completion, 0 before that.
type Session struct {
	ID          int64         `json:"id"`
	RequestID   int64         `json:"requestId,omitempty"`
	StudentID   int64         `json:"studentId"`
	TeacherID   int64         `json:"teacherId"`
	SkillID     int64         `json:"skillId"`
	Date        time.Time     `json:"date"`
	Status      SessionStatus `json:"status"`
	MeetingLink string        `json:"meetingLink"`
	Rating      int           `json:"rating,omitempty"`
}
