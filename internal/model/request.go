package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// RequestStatus is the closed set of states a session request moves
// through. A request starts pending and transitions exactly once to
// accepted or rejected; both are terminal.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

// Terminal reports whether no further transition is defined from s.
func (s RequestStatus) Terminal() bool {
	return s == RequestAccepted || s == RequestRejected
}

// UnmarshalJSON rejects unknown status strings so stored documents with
// an out-of-range status are surfaced as malformed instead of being
// loaded into memory.
func (s *RequestStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch RequestStatus(raw) {
	case RequestPending, RequestAccepted, RequestRejected:
		*s = RequestStatus(raw)
		return nil
	}
	return fmt.Errorf("unknown request status %q", raw)
}

// Request is a student's ask for a session with a teacher on one
// skill. Accepting a request produces exactly one Session whose
// student, teacher and skill fields match this record.
//
// Fields:
//  ID            – identifier assigned at creation.
//  StudentID     – user asking to learn.
//  TeacherID     – user being asked to teach.
//  SkillID       – the skill the session is about.
//  Status        – pending, accepted or rejected.
//  RequestedDate – when the request was created.
//  Message       – optional note from the student.
type Request struct {
	ID            int64         `json:"id"`
	StudentID     int64         `json:"studentId"`
	TeacherID     int64         `json:"teacherId"`
	SkillID       int64         `json:"skillId"`
	Status        RequestStatus `json:"status"`
	RequestedDate time.Time     `json:"requestedDate"`
	Message       string        `json:"message"`
}
