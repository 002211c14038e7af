// Package queue defines the message payloads exchanged over the broker
// and the background consumer that writes them to logs/sessions.log.
package queue

// SessionScheduledEvent is published when accepting a request produces
// a new scheduled session. It carries enough information for
// downstream consumers to notify both participants without querying
// the application store.
type SessionScheduledEvent struct {
	EventID     string `json:"event_id"`
	RequestID   int64  `json:"request_id"`
	SessionID   int64  `json:"session_id"`
	StudentID   int64  `json:"student_id"`
	TeacherID   int64  `json:"teacher_id"`
	SkillID     int64  `json:"skill_id"`
	Date        string `json:"date"`
	MeetingLink string `json:"meeting_link"`
}

// SessionCompletedEvent is published when a session is marked
// completed, including the rating given (0 when unrated).
type SessionCompletedEvent struct {
	EventID     string `json:"event_id"`
	SessionID   int64  `json:"session_id"`
	StudentID   int64  `json:"student_id"`
	TeacherID   int64  `json:"teacher_id"`
	SkillID     int64  `json:"skill_id"`
	Rating      int    `json:"rating"`
	CompletedAt string `json:"completed_at"`
}
