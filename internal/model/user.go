package model

// User represents the profile of the person using the application.
// Exactly one user is "current" per process; it is created at
// registration or login and mutated by the skill ledger and by
// session completion. The JSON tags match the document stored under
// the `skillswap_user` key, so a persisted record round-trips
// unchanged.
//
// Fields:
//  ID                – timestamp-derived identifier assigned at creation.
//  Name              – display name.
//  Email             – email address.
//  PasswordHash      – bcrypt hash; never serialized into the store response.
//  Avatar            – avatar image URL, empty when unset.
//  Bio               – free-text biography.
//  TeachingSkills    – skills the user offers to teach.
//  LearningSkills    – skills the user wants to learn.
//  Rating            – running average of ratings received (0 when unrated).
//  CompletedSessions – number of sessions finished by this user.
type User struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	PasswordHash      string  `json:"passwordHash,omitempty"`
	Avatar            string  `json:"avatar"`
	Bio               string  `json:"bio"`
	TeachingSkills    []Skill `json:"teachingSkills"`
	LearningSkills    []Skill `json:"learningSkills"`
	Rating            float64 `json:"rating"`
	CompletedSessions int     `json:"completedSessions"`
}
