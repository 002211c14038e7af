package model

import (
	"encoding/json"
	"fmt"
)

// SkillType distinguishes the two lists a skill can live in.
type SkillType string

const (
	SkillTeaching SkillType = "teaching"
	SkillLearning SkillType = "learning"
)

// ParseSkillType validates a raw string against the known skill types.
func ParseSkillType(s string) (SkillType, error) {
	switch SkillType(s) {
	case SkillTeaching, SkillLearning:
		return SkillType(s), nil
	}
	return "", fmt.Errorf("unknown skill type %q", s)
}

// UnmarshalJSON rejects unknown type values at the decoding boundary so
// a corrupt stored document is treated as malformed rather than carried
// forward with an arbitrary string.
func (t *SkillType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseSkillType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Skill is a single entry in a user's teaching or learning list. It is
// owned exclusively by the user it is embedded in and has no lifecycle
// of its own. The id is unique within the owning user's combined lists
// but not globally.
//
// Fields:
//  ID    – identifier assigned when the skill is added.
//  Name  – skill name; duplicates across entries are permitted.
//  Type  – which list the skill belongs to (teaching or learning).
//  Level – proficiency level; new skills always start at "beginner".
type Skill struct {
	ID    int64     `json:"id"`
	Name  string    `json:"name"`
	Type  SkillType `json:"type"`
	Level string    `json:"level"`
}

// LevelBeginner is the proficiency assigned to every newly added skill.
const LevelBeginner = "beginner"
