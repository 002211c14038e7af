package repository

import (
	"context"

	"github.com/iliyamo/skill-swap/internal/model"
)

// AddSkill appends a new skill with a fresh id and beginner level to
// the current user's teaching or learning list, then persists the user
// record. Duplicate names are permitted; the ledger does not police
// them.
func (r *Repository) AddSkill(ctx context.Context, name string, typ model.SkillType) (model.Skill, error) {
	if r.CurrentUser == nil {
		return model.Skill{}, ErrNoCurrentUser
	}
	skill := model.Skill{
		ID:    r.NextID(),
		Name:  name,
		Type:  typ,
		Level: model.LevelBeginner,
	}
	err := r.MutateUser(ctx, func(u *model.User) {
		if typ == model.SkillTeaching {
			u.TeachingSkills = append(u.TeachingSkills, skill)
		} else {
			u.LearningSkills = append(u.LearningSkills, skill)
		}
	})
	if err != nil {
		return model.Skill{}, err
	}
	return skill, nil
}

// RemoveSkill removes the skill with the given id from the specified
// list and persists the user record. Unknown ids report
// ErrSkillNotFound and leave both memory and store untouched.
func (r *Repository) RemoveSkill(ctx context.Context, skillID int64, typ model.SkillType) error {
	if r.CurrentUser == nil {
		return ErrNoCurrentUser
	}
	list := r.CurrentUser.LearningSkills
	if typ == model.SkillTeaching {
		list = r.CurrentUser.TeachingSkills
	}
	found := false
	filtered := make([]model.Skill, 0, len(list))
	for _, s := range list {
		if s.ID == skillID {
			found = true
			continue
		}
		filtered = append(filtered, s)
	}
	if !found {
		return ErrSkillNotFound
	}
	return r.MutateUser(ctx, func(u *model.User) {
		if typ == model.SkillTeaching {
			u.TeachingSkills = filtered
		} else {
			u.LearningSkills = filtered
		}
	})
}
