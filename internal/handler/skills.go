package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/skill-swap/internal/model"
	"github.com/iliyamo/skill-swap/internal/repository"
)

// SkillsHandler exposes the skill catalog and the current user's skill
// ledger. Mutating endpoints return the updated skill lists so the
// client can re-render without a second query.
type SkillsHandler struct {
	Repo *repository.Repository
}

func NewSkillsHandler(repo *repository.Repository) *SkillsHandler {
	return &SkillsHandler{Repo: repo}
}

// Catalog handles GET /v1/skills and returns the seeded skill names.
func (h *SkillsHandler) Catalog(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"skills": h.Repo.Catalog})
}

type addSkillReq struct {
	Name string `json:"name"`
	Type string `json:"type"` // teaching | learning
}

// Add handles POST /v1/me/skills. The new skill starts at beginner
// level; duplicate names are allowed.
func (h *SkillsHandler) Add(c echo.Context) error {
	var req addSkillReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	typ, err := model.ParseSkillType(req.Type)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "type must be teaching or learning"})
	}

	skill, err := h.Repo.AddSkill(c.Request().Context(), req.Name, typ)
	if err != nil {
		if errors.Is(err, repository.ErrNoCurrentUser) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no profile"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "add skill failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"skill":          skill,
		"teachingSkills": h.Repo.CurrentUser.TeachingSkills,
		"learningSkills": h.Repo.CurrentUser.LearningSkills,
	})
}

// Remove handles DELETE /v1/me/skills/:id?type=teaching|learning.
// Unknown ids return 404 and leave the ledger unchanged.
func (h *SkillsHandler) Remove(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid skill id"})
	}
	typ, err := model.ParseSkillType(c.QueryParam("type"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "type must be teaching or learning"})
	}

	if err := h.Repo.RemoveSkill(c.Request().Context(), id, typ); err != nil {
		switch {
		case errors.Is(err, repository.ErrNoCurrentUser):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no profile"})
		case errors.Is(err, repository.ErrSkillNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "skill not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "remove skill failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"teachingSkills": h.Repo.CurrentUser.TeachingSkills,
		"learningSkills": h.Repo.CurrentUser.LearningSkills,
	})
}
