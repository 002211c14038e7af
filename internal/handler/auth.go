package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/skill-swap/internal/config"
	"github.com/iliyamo/skill-swap/internal/model"
	"github.com/iliyamo/skill-swap/internal/repository"
	"github.com/iliyamo/skill-swap/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints. The
// scheduling core never sees credentials; registration and login only
// create or load the current user record and hand out access tokens.
type AuthHandler struct {
	Cfg  config.Config
	Repo *repository.Repository
}

func NewAuthHandler(cfg config.Config, repo *repository.Repository) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Repo: repo}
}

// ----- DTOs -----

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type authResp struct {
	User   model.User `json:"user"`
	Access tokenPart  `json:"access"`
}

// Register creates the current user record with empty skill lists and
// returns an access token immediately. Registering while a user
// already exists replaces the record, mirroring a fresh login on a
// shared device.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/email/password required"})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash failed"})
	}
	user := &model.User{
		ID:             h.Repo.NextID(),
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   hash,
		TeachingSkills: []model.Skill{},
		LearningSkills: []model.Skill{},
	}
	if err := h.Repo.SetCurrentUser(c.Request().Context(), user); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, user.ID, user.Email, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusCreated, authResp{
		User:   publicUser(*user),
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Login verifies the stored credentials and returns a fresh access
// token for the current user.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	u := h.Repo.CurrentUser
	if u == nil || u.Email != req.Email || !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Email, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, authResp{
		User:   publicUser(*u),
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	u := h.Repo.CurrentUser
	if u == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no profile"})
	}
	return c.JSON(http.StatusOK, publicUser(*u))
}
