package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/skill-swap/internal/calendar"
	"github.com/iliyamo/skill-swap/internal/repository"
)

// CalendarHandler serves the month grid and per-day session lookups.
// Both endpoints are pure reads over the in-memory session collection.
type CalendarHandler struct {
	Repo *repository.Repository
}

func NewCalendarHandler(repo *repository.Repository) *CalendarHandler {
	return &CalendarHandler{Repo: repo}
}

// Month handles GET /v1/calendar/:year/:month with a 1-based month.
func (h *CalendarHandler) Month(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid year"})
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid month"})
	}
	grid := calendar.BuildMonthGrid(year, time.Month(month), h.Repo.Sessions)
	return c.JSON(http.StatusOK, grid)
}

// Day handles GET /v1/calendar/day?date=YYYY-MM-DD and returns the
// sessions on that local calendar day, ignoring time of day.
func (h *CalendarHandler) Day(c echo.Context) error {
	day, err := time.ParseInLocation("2006-01-02", c.QueryParam("date"), time.Local)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}
	sessions := calendar.SessionsOnDate(h.Repo.Sessions, day)
	return c.JSON(http.StatusOK, echo.Map{
		"date":     day.Format("2006-01-02"),
		"sessions": sessions,
	})
}
