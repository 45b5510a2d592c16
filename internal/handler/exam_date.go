package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/navidh/exam-center-scheduling/internal/scheduling"
)

// CreateExamDate handles POST /v1/exam-dates.  Seed subjects define
// the set centers will copy when they book the date.
func (h *AdminHandler) CreateExamDate(c echo.Context) error {
	var body struct {
		Date       string   `json:"date"`
		OpeningAt  string   `json:"opening_at"`
		ClosingAt  string   `json:"closing_at"`
		SubjectIDs []string `json:"subject_ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req := scheduling.CreateExamDateRequest{}
	var err error
	if body.Date != "" {
		if req.Date, err = time.Parse(time.RFC3339, body.Date); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date format"})
		}
	}
	if body.OpeningAt != "" {
		if req.OpeningAt, err = time.Parse(time.RFC3339, body.OpeningAt); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid opening_at format"})
		}
	}
	if body.ClosingAt != "" {
		if req.ClosingAt, err = time.Parse(time.RFC3339, body.ClosingAt); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid closing_at format"})
		}
	}
	for _, raw := range body.SubjectIDs {
		sid, err := uuid.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid subject id " + raw})
		}
		req.SeedSubjectIDs = append(req.SeedSubjectIDs, sid)
	}
	examDate, err := h.ExamDates.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, examDate)
}

// GetExamDate handles GET /v1/exam-dates/:id.
func (h *AdminHandler) GetExamDate(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid exam date id"})
	}
	examDate, err := h.ExamDates.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, examDate)
}

// ListExamDates handles GET /v1/exam-dates.
func (h *AdminHandler) ListExamDates(c echo.Context) error {
	dates, err := h.ExamDates.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": dates})
}
