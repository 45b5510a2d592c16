package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BookExamDate handles POST /v1/exam-dates/:id/book.  The caller's
// owned center is resolved from their identity; the exam date's
// subject set is copied into booking rows for that center.
func (h *AdminHandler) BookExamDate(c echo.Context) error {
	callerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	examDateID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid exam date id"})
	}
	result, err := h.Bookings.BookExamDate(c.Request().Context(), callerID, examDateID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"exam_date_id": result.ExamDateID,
		"center_id":    result.CenterID,
		"subjects":     result.SubjectCount,
	})
}

// ListCenterBookings handles GET /v1/centers/:id/bookings and returns
// the center's booking rows across all exam dates.
func (h *AdminHandler) ListCenterBookings(c echo.Context) error {
	centerID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid center id"})
	}
	rows, err := h.Bookings.ListForCenter(c.Request().Context(), centerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rows})
}
