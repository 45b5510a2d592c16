package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/navidh/exam-center-scheduling/internal/scheduling"
)

// CreateShift handles POST /v1/shifts.  The admin id is the
// authenticated caller, not a body field, so a center admin can only
// schedule shifts in their own name.
func (h *AdminHandler) CreateShift(c echo.Context) error {
	adminID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		CenterID   string   `json:"center_id"`
		StartAt    string   `json:"start_at"`
		EndAt      string   `json:"end_at"`
		Capacity   int      `json:"capacity"`
		SubjectIDs []string `json:"subject_ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	centerID, err := uuid.Parse(body.CenterID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid center_id"})
	}
	var start, end time.Time
	if body.StartAt != "" {
		if start, err = time.Parse(time.RFC3339, body.StartAt); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start_at format"})
		}
	}
	if body.EndAt != "" {
		if end, err = time.Parse(time.RFC3339, body.EndAt); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid end_at format"})
		}
	}
	subjectIDs := make([]uuid.UUID, 0, len(body.SubjectIDs))
	for _, raw := range body.SubjectIDs {
		sid, err := uuid.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid subject id " + raw})
		}
		subjectIDs = append(subjectIDs, sid)
	}
	shift, err := h.Shifts.Create(c.Request().Context(), scheduling.CreateShiftRequest{
		CenterID:   centerID,
		AdminID:    adminID,
		StartAt:    start,
		EndAt:      end,
		Capacity:   body.Capacity,
		SubjectIDs: subjectIDs,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, shift)
}

// UpdateShiftCapacity handles PATCH /v1/shifts/:id/capacity.  The
// owning center is resolved from the shift itself.
func (h *AdminHandler) UpdateShiftCapacity(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shift id"})
	}
	var body struct {
		Capacity int `json:"capacity"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	shift, err := h.Shifts.UpdateCapacity(c.Request().Context(), id, body.Capacity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, shift)
}

// UpdateShift handles PUT /v1/shifts/:id.  The operation is disabled
// pending overlap re-checking and always reports that.
func (h *AdminHandler) UpdateShift(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shift id"})
	}
	var body struct {
		StartAt  string `json:"start_at"`
		EndAt    string `json:"end_at"`
		Capacity int    `json:"capacity"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	var start, end time.Time
	if body.StartAt != "" {
		if start, err = time.Parse(time.RFC3339, body.StartAt); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start_at format"})
		}
	}
	if body.EndAt != "" {
		if end, err = time.Parse(time.RFC3339, body.EndAt); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid end_at format"})
		}
	}
	err = h.Shifts.Update(c.Request().Context(), scheduling.UpdateShiftRequest{
		ShiftID:  id,
		StartAt:  start,
		EndAt:    end,
		Capacity: body.Capacity,
	})
	return respondError(c, err)
}

// BulkUpdateShiftTimes handles POST /v1/shifts/bulk-time-update.  The
// new start replaces every scheduled shift's start; the delta is added
// to each shift's existing end.
func (h *AdminHandler) BulkUpdateShiftTimes(c echo.Context) error {
	var body struct {
		NewStart string `json:"new_start"`
		Delta    string `json:"delta"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	var newStart time.Time
	var err error
	if body.NewStart != "" {
		if newStart, err = time.Parse(time.RFC3339, body.NewStart); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid new_start format"})
		}
	}
	var delta time.Duration
	if body.Delta != "" {
		if delta, err = time.ParseDuration(body.Delta); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid delta format"})
		}
	}
	n, err := h.Shifts.BulkUpdateTimes(c.Request().Context(), newStart, delta)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": n})
}

// RemoveShift handles DELETE /v1/shifts/:id.
func (h *AdminHandler) RemoveShift(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shift id"})
	}
	if err := h.Shifts.Remove(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
