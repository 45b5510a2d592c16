package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/navidh/exam-center-scheduling/internal/scheduling"
)

// centerBody is the JSON request body shared by center create and
// update.  Times use RFC3339.
type centerBody struct {
	Name          string  `json:"name"`
	Gender        string  `json:"gender"`
	Zone          string  `json:"zone"`
	Location      string  `json:"location"`
	Capacity      int     `json:"capacity"`
	Enabled       *bool   `json:"enabled"`
	OwnerID       *string `json:"owner_id"`
	ShiftBase     string  `json:"shift_base"`
	ShiftDuration string  `json:"shift_duration"`
}

// parseOwner converts an optional owner id string into a UUID pointer.
func parseOwner(raw *string) (*uuid.UUID, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, false
	}
	return &id, true
}

// CreateCenter handles POST /v1/centers.  The new center is persisted
// together with its generated shifts.
func (h *AdminHandler) CreateCenter(c echo.Context) error {
	var body centerBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	owner, ok := parseOwner(body.OwnerID)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid owner_id"})
	}
	req := scheduling.CreateCenterRequest{
		Name:     body.Name,
		Gender:   body.Gender,
		Zone:     body.Zone,
		Location: body.Location,
		Capacity: body.Capacity,
		OwnerID:  owner,
	}
	if body.ShiftBase != "" {
		t, err := time.Parse(time.RFC3339, body.ShiftBase)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shift_base format"})
		}
		req.ShiftBase = t
	}
	if body.ShiftDuration != "" {
		d, err := time.ParseDuration(body.ShiftDuration)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shift_duration format"})
		}
		req.ShiftDuration = d
	}
	center, err := h.Centers.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, center)
}

// UpdateCenter handles PUT /v1/centers/:id.
func (h *AdminHandler) UpdateCenter(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid center id"})
	}
	var body centerBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	owner, ok := parseOwner(body.OwnerID)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid owner_id"})
	}
	enabled := true
	if body.Enabled != nil {
		enabled = *body.Enabled
	}
	center, err := h.Centers.Update(c.Request().Context(), scheduling.UpdateCenterRequest{
		ID:       id,
		Name:     body.Name,
		Gender:   body.Gender,
		Zone:     body.Zone,
		Location: body.Location,
		Capacity: body.Capacity,
		Enabled:  enabled,
		OwnerID:  owner,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, center)
}

// DeleteCenter handles DELETE /v1/centers/:id.  Owned shifts cascade.
func (h *AdminHandler) DeleteCenter(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid center id"})
	}
	if err := h.Centers.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetCenter handles GET /v1/centers/:id.
func (h *AdminHandler) GetCenter(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid center id"})
	}
	center, err := h.Centers.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, center)
}

// ListCenters handles GET /v1/centers.
func (h *AdminHandler) ListCenters(c echo.Context) error {
	centers, err := h.Centers.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": centers})
}

// ListCenterShifts handles GET /v1/centers/:id/shifts.
func (h *AdminHandler) ListCenterShifts(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid center id"})
	}
	shifts, err := h.Shifts.ListByCenter(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": shifts})
}
