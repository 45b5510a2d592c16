package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CreateSubject handles POST /v1/subjects.
func (h *AdminHandler) CreateSubject(c echo.Context) error {
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	subject, err := h.Subjects.Create(c.Request().Context(), body.Name, body.Description)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, subject)
}

// ListSubjects handles GET /v1/subjects.
func (h *AdminHandler) ListSubjects(c echo.Context) error {
	subjects, err := h.Subjects.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": subjects})
}
