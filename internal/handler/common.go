// Package handler maps HTTP requests onto the scheduling core.  The
// handlers own everything transport: binding, id parsing, status
// codes.  Identity comes out of the request context and is handed to
// the core as an explicit argument; business rules live entirely in
// the scheduling package.
package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/navidh/exam-center-scheduling/internal/middleware"
	"github.com/navidh/exam-center-scheduling/internal/scheduling"
)

// AdminHandler bundles the core services behind the authenticated API.
type AdminHandler struct {
	Centers   *scheduling.CenterService
	Shifts    *scheduling.ShiftService
	ExamDates *scheduling.ExamDateService
	Subjects  *scheduling.SubjectService
	Bookings  *scheduling.BookingService
}

// NewAdminHandler constructs an AdminHandler and panics if any
// dependency is nil.
func NewAdminHandler(centers *scheduling.CenterService, shifts *scheduling.ShiftService, examDates *scheduling.ExamDateService, subjects *scheduling.SubjectService, bookings *scheduling.BookingService) *AdminHandler {
	if centers == nil || shifts == nil || examDates == nil || subjects == nil || bookings == nil {
		panic("nil service passed to NewAdminHandler")
	}
	return &AdminHandler{Centers: centers, Shifts: shifts, ExamDates: examDates, Subjects: subjects, Bookings: bookings}
}

// getUserID extracts the authenticated caller's id from the context.
// JWTAuth stores it as a uuid.UUID; anything else means the middleware
// chain is misconfigured.
func getUserID(c echo.Context) (uuid.UUID, error) {
	if id, ok := c.Get(middleware.ContextUserID).(uuid.UUID); ok && id != uuid.Nil {
		return id, nil
	}
	return uuid.Nil, errors.New("no authenticated user in context")
}

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// respondError translates a typed core error into an HTTP response.
// Validation messages are returned in the order the checks ran; store
// failures stay generic with a retry hint.
func respondError(c echo.Context, err error) error {
	var ve *scheduling.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": ve.Messages})
	}
	var nf *scheduling.NotFoundError
	if errors.As(err, &nf) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": nf.Error()})
	}
	var ce *scheduling.ConflictError
	if errors.As(err, &ce) {
		return c.JSON(http.StatusConflict, echo.Map{"error": ce.Reason})
	}
	if errors.Is(err, scheduling.ErrNotSupported) {
		return c.JSON(http.StatusNotImplemented, echo.Map{"error": "operation not yet supported"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error, please retry"})
}
