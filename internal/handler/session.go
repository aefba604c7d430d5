package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaev1996/atria-fitness/internal/engine"
	"github.com/jaev1996/atria-fitness/internal/model"
)

// SessionHandler exposes the class schedule: session CRUD, the lifecycle
// transition and attendee booking.
type SessionHandler struct {
	Service *engine.Service
}

// NewSessionHandler constructs a SessionHandler.  The service must be
// non-nil.
func NewSessionHandler(svc *engine.Service) *SessionHandler {
	if svc == nil {
		panic("nil service passed to NewSessionHandler")
	}
	return &SessionHandler{Service: svc}
}

type sessionBody struct {
	InstructorID string `json:"instructorId"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	Type         string `json:"type"`
	Room         string `json:"room"`
	Capacity     int    `json:"capacity"`
	IsPrivate    bool   `json:"isPrivate"`
	Notes        string `json:"notes"`
}

func (b sessionBody) params() engine.SessionParams {
	return engine.SessionParams{
		InstructorID: b.InstructorID,
		Date:         b.Date,
		StartTime:    b.StartTime,
		Type:         b.Type,
		Room:         b.Room,
		Capacity:     b.Capacity,
		IsPrivate:    b.IsPrivate,
		Notes:        b.Notes,
	}
}

// List handles GET /v1/sessions.  Optional ?date= and ?instructor_id=
// narrow the result; ?active=true drops cancelled and completed sessions
// so the front desk sees only the live schedule.
func (h *SessionHandler) List(c echo.Context) error {
	doc, err := h.Service.Document(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	date := c.QueryParam("date")
	instructorID := c.QueryParam("instructor_id")
	activeOnly := c.QueryParam("active") == "true"
	out := make([]model.ClassSession, 0, len(doc.Sessions))
	for _, sess := range doc.Sessions {
		if date != "" && sess.Date != date {
			continue
		}
		if instructorID != "" && sess.InstructorID != instructorID {
			continue
		}
		if activeOnly && sess.Status.Terminal() {
			continue
		}
		out = append(out, sess)
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /v1/sessions/:id.
func (h *SessionHandler) Get(c echo.Context) error {
	doc, err := h.Service.Document(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	sess := doc.Session(c.Param("id"))
	if sess == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
	}
	return c.JSON(http.StatusOK, sess)
}

// Create handles POST /v1/sessions.
func (h *SessionHandler) Create(c echo.Context) error {
	var body sessionBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	sess, err := h.Service.CreateSession(c.Request().Context(), body.params())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, sess)
}

// Update handles PUT /v1/sessions/:id.  Status and attendees have their
// own endpoints and are not touched here.
func (h *SessionHandler) Update(c echo.Context) error {
	var body sessionBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	sess, err := h.Service.UpdateSession(c.Request().Context(), c.Param("id"), body.params())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

// Delete handles DELETE /v1/sessions/:id.
func (h *SessionHandler) Delete(c echo.Context) error {
	if err := h.Service.DeleteSession(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SetStatus handles PUT /v1/sessions/:id/status.  Completing a session
// settles attendee credits; the per-attendee outcomes come back in the
// response so the front desk can see who was charged.
func (h *SessionHandler) SetStatus(c echo.Context) error {
	var body struct {
		Status model.SessionStatus `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	outcomes, err := h.Service.SetSessionStatus(c.Request().Context(), c.Param("id"), body.Status)
	if err != nil {
		return writeError(c, err)
	}
	if outcomes == nil {
		outcomes = []engine.CreditOutcome{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":         body.Status,
		"creditOutcomes": outcomes,
	})
}

// Enroll handles POST /v1/sessions/:id/attendees.
func (h *SessionHandler) Enroll(c echo.Context) error {
	var body struct {
		StudentID      string               `json:"studentId"`
		AttendanceType model.AttendanceType `json:"attendanceType"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.StudentID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "studentId is required"})
	}
	if err := h.Service.Enroll(c.Request().Context(), c.Param("id"), body.StudentID, body.AttendanceType); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

// Unenroll handles DELETE /v1/sessions/:id/attendees/:studentId.
func (h *SessionHandler) Unenroll(c echo.Context) error {
	if err := h.Service.Unenroll(c.Request().Context(), c.Param("id"), c.Param("studentId")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
