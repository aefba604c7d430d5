package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaev1996/atria-fitness/internal/engine"
)

// InstructorHandler exposes the instructor registry and the per-instructor
// payroll view.
type InstructorHandler struct {
	Service *engine.Service
}

// NewInstructorHandler constructs an InstructorHandler.  The service must
// be non-nil.
func NewInstructorHandler(svc *engine.Service) *InstructorHandler {
	if svc == nil {
		panic("nil service passed to NewInstructorHandler")
	}
	return &InstructorHandler{Service: svc}
}

// List handles GET /v1/instructors.
func (h *InstructorHandler) List(c echo.Context) error {
	doc, err := h.Service.Document(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, doc.Instructors)
}

// Get handles GET /v1/instructors/:id.
func (h *InstructorHandler) Get(c echo.Context) error {
	doc, err := h.Service.Document(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	inst := doc.Instructor(c.Param("id"))
	if inst == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "instructor not found"})
	}
	return c.JSON(http.StatusOK, inst)
}

// Create handles POST /v1/instructors.
func (h *InstructorHandler) Create(c echo.Context) error {
	var body struct {
		Name        string   `json:"name"`
		Email       string   `json:"email"`
		Phone       string   `json:"phone"`
		Bio         string   `json:"bio"`
		Specialties []string `json:"specialties"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	inst, err := h.Service.AddInstructor(c.Request().Context(), engine.InstructorParams{
		Name:        body.Name,
		Email:       body.Email,
		Phone:       body.Phone,
		Bio:         body.Bio,
		Specialties: body.Specialties,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, inst)
}

// Update handles PUT /v1/instructors/:id.  Absent fields keep their
// current value; a name change rewrites the denormalized name on the
// instructor's sessions.
func (h *InstructorHandler) Update(c echo.Context) error {
	var body struct {
		Name        *string   `json:"name"`
		Email       *string   `json:"email"`
		Phone       *string   `json:"phone"`
		Bio         *string   `json:"bio"`
		Specialties *[]string `json:"specialties"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	err := h.Service.UpdateInstructor(c.Request().Context(), c.Param("id"), engine.InstructorUpdate{
		Name:        body.Name,
		Email:       body.Email,
		Phone:       body.Phone,
		Bio:         body.Bio,
		Specialties: body.Specialties,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/instructors/:id.
func (h *InstructorHandler) Delete(c echo.Context) error {
	if err := h.Service.DeleteInstructor(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Payroll handles GET /v1/instructors/:id/payroll?from=&to=.  It returns
// the pending (unpaid) sessions in the inclusive range with the computed
// total.
func (h *InstructorHandler) Payroll(c echo.Context) error {
	from := c.QueryParam("from")
	to := c.QueryParam("to")
	if from == "" || to == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "from and to are required"})
	}
	doc, err := h.Service.Document(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	if doc.Instructor(c.Param("id")) == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "instructor not found"})
	}
	sum, err := engine.PendingPayroll(doc, c.Param("id"), from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, sum)
}
