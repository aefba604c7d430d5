package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaev1996/atria-fitness/internal/engine"
	"github.com/jaev1996/atria-fitness/internal/model"
)

// StudentHandler exposes the student registry: profile and medical-file
// updates, the payment/plan ledger and the class history.
type StudentHandler struct {
	Service *engine.Service
}

// NewStudentHandler constructs a StudentHandler.  The service must be
// non-nil.
func NewStudentHandler(svc *engine.Service) *StudentHandler {
	if svc == nil {
		panic("nil service passed to NewStudentHandler")
	}
	return &StudentHandler{Service: svc}
}

// List handles GET /v1/students and returns every student on file.
func (h *StudentHandler) List(c echo.Context) error {
	doc, err := h.Service.Document(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, doc.Students)
}

// Get handles GET /v1/students/:id.
func (h *StudentHandler) Get(c echo.Context) error {
	doc, err := h.Service.Document(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	st := doc.Student(c.Param("id"))
	if st == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "student not found"})
	}
	return c.JSON(http.StatusOK, st)
}

// Create handles POST /v1/students.
func (h *StudentHandler) Create(c echo.Context) error {
	var body struct {
		Name             string              `json:"name"`
		Phone            string              `json:"phone"`
		Email            string              `json:"email"`
		EmergencyContact string              `json:"emergencyContact"`
		Status           model.StudentStatus `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	st, err := h.Service.AddStudent(c.Request().Context(), engine.StudentParams{
		Name:             body.Name,
		Phone:            body.Phone,
		Email:            body.Email,
		EmergencyContact: body.EmergencyContact,
		Status:           body.Status,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, st)
}

// Update handles PUT /v1/students/:id.  Absent fields keep their current
// value.
func (h *StudentHandler) Update(c echo.Context) error {
	var body struct {
		Name             *string              `json:"name"`
		Phone            *string              `json:"phone"`
		Email            *string              `json:"email"`
		EmergencyContact *string              `json:"emergencyContact"`
		Status           *model.StudentStatus `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	err := h.Service.UpdateStudentProfile(c.Request().Context(), c.Param("id"), engine.StudentProfileUpdate{
		Name:             body.Name,
		Phone:            body.Phone,
		Email:            body.Email,
		EmergencyContact: body.EmergencyContact,
		Status:           body.Status,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateMedical handles PUT /v1/students/:id/medical.
func (h *StudentHandler) UpdateMedical(c echo.Context) error {
	var body struct {
		MedicalInfo *string `json:"medicalInfo"`
		Allergies   *string `json:"allergies"`
		Injuries    *string `json:"injuries"`
		Conditions  *string `json:"conditions"`
		SportsInfo  *string `json:"sportsInfo"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	err := h.Service.UpdateStudentMedical(c.Request().Context(), c.Param("id"), engine.StudentMedicalUpdate{
		MedicalInfo: body.MedicalInfo,
		Allergies:   body.Allergies,
		Injuries:    body.Injuries,
		Conditions:  body.Conditions,
		SportsInfo:  body.SportsInfo,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/students/:id.
func (h *StudentHandler) Delete(c echo.Context) error {
	if err := h.Service.DeleteStudent(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ProcessPayment handles POST /v1/students/:id/payments.  One call
// records the payment and attaches the purchased plan.
func (h *StudentHandler) ProcessPayment(c echo.Context) error {
	var body struct {
		Amount     float64             `json:"amount"`
		Method     model.PaymentMethod `json:"method"`
		PlanName   string              `json:"planName"`
		Credits    int                 `json:"credits"`
		Discipline string              `json:"discipline"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	payment, err := h.Service.ProcessPayment(c.Request().Context(), c.Param("id"),
		body.Amount, body.Method, body.PlanName, body.Credits, body.Discipline)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, payment)
}

// DeletePlan handles DELETE /v1/students/:id/plans/:planId.
func (h *StudentHandler) DeletePlan(c echo.Context) error {
	if err := h.Service.DeletePlan(c.Request().Context(), c.Param("id"), c.Param("planId")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddHistory handles POST /v1/students/:id/history.
func (h *StudentHandler) AddHistory(c echo.Context) error {
	var body struct {
		Date     string  `json:"date"`
		Activity string  `json:"activity"`
		Notes    string  `json:"notes"`
		Cost     float64 `json:"cost"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	entry, err := h.Service.AddHistoryEntry(c.Request().Context(), c.Param("id"), engine.HistoryParams{
		Date:     body.Date,
		Activity: body.Activity,
		Notes:    body.Notes,
		Cost:     body.Cost,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, entry)
}

// DeleteHistory handles DELETE /v1/students/:id/history/:entryId.
func (h *StudentHandler) DeleteHistory(c echo.Context) error {
	if err := h.Service.DeleteHistoryEntry(c.Request().Context(), c.Param("id"), c.Param("entryId")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
