package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaev1996/atria-fitness/internal/engine"
	"github.com/jaev1996/atria-fitness/internal/model"
)

// PayrollHandler exposes the instructor payment log.
type PayrollHandler struct {
	Service *engine.Service
}

// NewPayrollHandler constructs a PayrollHandler.  The service must be
// non-nil.
func NewPayrollHandler(svc *engine.Service) *PayrollHandler {
	if svc == nil {
		panic("nil service passed to NewPayrollHandler")
	}
	return &PayrollHandler{Service: svc}
}

// List handles GET /v1/payroll/payments?instructor_id=.
func (h *PayrollHandler) List(c echo.Context) error {
	doc, err := h.Service.Document(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	instructorID := c.QueryParam("instructor_id")
	out := make([]model.InstructorPayment, 0, len(doc.InstructorPayments))
	for _, p := range doc.InstructorPayments {
		if instructorID != "" && p.InstructorID != instructorID {
			continue
		}
		out = append(out, p)
	}
	return c.JSON(http.StatusOK, out)
}

// Record handles POST /v1/payroll/payments.  Every listed session is
// stamped with the payment id; a session already covered by another
// payment rejects the whole request with 409.
func (h *PayrollHandler) Record(c echo.Context) error {
	var body struct {
		InstructorID string   `json:"instructorId"`
		Amount       float64  `json:"amount"`
		PeriodStart  string   `json:"periodStart"`
		PeriodEnd    string   `json:"periodEnd"`
		SessionIDs   []string `json:"sessionIds"`
		Notes        string   `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	payment, err := h.Service.RecordInstructorPayment(c.Request().Context(), engine.PaymentParams{
		InstructorID: body.InstructorID,
		Amount:       body.Amount,
		PeriodStart:  body.PeriodStart,
		PeriodEnd:    body.PeriodEnd,
		SessionIDs:   body.SessionIDs,
		Notes:        body.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, payment)
}

// Delete handles DELETE /v1/payroll/payments/:id.  The covered sessions
// return to the pending-payroll pool.
func (h *PayrollHandler) Delete(c echo.Context) error {
	if err := h.Service.DeleteInstructorPayment(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
