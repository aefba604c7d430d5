package router

import (
	"github.com/labstack/echo/v4"

	"github.com/jaev1996/atria-fitness/internal/handler"
)

// Handlers bundles every handler the API mounts.
type Handlers struct {
	Students    *handler.StudentHandler
	Instructors *handler.InstructorHandler
	Sessions    *handler.SessionHandler
	Payroll     *handler.PayrollHandler
	Settings    *handler.SettingsHandler
}

// RegisterRoutes mounts the whole API surface on the Echo instance.  The
// optional cache middleware wraps the read side; mutations always hit the
// store directly.
func RegisterRoutes(e *echo.Echo, h Handlers, cache echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")
	if cache != nil {
		v1.Use(cache)
	}

	// Student registry, ledger and history.
	v1.GET("/students", h.Students.List)
	v1.POST("/students", h.Students.Create)
	v1.GET("/students/:id", h.Students.Get)
	v1.PUT("/students/:id", h.Students.Update)
	v1.PUT("/students/:id/medical", h.Students.UpdateMedical)
	v1.DELETE("/students/:id", h.Students.Delete)
	v1.POST("/students/:id/payments", h.Students.ProcessPayment)
	v1.DELETE("/students/:id/plans/:planId", h.Students.DeletePlan)
	v1.POST("/students/:id/history", h.Students.AddHistory)
	v1.DELETE("/students/:id/history/:entryId", h.Students.DeleteHistory)

	// Instructor registry and the pending-payroll view.
	v1.GET("/instructors", h.Instructors.List)
	v1.POST("/instructors", h.Instructors.Create)
	v1.GET("/instructors/:id", h.Instructors.Get)
	v1.PUT("/instructors/:id", h.Instructors.Update)
	v1.DELETE("/instructors/:id", h.Instructors.Delete)
	v1.GET("/instructors/:id/payroll", h.Instructors.Payroll)

	// Class schedule, lifecycle and attendance.
	v1.GET("/sessions", h.Sessions.List)
	v1.POST("/sessions", h.Sessions.Create)
	v1.GET("/sessions/:id", h.Sessions.Get)
	v1.PUT("/sessions/:id", h.Sessions.Update)
	v1.DELETE("/sessions/:id", h.Sessions.Delete)
	v1.PUT("/sessions/:id/status", h.Sessions.SetStatus)
	v1.POST("/sessions/:id/attendees", h.Sessions.Enroll)
	v1.DELETE("/sessions/:id/attendees/:studentId", h.Sessions.Unenroll)

	// Instructor payment log.
	v1.GET("/payroll/payments", h.Payroll.List)
	v1.POST("/payroll/payments", h.Payroll.Record)
	v1.DELETE("/payroll/payments/:id", h.Payroll.Delete)

	// Per-room rate configuration and the discipline catalog.
	v1.GET("/settings/rates", h.Settings.Rates)
	v1.GET("/settings/disciplines", h.Settings.Disciplines)
	v1.PUT("/settings/rates/:roomId", h.Settings.UpdateRate)
	v1.DELETE("/settings/rates/:roomId", h.Settings.ResetRate)
}
