package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jaev1996/atria-fitness/internal/model"
)

// PayrollSummary aggregates the sessions awaiting payment for one
// instructor over a period.
type PayrollSummary struct {
	Sessions      []model.ClassSession `json:"sessions"`
	TotalSessions int                  `json:"totalSessions"`
	TotalPay      float64              `json:"totalPay"`
	AvgAttendance float64              `json:"avgAttendance"`
}

// PendingPayroll collects the instructor's completed or confirmed sessions
// inside the inclusive date range that are not yet covered by a recorded
// payment, and sums their pay.  The range end counts as end-of-day.  Pure
// over the document.
func PendingPayroll(doc *model.Document, instructorID, from, to string) (PayrollSummary, error) {
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return PayrollSummary{}, fmt.Errorf("%w: bad range start %q", ErrValidation, from)
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return PayrollSummary{}, fmt.Errorf("%w: bad range end %q", ErrValidation, to)
	}
	end = end.Add(24*time.Hour - time.Second) // include the whole final day

	sum := PayrollSummary{Sessions: []model.ClassSession{}}
	attendees := 0
	for i := range doc.Sessions {
		sess := &doc.Sessions[i]
		if sess.InstructorID != instructorID || sess.PaymentID != "" {
			continue
		}
		if sess.Status != model.SessionCompleted && sess.Status != model.SessionConfirmed {
			continue
		}
		day, err := time.Parse("2006-01-02", sess.Date)
		if err != nil || day.Before(start) || day.After(end) {
			continue
		}
		sum.Sessions = append(sum.Sessions, *sess)
		sum.TotalPay += CalculatePay(doc, sess)
		attendees += sess.BookedCount()
	}
	sort.Slice(sum.Sessions, func(i, j int) bool {
		if sum.Sessions[i].Date != sum.Sessions[j].Date {
			return sum.Sessions[i].Date < sum.Sessions[j].Date
		}
		return sum.Sessions[i].StartTime < sum.Sessions[j].StartTime
	})
	sum.TotalSessions = len(sum.Sessions)
	if sum.TotalSessions > 0 {
		sum.AvgAttendance = float64(attendees) / float64(sum.TotalSessions)
	}
	return sum, nil
}

// PaymentParams carries the fields of a payroll liquidation to record.
type PaymentParams struct {
	InstructorID string
	Amount       float64
	PeriodStart  string
	PeriodEnd    string
	SessionIDs   []string
	Notes        string
}

// RecordInstructorPayment appends a payment to the log and stamps its id
// on every covered session, taking them out of the pending pool.  A listed
// session already covered by another payment aborts the whole record.
func (s *Service) RecordInstructorPayment(ctx context.Context, p PaymentParams) (model.InstructorPayment, error) {
	var payment model.InstructorPayment
	ev := &ChangeEvent{Entity: "payroll", Action: "created"}
	err := s.update(ctx, ev, func(doc *model.Document) error {
		if p.InstructorID == "" || len(p.SessionIDs) == 0 {
			return fmt.Errorf("%w: instructor and sessions are required", ErrValidation)
		}
		if doc.Instructor(p.InstructorID) == nil {
			return fmt.Errorf("%w: instructor %s", ErrNotFound, p.InstructorID)
		}
		covered := make([]*model.ClassSession, 0, len(p.SessionIDs))
		for _, id := range p.SessionIDs {
			sess := doc.Session(id)
			if sess == nil {
				return fmt.Errorf("%w: session %s", ErrNotFound, id)
			}
			if sess.PaymentID != "" {
				return fmt.Errorf("%w: session %s already paid", ErrConflict, id)
			}
			covered = append(covered, sess)
		}
		payment = model.InstructorPayment{
			ID:           s.newID(),
			InstructorID: p.InstructorID,
			Date:         s.today(),
			Amount:       p.Amount,
			PeriodStart:  p.PeriodStart,
			PeriodEnd:    p.PeriodEnd,
			SessionIDs:   append([]string(nil), p.SessionIDs...),
			Notes:        p.Notes,
		}
		for _, sess := range covered {
			sess.PaymentID = payment.ID
		}
		doc.InstructorPayments = append(doc.InstructorPayments, payment)
		ev.ID = payment.ID
		return nil
	})
	return payment, err
}

// DeleteInstructorPayment removes a recorded payment and clears the
// payment linkage from every session it covered, returning them to the
// pending-payroll pool.
func (s *Service) DeleteInstructorPayment(ctx context.Context, id string) error {
	return s.update(ctx, &ChangeEvent{Entity: "payroll", Action: "deleted", ID: id}, func(doc *model.Document) error {
		idx := -1
		for i := range doc.InstructorPayments {
			if doc.InstructorPayments[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: payment %s", ErrNotFound, id)
		}
		doc.InstructorPayments = append(doc.InstructorPayments[:idx], doc.InstructorPayments[idx+1:]...)
		for i := range doc.Sessions {
			if doc.Sessions[i].PaymentID == id {
				doc.Sessions[i].PaymentID = ""
			}
		}
		return nil
	})
}
