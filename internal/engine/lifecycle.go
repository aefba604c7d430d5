package engine

import (
	"context"
	"fmt"

	"github.com/jaev1996/atria-fitness/internal/model"
)

// CreditResult tags the per-attendee outcome of a session completion.
type CreditResult string

const (
	CreditDeducted        CreditResult = "deducted"
	CreditNoPlanFound     CreditResult = "no_plan_found"
	CreditAlreadyDeducted CreditResult = "already_deducted"
	CreditNotStandard     CreditResult = "not_standard"
)

// CreditOutcome reports what happened to one booked attendee when their
// session completed.  Callers can surface or assert on these instead of
// inferring the effect from side effects.
type CreditOutcome struct {
	StudentID string       `json:"studentId"`
	Name      string       `json:"name"`
	Result    CreditResult `json:"result"`
	PlanName  string       `json:"planName,omitempty"`
}

// SetSessionStatus moves a session to a new lifecycle state.  The credit
// side effect fires only on the edge old != completed && new == completed:
// each booked standard attendee without a prior deduction is charged one
// credit from their first matching plan, a history entry is written, and
// plans reaching zero credits are removed unless they are the unlimited
// variant.  Attendees without an eligible plan are left unchanged; the
// completion itself never fails over missing plans.
//
// Moving a completed session back to another status is allowed for
// corrections and performs no credit reconciliation.
func (s *Service) SetSessionStatus(ctx context.Context, id string, status model.SessionStatus) ([]CreditOutcome, error) {
	switch status {
	case model.SessionScheduled, model.SessionConfirmed, model.SessionRescheduled,
		model.SessionCancelled, model.SessionCompleted:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	var outcomes []CreditOutcome
	err := s.update(ctx, &ChangeEvent{Entity: "session", Action: "updated", ID: id}, func(doc *model.Document) error {
		sess := doc.Session(id)
		if sess == nil {
			return fmt.Errorf("%w: session %s", ErrNotFound, id)
		}
		old := sess.Status
		sess.Status = status
		if old != model.SessionCompleted && status == model.SessionCompleted {
			outcomes = s.settleCredits(doc, sess)
		}
		return nil
	})
	return outcomes, err
}

// settleCredits applies the completion charge to every booked attendee and
// returns the per-attendee outcomes.
func (s *Service) settleCredits(doc *model.Document, sess *model.ClassSession) []CreditOutcome {
	outcomes := make([]CreditOutcome, 0, len(sess.Attendees))
	for i := range sess.Attendees {
		a := &sess.Attendees[i]
		if a.Status != model.AttendeeBooked {
			continue
		}
		out := CreditOutcome{StudentID: a.StudentID, Name: a.Name}
		switch {
		case a.AttendanceType != model.AttendanceStandard:
			out.Result = CreditNotStandard
		case a.CreditDeducted:
			out.Result = CreditAlreadyDeducted
		default:
			out = s.deductCredit(doc, sess, a)
		}
		outcomes = append(outcomes, out)
	}
	return outcomes
}

// deductCredit charges one credit for a single attendee.  Exhausted plans
// are dropped from the student unless named "Ilimitado".
func (s *Service) deductCredit(doc *model.Document, sess *model.ClassSession, a *model.Attendee) CreditOutcome {
	out := CreditOutcome{StudentID: a.StudentID, Name: a.Name}
	student := doc.Student(a.StudentID)
	if student == nil {
		out.Result = CreditNoPlanFound
		return out
	}
	plan := s.eligiblePlan(student, sess.Type)
	if plan == nil {
		out.Result = CreditNoPlanFound
		return out
	}
	plan.Credits--
	a.CreditDeducted = true
	out.Result = CreditDeducted
	out.PlanName = plan.OriginalName

	student.History = append(student.History, model.HistoryEntry{
		ID:       s.newID(),
		Date:     sess.Date,
		Activity: "Clase de " + sess.Type,
		Notes:    "Instructora: " + sess.InstructorName,
		Cost:     0,
	})

	if plan.Credits <= 0 && !plan.Unlimited() {
		for i := range student.Plans {
			if student.Plans[i].ID == plan.ID {
				student.Plans = append(student.Plans[:i], student.Plans[i+1:]...)
				break
			}
		}
	}
	return out
}
