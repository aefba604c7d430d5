package engine

import (
	"context"
	"fmt"

	"github.com/jaev1996/atria-fitness/internal/model"
)

// Enroll books a student into a session.  Checks run in order: session and
// student existence, capacity, duplicate booking, schedule collision, and
// plan eligibility.  Guests and courtesy attendance skip the plan check.
// No credit is reserved here; debiting happens at completion.
func (s *Service) Enroll(ctx context.Context, sessionID, studentID string, attendance model.AttendanceType) error {
	return s.update(ctx, &ChangeEvent{Entity: "session", Action: "updated", ID: sessionID}, func(doc *model.Document) error {
		sess := doc.Session(sessionID)
		if sess == nil {
			return fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
		}
		student := doc.Student(studentID)
		if student == nil {
			return fmt.Errorf("%w: student %s", ErrNotFound, studentID)
		}
		if attendance == "" {
			attendance = model.AttendanceStandard
		}
		if sess.BookedCount() >= sess.Capacity {
			return fmt.Errorf("%w: %d/%d", ErrCapacityExceeded, sess.BookedCount(), sess.Capacity)
		}
		for _, a := range sess.Attendees {
			if a.StudentID == studentID && a.Status == model.AttendeeBooked {
				return ErrAlreadyEnrolled
			}
		}
		if !IsAvailable(doc, studentID, sess.Date, sess.StartTime, RoleAttendee, sess.ID) {
			return fmt.Errorf("%w: student busy at %s %s", ErrScheduleCollision, sess.Date, sess.StartTime)
		}
		if attendance == model.AttendanceStandard && student.Status != model.StudentGuest {
			if s.eligiblePlan(student, sess.Type) == nil {
				return fmt.Errorf("%w: no active %s plan with credits", ErrNoEligiblePlan, sess.Type)
			}
		}
		sess.Attendees = append(sess.Attendees, model.Attendee{
			StudentID:      student.ID,
			Name:           student.Name,
			Status:         model.AttendeeBooked,
			AttendanceType: attendance,
			CreditDeducted: false,
		})
		return nil
	})
}

// Unenroll removes the student's attendee record from the session.  When a
// credit was already deducted (the session completed while they were
// booked) one credit is refunded to a matching plan, with no upper bound.
// The refund is best effort: if the matching plan was consumed and removed
// in the meantime there is nothing to credit.
func (s *Service) Unenroll(ctx context.Context, sessionID, studentID string) error {
	return s.update(ctx, &ChangeEvent{Entity: "session", Action: "updated", ID: sessionID}, func(doc *model.Document) error {
		sess := doc.Session(sessionID)
		if sess == nil {
			return fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
		}
		idx := -1
		for i, a := range sess.Attendees {
			if a.StudentID == studentID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: attendee %s", ErrNotFound, studentID)
		}
		removed := sess.Attendees[idx]
		sess.Attendees = append(sess.Attendees[:idx], sess.Attendees[idx+1:]...)

		if removed.CreditDeducted {
			if student := doc.Student(studentID); student != nil {
				if plan := s.refundablePlan(student, sess.Type); plan != nil {
					plan.Credits++
				}
			}
		}
		return nil
	})
}

// eligiblePlan finds the first active plan with remaining credits whose
// discipline covers the session type.  List order decides ties.
func (s *Service) eligiblePlan(student *model.Student, sessionType string) *model.Plan {
	for i := range student.Plans {
		p := &student.Plans[i]
		if p.Active && p.Credits > 0 && s.matcher.Match(p.Discipline, sessionType) {
			return p
		}
	}
	return nil
}

// refundablePlan is the refund-side counterpart: the credit balance does
// not matter, only the discipline match.
func (s *Service) refundablePlan(student *model.Student, sessionType string) *model.Plan {
	for i := range student.Plans {
		p := &student.Plans[i]
		if p.Active && s.matcher.Match(p.Discipline, sessionType) {
			return p
		}
	}
	return nil
}
