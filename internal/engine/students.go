package engine

import (
	"context"
	"fmt"

	"github.com/jaev1996/atria-fitness/internal/model"
)

// StudentParams carries the fields accepted when registering a student.
type StudentParams struct {
	Name             string
	Phone            string
	Email            string
	EmergencyContact string
	Status           model.StudentStatus
}

// AddStudent registers a new student with empty plan, payment and history
// lists.
func (s *Service) AddStudent(ctx context.Context, p StudentParams) (model.Student, error) {
	var created model.Student
	ev := &ChangeEvent{Entity: "student", Action: "created"}
	err := s.update(ctx, ev, func(doc *model.Document) error {
		if p.Name == "" {
			return fmt.Errorf("%w: name is required", ErrValidation)
		}
		if p.Status == "" {
			p.Status = model.StudentActive
		}
		created = model.Student{
			ID:               s.newID(),
			Name:             p.Name,
			Phone:            p.Phone,
			Email:            p.Email,
			EmergencyContact: p.EmergencyContact,
			Status:           p.Status,
			Plans:            []model.Plan{},
			Payments:         []model.Payment{},
			History:          []model.HistoryEntry{},
		}
		doc.Students = append(doc.Students, created)
		ev.ID = created.ID
		return nil
	})
	return created, err
}

// StudentProfileUpdate lists the mutable profile fields.  Nil pointers
// leave the current value untouched.
type StudentProfileUpdate struct {
	Name             *string
	Phone            *string
	Email            *string
	EmergencyContact *string
	Status           *model.StudentStatus
}

// StudentMedicalUpdate lists the mutable medical-file fields.
type StudentMedicalUpdate struct {
	MedicalInfo *string
	Allergies   *string
	Injuries    *string
	Conditions  *string
	SportsInfo  *string
}

// UpdateStudentProfile applies a partial profile update.
func (s *Service) UpdateStudentProfile(ctx context.Context, id string, u StudentProfileUpdate) error {
	return s.update(ctx, &ChangeEvent{Entity: "student", Action: "updated", ID: id}, func(doc *model.Document) error {
		st := doc.Student(id)
		if st == nil {
			return fmt.Errorf("%w: student %s", ErrNotFound, id)
		}
		if u.Name != nil {
			if *u.Name == "" {
				return fmt.Errorf("%w: name cannot be empty", ErrValidation)
			}
			st.Name = *u.Name
		}
		if u.Phone != nil {
			st.Phone = *u.Phone
		}
		if u.Email != nil {
			st.Email = *u.Email
		}
		if u.EmergencyContact != nil {
			st.EmergencyContact = *u.EmergencyContact
		}
		if u.Status != nil {
			st.Status = *u.Status
		}
		return nil
	})
}

// UpdateStudentMedical applies a partial medical-file update.
func (s *Service) UpdateStudentMedical(ctx context.Context, id string, u StudentMedicalUpdate) error {
	return s.update(ctx, &ChangeEvent{Entity: "student", Action: "updated", ID: id}, func(doc *model.Document) error {
		st := doc.Student(id)
		if st == nil {
			return fmt.Errorf("%w: student %s", ErrNotFound, id)
		}
		if u.MedicalInfo != nil {
			st.MedicalInfo = *u.MedicalInfo
		}
		if u.Allergies != nil {
			st.Allergies = *u.Allergies
		}
		if u.Injuries != nil {
			st.Injuries = *u.Injuries
		}
		if u.Conditions != nil {
			st.Conditions = *u.Conditions
		}
		if u.SportsInfo != nil {
			st.SportsInfo = *u.SportsInfo
		}
		return nil
	})
}

// DeleteStudent removes the student record.  Their attendee entries on
// past sessions are kept for payroll history.
func (s *Service) DeleteStudent(ctx context.Context, id string) error {
	return s.update(ctx, &ChangeEvent{Entity: "student", Action: "deleted", ID: id}, func(doc *model.Document) error {
		for i := range doc.Students {
			if doc.Students[i].ID == id {
				doc.Students = append(doc.Students[:i], doc.Students[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: student %s", ErrNotFound, id)
	})
}

// ProcessPayment records a student payment and attaches the purchased plan
// in one step.  The payment log is append-only.
func (s *Service) ProcessPayment(ctx context.Context, studentID string, amount float64, method model.PaymentMethod, planName string, credits int, discipline string) (model.Payment, error) {
	var payment model.Payment
	err := s.update(ctx, &ChangeEvent{Entity: "student", Action: "updated", ID: studentID}, func(doc *model.Document) error {
		st := doc.Student(studentID)
		if st == nil {
			return fmt.Errorf("%w: student %s", ErrNotFound, studentID)
		}
		if planName == "" || discipline == "" || credits <= 0 || amount < 0 {
			return fmt.Errorf("%w: plan, discipline, credits and amount are required", ErrValidation)
		}
		payment = model.Payment{
			ID:      s.newID(),
			Date:    s.today(),
			Amount:  amount,
			Method:  method,
			Concept: planName,
		}
		st.Payments = append(st.Payments, payment)
		st.Plans = append(st.Plans, model.Plan{
			ID:           s.newID(),
			Discipline:   discipline,
			Credits:      credits,
			Active:       true,
			OriginalName: planName,
		})
		return nil
	})
	return payment, err
}

// DeletePlan removes a plan from the student.  Payments already logged for
// it stay in the ledger.
func (s *Service) DeletePlan(ctx context.Context, studentID, planID string) error {
	return s.update(ctx, &ChangeEvent{Entity: "student", Action: "updated", ID: studentID}, func(doc *model.Document) error {
		st := doc.Student(studentID)
		if st == nil {
			return fmt.Errorf("%w: student %s", ErrNotFound, studentID)
		}
		for i := range st.Plans {
			if st.Plans[i].ID == planID {
				st.Plans = append(st.Plans[:i], st.Plans[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: plan %s", ErrNotFound, planID)
	})
}

// HistoryParams carries a manual history adjustment.
type HistoryParams struct {
	Date     string
	Activity string
	Notes    string
	Cost     float64
}

// AddHistoryEntry appends a manual entry to the student's class history.
func (s *Service) AddHistoryEntry(ctx context.Context, studentID string, p HistoryParams) (model.HistoryEntry, error) {
	var entry model.HistoryEntry
	err := s.update(ctx, &ChangeEvent{Entity: "student", Action: "updated", ID: studentID}, func(doc *model.Document) error {
		st := doc.Student(studentID)
		if st == nil {
			return fmt.Errorf("%w: student %s", ErrNotFound, studentID)
		}
		if p.Activity == "" {
			return fmt.Errorf("%w: activity is required", ErrValidation)
		}
		if p.Date == "" {
			p.Date = s.today()
		}
		entry = model.HistoryEntry{
			ID:       s.newID(),
			Date:     p.Date,
			Activity: p.Activity,
			Notes:    p.Notes,
			Cost:     p.Cost,
		}
		st.History = append(st.History, entry)
		return nil
	})
	return entry, err
}

// DeleteHistoryEntry removes one entry from the student's history.
func (s *Service) DeleteHistoryEntry(ctx context.Context, studentID, entryID string) error {
	return s.update(ctx, &ChangeEvent{Entity: "student", Action: "updated", ID: studentID}, func(doc *model.Document) error {
		st := doc.Student(studentID)
		if st == nil {
			return fmt.Errorf("%w: student %s", ErrNotFound, studentID)
		}
		for i := range st.History {
			if st.History[i].ID == entryID {
				st.History = append(st.History[:i], st.History[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: history entry %s", ErrNotFound, entryID)
	})
}
