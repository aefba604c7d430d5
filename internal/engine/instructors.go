package engine

import (
	"context"
	"fmt"

	"github.com/jaev1996/atria-fitness/internal/model"
)

// InstructorParams carries the fields accepted when registering an
// instructor.
type InstructorParams struct {
	Name        string
	Email       string
	Phone       string
	Bio         string
	Specialties []string
}

// AddInstructor registers a new instructor.
func (s *Service) AddInstructor(ctx context.Context, p InstructorParams) (model.Instructor, error) {
	var created model.Instructor
	ev := &ChangeEvent{Entity: "instructor", Action: "created"}
	err := s.update(ctx, ev, func(doc *model.Document) error {
		if p.Name == "" {
			return fmt.Errorf("%w: name is required", ErrValidation)
		}
		if p.Specialties == nil {
			p.Specialties = []string{}
		}
		created = model.Instructor{
			ID:          s.newID(),
			Name:        p.Name,
			Email:       p.Email,
			Phone:       p.Phone,
			Bio:         p.Bio,
			Specialties: p.Specialties,
		}
		doc.Instructors = append(doc.Instructors, created)
		ev.ID = created.ID
		return nil
	})
	return created, err
}

// InstructorUpdate lists the mutable instructor fields.  Nil pointers
// leave the current value untouched.
type InstructorUpdate struct {
	Name        *string
	Email       *string
	Phone       *string
	Bio         *string
	Specialties *[]string
}

// UpdateInstructor applies a partial update.  A name change is propagated
// to the denormalized instructor name on sessions.
func (s *Service) UpdateInstructor(ctx context.Context, id string, u InstructorUpdate) error {
	return s.update(ctx, &ChangeEvent{Entity: "instructor", Action: "updated", ID: id}, func(doc *model.Document) error {
		inst := doc.Instructor(id)
		if inst == nil {
			return fmt.Errorf("%w: instructor %s", ErrNotFound, id)
		}
		if u.Name != nil {
			if *u.Name == "" {
				return fmt.Errorf("%w: name cannot be empty", ErrValidation)
			}
			inst.Name = *u.Name
			for i := range doc.Sessions {
				if doc.Sessions[i].InstructorID == id {
					doc.Sessions[i].InstructorName = *u.Name
				}
			}
		}
		if u.Email != nil {
			inst.Email = *u.Email
		}
		if u.Phone != nil {
			inst.Phone = *u.Phone
		}
		if u.Bio != nil {
			inst.Bio = *u.Bio
		}
		if u.Specialties != nil {
			inst.Specialties = *u.Specialties
		}
		return nil
	})
}

// DeleteInstructor removes the instructor record.  Their sessions and
// recorded payments stay untouched.
func (s *Service) DeleteInstructor(ctx context.Context, id string) error {
	return s.update(ctx, &ChangeEvent{Entity: "instructor", Action: "deleted", ID: id}, func(doc *model.Document) error {
		for i := range doc.Instructors {
			if doc.Instructors[i].ID == id {
				doc.Instructors = append(doc.Instructors[:i], doc.Instructors[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: instructor %s", ErrNotFound, id)
	})
}
