package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/jaev1996/atria-fitness/internal/config"
	"github.com/jaev1996/atria-fitness/internal/model"
)

// SessionParams carries the user-editable fields of a class session.
type SessionParams struct {
	InstructorID string
	Date         string // "2006-01-02"
	StartTime    string // "15:04"
	Type         string
	Room         string
	Capacity     int
	IsPrivate    bool
	Notes        string
}

const defaultCapacity = 10

func (p *SessionParams) validate() error {
	if p.InstructorID == "" || p.Type == "" || p.Room == "" || p.Date == "" || p.StartTime == "" {
		return fmt.Errorf("%w: instructor, discipline, room, date and start time are required", ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", p.Date); err != nil {
		return fmt.Errorf("%w: bad date %q", ErrValidation, p.Date)
	}
	if _, err := time.Parse("15:04", p.StartTime); err != nil {
		return fmt.Errorf("%w: bad start time %q", ErrValidation, p.StartTime)
	}
	if config.RoomByID(p.Room) == nil {
		return fmt.Errorf("%w: unknown room %q", ErrValidation, p.Room)
	}
	if p.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity", ErrValidation)
	}
	if p.Capacity == 0 {
		p.Capacity = defaultCapacity
	}
	return nil
}

// CreateSession schedules a new session.  The instructor must exist and be
// free at the slot, and the (room, date, startTime) slot must not already
// hold a non-cancelled session.
func (s *Service) CreateSession(ctx context.Context, p SessionParams) (model.ClassSession, error) {
	var created model.ClassSession
	ev := &ChangeEvent{Entity: "session", Action: "created"}
	err := s.update(ctx, ev, func(doc *model.Document) error {
		if err := p.validate(); err != nil {
			return err
		}
		inst := doc.Instructor(p.InstructorID)
		if inst == nil {
			return fmt.Errorf("%w: instructor %s", ErrNotFound, p.InstructorID)
		}
		if !IsAvailable(doc, p.InstructorID, p.Date, p.StartTime, RoleInstructor, "") {
			return fmt.Errorf("%w: instructor busy at %s %s", ErrScheduleCollision, p.Date, p.StartTime)
		}
		if slotTaken(doc, p.Room, p.Date, p.StartTime, "") {
			return fmt.Errorf("%w: room %s taken at %s %s", ErrScheduleCollision, p.Room, p.Date, p.StartTime)
		}
		created = model.ClassSession{
			ID:             s.newID(),
			InstructorID:   inst.ID,
			InstructorName: inst.Name,
			Date:           p.Date,
			StartTime:      p.StartTime,
			Status:         model.SessionScheduled,
			Type:           p.Type,
			Room:           p.Room,
			Capacity:       p.Capacity,
			Attendees:      []model.Attendee{},
			IsPrivate:      p.IsPrivate,
			Notes:          p.Notes,
		}
		doc.Sessions = append(doc.Sessions, created)
		ev.ID = created.ID
		return nil
	})
	return created, err
}

// UpdateSession rewrites the editable fields of an existing session.  The
// same collision and slot checks apply, excluding the session itself.
// Status and attendees are managed by their own operations.
func (s *Service) UpdateSession(ctx context.Context, id string, p SessionParams) (model.ClassSession, error) {
	var updated model.ClassSession
	err := s.update(ctx, &ChangeEvent{Entity: "session", Action: "updated", ID: id}, func(doc *model.Document) error {
		sess := doc.Session(id)
		if sess == nil {
			return fmt.Errorf("%w: session %s", ErrNotFound, id)
		}
		if err := p.validate(); err != nil {
			return err
		}
		inst := doc.Instructor(p.InstructorID)
		if inst == nil {
			return fmt.Errorf("%w: instructor %s", ErrNotFound, p.InstructorID)
		}
		if !IsAvailable(doc, p.InstructorID, p.Date, p.StartTime, RoleInstructor, id) {
			return fmt.Errorf("%w: instructor busy at %s %s", ErrScheduleCollision, p.Date, p.StartTime)
		}
		if slotTaken(doc, p.Room, p.Date, p.StartTime, id) {
			return fmt.Errorf("%w: room %s taken at %s %s", ErrScheduleCollision, p.Room, p.Date, p.StartTime)
		}
		sess.InstructorID = inst.ID
		sess.InstructorName = inst.Name
		sess.Date = p.Date
		sess.StartTime = p.StartTime
		sess.Type = p.Type
		sess.Room = p.Room
		sess.Capacity = p.Capacity
		sess.IsPrivate = p.IsPrivate
		sess.Notes = p.Notes
		updated = *sess
		return nil
	})
	return updated, err
}

// DeleteSession removes a session unconditionally.  Credits already
// deducted at completion are deliberately not refunded; deleting a
// completed session keeps the attendance history as charged.
func (s *Service) DeleteSession(ctx context.Context, id string) error {
	return s.update(ctx, &ChangeEvent{Entity: "session", Action: "deleted", ID: id}, func(doc *model.Document) error {
		for i := range doc.Sessions {
			if doc.Sessions[i].ID == id {
				doc.Sessions = append(doc.Sessions[:i], doc.Sessions[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: session %s", ErrNotFound, id)
	})
}
