package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/jaev1996/atria-fitness/internal/model"
)

func poleSession(instructorID, date, start string) SessionParams {
	return SessionParams{
		InstructorID: instructorID,
		Date:         date,
		StartTime:    start,
		Type:         "Pole Dance",
		Room:         "sala-pole",
	}
}

func TestCreateSession(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, poleSession("i1", "2025-03-15", "18:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sess.Status != model.SessionScheduled {
		t.Errorf("status = %q, want scheduled", sess.Status)
	}
	if sess.Capacity != defaultCapacity {
		t.Errorf("capacity = %d, want default %d", sess.Capacity, defaultCapacity)
	}
	if sess.InstructorName != "Valentina Ríos" {
		t.Errorf("instructor name = %q", sess.InstructorName)
	}
	if got := loadDoc(t, s).Session(sess.ID); got == nil {
		t.Fatal("session not persisted")
	}
}

func TestCreateSessionValidation(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	cases := []struct {
		name string
		p    SessionParams
	}{
		{"missing fields", SessionParams{InstructorID: "i1"}},
		{"bad date", poleSession("i1", "15-03-2025", "18:00")},
		{"bad time", poleSession("i1", "2025-03-15", "6pm")},
		{"unknown room", func() SessionParams {
			p := poleSession("i1", "2025-03-15", "18:00")
			p.Room = "sala-nope"
			return p
		}()},
	}
	for _, c := range cases {
		if _, err := s.CreateSession(ctx, c.p); !errors.Is(err, ErrValidation) {
			t.Errorf("%s: err = %v, want ErrValidation", c.name, err)
		}
	}

	if _, err := s.CreateSession(ctx, poleSession("missing", "2025-03-15", "18:00")); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown instructor: err = %v, want ErrNotFound", err)
	}
}

func TestCreateSessionCollisions(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if _, err := s.CreateSession(ctx, poleSession("i1", "2025-03-15", "18:00")); err != nil {
		t.Fatalf("first create: %v", err)
	}

	// Same instructor, different room, same slot.
	p := poleSession("i1", "2025-03-15", "18:00")
	p.Room = "sala-telas"
	p.Type = "Telas"
	if _, err := s.CreateSession(ctx, p); !errors.Is(err, ErrScheduleCollision) {
		t.Errorf("instructor double-booking: err = %v, want ErrScheduleCollision", err)
	}

	// Different instructor, same room, same slot.
	q := poleSession("i2", "2025-03-15", "18:00")
	if _, err := s.CreateSession(ctx, q); !errors.Is(err, ErrScheduleCollision) {
		t.Errorf("room double-booking: err = %v, want ErrScheduleCollision", err)
	}

	// Same room, different slot is fine.
	if _, err := s.CreateSession(ctx, poleSession("i1", "2025-03-15", "19:00")); err != nil {
		t.Errorf("adjacent slot: %v", err)
	}
}

func TestCancelledSessionFreesSlot(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, poleSession("i1", "2025-03-15", "18:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.SetSessionStatus(ctx, sess.ID, model.SessionCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := s.CreateSession(ctx, poleSession("i2", "2025-03-15", "18:00")); err != nil {
		t.Errorf("slot after cancel should be free: %v", err)
	}
}

func TestUpdateSessionExcludesItself(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, poleSession("i1", "2025-03-15", "18:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	p := poleSession("i1", "2025-03-15", "18:00")
	p.Notes = "traer calentadores"
	p.Capacity = 8
	updated, err := s.UpdateSession(ctx, sess.ID, p)
	if err != nil {
		t.Fatalf("update in place: %v", err)
	}
	if updated.Notes != "traer calentadores" || updated.Capacity != 8 {
		t.Errorf("update not applied: %+v", updated)
	}

	if _, err := s.UpdateSession(ctx, "nope", p); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown session: err = %v, want ErrNotFound", err)
	}
}

func TestDeleteSessionKeepsCharges(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	givePlan(t, s, "1", "p1", "Pole Dance", "Pole 8", 8)

	sess, err := s.CreateSession(ctx, poleSession("i1", "2025-03-15", "18:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Enroll(ctx, sess.ID, "1", model.AttendanceStandard); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if _, err := s.SetSessionStatus(ctx, sess.ID, model.SessionCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := s.DeleteSession(ctx, sess.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	doc := loadDoc(t, s)
	if doc.Session(sess.ID) != nil {
		t.Fatal("session still present")
	}
	// Deleting a completed session must not refund the deducted credit.
	if got := doc.Student("1").Plans[0].Credits; got != 7 {
		t.Errorf("credits = %d, want 7 (no refund on delete)", got)
	}

	if err := s.DeleteSession(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete: err = %v, want ErrNotFound", err)
	}
}
