package engine

import (
	"context"
	"errors"
	"testing"
)

func TestAddInstructor(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	inst, err := s.AddInstructor(ctx, InstructorParams{
		Name:        "Camila Torres",
		Specialties: []string{"Glúteos"},
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if loadDoc(t, s).Instructor(inst.ID) == nil {
		t.Fatal("instructor not persisted")
	}

	if _, err := s.AddInstructor(ctx, InstructorParams{}); !errors.Is(err, ErrValidation) {
		t.Errorf("empty name: err = %v, want ErrValidation", err)
	}
}

func TestRenameInstructorPropagates(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, poleSession("i1", "2025-03-15", "18:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.UpdateInstructor(ctx, "i1", InstructorUpdate{Name: strp("Valentina R. Díaz")}); err != nil {
		t.Fatalf("rename: %v", err)
	}

	doc := loadDoc(t, s)
	if got := doc.Instructor("i1").Name; got != "Valentina R. Díaz" {
		t.Errorf("name = %q", got)
	}
	if got := doc.Session(sess.ID).InstructorName; got != "Valentina R. Díaz" {
		t.Errorf("denormalized session name = %q, want the new name", got)
	}
}

func TestDeleteInstructorKeepsSessions(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, poleSession("i2", "2025-03-15", "10:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.DeleteInstructor(ctx, "i2"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	doc := loadDoc(t, s)
	if doc.Instructor("i2") != nil {
		t.Fatal("instructor still present")
	}
	if doc.Session(sess.ID) == nil {
		t.Error("session dropped with the instructor")
	}

	if err := s.DeleteInstructor(ctx, "i2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete twice: err = %v, want ErrNotFound", err)
	}
}
