package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/jaev1996/atria-fitness/internal/model"
)

func TestUpdateRoomRateOverridesDefaults(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	override := model.RoomRate{
		Tiers: []model.RateTier{
			{Min: 1, Max: nil, Price: 30},
		},
		PrivateRate: 40,
	}
	if err := s.UpdateRoomRate(ctx, "sala-pole", override); err != nil {
		t.Fatalf("update rate: %v", err)
	}

	rates, err := s.EffectiveRates(ctx)
	if err != nil {
		t.Fatalf("effective rates: %v", err)
	}
	if got := rates["sala-pole"].PrivateRate; got != 40 {
		t.Errorf("sala-pole private = %v, want override 40", got)
	}
	// Other rooms keep their catalog defaults.
	if got := rates["sala-yoga"].PrivateRate; got != 20 {
		t.Errorf("sala-yoga private = %v, want default 20", got)
	}

	// Pay now follows the override.
	sess, err := s.CreateSession(ctx, poleSession("i1", "2025-03-15", "18:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	enrollGuests(t, s, sess.ID, 2)
	doc := loadDoc(t, s)
	if got := CalculatePay(doc, doc.Session(sess.ID)); got != 30 {
		t.Errorf("pay = %v, want 30 under override", got)
	}

	if err := s.ResetRoomRate(ctx, "sala-pole"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	doc = loadDoc(t, s)
	if got := CalculatePay(doc, doc.Session(sess.ID)); got != 10 {
		t.Errorf("pay = %v, want default 10 after reset", got)
	}
}

func TestUpdateRoomRateValidation(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if err := s.UpdateRoomRate(ctx, "sala-nope", model.RoomRate{}); !errors.Is(err, ErrValidation) {
		t.Errorf("unknown room: err = %v, want ErrValidation", err)
	}
	if err := s.UpdateRoomRate(ctx, "sala-pole", model.RoomRate{PrivateRate: -1}); !errors.Is(err, ErrValidation) {
		t.Errorf("negative private rate: err = %v, want ErrValidation", err)
	}

	three := 3
	five := 5
	overlapping := model.RoomRate{Tiers: []model.RateTier{
		{Min: 1, Max: &five, Price: 10},
		{Min: 3, Max: nil, Price: 20},
	}}
	if err := s.UpdateRoomRate(ctx, "sala-pole", overlapping); !errors.Is(err, ErrValidation) {
		t.Errorf("overlapping tiers: err = %v, want ErrValidation", err)
	}

	inverted := model.RoomRate{Tiers: []model.RateTier{
		{Min: 5, Max: &three, Price: 10},
	}}
	if err := s.UpdateRoomRate(ctx, "sala-pole", inverted); !errors.Is(err, ErrValidation) {
		t.Errorf("inverted bounds: err = %v, want ErrValidation", err)
	}
}

func TestResetUnknownRoom(t *testing.T) {
	s := newTestService()
	if err := s.ResetRoomRate(context.Background(), "sala-nope"); !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}
