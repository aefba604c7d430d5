package engine

import (
	"context"
	"fmt"

	"github.com/jaev1996/atria-fitness/internal/config"
	"github.com/jaev1996/atria-fitness/internal/model"
)

// EffectiveRates returns the payroll configuration for every room in the
// catalog, with stored overrides applied over the defaults.
func (s *Service) EffectiveRates(ctx context.Context) (map[string]model.RoomRate, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]model.RoomRate, len(config.Rooms))
	for _, room := range config.Rooms {
		out[room.ID] = RoomRate(doc, room.ID)
	}
	return out, nil
}

// UpdateRoomRate overrides the rate configuration for one room.  The tier
// table must be coherent: non-negative bounds and prices, no overlaps.
func (s *Service) UpdateRoomRate(ctx context.Context, roomID string, rate model.RoomRate) error {
	return s.update(ctx, &ChangeEvent{Entity: "settings", Action: "updated", ID: roomID}, func(doc *model.Document) error {
		if config.RoomByID(roomID) == nil {
			return fmt.Errorf("%w: unknown room %q", ErrValidation, roomID)
		}
		if rate.PrivateRate < 0 {
			return fmt.Errorf("%w: negative private rate", ErrValidation)
		}
		if err := validateTiers(rate.Tiers); err != nil {
			return fmt.Errorf("%w: bad tier table for %s", err, roomID)
		}
		if doc.Settings.RoomRates == nil {
			doc.Settings.RoomRates = map[string]model.RoomRate{}
		}
		doc.Settings.RoomRates[roomID] = rate
		return nil
	})
}

// ResetRoomRate drops the stored override so the room falls back to its
// catalog default.
func (s *Service) ResetRoomRate(ctx context.Context, roomID string) error {
	return s.update(ctx, &ChangeEvent{Entity: "settings", Action: "updated", ID: roomID}, func(doc *model.Document) error {
		if config.RoomByID(roomID) == nil {
			return fmt.Errorf("%w: unknown room %q", ErrValidation, roomID)
		}
		delete(doc.Settings.RoomRates, roomID)
		return nil
	})
}
