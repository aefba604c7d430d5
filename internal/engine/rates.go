package engine

import (
	"github.com/jaev1996/atria-fitness/internal/config"
	"github.com/jaev1996/atria-fitness/internal/model"
)

// RoomRate returns the effective payroll configuration for a room: the
// stored settings override when present, otherwise the catalog default.
// Unknown rooms yield an empty rate (every lookup pays zero).
func RoomRate(doc *model.Document, roomID string) model.RoomRate {
	if rr, ok := doc.Settings.RoomRates[roomID]; ok {
		return rr
	}
	if room := config.RoomByID(roomID); room != nil {
		return room.DefaultRate
	}
	return model.RoomRate{}
}

// CalculatePay derives the instructor pay for one session.  Private
// sessions earn the room's flat private rate regardless of attendance.
// Group sessions map the booked-attendee count (courtesy included) onto
// the tier table; no matching tier pays zero.
func CalculatePay(doc *model.Document, sess *model.ClassSession) float64 {
	rate := RoomRate(doc, sess.Room)
	if sess.IsPrivate {
		return rate.PrivateRate
	}
	count := sess.BookedCount()
	for _, tier := range rate.Tiers {
		if tier.Matches(count) {
			return tier.Price
		}
	}
	return 0
}

// validateTiers rejects tier tables with inverted bounds or overlapping
// ranges so every attendance count resolves to at most one tier.
func validateTiers(tiers []model.RateTier) error {
	for i, t := range tiers {
		if t.Min < 0 || t.Price < 0 {
			return ErrValidation
		}
		if t.Max != nil && *t.Max < t.Min {
			return ErrValidation
		}
		for _, u := range tiers[i+1:] {
			if tiersOverlap(t, u) {
				return ErrValidation
			}
		}
	}
	return nil
}

func tiersOverlap(a, b model.RateTier) bool {
	if a.Max != nil && *a.Max < b.Min {
		return false
	}
	if b.Max != nil && *b.Max < a.Min {
		return false
	}
	return true
}
