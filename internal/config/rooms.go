package config

import "github.com/jaev1996/atria-fitness/internal/model"

// Room is one entry of the static studio catalog.  The default tiers and
// private rate apply until the stored settings override them.
type Room struct {
	ID          string
	Name        string
	Discipline  string
	DefaultRate model.RoomRate
}

func intp(n int) *int { return &n }

// Rooms is the studio floor plan.  Room ids are stable keys used by
// sessions and by the settings document; display names may change.
var Rooms = []Room{
	{
		ID:         "sala-pole",
		Name:       "Sala Pole",
		Discipline: "Pole Dance",
		DefaultRate: model.RoomRate{
			Tiers: []model.RateTier{
				{Min: 1, Max: intp(2), Price: 10},
				{Min: 3, Max: intp(4), Price: 15},
				{Min: 5, Max: nil, Price: 20},
			},
			PrivateRate: 25,
		},
	},
	{
		ID:         "sala-yoga",
		Name:       "Sala Yoga",
		Discipline: "Yoga",
		DefaultRate: model.RoomRate{
			Tiers: []model.RateTier{
				{Min: 1, Max: intp(3), Price: 8},
				{Min: 4, Max: intp(6), Price: 12},
				{Min: 7, Max: nil, Price: 16},
			},
			PrivateRate: 20,
		},
	},
	{
		ID:         "sala-telas",
		Name:       "Sala Telas",
		Discipline: "Telas",
		DefaultRate: model.RoomRate{
			Tiers: []model.RateTier{
				{Min: 1, Max: intp(2), Price: 10},
				{Min: 3, Max: intp(5), Price: 14},
				{Min: 6, Max: nil, Price: 18},
			},
			PrivateRate: 22,
		},
	},
	{
		ID:         "sala-gluteos",
		Name:       "Sala Glúteos",
		Discipline: "Glúteos",
		DefaultRate: model.RoomRate{
			Tiers: []model.RateTier{
				{Min: 1, Max: intp(4), Price: 9},
				{Min: 5, Max: nil, Price: 13},
			},
			PrivateRate: 18,
		},
	},
}

// RoomByID looks a room up in the catalog.  Returns nil for unknown ids.
func RoomByID(id string) *Room {
	for i := range Rooms {
		if Rooms[i].ID == id {
			return &Rooms[i]
		}
	}
	return nil
}

// Disciplines lists the class types offered across rooms.
func Disciplines() []string {
	out := make([]string, 0, len(Rooms))
	seen := map[string]bool{}
	for _, r := range Rooms {
		if !seen[r.Discipline] {
			seen[r.Discipline] = true
			out = append(out, r.Discipline)
		}
	}
	return out
}
