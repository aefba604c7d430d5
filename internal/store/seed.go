package store

import "github.com/jaev1996/atria-fitness/internal/model"

// Seed returns the deterministic initial dataset used when no state
// document exists yet: a small fixed set of people and zero sessions.
func Seed() *model.Document {
	return &model.Document{
		Students: []model.Student{
			{
				ID: "1", Name: "Juana Pérez", Phone: "555-0101",
				Email: "juana@example.com", Status: model.StudentActive,
				Plans: []model.Plan{}, Payments: []model.Payment{}, History: []model.HistoryEntry{},
			},
			{
				ID: "2", Name: "María García", Phone: "555-0102",
				Email: "maria@example.com", Status: model.StudentActive,
				Plans: []model.Plan{}, Payments: []model.Payment{}, History: []model.HistoryEntry{},
			},
			{
				ID: "3", Name: "Carla López", Phone: "555-0103",
				Email: "carla@example.com", Status: model.StudentGuest,
				Plans: []model.Plan{}, Payments: []model.Payment{}, History: []model.HistoryEntry{},
			},
		},
		Instructors: []model.Instructor{
			{ID: "i1", Name: "Valentina Ríos", Specialties: []string{"Pole Dance", "Telas"}},
			{ID: "i2", Name: "Sofía Mendoza", Specialties: []string{"Yoga"}},
		},
		Sessions:           []model.ClassSession{},
		InstructorPayments: []model.InstructorPayment{},
		Settings:           model.Settings{RoomRates: map[string]model.RoomRate{}},
	}
}
