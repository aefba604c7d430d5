package model

// Instructor teaches sessions.  Pay is derived from attendance and the room
// rate table, not stored here.
type Instructor struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	Specialties []string `json:"specialties"`
}
