package model

// RateTier maps a booked-attendee count range to the amount paid to the
// instructor for one session.  Max nil means the tier is unbounded above.
type RateTier struct {
	Min   int     `json:"min"`
	Max   *int    `json:"max"`
	Price float64 `json:"price"`
}

// Matches reports whether count falls inside the tier.
func (t RateTier) Matches(count int) bool {
	if count < t.Min {
		return false
	}
	return t.Max == nil || count <= *t.Max
}

// RoomRate is the per-room payroll configuration: the tier table for group
// classes plus a flat rate for private sessions.
type RoomRate struct {
	Tiers       []RateTier `json:"rates"`
	PrivateRate float64    `json:"privateRate"`
}

// InstructorPayment is one recorded payroll liquidation.  It references the
// covered sessions by id; creating it stamps PaymentID on each session and
// deleting it clears them back into the pending pool.
type InstructorPayment struct {
	ID           string   `json:"id"`
	InstructorID string   `json:"instructorId"`
	Date         string   `json:"date"`
	Amount       float64  `json:"amount"`
	PeriodStart  string   `json:"periodStart"`
	PeriodEnd    string   `json:"periodEnd"`
	SessionIDs   []string `json:"sessionIds"`
	Notes        string   `json:"notes,omitempty"`
}
