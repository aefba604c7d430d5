package model // model holds the document entities persisted by the store

// StudentStatus describes a student's standing with the studio.  Guests are
// walk-ins that may attend without holding a credit plan.
type StudentStatus string

const (
	StudentActive   StudentStatus = "active"
	StudentInactive StudentStatus = "inactive"
	StudentGuest    StudentStatus = "guest"
)

// PaymentMethod mirrors the options offered at the front desk.
type PaymentMethod string

const (
	PayCash     PaymentMethod = "Efectivo"
	PayTransfer PaymentMethod = "Transferencia"
	PayCard     PaymentMethod = "Tarjeta"
	PayOther    PaymentMethod = "Otro"
)

// Plan is a prepaid credit package owned by a student.  A discipline of
// "General" matches any session type.  Credits at or above the unlimited
// sentinel render as "∞" in the UI but are still decremented normally.
// The JSON keys keep the legacy Spanish names used by the stored document.
type Plan struct {
	ID           string `json:"id"`
	Discipline   string `json:"disciplina"`
	Credits      int    `json:"creditos"`
	Active       bool   `json:"activo"`
	OriginalName string `json:"nombreOriginal"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
}

// UnlimitedCredits is the sentinel threshold for unlimited plans.
const UnlimitedCredits = 900

// UnlimitedPlanName is the plan variant that survives reaching zero credits.
const UnlimitedPlanName = "Ilimitado"

// Unlimited reports whether the plan is exempt from exhaustion removal,
// either by name or by carrying the sentinel credit balance.
func (p Plan) Unlimited() bool {
	return p.OriginalName == UnlimitedPlanName || p.Credits >= UnlimitedCredits
}

// Payment is one entry in a student's append-only payment log.
type Payment struct {
	ID      string        `json:"id"`
	Date    string        `json:"date"`
	Amount  float64       `json:"amount"`
	Method  PaymentMethod `json:"method"`
	Concept string        `json:"concept"`
}

// HistoryEntry records attendance and manual credit adjustments on a
// student's file.  Automated entries written at session completion carry a
// cost of zero.
type HistoryEntry struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Activity string  `json:"activity"`
	Notes    string  `json:"notes,omitempty"`
	Cost     float64 `json:"cost"`
}

// Student owns its plans, payments and history (composition).
type Student struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Phone            string         `json:"phone,omitempty"`
	Email            string         `json:"email,omitempty"`
	EmergencyContact string         `json:"emergencyContact,omitempty"`
	Status           StudentStatus  `json:"status"`
	MedicalInfo      string         `json:"medicalInfo,omitempty"`
	Allergies        string         `json:"allergies,omitempty"`
	Injuries         string         `json:"injuries,omitempty"`
	Conditions       string         `json:"conditions,omitempty"`
	SportsInfo       string         `json:"sportsInfo,omitempty"`
	Plans            []Plan         `json:"plans"`
	Payments         []Payment      `json:"payments"`
	History          []HistoryEntry `json:"history"`
}
