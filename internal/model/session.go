package model

// SessionStatus is the lifecycle state of a class session.  Cancelled and
// completed are terminal; every other transition is allowed directly.
type SessionStatus string

const (
	SessionScheduled   SessionStatus = "scheduled"
	SessionConfirmed   SessionStatus = "confirmed"
	SessionRescheduled SessionStatus = "rescheduled"
	SessionCancelled   SessionStatus = "cancelled"
	SessionCompleted   SessionStatus = "completed"
)

// AttendeeStatus marks whether an attendee still holds their spot.
type AttendeeStatus string

const (
	AttendeeBooked    AttendeeStatus = "booked"
	AttendeeCancelled AttendeeStatus = "cancelled"
)

// AttendanceType distinguishes paying attendance from courtesy invitations.
// Courtesy attendees occupy a seat and count toward payroll tiers but never
// consume plan credits.
type AttendanceType string

const (
	AttendanceStandard AttendanceType = "standard"
	AttendanceCourtesy AttendanceType = "courtesy"
)

// Attendee is embedded in a session.  CreditDeducted flips true exactly
// once, when the session completes while the attendee is booked and
// standard.
type Attendee struct {
	StudentID      string         `json:"studentId"`
	Name           string         `json:"name"`
	Status         AttendeeStatus `json:"status"`
	AttendanceType AttendanceType `json:"attendanceType"`
	CreditDeducted bool           `json:"creditDeducted"`
}

// ClassSession is a one-hour class or private appointment in a room.
// Date is "2006-01-02" and StartTime is "15:04"; the studio works in local
// wall-clock strings.  PaymentID is set once the session has been covered
// by an instructor payment.
type ClassSession struct {
	ID             string        `json:"id"`
	InstructorID   string        `json:"instructorId"`
	InstructorName string        `json:"instructorName"`
	Date           string        `json:"date"`
	StartTime      string        `json:"startTime"`
	Status         SessionStatus `json:"status"`
	Type           string        `json:"type"`
	Room           string        `json:"room"`
	Capacity       int           `json:"capacity"`
	Attendees      []Attendee    `json:"attendees"`
	IsPrivate      bool          `json:"isPrivate,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	PaymentID      string        `json:"paymentId,omitempty"`
}

// BookedCount returns the number of attendees currently holding a seat.
func (s *ClassSession) BookedCount() int {
	n := 0
	for _, a := range s.Attendees {
		if a.Status == AttendeeBooked {
			n++
		}
	}
	return n
}

// Terminal reports whether the status accepts no further transitions under
// normal operation.
func (st SessionStatus) Terminal() bool {
	return st == SessionCancelled || st == SessionCompleted
}
