package engine

import "github.com/jaev1996/atria-fitness/internal/model"

// Role selects which identity kind an availability check applies to.  The
// conflict logic is symmetric; instructors match on the session's
// instructor id, attendees on booked attendee records.
type Role string

const (
	RoleInstructor Role = "instructor"
	RoleAttendee   Role = "attendee"
)

// IsAvailable reports whether the person is free at the given date and
// start time.  Cancelled sessions never conflict, and excludeSessionID
// skips one session so an edit does not collide with itself.  Pure: no
// side effects on the document.
func IsAvailable(doc *model.Document, personID, date, startTime string, role Role, excludeSessionID string) bool {
	for i := range doc.Sessions {
		sess := &doc.Sessions[i]
		if sess.ID == excludeSessionID || sess.Status == model.SessionCancelled {
			continue
		}
		if sess.Date != date || sess.StartTime != startTime {
			continue
		}
		switch role {
		case RoleInstructor:
			if sess.InstructorID == personID {
				return false
			}
		case RoleAttendee:
			for _, a := range sess.Attendees {
				if a.StudentID == personID && a.Status == model.AttendeeBooked {
					return false
				}
			}
		}
	}
	return true
}

// slotTaken reports whether another non-cancelled session already occupies
// the (room, date, startTime) slot.
func slotTaken(doc *model.Document, room, date, startTime, excludeSessionID string) bool {
	for i := range doc.Sessions {
		sess := &doc.Sessions[i]
		if sess.ID == excludeSessionID || sess.Status == model.SessionCancelled {
			continue
		}
		if sess.Room == room && sess.Date == date && sess.StartTime == startTime {
			return true
		}
	}
	return false
}
