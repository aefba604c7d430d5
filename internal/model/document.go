package model

// Settings overrides the static room defaults.  Rooms absent from RoomRates
// fall back to the catalog defaults in config.
type Settings struct {
	RoomRates map[string]RoomRate `json:"roomRates"`
}

// Document is the whole application state: one JSON blob loaded wholesale,
// mutated in memory and written back wholesale.
type Document struct {
	Students           []Student           `json:"students"`
	Instructors        []Instructor        `json:"instructors"`
	Sessions           []ClassSession      `json:"classes"`
	InstructorPayments []InstructorPayment `json:"instructorPayments"`
	Settings           Settings            `json:"settings"`
}

// Student returns a pointer into the document, or nil.
func (d *Document) Student(id string) *Student {
	for i := range d.Students {
		if d.Students[i].ID == id {
			return &d.Students[i]
		}
	}
	return nil
}

// Instructor returns a pointer into the document, or nil.
func (d *Document) Instructor(id string) *Instructor {
	for i := range d.Instructors {
		if d.Instructors[i].ID == id {
			return &d.Instructors[i]
		}
	}
	return nil
}

// Session returns a pointer into the document, or nil.
func (d *Document) Session(id string) *ClassSession {
	for i := range d.Sessions {
		if d.Sessions[i].ID == id {
			return &d.Sessions[i]
		}
	}
	return nil
}
