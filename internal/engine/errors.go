// Package engine implements the booking and payroll rules of the studio:
// session scheduling, seat and collision checks, credit-plan consumption
// and tiered instructor payroll.  All operations are read-modify-write
// cycles against the state document held by a Store.
package engine

import "errors"

// Sentinel errors returned by engine operations.  These are recoverable,
// user-facing conditions; handlers translate them into HTTP statuses.
var (
	// ErrNotFound is returned when a referenced session, student,
	// instructor, plan or payment does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCapacityExceeded is returned when an enrollment would push the
	// booked-attendee count past the session capacity.
	ErrCapacityExceeded = errors.New("session is full")

	// ErrAlreadyEnrolled is returned when the student already holds a
	// booked spot on the session.
	ErrAlreadyEnrolled = errors.New("student already enrolled")

	// ErrScheduleCollision is returned when a person (instructor or
	// attendee) or a room slot is already taken at the same date and
	// start time by another non-cancelled session.
	ErrScheduleCollision = errors.New("schedule collision")

	// ErrNoEligiblePlan is returned on standard enrollment when the
	// student holds no active plan with remaining credits matching the
	// session discipline.
	ErrNoEligiblePlan = errors.New("no eligible plan")

	// ErrValidation is returned when required fields are missing or
	// malformed before an operation is attempted.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned when an operation cannot proceed because of
	// existing dependent records, such as recording a payroll payment
	// over a session already covered by another one.
	ErrConflict = errors.New("conflict")
)
