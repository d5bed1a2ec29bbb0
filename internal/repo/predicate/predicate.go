// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AvailabilitySlot is the predicate function for availabilityslot builders.
type AvailabilitySlot func(*sql.Selector)

// Booking is the predicate function for booking builders.
type Booking func(*sql.Selector)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// Review is the predicate function for review builders.
type Review func(*sql.Selector)

// TutorCategory is the predicate function for tutorcategory builders.
type TutorCategory func(*sql.Selector)

// TutorProfile is the predicate function for tutorprofile builders.
type TutorProfile func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
