// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mentora/mentora_backend/internal/repo/availabilityslot"
)

// AvailabilitySlot is the model entity for the AvailabilitySlot schema.
type AvailabilitySlot struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → tutor_profiles.id
	TutorProfileID uuid.UUID `json:"tutor_profile_id,omitempty"`
	// FK → categories.id; the subject offered in this slot
	CategoryID uuid.UUID `json:"category_id,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime time.Time `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime time.Time `json:"end_time,omitempty"`
	// IsBooked holds the value of the "is_booked" field.
	IsBooked     bool `json:"is_booked,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AvailabilitySlot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case availabilityslot.FieldIsBooked:
			values[i] = new(sql.NullBool)
		case availabilityslot.FieldCreatedAt, availabilityslot.FieldUpdatedAt, availabilityslot.FieldStartTime, availabilityslot.FieldEndTime:
			values[i] = new(sql.NullTime)
		case availabilityslot.FieldID, availabilityslot.FieldTutorProfileID, availabilityslot.FieldCategoryID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AvailabilitySlot fields.
func (_m *AvailabilitySlot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case availabilityslot.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case availabilityslot.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case availabilityslot.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case availabilityslot.FieldTutorProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field tutor_profile_id", values[i])
			} else if value != nil {
				_m.TutorProfileID = *value
			}
		case availabilityslot.FieldCategoryID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field category_id", values[i])
			} else if value != nil {
				_m.CategoryID = *value
			}
		case availabilityslot.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case availabilityslot.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.Time
			}
		case availabilityslot.FieldIsBooked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_booked", values[i])
			} else if value.Valid {
				_m.IsBooked = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AvailabilitySlot.
// This includes values selected through modifiers, order, etc.
func (_m *AvailabilitySlot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AvailabilitySlot.
// Note that you need to call AvailabilitySlot.Unwrap() before calling this method if this AvailabilitySlot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AvailabilitySlot) Update() *AvailabilitySlotUpdateOne {
	return NewAvailabilitySlotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AvailabilitySlot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AvailabilitySlot) Unwrap() *AvailabilitySlot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: AvailabilitySlot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AvailabilitySlot) String() string {
	var builder strings.Builder
	builder.WriteString("AvailabilitySlot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("tutor_profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TutorProfileID))
	builder.WriteString(", ")
	builder.WriteString("category_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CategoryID))
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("is_booked=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsBooked))
	builder.WriteByte(')')
	return builder.String()
}

// AvailabilitySlots is a parsable slice of AvailabilitySlot.
type AvailabilitySlots []*AvailabilitySlot
