// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mentora/mentora_backend/internal/repo/tutorcategory"
)

// TutorCategory is the model entity for the TutorCategory schema.
type TutorCategory struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → tutor_profiles.id
	TutorProfileID uuid.UUID `json:"tutor_profile_id,omitempty"`
	// FK → categories.id
	CategoryID   uuid.UUID `json:"category_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TutorCategory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tutorcategory.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case tutorcategory.FieldID, tutorcategory.FieldTutorProfileID, tutorcategory.FieldCategoryID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TutorCategory fields.
func (_m *TutorCategory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tutorcategory.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tutorcategory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tutorcategory.FieldTutorProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field tutor_profile_id", values[i])
			} else if value != nil {
				_m.TutorProfileID = *value
			}
		case tutorcategory.FieldCategoryID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field category_id", values[i])
			} else if value != nil {
				_m.CategoryID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TutorCategory.
// This includes values selected through modifiers, order, etc.
func (_m *TutorCategory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TutorCategory.
// Note that you need to call TutorCategory.Unwrap() before calling this method if this TutorCategory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TutorCategory) Update() *TutorCategoryUpdateOne {
	return NewTutorCategoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TutorCategory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TutorCategory) Unwrap() *TutorCategory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: TutorCategory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TutorCategory) String() string {
	var builder strings.Builder
	builder.WriteString("TutorCategory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("tutor_profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TutorProfileID))
	builder.WriteString(", ")
	builder.WriteString("category_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CategoryID))
	builder.WriteByte(')')
	return builder.String()
}

// TutorCategories is a parsable slice of TutorCategory.
type TutorCategories []*TutorCategory
