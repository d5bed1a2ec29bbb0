// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mentora/mentora_backend/internal/repo/tutorprofile"
)

// TutorProfile is the model entity for the TutorProfile schema.
type TutorProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id (1:1)
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Headline holds the value of the "headline" field.
	Headline *string `json:"headline,omitempty"`
	// Bio holds the value of the "bio" field.
	Bio *string `json:"bio,omitempty"`
	// Hourly rate in minor currency units (cents)
	HourlyRate int64 `json:"hourly_rate,omitempty"`
	// Aggregated rating (0–5)
	Rating float64 `json:"rating,omitempty"`
	// ReviewCount holds the value of the "review_count" field.
	ReviewCount int `json:"review_count,omitempty"`
	// Whether this tutor is accepting new bookings
	IsAccepting  bool `json:"is_accepting,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TutorProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tutorprofile.FieldIsAccepting:
			values[i] = new(sql.NullBool)
		case tutorprofile.FieldRating:
			values[i] = new(sql.NullFloat64)
		case tutorprofile.FieldHourlyRate, tutorprofile.FieldReviewCount:
			values[i] = new(sql.NullInt64)
		case tutorprofile.FieldHeadline, tutorprofile.FieldBio:
			values[i] = new(sql.NullString)
		case tutorprofile.FieldCreatedAt, tutorprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case tutorprofile.FieldID, tutorprofile.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TutorProfile fields.
func (_m *TutorProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tutorprofile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tutorprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tutorprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case tutorprofile.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case tutorprofile.FieldHeadline:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field headline", values[i])
			} else if value.Valid {
				_m.Headline = new(string)
				*_m.Headline = value.String
			}
		case tutorprofile.FieldBio:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bio", values[i])
			} else if value.Valid {
				_m.Bio = new(string)
				*_m.Bio = value.String
			}
		case tutorprofile.FieldHourlyRate:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hourly_rate", values[i])
			} else if value.Valid {
				_m.HourlyRate = value.Int64
			}
		case tutorprofile.FieldRating:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				_m.Rating = value.Float64
			}
		case tutorprofile.FieldReviewCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field review_count", values[i])
			} else if value.Valid {
				_m.ReviewCount = int(value.Int64)
			}
		case tutorprofile.FieldIsAccepting:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_accepting", values[i])
			} else if value.Valid {
				_m.IsAccepting = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TutorProfile.
// This includes values selected through modifiers, order, etc.
func (_m *TutorProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TutorProfile.
// Note that you need to call TutorProfile.Unwrap() before calling this method if this TutorProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TutorProfile) Update() *TutorProfileUpdateOne {
	return NewTutorProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TutorProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TutorProfile) Unwrap() *TutorProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: TutorProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TutorProfile) String() string {
	var builder strings.Builder
	builder.WriteString("TutorProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	if v := _m.Headline; v != nil {
		builder.WriteString("headline=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Bio; v != nil {
		builder.WriteString("bio=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("hourly_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.HourlyRate))
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rating))
	builder.WriteString(", ")
	builder.WriteString("review_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewCount))
	builder.WriteString(", ")
	builder.WriteString("is_accepting=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsAccepting))
	builder.WriteByte(')')
	return builder.String()
}

// TutorProfiles is a parsable slice of TutorProfile.
type TutorProfiles []*TutorProfile
