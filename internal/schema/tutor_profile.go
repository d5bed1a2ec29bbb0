package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TutorProfile extends a User (role=tutor) with public-facing marketplace
// information and the aggregated review rating.
type TutorProfile struct {
	ent.Schema
}

func (TutorProfile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (TutorProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id (1:1)"),

		field.String("headline").
			Optional().
			Nillable().
			MaxLen(255),

		field.Text("bio").
			Optional().
			Nillable(),

		field.Int64("hourly_rate").
			Comment("Hourly rate in minor currency units (cents)"),

		field.Float("rating").
			Default(0).
			Comment("Aggregated rating (0–5)"),

		field.Int("review_count").
			Default(0).
			NonNegative(),

		field.Bool("is_accepting").
			Default(true).
			Comment("Whether this tutor is accepting new bookings"),
	}
}

func (TutorProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("rating"),
	}
}
