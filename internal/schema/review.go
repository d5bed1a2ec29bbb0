package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Review is feedback left by a student for a completed booking.
// At most one review exists per booking.
type Review struct {
	ent.Schema
}

func (Review) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Review) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("booking_id", uuid.UUID{}).
			Unique().
			Comment("FK → bookings.id (1:1)"),

		field.UUID("student_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("tutor_profile_id", uuid.UUID{}).
			Comment("Denormalized for per-tutor listing and rating aggregation"),

		field.Int("rating").
			Min(1).
			Max(5),

		field.Text("comment").
			Optional().
			Nillable(),
	}
}

func (Review) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tutor_profile_id", "created_at"),
		index.Fields("student_id"),
	}
}
