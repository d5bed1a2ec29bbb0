package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Booking is a confirmed session between a student and a tutor,
// created by claiming an availability slot.
type Booking struct {
	ent.Schema
}

func (Booking) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Booking) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("student_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("tutor_profile_id", uuid.UUID{}).
			Comment("FK → tutor_profiles.id"),

		field.UUID("slot_id", uuid.UUID{}).
			Comment("FK → availability_slots.id"),

		field.UUID("category_id", uuid.UUID{}).
			Comment("Snapshotted from the slot at booking time"),

		field.Time("start_time"),

		field.Time("end_time"),

		field.Enum("status").
			Values("confirmed", "completed", "cancelled").
			Default("confirmed"),

		field.Int64("hourly_rate").
			Comment("Snapshotted tutor hourly rate at booking time"),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Booking) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "status"),
		index.Fields("tutor_profile_id", "status", "start_time"),
		index.Fields("slot_id"),
	}
}
