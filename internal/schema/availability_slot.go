package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AvailabilitySlot represents a bookable time block published by a tutor.
type AvailabilitySlot struct {
	ent.Schema
}

func (AvailabilitySlot) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (AvailabilitySlot) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("tutor_profile_id", uuid.UUID{}).
			Comment("FK → tutor_profiles.id"),

		field.UUID("category_id", uuid.UUID{}).
			Comment("FK → categories.id; the subject offered in this slot"),

		field.Time("start_time"),

		field.Time("end_time"),

		field.Bool("is_booked").
			Default(false),
	}
}

func (AvailabilitySlot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tutor_profile_id", "start_time"),
		index.Fields("tutor_profile_id", "is_booked", "start_time"),
	}
}
