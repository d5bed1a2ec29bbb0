package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TutorCategory links a tutor profile to a subject it teaches.
type TutorCategory struct {
	ent.Schema
}

func (TutorCategory) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (TutorCategory) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("tutor_profile_id", uuid.UUID{}).
			Comment("FK → tutor_profiles.id"),

		field.UUID("category_id", uuid.UUID{}).
			Comment("FK → categories.id"),
	}
}

func (TutorCategory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tutor_profile_id", "category_id").
			Unique(),
		index.Fields("category_id"),
	}
}
