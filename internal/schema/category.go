package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Category is a teachable subject (e.g. Mathematics, Physics).
type Category struct {
	ent.Schema
}

func (Category) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Category) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			MaxLen(100),

		field.Text("description").
			Optional().
			Nillable(),
	}
}
