package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(100),

		field.String("email").
			Unique().
			MaxLen(255),

		field.String("password_hash").
			Sensitive(),

		field.Enum("role").
			Values("student", "tutor", "admin").
			Default("student"),

		field.Bool("is_banned").
			Default(false),

		// audit
		field.Time("last_login_at").
			Optional().
			Nillable(),

		field.Time("banned_at").
			Optional().
			Nillable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role"),
	}
}
