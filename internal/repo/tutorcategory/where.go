// Code generated by ent, DO NOT EDIT.

package tutorcategory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mentora/mentora_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldEQ(FieldCreatedAt, v))
}

// TutorProfileID applies equality check predicate on the "tutor_profile_id" field. It's identical to TutorProfileIDEQ.
func TutorProfileID(v uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldEQ(FieldTutorProfileID, v))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldEQ(FieldCategoryID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldLTE(FieldCreatedAt, v))
}

// TutorProfileIDEQ applies the EQ predicate on the "tutor_profile_id" field.
func TutorProfileIDEQ(v uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldEQ(FieldTutorProfileID, v))
}

// TutorProfileIDNEQ applies the NEQ predicate on the "tutor_profile_id" field.
func TutorProfileIDNEQ(v uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldNEQ(FieldTutorProfileID, v))
}

// TutorProfileIDIn applies the In predicate on the "tutor_profile_id" field.
func TutorProfileIDIn(vs ...uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldIn(FieldTutorProfileID, vs...))
}

// TutorProfileIDNotIn applies the NotIn predicate on the "tutor_profile_id" field.
func TutorProfileIDNotIn(vs ...uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldNotIn(FieldTutorProfileID, vs...))
}

// TutorProfileIDGT applies the GT predicate on the "tutor_profile_id" field.
func TutorProfileIDGT(v uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldGT(FieldTutorProfileID, v))
}

// TutorProfileIDGTE applies the GTE predicate on the "tutor_profile_id" field.
func TutorProfileIDGTE(v uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldGTE(FieldTutorProfileID, v))
}

// TutorProfileIDLT applies the LT predicate on the "tutor_profile_id" field.
func TutorProfileIDLT(v uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldLT(FieldTutorProfileID, v))
}

// TutorProfileIDLTE applies the LTE predicate on the "tutor_profile_id" field.
func TutorProfileIDLTE(v uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldLTE(FieldTutorProfileID, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldNotIn(FieldCategoryID, vs...))
}

// CategoryIDGT applies the GT predicate on the "category_id" field.
func CategoryIDGT(v uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldGT(FieldCategoryID, v))
}

// CategoryIDGTE applies the GTE predicate on the "category_id" field.
func CategoryIDGTE(v uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldGTE(FieldCategoryID, v))
}

// CategoryIDLT applies the LT predicate on the "category_id" field.
func CategoryIDLT(v uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldLT(FieldCategoryID, v))
}

// CategoryIDLTE applies the LTE predicate on the "category_id" field.
func CategoryIDLTE(v uuid.UUID) predicate.TutorCategory {
	return predicate.TutorCategory(sql.FieldLTE(FieldCategoryID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TutorCategory) predicate.TutorCategory {
	return predicate.TutorCategory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TutorCategory) predicate.TutorCategory {
	return predicate.TutorCategory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TutorCategory) predicate.TutorCategory {
	return predicate.TutorCategory(sql.NotPredicates(p))
}
