// Code generated by ent, DO NOT EDIT.

package availabilityslot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mentora/mentora_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldEQ(FieldUpdatedAt, v))
}

// TutorProfileID applies equality check predicate on the "tutor_profile_id" field. It's identical to TutorProfileIDEQ.
func TutorProfileID(v uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldEQ(FieldTutorProfileID, v))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldEQ(FieldCategoryID, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldEQ(FieldEndTime, v))
}

// IsBooked applies equality check predicate on the "is_booked" field. It's identical to IsBookedEQ.
func IsBooked(v bool) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldEQ(FieldIsBooked, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldLTE(FieldUpdatedAt, v))
}

// TutorProfileIDEQ applies the EQ predicate on the "tutor_profile_id" field.
func TutorProfileIDEQ(v uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldEQ(FieldTutorProfileID, v))
}

// TutorProfileIDNEQ applies the NEQ predicate on the "tutor_profile_id" field.
func TutorProfileIDNEQ(v uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldNEQ(FieldTutorProfileID, v))
}

// TutorProfileIDIn applies the In predicate on the "tutor_profile_id" field.
func TutorProfileIDIn(vs ...uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldIn(FieldTutorProfileID, vs...))
}

// TutorProfileIDNotIn applies the NotIn predicate on the "tutor_profile_id" field.
func TutorProfileIDNotIn(vs ...uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldNotIn(FieldTutorProfileID, vs...))
}

// TutorProfileIDGT applies the GT predicate on the "tutor_profile_id" field.
func TutorProfileIDGT(v uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldGT(FieldTutorProfileID, v))
}

// TutorProfileIDGTE applies the GTE predicate on the "tutor_profile_id" field.
func TutorProfileIDGTE(v uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldGTE(FieldTutorProfileID, v))
}

// TutorProfileIDLT applies the LT predicate on the "tutor_profile_id" field.
func TutorProfileIDLT(v uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldLT(FieldTutorProfileID, v))
}

// TutorProfileIDLTE applies the LTE predicate on the "tutor_profile_id" field.
func TutorProfileIDLTE(v uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldLTE(FieldTutorProfileID, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldNotIn(FieldCategoryID, vs...))
}

// CategoryIDGT applies the GT predicate on the "category_id" field.
func CategoryIDGT(v uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldGT(FieldCategoryID, v))
}

// CategoryIDGTE applies the GTE predicate on the "category_id" field.
func CategoryIDGTE(v uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldGTE(FieldCategoryID, v))
}

// CategoryIDLT applies the LT predicate on the "category_id" field.
func CategoryIDLT(v uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldLT(FieldCategoryID, v))
}

// CategoryIDLTE applies the LTE predicate on the "category_id" field.
func CategoryIDLTE(v uuid.UUID) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldLTE(FieldCategoryID, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldLTE(FieldEndTime, v))
}

// IsBookedEQ applies the EQ predicate on the "is_booked" field.
func IsBookedEQ(v bool) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldEQ(FieldIsBooked, v))
}

// IsBookedNEQ applies the NEQ predicate on the "is_booked" field.
func IsBookedNEQ(v bool) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.FieldNEQ(FieldIsBooked, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AvailabilitySlot) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AvailabilitySlot) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AvailabilitySlot) predicate.AvailabilitySlot {
	return predicate.AvailabilitySlot(sql.NotPredicates(p))
}
