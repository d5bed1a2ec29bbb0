// Code generated by ent, DO NOT EDIT.

package tutorprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mentora/mentora_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldUserID, v))
}

// Headline applies equality check predicate on the "headline" field. It's identical to HeadlineEQ.
func Headline(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldHeadline, v))
}

// Bio applies equality check predicate on the "bio" field. It's identical to BioEQ.
func Bio(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldBio, v))
}

// HourlyRate applies equality check predicate on the "hourly_rate" field. It's identical to HourlyRateEQ.
func HourlyRate(v int64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldHourlyRate, v))
}

// Rating applies equality check predicate on the "rating" field. It's identical to RatingEQ.
func Rating(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldRating, v))
}

// ReviewCount applies equality check predicate on the "review_count" field. It's identical to ReviewCountEQ.
func ReviewCount(v int) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldReviewCount, v))
}

// IsAccepting applies equality check predicate on the "is_accepting" field. It's identical to IsAcceptingEQ.
func IsAccepting(v bool) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldIsAccepting, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLTE(FieldUserID, v))
}

// HeadlineEQ applies the EQ predicate on the "headline" field.
func HeadlineEQ(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldHeadline, v))
}

// HeadlineNEQ applies the NEQ predicate on the "headline" field.
func HeadlineNEQ(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNEQ(FieldHeadline, v))
}

// HeadlineIn applies the In predicate on the "headline" field.
func HeadlineIn(vs ...string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIn(FieldHeadline, vs...))
}

// HeadlineNotIn applies the NotIn predicate on the "headline" field.
func HeadlineNotIn(vs ...string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotIn(FieldHeadline, vs...))
}

// HeadlineGT applies the GT predicate on the "headline" field.
func HeadlineGT(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGT(FieldHeadline, v))
}

// HeadlineGTE applies the GTE predicate on the "headline" field.
func HeadlineGTE(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGTE(FieldHeadline, v))
}

// HeadlineLT applies the LT predicate on the "headline" field.
func HeadlineLT(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLT(FieldHeadline, v))
}

// HeadlineLTE applies the LTE predicate on the "headline" field.
func HeadlineLTE(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLTE(FieldHeadline, v))
}

// HeadlineContains applies the Contains predicate on the "headline" field.
func HeadlineContains(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldContains(FieldHeadline, v))
}

// HeadlineHasPrefix applies the HasPrefix predicate on the "headline" field.
func HeadlineHasPrefix(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldHasPrefix(FieldHeadline, v))
}

// HeadlineHasSuffix applies the HasSuffix predicate on the "headline" field.
func HeadlineHasSuffix(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldHasSuffix(FieldHeadline, v))
}

// HeadlineIsNil applies the IsNil predicate on the "headline" field.
func HeadlineIsNil() predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIsNull(FieldHeadline))
}

// HeadlineNotNil applies the NotNil predicate on the "headline" field.
func HeadlineNotNil() predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotNull(FieldHeadline))
}

// HeadlineEqualFold applies the EqualFold predicate on the "headline" field.
func HeadlineEqualFold(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEqualFold(FieldHeadline, v))
}

// HeadlineContainsFold applies the ContainsFold predicate on the "headline" field.
func HeadlineContainsFold(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldContainsFold(FieldHeadline, v))
}

// BioEQ applies the EQ predicate on the "bio" field.
func BioEQ(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldBio, v))
}

// BioNEQ applies the NEQ predicate on the "bio" field.
func BioNEQ(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNEQ(FieldBio, v))
}

// BioIn applies the In predicate on the "bio" field.
func BioIn(vs ...string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIn(FieldBio, vs...))
}

// BioNotIn applies the NotIn predicate on the "bio" field.
func BioNotIn(vs ...string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotIn(FieldBio, vs...))
}

// BioGT applies the GT predicate on the "bio" field.
func BioGT(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGT(FieldBio, v))
}

// BioGTE applies the GTE predicate on the "bio" field.
func BioGTE(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGTE(FieldBio, v))
}

// BioLT applies the LT predicate on the "bio" field.
func BioLT(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLT(FieldBio, v))
}

// BioLTE applies the LTE predicate on the "bio" field.
func BioLTE(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLTE(FieldBio, v))
}

// BioContains applies the Contains predicate on the "bio" field.
func BioContains(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldContains(FieldBio, v))
}

// BioHasPrefix applies the HasPrefix predicate on the "bio" field.
func BioHasPrefix(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldHasPrefix(FieldBio, v))
}

// BioHasSuffix applies the HasSuffix predicate on the "bio" field.
func BioHasSuffix(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldHasSuffix(FieldBio, v))
}

// BioIsNil applies the IsNil predicate on the "bio" field.
func BioIsNil() predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIsNull(FieldBio))
}

// BioNotNil applies the NotNil predicate on the "bio" field.
func BioNotNil() predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotNull(FieldBio))
}

// BioEqualFold applies the EqualFold predicate on the "bio" field.
func BioEqualFold(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEqualFold(FieldBio, v))
}

// BioContainsFold applies the ContainsFold predicate on the "bio" field.
func BioContainsFold(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldContainsFold(FieldBio, v))
}

// HourlyRateEQ applies the EQ predicate on the "hourly_rate" field.
func HourlyRateEQ(v int64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldHourlyRate, v))
}

// HourlyRateNEQ applies the NEQ predicate on the "hourly_rate" field.
func HourlyRateNEQ(v int64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNEQ(FieldHourlyRate, v))
}

// HourlyRateIn applies the In predicate on the "hourly_rate" field.
func HourlyRateIn(vs ...int64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIn(FieldHourlyRate, vs...))
}

// HourlyRateNotIn applies the NotIn predicate on the "hourly_rate" field.
func HourlyRateNotIn(vs ...int64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotIn(FieldHourlyRate, vs...))
}

// HourlyRateGT applies the GT predicate on the "hourly_rate" field.
func HourlyRateGT(v int64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGT(FieldHourlyRate, v))
}

// HourlyRateGTE applies the GTE predicate on the "hourly_rate" field.
func HourlyRateGTE(v int64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGTE(FieldHourlyRate, v))
}

// HourlyRateLT applies the LT predicate on the "hourly_rate" field.
func HourlyRateLT(v int64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLT(FieldHourlyRate, v))
}

// HourlyRateLTE applies the LTE predicate on the "hourly_rate" field.
func HourlyRateLTE(v int64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLTE(FieldHourlyRate, v))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotIn(FieldRating, vs...))
}

// RatingGT applies the GT predicate on the "rating" field.
func RatingGT(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGT(FieldRating, v))
}

// RatingGTE applies the GTE predicate on the "rating" field.
func RatingGTE(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGTE(FieldRating, v))
}

// RatingLT applies the LT predicate on the "rating" field.
func RatingLT(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLT(FieldRating, v))
}

// RatingLTE applies the LTE predicate on the "rating" field.
func RatingLTE(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLTE(FieldRating, v))
}

// ReviewCountEQ applies the EQ predicate on the "review_count" field.
func ReviewCountEQ(v int) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldReviewCount, v))
}

// ReviewCountNEQ applies the NEQ predicate on the "review_count" field.
func ReviewCountNEQ(v int) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNEQ(FieldReviewCount, v))
}

// ReviewCountIn applies the In predicate on the "review_count" field.
func ReviewCountIn(vs ...int) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIn(FieldReviewCount, vs...))
}

// ReviewCountNotIn applies the NotIn predicate on the "review_count" field.
func ReviewCountNotIn(vs ...int) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotIn(FieldReviewCount, vs...))
}

// ReviewCountGT applies the GT predicate on the "review_count" field.
func ReviewCountGT(v int) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGT(FieldReviewCount, v))
}

// ReviewCountGTE applies the GTE predicate on the "review_count" field.
func ReviewCountGTE(v int) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGTE(FieldReviewCount, v))
}

// ReviewCountLT applies the LT predicate on the "review_count" field.
func ReviewCountLT(v int) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLT(FieldReviewCount, v))
}

// ReviewCountLTE applies the LTE predicate on the "review_count" field.
func ReviewCountLTE(v int) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLTE(FieldReviewCount, v))
}

// IsAcceptingEQ applies the EQ predicate on the "is_accepting" field.
func IsAcceptingEQ(v bool) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldIsAccepting, v))
}

// IsAcceptingNEQ applies the NEQ predicate on the "is_accepting" field.
func IsAcceptingNEQ(v bool) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNEQ(FieldIsAccepting, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TutorProfile) predicate.TutorProfile {
	return predicate.TutorProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TutorProfile) predicate.TutorProfile {
	return predicate.TutorProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TutorProfile) predicate.TutorProfile {
	return predicate.TutorProfile(sql.NotPredicates(p))
}
