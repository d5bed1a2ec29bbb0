// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mentora/mentora_backend/internal/repo/predicate"
	"github.com/mentora/mentora_backend/internal/repo/tutorprofile"
)

// TutorProfileUpdate is the builder for updating TutorProfile entities.
type TutorProfileUpdate struct {
	config
	hooks    []Hook
	mutation *TutorProfileMutation
}

// Where appends a list predicates to the TutorProfileUpdate builder.
func (_u *TutorProfileUpdate) Where(ps ...predicate.TutorProfile) *TutorProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TutorProfileUpdate) SetUpdatedAt(v time.Time) *TutorProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TutorProfileUpdate) SetUserID(v uuid.UUID) *TutorProfileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TutorProfileUpdate) SetNillableUserID(v *uuid.UUID) *TutorProfileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetHeadline sets the "headline" field.
func (_u *TutorProfileUpdate) SetHeadline(v string) *TutorProfileUpdate {
	_u.mutation.SetHeadline(v)
	return _u
}

// SetNillableHeadline sets the "headline" field if the given value is not nil.
func (_u *TutorProfileUpdate) SetNillableHeadline(v *string) *TutorProfileUpdate {
	if v != nil {
		_u.SetHeadline(*v)
	}
	return _u
}

// ClearHeadline clears the value of the "headline" field.
func (_u *TutorProfileUpdate) ClearHeadline() *TutorProfileUpdate {
	_u.mutation.ClearHeadline()
	return _u
}

// SetBio sets the "bio" field.
func (_u *TutorProfileUpdate) SetBio(v string) *TutorProfileUpdate {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *TutorProfileUpdate) SetNillableBio(v *string) *TutorProfileUpdate {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *TutorProfileUpdate) ClearBio() *TutorProfileUpdate {
	_u.mutation.ClearBio()
	return _u
}

// SetHourlyRate sets the "hourly_rate" field.
func (_u *TutorProfileUpdate) SetHourlyRate(v int64) *TutorProfileUpdate {
	_u.mutation.ResetHourlyRate()
	_u.mutation.SetHourlyRate(v)
	return _u
}

// SetNillableHourlyRate sets the "hourly_rate" field if the given value is not nil.
func (_u *TutorProfileUpdate) SetNillableHourlyRate(v *int64) *TutorProfileUpdate {
	if v != nil {
		_u.SetHourlyRate(*v)
	}
	return _u
}

// AddHourlyRate adds value to the "hourly_rate" field.
func (_u *TutorProfileUpdate) AddHourlyRate(v int64) *TutorProfileUpdate {
	_u.mutation.AddHourlyRate(v)
	return _u
}

// SetRating sets the "rating" field.
func (_u *TutorProfileUpdate) SetRating(v float64) *TutorProfileUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *TutorProfileUpdate) SetNillableRating(v *float64) *TutorProfileUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *TutorProfileUpdate) AddRating(v float64) *TutorProfileUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *TutorProfileUpdate) SetReviewCount(v int) *TutorProfileUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *TutorProfileUpdate) SetNillableReviewCount(v *int) *TutorProfileUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *TutorProfileUpdate) AddReviewCount(v int) *TutorProfileUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetIsAccepting sets the "is_accepting" field.
func (_u *TutorProfileUpdate) SetIsAccepting(v bool) *TutorProfileUpdate {
	_u.mutation.SetIsAccepting(v)
	return _u
}

// SetNillableIsAccepting sets the "is_accepting" field if the given value is not nil.
func (_u *TutorProfileUpdate) SetNillableIsAccepting(v *bool) *TutorProfileUpdate {
	if v != nil {
		_u.SetIsAccepting(*v)
	}
	return _u
}

// Mutation returns the TutorProfileMutation object of the builder.
func (_u *TutorProfileUpdate) Mutation() *TutorProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TutorProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TutorProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TutorProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tutorprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TutorProfileUpdate) check() error {
	if v, ok := _u.mutation.Headline(); ok {
		if err := tutorprofile.HeadlineValidator(v); err != nil {
			return &ValidationError{Name: "headline", err: fmt.Errorf(`repo: validator failed for field "TutorProfile.headline": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewCount(); ok {
		if err := tutorprofile.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`repo: validator failed for field "TutorProfile.review_count": %w`, err)}
		}
	}
	return nil
}

func (_u *TutorProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tutorprofile.Table, tutorprofile.Columns, sqlgraph.NewFieldSpec(tutorprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tutorprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(tutorprofile.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Headline(); ok {
		_spec.SetField(tutorprofile.FieldHeadline, field.TypeString, value)
	}
	if _u.mutation.HeadlineCleared() {
		_spec.ClearField(tutorprofile.FieldHeadline, field.TypeString)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(tutorprofile.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(tutorprofile.FieldBio, field.TypeString)
	}
	if value, ok := _u.mutation.HourlyRate(); ok {
		_spec.SetField(tutorprofile.FieldHourlyRate, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedHourlyRate(); ok {
		_spec.AddField(tutorprofile.FieldHourlyRate, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(tutorprofile.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(tutorprofile.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(tutorprofile.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(tutorprofile.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsAccepting(); ok {
		_spec.SetField(tutorprofile.FieldIsAccepting, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutorprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TutorProfileUpdateOne is the builder for updating a single TutorProfile entity.
type TutorProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TutorProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TutorProfileUpdateOne) SetUpdatedAt(v time.Time) *TutorProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TutorProfileUpdateOne) SetUserID(v uuid.UUID) *TutorProfileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TutorProfileUpdateOne) SetNillableUserID(v *uuid.UUID) *TutorProfileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetHeadline sets the "headline" field.
func (_u *TutorProfileUpdateOne) SetHeadline(v string) *TutorProfileUpdateOne {
	_u.mutation.SetHeadline(v)
	return _u
}

// SetNillableHeadline sets the "headline" field if the given value is not nil.
func (_u *TutorProfileUpdateOne) SetNillableHeadline(v *string) *TutorProfileUpdateOne {
	if v != nil {
		_u.SetHeadline(*v)
	}
	return _u
}

// ClearHeadline clears the value of the "headline" field.
func (_u *TutorProfileUpdateOne) ClearHeadline() *TutorProfileUpdateOne {
	_u.mutation.ClearHeadline()
	return _u
}

// SetBio sets the "bio" field.
func (_u *TutorProfileUpdateOne) SetBio(v string) *TutorProfileUpdateOne {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *TutorProfileUpdateOne) SetNillableBio(v *string) *TutorProfileUpdateOne {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *TutorProfileUpdateOne) ClearBio() *TutorProfileUpdateOne {
	_u.mutation.ClearBio()
	return _u
}

// SetHourlyRate sets the "hourly_rate" field.
func (_u *TutorProfileUpdateOne) SetHourlyRate(v int64) *TutorProfileUpdateOne {
	_u.mutation.ResetHourlyRate()
	_u.mutation.SetHourlyRate(v)
	return _u
}

// SetNillableHourlyRate sets the "hourly_rate" field if the given value is not nil.
func (_u *TutorProfileUpdateOne) SetNillableHourlyRate(v *int64) *TutorProfileUpdateOne {
	if v != nil {
		_u.SetHourlyRate(*v)
	}
	return _u
}

// AddHourlyRate adds value to the "hourly_rate" field.
func (_u *TutorProfileUpdateOne) AddHourlyRate(v int64) *TutorProfileUpdateOne {
	_u.mutation.AddHourlyRate(v)
	return _u
}

// SetRating sets the "rating" field.
func (_u *TutorProfileUpdateOne) SetRating(v float64) *TutorProfileUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *TutorProfileUpdateOne) SetNillableRating(v *float64) *TutorProfileUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *TutorProfileUpdateOne) AddRating(v float64) *TutorProfileUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *TutorProfileUpdateOne) SetReviewCount(v int) *TutorProfileUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *TutorProfileUpdateOne) SetNillableReviewCount(v *int) *TutorProfileUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *TutorProfileUpdateOne) AddReviewCount(v int) *TutorProfileUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetIsAccepting sets the "is_accepting" field.
func (_u *TutorProfileUpdateOne) SetIsAccepting(v bool) *TutorProfileUpdateOne {
	_u.mutation.SetIsAccepting(v)
	return _u
}

// SetNillableIsAccepting sets the "is_accepting" field if the given value is not nil.
func (_u *TutorProfileUpdateOne) SetNillableIsAccepting(v *bool) *TutorProfileUpdateOne {
	if v != nil {
		_u.SetIsAccepting(*v)
	}
	return _u
}

// Mutation returns the TutorProfileMutation object of the builder.
func (_u *TutorProfileUpdateOne) Mutation() *TutorProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the TutorProfileUpdate builder.
func (_u *TutorProfileUpdateOne) Where(ps ...predicate.TutorProfile) *TutorProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TutorProfileUpdateOne) Select(field string, fields ...string) *TutorProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TutorProfile entity.
func (_u *TutorProfileUpdateOne) Save(ctx context.Context) (*TutorProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorProfileUpdateOne) SaveX(ctx context.Context) *TutorProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TutorProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TutorProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tutorprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TutorProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Headline(); ok {
		if err := tutorprofile.HeadlineValidator(v); err != nil {
			return &ValidationError{Name: "headline", err: fmt.Errorf(`repo: validator failed for field "TutorProfile.headline": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewCount(); ok {
		if err := tutorprofile.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`repo: validator failed for field "TutorProfile.review_count": %w`, err)}
		}
	}
	return nil
}

func (_u *TutorProfileUpdateOne) sqlSave(ctx context.Context) (_node *TutorProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tutorprofile.Table, tutorprofile.Columns, sqlgraph.NewFieldSpec(tutorprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TutorProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tutorprofile.FieldID)
		for _, f := range fields {
			if !tutorprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != tutorprofile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tutorprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(tutorprofile.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Headline(); ok {
		_spec.SetField(tutorprofile.FieldHeadline, field.TypeString, value)
	}
	if _u.mutation.HeadlineCleared() {
		_spec.ClearField(tutorprofile.FieldHeadline, field.TypeString)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(tutorprofile.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(tutorprofile.FieldBio, field.TypeString)
	}
	if value, ok := _u.mutation.HourlyRate(); ok {
		_spec.SetField(tutorprofile.FieldHourlyRate, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedHourlyRate(); ok {
		_spec.AddField(tutorprofile.FieldHourlyRate, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(tutorprofile.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(tutorprofile.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(tutorprofile.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(tutorprofile.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsAccepting(); ok {
		_spec.SetField(tutorprofile.FieldIsAccepting, field.TypeBool, value)
	}
	_node = &TutorProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutorprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
