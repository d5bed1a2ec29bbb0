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
	"github.com/mentora/mentora_backend/internal/repo/review"
)

// ReviewUpdate is the builder for updating Review entities.
type ReviewUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewMutation
}

// Where appends a list predicates to the ReviewUpdate builder.
func (_u *ReviewUpdate) Where(ps ...predicate.Review) *ReviewUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReviewUpdate) SetUpdatedAt(v time.Time) *ReviewUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBookingID sets the "booking_id" field.
func (_u *ReviewUpdate) SetBookingID(v uuid.UUID) *ReviewUpdate {
	_u.mutation.SetBookingID(v)
	return _u
}

// SetNillableBookingID sets the "booking_id" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableBookingID(v *uuid.UUID) *ReviewUpdate {
	if v != nil {
		_u.SetBookingID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *ReviewUpdate) SetStudentID(v uuid.UUID) *ReviewUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableStudentID(v *uuid.UUID) *ReviewUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetTutorProfileID sets the "tutor_profile_id" field.
func (_u *ReviewUpdate) SetTutorProfileID(v uuid.UUID) *ReviewUpdate {
	_u.mutation.SetTutorProfileID(v)
	return _u
}

// SetNillableTutorProfileID sets the "tutor_profile_id" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableTutorProfileID(v *uuid.UUID) *ReviewUpdate {
	if v != nil {
		_u.SetTutorProfileID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *ReviewUpdate) SetRating(v int) *ReviewUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableRating(v *int) *ReviewUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *ReviewUpdate) AddRating(v int) *ReviewUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetComment sets the "comment" field.
func (_u *ReviewUpdate) SetComment(v string) *ReviewUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableComment(v *string) *ReviewUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *ReviewUpdate) ClearComment() *ReviewUpdate {
	_u.mutation.ClearComment()
	return _u
}

// Mutation returns the ReviewMutation object of the builder.
func (_u *ReviewUpdate) Mutation() *ReviewMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := review.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewUpdate) check() error {
	if v, ok := _u.mutation.Rating(); ok {
		if err := review.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`repo: validator failed for field "Review.rating": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(review.Table, review.Columns, sqlgraph.NewFieldSpec(review.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(review.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BookingID(); ok {
		_spec.SetField(review.FieldBookingID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(review.FieldStudentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TutorProfileID(); ok {
		_spec.SetField(review.FieldTutorProfileID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(review.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(review.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(review.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(review.FieldComment, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{review.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewUpdateOne is the builder for updating a single Review entity.
type ReviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReviewUpdateOne) SetUpdatedAt(v time.Time) *ReviewUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBookingID sets the "booking_id" field.
func (_u *ReviewUpdateOne) SetBookingID(v uuid.UUID) *ReviewUpdateOne {
	_u.mutation.SetBookingID(v)
	return _u
}

// SetNillableBookingID sets the "booking_id" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableBookingID(v *uuid.UUID) *ReviewUpdateOne {
	if v != nil {
		_u.SetBookingID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *ReviewUpdateOne) SetStudentID(v uuid.UUID) *ReviewUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableStudentID(v *uuid.UUID) *ReviewUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetTutorProfileID sets the "tutor_profile_id" field.
func (_u *ReviewUpdateOne) SetTutorProfileID(v uuid.UUID) *ReviewUpdateOne {
	_u.mutation.SetTutorProfileID(v)
	return _u
}

// SetNillableTutorProfileID sets the "tutor_profile_id" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableTutorProfileID(v *uuid.UUID) *ReviewUpdateOne {
	if v != nil {
		_u.SetTutorProfileID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *ReviewUpdateOne) SetRating(v int) *ReviewUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableRating(v *int) *ReviewUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *ReviewUpdateOne) AddRating(v int) *ReviewUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetComment sets the "comment" field.
func (_u *ReviewUpdateOne) SetComment(v string) *ReviewUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableComment(v *string) *ReviewUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *ReviewUpdateOne) ClearComment() *ReviewUpdateOne {
	_u.mutation.ClearComment()
	return _u
}

// Mutation returns the ReviewMutation object of the builder.
func (_u *ReviewUpdateOne) Mutation() *ReviewMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewUpdate builder.
func (_u *ReviewUpdateOne) Where(ps ...predicate.Review) *ReviewUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewUpdateOne) Select(field string, fields ...string) *ReviewUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Review entity.
func (_u *ReviewUpdateOne) Save(ctx context.Context) (*Review, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewUpdateOne) SaveX(ctx context.Context) *Review {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := review.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewUpdateOne) check() error {
	if v, ok := _u.mutation.Rating(); ok {
		if err := review.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`repo: validator failed for field "Review.rating": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewUpdateOne) sqlSave(ctx context.Context) (_node *Review, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(review.Table, review.Columns, sqlgraph.NewFieldSpec(review.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Review.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, review.FieldID)
		for _, f := range fields {
			if !review.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != review.FieldID {
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
		_spec.SetField(review.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BookingID(); ok {
		_spec.SetField(review.FieldBookingID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(review.FieldStudentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TutorProfileID(); ok {
		_spec.SetField(review.FieldTutorProfileID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(review.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(review.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(review.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(review.FieldComment, field.TypeString)
	}
	_node = &Review{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{review.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
