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
	"github.com/mentora/mentora_backend/internal/repo/booking"
	"github.com/mentora/mentora_backend/internal/repo/predicate"
)

// BookingUpdate is the builder for updating Booking entities.
type BookingUpdate struct {
	config
	hooks    []Hook
	mutation *BookingMutation
}

// Where appends a list predicates to the BookingUpdate builder.
func (_u *BookingUpdate) Where(ps ...predicate.Booking) *BookingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BookingUpdate) SetUpdatedAt(v time.Time) *BookingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *BookingUpdate) SetStudentID(v uuid.UUID) *BookingUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableStudentID(v *uuid.UUID) *BookingUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetTutorProfileID sets the "tutor_profile_id" field.
func (_u *BookingUpdate) SetTutorProfileID(v uuid.UUID) *BookingUpdate {
	_u.mutation.SetTutorProfileID(v)
	return _u
}

// SetNillableTutorProfileID sets the "tutor_profile_id" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableTutorProfileID(v *uuid.UUID) *BookingUpdate {
	if v != nil {
		_u.SetTutorProfileID(*v)
	}
	return _u
}

// SetSlotID sets the "slot_id" field.
func (_u *BookingUpdate) SetSlotID(v uuid.UUID) *BookingUpdate {
	_u.mutation.SetSlotID(v)
	return _u
}

// SetNillableSlotID sets the "slot_id" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableSlotID(v *uuid.UUID) *BookingUpdate {
	if v != nil {
		_u.SetSlotID(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *BookingUpdate) SetCategoryID(v uuid.UUID) *BookingUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableCategoryID(v *uuid.UUID) *BookingUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *BookingUpdate) SetStartTime(v time.Time) *BookingUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableStartTime(v *time.Time) *BookingUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *BookingUpdate) SetEndTime(v time.Time) *BookingUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableEndTime(v *time.Time) *BookingUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BookingUpdate) SetStatus(v booking.Status) *BookingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableStatus(v *booking.Status) *BookingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetHourlyRate sets the "hourly_rate" field.
func (_u *BookingUpdate) SetHourlyRate(v int64) *BookingUpdate {
	_u.mutation.ResetHourlyRate()
	_u.mutation.SetHourlyRate(v)
	return _u
}

// SetNillableHourlyRate sets the "hourly_rate" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableHourlyRate(v *int64) *BookingUpdate {
	if v != nil {
		_u.SetHourlyRate(*v)
	}
	return _u
}

// AddHourlyRate adds value to the "hourly_rate" field.
func (_u *BookingUpdate) AddHourlyRate(v int64) *BookingUpdate {
	_u.mutation.AddHourlyRate(v)
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *BookingUpdate) SetCancelledAt(v time.Time) *BookingUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableCancelledAt(v *time.Time) *BookingUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *BookingUpdate) ClearCancelledAt() *BookingUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BookingUpdate) SetCompletedAt(v time.Time) *BookingUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BookingUpdate) SetNillableCompletedAt(v *time.Time) *BookingUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BookingUpdate) ClearCompletedAt() *BookingUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the BookingMutation object of the builder.
func (_u *BookingUpdate) Mutation() *BookingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BookingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BookingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BookingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := booking.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookingUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := booking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Booking.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BookingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(booking.Table, booking.Columns, sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(booking.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(booking.FieldStudentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TutorProfileID(); ok {
		_spec.SetField(booking.FieldTutorProfileID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SlotID(); ok {
		_spec.SetField(booking.FieldSlotID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(booking.FieldCategoryID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(booking.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(booking.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(booking.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.HourlyRate(); ok {
		_spec.SetField(booking.FieldHourlyRate, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedHourlyRate(); ok {
		_spec.AddField(booking.FieldHourlyRate, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(booking.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(booking.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(booking.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(booking.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{booking.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BookingUpdateOne is the builder for updating a single Booking entity.
type BookingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BookingMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BookingUpdateOne) SetUpdatedAt(v time.Time) *BookingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *BookingUpdateOne) SetStudentID(v uuid.UUID) *BookingUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableStudentID(v *uuid.UUID) *BookingUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetTutorProfileID sets the "tutor_profile_id" field.
func (_u *BookingUpdateOne) SetTutorProfileID(v uuid.UUID) *BookingUpdateOne {
	_u.mutation.SetTutorProfileID(v)
	return _u
}

// SetNillableTutorProfileID sets the "tutor_profile_id" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableTutorProfileID(v *uuid.UUID) *BookingUpdateOne {
	if v != nil {
		_u.SetTutorProfileID(*v)
	}
	return _u
}

// SetSlotID sets the "slot_id" field.
func (_u *BookingUpdateOne) SetSlotID(v uuid.UUID) *BookingUpdateOne {
	_u.mutation.SetSlotID(v)
	return _u
}

// SetNillableSlotID sets the "slot_id" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableSlotID(v *uuid.UUID) *BookingUpdateOne {
	if v != nil {
		_u.SetSlotID(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *BookingUpdateOne) SetCategoryID(v uuid.UUID) *BookingUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableCategoryID(v *uuid.UUID) *BookingUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *BookingUpdateOne) SetStartTime(v time.Time) *BookingUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableStartTime(v *time.Time) *BookingUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *BookingUpdateOne) SetEndTime(v time.Time) *BookingUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableEndTime(v *time.Time) *BookingUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BookingUpdateOne) SetStatus(v booking.Status) *BookingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableStatus(v *booking.Status) *BookingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetHourlyRate sets the "hourly_rate" field.
func (_u *BookingUpdateOne) SetHourlyRate(v int64) *BookingUpdateOne {
	_u.mutation.ResetHourlyRate()
	_u.mutation.SetHourlyRate(v)
	return _u
}

// SetNillableHourlyRate sets the "hourly_rate" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableHourlyRate(v *int64) *BookingUpdateOne {
	if v != nil {
		_u.SetHourlyRate(*v)
	}
	return _u
}

// AddHourlyRate adds value to the "hourly_rate" field.
func (_u *BookingUpdateOne) AddHourlyRate(v int64) *BookingUpdateOne {
	_u.mutation.AddHourlyRate(v)
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *BookingUpdateOne) SetCancelledAt(v time.Time) *BookingUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableCancelledAt(v *time.Time) *BookingUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *BookingUpdateOne) ClearCancelledAt() *BookingUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BookingUpdateOne) SetCompletedAt(v time.Time) *BookingUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BookingUpdateOne) SetNillableCompletedAt(v *time.Time) *BookingUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BookingUpdateOne) ClearCompletedAt() *BookingUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the BookingMutation object of the builder.
func (_u *BookingUpdateOne) Mutation() *BookingMutation {
	return _u.mutation
}

// Where appends a list predicates to the BookingUpdate builder.
func (_u *BookingUpdateOne) Where(ps ...predicate.Booking) *BookingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BookingUpdateOne) Select(field string, fields ...string) *BookingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Booking entity.
func (_u *BookingUpdateOne) Save(ctx context.Context) (*Booking, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookingUpdateOne) SaveX(ctx context.Context) *Booking {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BookingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BookingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := booking.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookingUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := booking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Booking.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BookingUpdateOne) sqlSave(ctx context.Context) (_node *Booking, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(booking.Table, booking.Columns, sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Booking.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, booking.FieldID)
		for _, f := range fields {
			if !booking.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != booking.FieldID {
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
		_spec.SetField(booking.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(booking.FieldStudentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TutorProfileID(); ok {
		_spec.SetField(booking.FieldTutorProfileID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SlotID(); ok {
		_spec.SetField(booking.FieldSlotID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(booking.FieldCategoryID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(booking.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(booking.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(booking.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.HourlyRate(); ok {
		_spec.SetField(booking.FieldHourlyRate, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedHourlyRate(); ok {
		_spec.AddField(booking.FieldHourlyRate, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(booking.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(booking.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(booking.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(booking.FieldCompletedAt, field.TypeTime)
	}
	_node = &Booking{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{booking.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
