// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mentora/mentora_backend/internal/repo/predicate"
	"github.com/mentora/mentora_backend/internal/repo/tutorcategory"
)

// TutorCategoryUpdate is the builder for updating TutorCategory entities.
type TutorCategoryUpdate struct {
	config
	hooks    []Hook
	mutation *TutorCategoryMutation
}

// Where appends a list predicates to the TutorCategoryUpdate builder.
func (_u *TutorCategoryUpdate) Where(ps ...predicate.TutorCategory) *TutorCategoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTutorProfileID sets the "tutor_profile_id" field.
func (_u *TutorCategoryUpdate) SetTutorProfileID(v uuid.UUID) *TutorCategoryUpdate {
	_u.mutation.SetTutorProfileID(v)
	return _u
}

// SetNillableTutorProfileID sets the "tutor_profile_id" field if the given value is not nil.
func (_u *TutorCategoryUpdate) SetNillableTutorProfileID(v *uuid.UUID) *TutorCategoryUpdate {
	if v != nil {
		_u.SetTutorProfileID(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *TutorCategoryUpdate) SetCategoryID(v uuid.UUID) *TutorCategoryUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *TutorCategoryUpdate) SetNillableCategoryID(v *uuid.UUID) *TutorCategoryUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// Mutation returns the TutorCategoryMutation object of the builder.
func (_u *TutorCategoryUpdate) Mutation() *TutorCategoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TutorCategoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorCategoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TutorCategoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorCategoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TutorCategoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(tutorcategory.Table, tutorcategory.Columns, sqlgraph.NewFieldSpec(tutorcategory.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TutorProfileID(); ok {
		_spec.SetField(tutorcategory.FieldTutorProfileID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(tutorcategory.FieldCategoryID, field.TypeUUID, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutorcategory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TutorCategoryUpdateOne is the builder for updating a single TutorCategory entity.
type TutorCategoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TutorCategoryMutation
}

// SetTutorProfileID sets the "tutor_profile_id" field.
func (_u *TutorCategoryUpdateOne) SetTutorProfileID(v uuid.UUID) *TutorCategoryUpdateOne {
	_u.mutation.SetTutorProfileID(v)
	return _u
}

// SetNillableTutorProfileID sets the "tutor_profile_id" field if the given value is not nil.
func (_u *TutorCategoryUpdateOne) SetNillableTutorProfileID(v *uuid.UUID) *TutorCategoryUpdateOne {
	if v != nil {
		_u.SetTutorProfileID(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *TutorCategoryUpdateOne) SetCategoryID(v uuid.UUID) *TutorCategoryUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *TutorCategoryUpdateOne) SetNillableCategoryID(v *uuid.UUID) *TutorCategoryUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// Mutation returns the TutorCategoryMutation object of the builder.
func (_u *TutorCategoryUpdateOne) Mutation() *TutorCategoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the TutorCategoryUpdate builder.
func (_u *TutorCategoryUpdateOne) Where(ps ...predicate.TutorCategory) *TutorCategoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TutorCategoryUpdateOne) Select(field string, fields ...string) *TutorCategoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TutorCategory entity.
func (_u *TutorCategoryUpdateOne) Save(ctx context.Context) (*TutorCategory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorCategoryUpdateOne) SaveX(ctx context.Context) *TutorCategory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TutorCategoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorCategoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TutorCategoryUpdateOne) sqlSave(ctx context.Context) (_node *TutorCategory, err error) {
	_spec := sqlgraph.NewUpdateSpec(tutorcategory.Table, tutorcategory.Columns, sqlgraph.NewFieldSpec(tutorcategory.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TutorCategory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tutorcategory.FieldID)
		for _, f := range fields {
			if !tutorcategory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != tutorcategory.FieldID {
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
	if value, ok := _u.mutation.TutorProfileID(); ok {
		_spec.SetField(tutorcategory.FieldTutorProfileID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CategoryID(); ok {
		_spec.SetField(tutorcategory.FieldCategoryID, field.TypeUUID, value)
	}
	_node = &TutorCategory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutorcategory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
