// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mentora/mentora_backend/internal/repo/tutorcategory"
)

// TutorCategoryCreate is the builder for creating a TutorCategory entity.
type TutorCategoryCreate struct {
	config
	mutation *TutorCategoryMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TutorCategoryCreate) SetCreatedAt(v time.Time) *TutorCategoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TutorCategoryCreate) SetNillableCreatedAt(v *time.Time) *TutorCategoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTutorProfileID sets the "tutor_profile_id" field.
func (_c *TutorCategoryCreate) SetTutorProfileID(v uuid.UUID) *TutorCategoryCreate {
	_c.mutation.SetTutorProfileID(v)
	return _c
}

// SetCategoryID sets the "category_id" field.
func (_c *TutorCategoryCreate) SetCategoryID(v uuid.UUID) *TutorCategoryCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TutorCategoryCreate) SetID(v uuid.UUID) *TutorCategoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TutorCategoryCreate) SetNillableID(v *uuid.UUID) *TutorCategoryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TutorCategoryMutation object of the builder.
func (_c *TutorCategoryCreate) Mutation() *TutorCategoryMutation {
	return _c.mutation
}

// Save creates the TutorCategory in the database.
func (_c *TutorCategoryCreate) Save(ctx context.Context) (*TutorCategory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TutorCategoryCreate) SaveX(ctx context.Context) *TutorCategory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorCategoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorCategoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TutorCategoryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tutorcategory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tutorcategory.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TutorCategoryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TutorCategory.created_at"`)}
	}
	if _, ok := _c.mutation.TutorProfileID(); !ok {
		return &ValidationError{Name: "tutor_profile_id", err: errors.New(`repo: missing required field "TutorCategory.tutor_profile_id"`)}
	}
	if _, ok := _c.mutation.CategoryID(); !ok {
		return &ValidationError{Name: "category_id", err: errors.New(`repo: missing required field "TutorCategory.category_id"`)}
	}
	return nil
}

func (_c *TutorCategoryCreate) sqlSave(ctx context.Context) (*TutorCategory, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TutorCategoryCreate) createSpec() (*TutorCategory, *sqlgraph.CreateSpec) {
	var (
		_node = &TutorCategory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tutorcategory.Table, sqlgraph.NewFieldSpec(tutorcategory.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tutorcategory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.TutorProfileID(); ok {
		_spec.SetField(tutorcategory.FieldTutorProfileID, field.TypeUUID, value)
		_node.TutorProfileID = value
	}
	if value, ok := _c.mutation.CategoryID(); ok {
		_spec.SetField(tutorcategory.FieldCategoryID, field.TypeUUID, value)
		_node.CategoryID = value
	}
	return _node, _spec
}

// TutorCategoryCreateBulk is the builder for creating many TutorCategory entities in bulk.
type TutorCategoryCreateBulk struct {
	config
	err      error
	builders []*TutorCategoryCreate
}

// Save creates the TutorCategory entities in the database.
func (_c *TutorCategoryCreateBulk) Save(ctx context.Context) ([]*TutorCategory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TutorCategory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TutorCategoryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TutorCategoryCreateBulk) SaveX(ctx context.Context) []*TutorCategory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorCategoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorCategoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
