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
	"github.com/mentora/mentora_backend/internal/repo/tutorprofile"
)

// TutorProfileCreate is the builder for creating a TutorProfile entity.
type TutorProfileCreate struct {
	config
	mutation *TutorProfileMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TutorProfileCreate) SetCreatedAt(v time.Time) *TutorProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TutorProfileCreate) SetNillableCreatedAt(v *time.Time) *TutorProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TutorProfileCreate) SetUpdatedAt(v time.Time) *TutorProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TutorProfileCreate) SetNillableUpdatedAt(v *time.Time) *TutorProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *TutorProfileCreate) SetUserID(v uuid.UUID) *TutorProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetHeadline sets the "headline" field.
func (_c *TutorProfileCreate) SetHeadline(v string) *TutorProfileCreate {
	_c.mutation.SetHeadline(v)
	return _c
}

// SetNillableHeadline sets the "headline" field if the given value is not nil.
func (_c *TutorProfileCreate) SetNillableHeadline(v *string) *TutorProfileCreate {
	if v != nil {
		_c.SetHeadline(*v)
	}
	return _c
}

// SetBio sets the "bio" field.
func (_c *TutorProfileCreate) SetBio(v string) *TutorProfileCreate {
	_c.mutation.SetBio(v)
	return _c
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_c *TutorProfileCreate) SetNillableBio(v *string) *TutorProfileCreate {
	if v != nil {
		_c.SetBio(*v)
	}
	return _c
}

// SetHourlyRate sets the "hourly_rate" field.
func (_c *TutorProfileCreate) SetHourlyRate(v int64) *TutorProfileCreate {
	_c.mutation.SetHourlyRate(v)
	return _c
}

// SetRating sets the "rating" field.
func (_c *TutorProfileCreate) SetRating(v float64) *TutorProfileCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_c *TutorProfileCreate) SetNillableRating(v *float64) *TutorProfileCreate {
	if v != nil {
		_c.SetRating(*v)
	}
	return _c
}

// SetReviewCount sets the "review_count" field.
func (_c *TutorProfileCreate) SetReviewCount(v int) *TutorProfileCreate {
	_c.mutation.SetReviewCount(v)
	return _c
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_c *TutorProfileCreate) SetNillableReviewCount(v *int) *TutorProfileCreate {
	if v != nil {
		_c.SetReviewCount(*v)
	}
	return _c
}

// SetIsAccepting sets the "is_accepting" field.
func (_c *TutorProfileCreate) SetIsAccepting(v bool) *TutorProfileCreate {
	_c.mutation.SetIsAccepting(v)
	return _c
}

// SetNillableIsAccepting sets the "is_accepting" field if the given value is not nil.
func (_c *TutorProfileCreate) SetNillableIsAccepting(v *bool) *TutorProfileCreate {
	if v != nil {
		_c.SetIsAccepting(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TutorProfileCreate) SetID(v uuid.UUID) *TutorProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TutorProfileCreate) SetNillableID(v *uuid.UUID) *TutorProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TutorProfileMutation object of the builder.
func (_c *TutorProfileCreate) Mutation() *TutorProfileMutation {
	return _c.mutation
}

// Save creates the TutorProfile in the database.
func (_c *TutorProfileCreate) Save(ctx context.Context) (*TutorProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TutorProfileCreate) SaveX(ctx context.Context) *TutorProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TutorProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tutorprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tutorprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Rating(); !ok {
		v := tutorprofile.DefaultRating
		_c.mutation.SetRating(v)
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		v := tutorprofile.DefaultReviewCount
		_c.mutation.SetReviewCount(v)
	}
	if _, ok := _c.mutation.IsAccepting(); !ok {
		v := tutorprofile.DefaultIsAccepting
		_c.mutation.SetIsAccepting(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tutorprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TutorProfileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TutorProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "TutorProfile.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "TutorProfile.user_id"`)}
	}
	if v, ok := _c.mutation.Headline(); ok {
		if err := tutorprofile.HeadlineValidator(v); err != nil {
			return &ValidationError{Name: "headline", err: fmt.Errorf(`repo: validator failed for field "TutorProfile.headline": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HourlyRate(); !ok {
		return &ValidationError{Name: "hourly_rate", err: errors.New(`repo: missing required field "TutorProfile.hourly_rate"`)}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`repo: missing required field "TutorProfile.rating"`)}
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		return &ValidationError{Name: "review_count", err: errors.New(`repo: missing required field "TutorProfile.review_count"`)}
	}
	if v, ok := _c.mutation.ReviewCount(); ok {
		if err := tutorprofile.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`repo: validator failed for field "TutorProfile.review_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsAccepting(); !ok {
		return &ValidationError{Name: "is_accepting", err: errors.New(`repo: missing required field "TutorProfile.is_accepting"`)}
	}
	return nil
}

func (_c *TutorProfileCreate) sqlSave(ctx context.Context) (*TutorProfile, error) {
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

func (_c *TutorProfileCreate) createSpec() (*TutorProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &TutorProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tutorprofile.Table, sqlgraph.NewFieldSpec(tutorprofile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tutorprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tutorprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(tutorprofile.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Headline(); ok {
		_spec.SetField(tutorprofile.FieldHeadline, field.TypeString, value)
		_node.Headline = &value
	}
	if value, ok := _c.mutation.Bio(); ok {
		_spec.SetField(tutorprofile.FieldBio, field.TypeString, value)
		_node.Bio = &value
	}
	if value, ok := _c.mutation.HourlyRate(); ok {
		_spec.SetField(tutorprofile.FieldHourlyRate, field.TypeInt64, value)
		_node.HourlyRate = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(tutorprofile.FieldRating, field.TypeFloat64, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.ReviewCount(); ok {
		_spec.SetField(tutorprofile.FieldReviewCount, field.TypeInt, value)
		_node.ReviewCount = value
	}
	if value, ok := _c.mutation.IsAccepting(); ok {
		_spec.SetField(tutorprofile.FieldIsAccepting, field.TypeBool, value)
		_node.IsAccepting = value
	}
	return _node, _spec
}

// TutorProfileCreateBulk is the builder for creating many TutorProfile entities in bulk.
type TutorProfileCreateBulk struct {
	config
	err      error
	builders []*TutorProfileCreate
}

// Save creates the TutorProfile entities in the database.
func (_c *TutorProfileCreateBulk) Save(ctx context.Context) ([]*TutorProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TutorProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TutorProfileMutation)
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
func (_c *TutorProfileCreateBulk) SaveX(ctx context.Context) []*TutorProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
