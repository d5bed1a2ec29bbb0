// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mentora/mentora_backend/internal/repo/availabilityslot"
	"github.com/mentora/mentora_backend/internal/repo/predicate"
)

// AvailabilitySlotQuery is the builder for querying AvailabilitySlot entities.
type AvailabilitySlotQuery struct {
	config
	ctx        *QueryContext
	order      []availabilityslot.OrderOption
	inters     []Interceptor
	predicates []predicate.AvailabilitySlot
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AvailabilitySlotQuery builder.
func (_q *AvailabilitySlotQuery) Where(ps ...predicate.AvailabilitySlot) *AvailabilitySlotQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AvailabilitySlotQuery) Limit(limit int) *AvailabilitySlotQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AvailabilitySlotQuery) Offset(offset int) *AvailabilitySlotQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AvailabilitySlotQuery) Unique(unique bool) *AvailabilitySlotQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AvailabilitySlotQuery) Order(o ...availabilityslot.OrderOption) *AvailabilitySlotQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// First returns the first AvailabilitySlot entity from the query.
// Returns a *NotFoundError when no AvailabilitySlot was found.
func (_q *AvailabilitySlotQuery) First(ctx context.Context) (*AvailabilitySlot, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{availabilityslot.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AvailabilitySlotQuery) FirstX(ctx context.Context) *AvailabilitySlot {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AvailabilitySlot ID from the query.
// Returns a *NotFoundError when no AvailabilitySlot ID was found.
func (_q *AvailabilitySlotQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{availabilityslot.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AvailabilitySlotQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AvailabilitySlot entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AvailabilitySlot entity is found.
// Returns a *NotFoundError when no AvailabilitySlot entities are found.
func (_q *AvailabilitySlotQuery) Only(ctx context.Context) (*AvailabilitySlot, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{availabilityslot.Label}
	default:
		return nil, &NotSingularError{availabilityslot.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AvailabilitySlotQuery) OnlyX(ctx context.Context) *AvailabilitySlot {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AvailabilitySlot ID in the query.
// Returns a *NotSingularError when more than one AvailabilitySlot ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AvailabilitySlotQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{availabilityslot.Label}
	default:
		err = &NotSingularError{availabilityslot.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AvailabilitySlotQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AvailabilitySlots.
func (_q *AvailabilitySlotQuery) All(ctx context.Context) ([]*AvailabilitySlot, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AvailabilitySlot, *AvailabilitySlotQuery]()
	return withInterceptors[[]*AvailabilitySlot](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AvailabilitySlotQuery) AllX(ctx context.Context) []*AvailabilitySlot {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AvailabilitySlot IDs.
func (_q *AvailabilitySlotQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(availabilityslot.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AvailabilitySlotQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AvailabilitySlotQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AvailabilitySlotQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AvailabilitySlotQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AvailabilitySlotQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *AvailabilitySlotQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AvailabilitySlotQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AvailabilitySlotQuery) Clone() *AvailabilitySlotQuery {
	if _q == nil {
		return nil
	}
	return &AvailabilitySlotQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]availabilityslot.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.AvailabilitySlot{}, _q.predicates...),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AvailabilitySlot.Query().
//		GroupBy(availabilityslot.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *AvailabilitySlotQuery) GroupBy(field string, fields ...string) *AvailabilitySlotGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AvailabilitySlotGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = availabilityslot.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.AvailabilitySlot.Query().
//		Select(availabilityslot.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *AvailabilitySlotQuery) Select(fields ...string) *AvailabilitySlotSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AvailabilitySlotSelect{AvailabilitySlotQuery: _q}
	sbuild.label = availabilityslot.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AvailabilitySlotSelect configured with the given aggregations.
func (_q *AvailabilitySlotQuery) Aggregate(fns ...AggregateFunc) *AvailabilitySlotSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AvailabilitySlotQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !availabilityslot.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *AvailabilitySlotQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AvailabilitySlot, error) {
	var (
		nodes = []*AvailabilitySlot{}
		_spec = _q.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AvailabilitySlot).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AvailabilitySlot{config: _q.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (_q *AvailabilitySlotQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AvailabilitySlotQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(availabilityslot.Table, availabilityslot.Columns, sqlgraph.NewFieldSpec(availabilityslot.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, availabilityslot.FieldID)
		for i := range fields {
			if fields[i] != availabilityslot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *AvailabilitySlotQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(availabilityslot.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = availabilityslot.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AvailabilitySlotGroupBy is the group-by builder for AvailabilitySlot entities.
type AvailabilitySlotGroupBy struct {
	selector
	build *AvailabilitySlotQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AvailabilitySlotGroupBy) Aggregate(fns ...AggregateFunc) *AvailabilitySlotGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AvailabilitySlotGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AvailabilitySlotQuery, *AvailabilitySlotGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AvailabilitySlotGroupBy) sqlScan(ctx context.Context, root *AvailabilitySlotQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AvailabilitySlotSelect is the builder for selecting fields of AvailabilitySlot entities.
type AvailabilitySlotSelect struct {
	*AvailabilitySlotQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AvailabilitySlotSelect) Aggregate(fns ...AggregateFunc) *AvailabilitySlotSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AvailabilitySlotSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AvailabilitySlotQuery, *AvailabilitySlotSelect](ctx, _s.AvailabilitySlotQuery, _s, _s.inters, v)
}

func (_s *AvailabilitySlotSelect) sqlScan(ctx context.Context, root *AvailabilitySlotQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
