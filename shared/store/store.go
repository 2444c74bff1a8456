package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
)

var (
	errRequiredFilter = errors.New("required filter")
)

// Collection is an in-memory keyed collection of one entity type. Records
// live in a map keyed by the primary field and an insertion-order slice so
// scans always observe creation order. Field access for filtering, patching
// and sorting is resolved through the db struct tags, the same tags the
// models carry for their wire names.
//
// A RWMutex makes each operation atomic on its own; sequences of operations
// across collections carry no transactional guarantee.
type Collection[T any] struct {
	mu      sync.RWMutex
	rows    map[string]T
	order   []string
	entitas string
	primary string
	fields  map[string][]int
	otel    otel.Otel
}

func NewCollection[T any](entitasName, primaryField string, otl otel.Otel) *Collection[T] {
	var zero T

	fields := map[string][]int{}
	collectFields(reflect.TypeOf(zero), nil, fields)

	return &Collection[T]{
		rows:    map[string]T{},
		order:   []string{},
		entitas: entitasName,
		primary: primaryField,
		fields:  fields,
		otel:    otl,
	}
}

// Insert adds a new record. The primary field must already carry a fresh
// identifier; reusing one is a programmer error, not a business failure.
func (c *Collection[T]) Insert(ctx context.Context, model T) error {
	_, scope := c.otel.NewScope(ctx, constant.OtelStoreScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelStoreScopeName, c.entitas))
	defer scope.End()

	id, ok := c.fieldValue(model, c.primary)
	key, _ := id.(string)

	if !ok || key == constant.Empty {
		return fmt.Errorf("missing primary field %q on insert (%s)", c.primary, c.entitas)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.rows[key]; exists {
		return fmt.Errorf("duplicate primary key %q on insert (%s)", key, c.entitas)
	}

	c.rows[key] = model
	c.order = append(c.order, key)

	return nil
}

// Get returns the first record matching the filter in insertion order, or
// the zero value when nothing matches. Absence is not an error; callers
// check the primary field.
func (c *Collection[T]) Get(ctx context.Context, filter dto.FilterGroup) (T, error) {
	_, scope := c.otel.NewScope(ctx, constant.OtelStoreScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelStoreScopeName, c.entitas))
	defer scope.End()

	var zero T

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, key := range c.order {
		row := c.rows[key]
		if c.matches(row, filter) {
			return row, nil
		}
	}

	return zero, nil
}

// GetAll scans the collection in insertion order and returns every matching
// record. Sorting and pagination apply only when requested; zero-valued
// params return the full result.
func (c *Collection[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]T, error) {
	_, scope := c.otel.NewScope(ctx, constant.OtelStoreScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelStoreScopeName, c.entitas))
	defer scope.End()

	c.mu.RLock()

	models := make([]T, 0, len(c.order))

	for _, key := range c.order {
		row := c.rows[key]
		if c.matches(row, filter) {
			models = append(models, row)
		}
	}

	c.mu.RUnlock()

	if params.SortBy != constant.Empty && params.SortDir != constant.Empty {
		c.sortModels(models, params.SortBy, params.SortDir)
	}

	return paginate(models, params), nil
}

// Exist reports whether any record matches the filter. An empty filter is
// rejected so existence checks stay intentional.
func (c *Collection[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	_, scope := c.otel.NewScope(ctx, constant.OtelStoreScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelStoreScopeName, c.entitas))
	defer scope.End()

	if len(filter.Filters) == 0 {
		return false, errRequiredFilter
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, key := range c.order {
		if c.matches(c.rows[key], filter) {
			return true, nil
		}
	}

	return false, nil
}

func (c *Collection[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	_, scope := c.otel.NewScope(ctx, constant.OtelStoreScopeName, fmt.Sprintf("%s.%s.Count", constant.OtelStoreScopeName, c.entitas))
	defer scope.End()

	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0

	for _, key := range c.order {
		if c.matches(c.rows[key], filter) {
			count++
		}
	}

	return count, nil
}

// Update merges the patch into every record matching the filter. The merge
// is a top-level shallow one: each patch entry overwrites the addressed
// field wholesale, untouched fields keep their prior values. Matching zero
// records is not an error; callers that need NotFound semantics check
// existence first.
func (c *Collection[T]) Update(ctx context.Context, patch map[string]any, filter dto.FilterGroup) error {
	_, scope := c.otel.NewScope(ctx, constant.OtelStoreScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelStoreScopeName, c.entitas))
	defer scope.End()

	if len(filter.Filters) == 0 {
		return errRequiredFilter
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range c.order {
		row := c.rows[key]
		if !c.matches(row, filter) {
			continue
		}

		updated, err := c.applyPatch(row, patch)
		if err != nil {
			return fmt.Errorf("failed to update data (%s): %w", c.entitas, err)
		}

		c.rows[key] = updated
	}

	return nil
}

func (c *Collection[T]) matches(model T, filter dto.FilterGroup) bool {
	return filter.Match(func(field string) (any, bool) {
		return c.fieldValue(model, field)
	})
}

func (c *Collection[T]) fieldValue(model T, field string) (any, bool) {
	path, ok := c.fields[field]
	if !ok {
		return nil, false
	}

	return reflect.ValueOf(model).FieldByIndex(path).Interface(), true
}

func (c *Collection[T]) applyPatch(model T, patch map[string]any) (T, error) {
	value := reflect.New(reflect.TypeOf(model)).Elem()
	value.Set(reflect.ValueOf(model))

	for field, raw := range patch {
		path, ok := c.fields[field]
		if !ok {
			return model, fmt.Errorf("unknown field %q (%s)", field, c.entitas)
		}

		target := value.FieldByIndex(path)
		if err := assign(target, raw); err != nil {
			return model, fmt.Errorf("field %q: %w", field, err)
		}
	}

	return value.Interface().(T), nil
}

func (c *Collection[T]) sortModels(models []T, sortBy, sortDir string) {
	desc := sortDir == dto.SortDirDesc

	sort.SliceStable(models, func(i, j int) bool {
		left, okL := c.fieldValue(models[i], sortBy)
		right, okR := c.fieldValue(models[j], sortBy)

		if !okL || !okR {
			return false
		}

		cmp, ok := dto.Compare(left, right)
		if !ok {
			return false
		}

		if desc {
			return cmp > 0
		}

		return cmp < 0
	})
}

func paginate[T any](models []T, params dto.QueryParams) []T {
	limit := params.Limit
	if limit <= 0 {
		return models
	}

	offset := 0
	if params.Page > 0 {
		offset = (params.Page - 1) * limit
	}

	if offset >= len(models) {
		return []T{}
	}

	end := offset + limit
	if end > len(models) {
		end = len(models)
	}

	return models[offset:end]
}

// assign writes a patch value into a struct field, dereferencing pointer
// patch values and allocating pointer fields as needed. Numeric kinds
// convert; anything else must be assignable.
func assign(target reflect.Value, raw any) error {
	if raw == nil {
		if target.Kind() != reflect.Pointer {
			return errors.New("cannot assign nil to non-pointer field")
		}

		target.Set(reflect.Zero(target.Type()))

		return nil
	}

	value := reflect.ValueOf(raw)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return assign(target, nil)
		}

		value = value.Elem()
	}

	if target.Kind() == reflect.Pointer {
		elem := reflect.New(target.Type().Elem())
		if err := assign(elem.Elem(), value.Interface()); err != nil {
			return err
		}

		target.Set(elem)

		return nil
	}

	if value.Type().AssignableTo(target.Type()) {
		target.Set(value)

		return nil
	}

	if isNumeric(value.Kind()) && isNumeric(target.Kind()) && value.Type().ConvertibleTo(target.Type()) {
		target.Set(value.Convert(target.Type()))

		return nil
	}

	return fmt.Errorf("cannot assign %s to %s", value.Type(), target.Type())
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func collectFields(reflectType reflect.Type, path []int, fields map[string][]int) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)
		fieldPath := append(append([]int{}, path...), i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			collectFields(field.Type, fieldPath, fields)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" {
			continue
		}

		fields[dbTag] = fieldPath
	}
}
