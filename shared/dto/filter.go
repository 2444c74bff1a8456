package dto

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLess      = "less"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreater   = "greater"
	FilterOperatorGreaterEq = "greater_eq"
	FilterIsNotNull         = "is_not_null"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// Filter is a single predicate over one entity field, addressed by the
// field's db tag. Collections evaluate filters against each record during
// a scan; there is no index.
type Filter struct {
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_eq less less_eq greater greater_eq is_not_null is_null"`
}

// Match reports whether the given field value satisfies the filter. Pointer
// values are dereferenced first; a nil pointer only satisfies is_null.
func (f *Filter) Match(fieldValue any) bool {
	fieldValue, isNil := indirect(fieldValue)

	switch f.Operator {
	case FilterIsNull:
		return isNil
	case FilterIsNotNull:
		return !isNil
	}

	if isNil {
		return false
	}

	switch f.Operator {
	case FilterOperatorEq:
		return equals(fieldValue, f.Value)
	case FilterOperatorNotEq:
		return !equals(fieldValue, f.Value)
	case FilterOperatorLike:
		needle, _ := f.Value.(string)

		return strings.Contains(strings.ToLower(toString(fieldValue)), strings.ToLower(needle))
	case FilterOperatorIn:
		val := reflect.ValueOf(f.Value)
		if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
			return equals(fieldValue, f.Value)
		}

		for idx := range val.Len() {
			if equals(fieldValue, val.Index(idx).Interface()) {
				return true
			}
		}

		return false
	case FilterOperatorLess:
		cmp, ok := Compare(fieldValue, f.Value)

		return ok && cmp < 0
	case FilterOperatorLessEq:
		cmp, ok := Compare(fieldValue, f.Value)

		return ok && cmp <= 0
	case FilterOperatorGreater:
		cmp, ok := Compare(fieldValue, f.Value)

		return ok && cmp > 0
	case FilterOperatorGreaterEq:
		cmp, ok := Compare(fieldValue, f.Value)

		return ok && cmp >= 0
	default:
		return false
	}
}

// FilterGroup combines filters and nested groups with AND/OR semantics.
// An empty group matches every record, mirroring the old empty WHERE clause.
type FilterGroup struct {
	Filters  []any
	Operator string
}

// Match evaluates the group against one record. The resolve callback maps a
// field name (db tag) to the record's current value; unknown fields never
// match.
func (f *FilterGroup) Match(resolve func(field string) (any, bool)) bool {
	if len(f.Filters) == 0 {
		return true
	}

	or := f.Operator == FilterGroupOperatorOr

	for _, filter := range f.Filters {
		var matched bool

		switch fill := filter.(type) {
		case Filter:
			value, known := resolve(fill.Field)
			matched = known && fill.Match(value)
		case FilterGroup:
			matched = fill.Match(resolve)
		}

		if or && matched {
			return true
		}

		if !or && !matched {
			return false
		}
	}

	return !or
}

func indirect(value any) (any, bool) {
	if value == nil {
		return nil, true
	}

	val := reflect.ValueOf(value)
	for val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil, true
		}

		val = val.Elem()
	}

	return val.Interface(), false
}

func toString(value any) string {
	if str, ok := value.(string); ok {
		return str
	}

	return fmt.Sprintf("%v", value)
}

func equals(fieldValue, filterValue any) bool {
	filterValue, isNil := indirect(filterValue)
	if isNil {
		return false
	}

	if cmp, ok := Compare(fieldValue, filterValue); ok {
		return cmp == 0
	}

	return reflect.DeepEqual(fieldValue, filterValue)
}

// Compare orders two scalar values of possibly different concrete types.
// It reports false when the pair has no meaningful ordering.
func Compare(fieldValue, filterValue any) (int, bool) {
	switch field := fieldValue.(type) {
	case time.Time:
		other, ok := toTime(filterValue)
		if !ok {
			return 0, false
		}

		switch {
		case field.Before(other):
			return -1, true
		case field.After(other):
			return 1, true
		default:
			return 0, true
		}
	case decimal.Decimal:
		other, ok := toDecimal(filterValue)
		if !ok {
			return 0, false
		}

		return field.Cmp(other), true
	case string:
		other, ok := filterValue.(string)
		if !ok {
			return 0, false
		}

		return strings.Compare(field, other), true
	case bool:
		other, ok := filterValue.(bool)
		if !ok {
			return 0, false
		}

		return boolToInt(field) - boolToInt(other), true
	}

	fieldNum, fieldOk := toFloat(fieldValue)
	filterNum, filterOk := toFloat(filterValue)

	if !fieldOk || !filterOk {
		return 0, false
	}

	switch {
	case fieldNum < filterNum:
		return -1, true
	case fieldNum > filterNum:
		return 1, true
	default:
		return 0, true
	}
}

func toTime(value any) (time.Time, bool) {
	ts, ok := value.(time.Time)

	return ts, ok
}

func toDecimal(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case string:
		dec, err := decimal.NewFromString(v)

		return dec, err == nil
	}

	if num, ok := toFloat(value); ok {
		return decimal.NewFromFloat(num), true
	}

	return decimal.Decimal{}, false
}

func toFloat(value any) (float64, bool) {
	val := reflect.ValueOf(value)

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(val.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(val.Uint()), true
	case reflect.Float32, reflect.Float64:
		return val.Float(), true
	default:
		return 0, false
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
