package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"frontdesk/infras/otel/mocks"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/store"
)

type room struct {
	ID     string          `db:"id"`
	Number string          `db:"number"`
	Floor  int             `db:"floor"`
	Rate   decimal.Decimal `db:"rate"`
	Status string          `db:"status"`
	Notes  *string         `db:"notes"`
	gModel.Metadata
}

func seededCollection(t *testing.T) *store.Collection[room] {
	t.Helper()

	collection := store.NewCollection[room]("room", "id", mocks.NewOtel())

	quiet := "quiet side of the building"

	rooms := []room{
		{
			ID:     "room-1",
			Number: "101",
			Floor:  1,
			Rate:   decimal.RequireFromString("85.00"),
			Status: "available",
			Metadata: gModel.Metadata{
				CreatedAt: time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
			},
		},
		{
			ID:     "room-2",
			Number: "102",
			Floor:  1,
			Rate:   decimal.RequireFromString("85.00"),
			Status: "occupied",
			Notes:  &quiet,
			Metadata: gModel.Metadata{
				CreatedAt: time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC),
			},
		},
		{
			ID:     "room-3",
			Number: "201",
			Floor:  2,
			Rate:   decimal.RequireFromString("120.00"),
			Status: "available",
			Metadata: gModel.Metadata{
				CreatedAt: time.Date(2026, 8, 22, 9, 0, 0, 0, time.UTC),
			},
		},
		{
			ID:     "room-4",
			Number: "202",
			Floor:  2,
			Rate:   decimal.RequireFromString("150.00"),
			Status: "maintenance",
			Metadata: gModel.Metadata{
				CreatedAt: time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC),
			},
		},
	}

	for _, r := range rooms {
		assert.NoError(t, collection.Insert(context.Background(), r))
	}

	return collection
}

func byField(field, operator string, value any) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: field, Operator: operator, Value: value},
		},
	}
}

func TestCollection_Insert(t *testing.T) {
	collection := store.NewCollection[room]("room", "id", mocks.NewOtel())

	t.Run("success", func(t *testing.T) {
		err := collection.Insert(context.Background(), room{ID: "room-1", Number: "101"})

		assert.NoError(t, err)
	})

	t.Run("missing primary field", func(t *testing.T) {
		err := collection.Insert(context.Background(), room{Number: "102"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing primary field")
	})

	t.Run("duplicate primary key", func(t *testing.T) {
		err := collection.Insert(context.Background(), room{ID: "room-1", Number: "103"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate primary key")
	})
}

func TestCollection_Get(t *testing.T) {
	collection := seededCollection(t)

	t.Run("returns the first match in insertion order", func(t *testing.T) {
		got, err := collection.Get(context.Background(), byField("status", gDto.FilterOperatorEq, "available"))

		assert.NoError(t, err)
		assert.Equal(t, "room-1", got.ID)
	})

	t.Run("absence is the zero value, not an error", func(t *testing.T) {
		got, err := collection.Get(context.Background(), byField("number", gDto.FilterOperatorEq, "999"))

		assert.NoError(t, err)
		assert.Empty(t, got.ID)
	})
}

func TestCollection_GetAll(t *testing.T) {
	collection := seededCollection(t)

	t.Run("zero params return everything in insertion order", func(t *testing.T) {
		got, err := collection.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, got, 4)
		assert.Equal(t, "room-1", got[0].ID)
		assert.Equal(t, "room-4", got[3].ID)
	})

	t.Run("filter narrows the scan", func(t *testing.T) {
		got, err := collection.GetAll(context.Background(), gDto.QueryParams{}, byField("floor", gDto.FilterOperatorEq, 2))

		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("sorting needs both sort_by and sort_dir", func(t *testing.T) {
		got, err := collection.GetAll(context.Background(), gDto.QueryParams{SortBy: "rate"}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, "room-1", got[0].ID)

		got, err = collection.GetAll(context.Background(), gDto.QueryParams{SortBy: "rate", SortDir: gDto.SortDirDesc}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, "room-4", got[0].ID)
		assert.True(t, got[0].Rate.Equal(decimal.RequireFromString("150.00")))
	})

	t.Run("pagination windows the result", func(t *testing.T) {
		got, err := collection.GetAll(context.Background(), gDto.QueryParams{Page: 2, Limit: 2}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "room-3", got[0].ID)

		got, err = collection.GetAll(context.Background(), gDto.QueryParams{Page: 5, Limit: 2}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestCollection_Exist(t *testing.T) {
	collection := seededCollection(t)

	t.Run("empty filter is rejected", func(t *testing.T) {
		_, err := collection.Exist(context.Background(), gDto.FilterGroup{})

		assert.Error(t, err)
	})

	t.Run("found", func(t *testing.T) {
		exist, err := collection.Exist(context.Background(), byField("number", gDto.FilterOperatorEq, "201"))

		assert.NoError(t, err)
		assert.True(t, exist)
	})

	t.Run("not found", func(t *testing.T) {
		exist, err := collection.Exist(context.Background(), byField("number", gDto.FilterOperatorEq, "999"))

		assert.NoError(t, err)
		assert.False(t, exist)
	})
}

func TestCollection_Count(t *testing.T) {
	collection := seededCollection(t)

	total, err := collection.Count(context.Background(), gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 4, total)

	available, err := collection.Count(context.Background(), byField("status", gDto.FilterOperatorEq, "available"))

	assert.NoError(t, err)
	assert.Equal(t, 2, available)
}

func TestCollection_Update(t *testing.T) {
	t.Run("empty filter is rejected", func(t *testing.T) {
		collection := seededCollection(t)

		err := collection.Update(context.Background(), map[string]any{"status": "occupied"}, gDto.FilterGroup{})

		assert.Error(t, err)
	})

	t.Run("patch overwrites addressed fields and keeps the rest", func(t *testing.T) {
		collection := seededCollection(t)

		err := collection.Update(context.Background(), map[string]any{
			"status":      "occupied",
			"modified_by": "desk-user",
		}, byField("id", gDto.FilterOperatorEq, "room-1"))

		assert.NoError(t, err)

		got, err := collection.Get(context.Background(), byField("id", gDto.FilterOperatorEq, "room-1"))

		assert.NoError(t, err)
		assert.Equal(t, "occupied", got.Status)
		assert.Equal(t, "desk-user", got.ModifiedBy)
		assert.Equal(t, "101", got.Number)
		assert.True(t, got.Rate.Equal(decimal.RequireFromString("85.00")))

		untouched, err := collection.Get(context.Background(), byField("id", gDto.FilterOperatorEq, "room-2"))

		assert.NoError(t, err)
		assert.Equal(t, "occupied", untouched.Status)
		assert.Equal(t, "", untouched.ModifiedBy)
	})

	t.Run("pointer patch values are dereferenced", func(t *testing.T) {
		collection := seededCollection(t)

		status := "pending"

		err := collection.Update(context.Background(), map[string]any{"status": &status}, byField("id", gDto.FilterOperatorEq, "room-1"))

		assert.NoError(t, err)

		got, _ := collection.Get(context.Background(), byField("id", gDto.FilterOperatorEq, "room-1"))

		assert.Equal(t, "pending", got.Status)
	})

	t.Run("pointer fields are allocated and cleared", func(t *testing.T) {
		collection := seededCollection(t)

		err := collection.Update(context.Background(), map[string]any{"notes": "repainted"}, byField("id", gDto.FilterOperatorEq, "room-1"))

		assert.NoError(t, err)

		got, _ := collection.Get(context.Background(), byField("id", gDto.FilterOperatorEq, "room-1"))

		if assert.NotNil(t, got.Notes) {
			assert.Equal(t, "repainted", *got.Notes)
		}

		err = collection.Update(context.Background(), map[string]any{"notes": nil}, byField("id", gDto.FilterOperatorEq, "room-1"))

		assert.NoError(t, err)

		got, _ = collection.Get(context.Background(), byField("id", gDto.FilterOperatorEq, "room-1"))

		assert.Nil(t, got.Notes)
	})

	t.Run("numeric kinds convert", func(t *testing.T) {
		collection := seededCollection(t)

		err := collection.Update(context.Background(), map[string]any{"floor": int64(3)}, byField("id", gDto.FilterOperatorEq, "room-1"))

		assert.NoError(t, err)

		got, _ := collection.Get(context.Background(), byField("id", gDto.FilterOperatorEq, "room-1"))

		assert.Equal(t, 3, got.Floor)
	})

	t.Run("unknown field is an error", func(t *testing.T) {
		collection := seededCollection(t)

		err := collection.Update(context.Background(), map[string]any{"color": "blue"}, byField("id", gDto.FilterOperatorEq, "room-1"))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown field")
	})

	t.Run("matching nothing is not an error", func(t *testing.T) {
		collection := seededCollection(t)

		err := collection.Update(context.Background(), map[string]any{"status": "occupied"}, byField("id", gDto.FilterOperatorEq, "room-999"))

		assert.NoError(t, err)
	})
}

func TestCollection_FilterSemantics(t *testing.T) {
	collection := seededCollection(t)
	ctx := context.Background()

	t.Run("like is a case-insensitive contains", func(t *testing.T) {
		count, err := collection.Count(ctx, byField("status", gDto.FilterOperatorLike, "AVAIL"))

		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("in matches against a slice", func(t *testing.T) {
		count, err := collection.Count(ctx, byField("number", gDto.FilterOperatorIn, []string{"101", "202"}))

		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("not_eq excludes", func(t *testing.T) {
		count, err := collection.Count(ctx, byField("status", gDto.FilterOperatorNotEq, "available"))

		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("time fields order with greater_eq and less", func(t *testing.T) {
		from := time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)

		count, err := collection.Count(ctx, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{Field: "created_at", Operator: gDto.FilterOperatorGreaterEq, Value: from},
				gDto.Filter{Field: "created_at", Operator: gDto.FilterOperatorLess, Value: to},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("decimal fields compare against strings", func(t *testing.T) {
		count, err := collection.Count(ctx, byField("rate", gDto.FilterOperatorGreater, "100"))

		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("or groups match any branch", func(t *testing.T) {
		count, err := collection.Count(ctx, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{Field: "status", Operator: gDto.FilterOperatorEq, Value: "maintenance"},
				gDto.Filter{Field: "floor", Operator: gDto.FilterOperatorEq, Value: 1},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("nil pointers only satisfy is_null", func(t *testing.T) {
		withNotes, err := collection.Count(ctx, byField("notes", gDto.FilterIsNotNull, nil))

		assert.NoError(t, err)
		assert.Equal(t, 1, withNotes)

		withoutNotes, err := collection.Count(ctx, byField("notes", gDto.FilterIsNull, nil))

		assert.NoError(t, err)
		assert.Equal(t, 3, withoutNotes)

		matched, err := collection.Count(ctx, byField("notes", gDto.FilterOperatorEq, "quiet side of the building"))

		assert.NoError(t, err)
		assert.Equal(t, 1, matched)
	})

	t.Run("unknown fields never match", func(t *testing.T) {
		count, err := collection.Count(ctx, byField("color", gDto.FilterOperatorEq, "blue"))

		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}
