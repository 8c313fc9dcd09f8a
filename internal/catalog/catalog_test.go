package catalog_test

import (
	"testing"

	"coffee_backoffice/internal/catalog"
	"coffee_backoffice/internal/domain"
	"coffee_backoffice/internal/importer"
	"coffee_backoffice/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func validInput() catalog.AddInput {
	return catalog.AddInput{
		Name:      "Arabica Beans",
		Producer:  "Highland Roastery",
		Unit:      "kg",
		Price:     d("12.50"),
		ShortDesc: "Medium roast",
		FullDesc:  "Single-origin medium roast, washed process.",
	}
}

func TestAdd(t *testing.T) {
	db := testutil.OpenDB(t)

	product, err := catalog.Add(db, validInput())
	require.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.False(t, product.Deleted)
}

func TestAddValidation(t *testing.T) {
	db := testutil.OpenDB(t)
	var validationErr *domain.ValidationError

	broken := map[string]catalog.AddInput{}
	in := validInput()
	in.Name = ""
	broken["empty name"] = in
	in = validInput()
	in.Producer = "  "
	broken["blank producer"] = in
	in = validInput()
	in.Unit = ""
	broken["empty unit"] = in
	in = validInput()
	in.Price = d("0")
	broken["zero price"] = in
	in = validInput()
	in.Price = d("-3")
	broken["negative price"] = in

	for name, input := range broken {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.Add(db, input)
			assert.ErrorAs(t, err, &validationErr)
		})
	}

	// Nothing was persisted
	var count int64
	require.NoError(t, db.Model(&domain.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListActiveExcludesDeleted(t *testing.T) {
	db := testutil.OpenDB(t)
	beans := testutil.SeedProduct(t, db, "Arabica Beans", "12.50")
	filters := testutil.SeedProduct(t, db, "Paper Filters", "5.00")
	grinder := testutil.SeedProduct(t, db, "Hand Grinder", "40.00")

	require.NoError(t, catalog.SoftDelete(db, filters.ID))

	active, err := catalog.ListActive(db)
	require.NoError(t, err)
	require.Len(t, active, 2)
	// Insertion order preserved
	assert.Equal(t, beans.ID, active[0].ID)
	assert.Equal(t, grinder.ID, active[1].ID)
}

func TestSoftDelete(t *testing.T) {
	db := testutil.OpenDB(t)
	beans := testutil.SeedProduct(t, db, "Arabica Beans", "12.50")

	require.NoError(t, catalog.SoftDelete(db, beans.ID))
	// Idempotent
	require.NoError(t, catalog.SoftDelete(db, beans.ID))

	assert.ErrorIs(t, catalog.SoftDelete(db, 999), domain.ErrNotFound)
}

func TestGetResolvesSoftDeleted(t *testing.T) {
	db := testutil.OpenDB(t)
	beans := testutil.SeedProduct(t, db, "Arabica Beans", "12.50")
	require.NoError(t, catalog.SoftDelete(db, beans.ID))

	// Historical order lines still need the record
	got, err := catalog.Get(db, beans.ID)
	require.NoError(t, err)
	assert.True(t, got.Deleted)
	assert.Equal(t, "Arabica Beans", got.Name)

	_, err = catalog.Get(db, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func row(line int, fields map[string]string) importer.Row {
	return importer.Row{Line: line, Fields: fields}
}

func TestImportRowsPerRowOutcome(t *testing.T) {
	db := testutil.OpenDB(t)

	rows := []importer.Row{
		row(2, map[string]string{"name": "Arabica Beans", "producer": "Highland", "unit": "kg", "price": "12.50"}),
		row(3, map[string]string{"name": "Robusta Beans", "producer": "Lowland", "unit": "kg", "price": "-4"}),
		row(4, map[string]string{"name": "Paper Filters", "producer": "FilterCo", "unit": "pack", "price": "5.00"}),
	}
	results := catalog.ImportRows(db, rows)
	require.Len(t, results, 3)

	assert.Empty(t, results[0].Error)
	assert.NotZero(t, results[0].ID)
	assert.Contains(t, results[1].Error, "price")
	assert.Empty(t, results[2].Error)

	// The bad middle row left no partial record
	var count int64
	require.NoError(t, db.Model(&domain.Product{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestImportRowsBadPriceAndParseErrors(t *testing.T) {
	db := testutil.OpenDB(t)

	rows := []importer.Row{
		row(2, map[string]string{"name": "Beans", "producer": "X", "unit": "kg", "price": "abc"}),
		{Line: 3, Err: assert.AnError},
	}
	results := catalog.ImportRows(db, rows)
	require.Len(t, results, 2)
	assert.Contains(t, results[0].Error, "price")
	assert.NotEmpty(t, results[1].Error)

	var count int64
	require.NoError(t, db.Model(&domain.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}
