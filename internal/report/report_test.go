package report_test

import (
	"testing"

	"coffee_backoffice/internal/domain"
	"coffee_backoffice/internal/ledger"
	"coffee_backoffice/internal/report"
	"coffee_backoffice/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCollectEmpty(t *testing.T) {
	db := testutil.OpenDB(t)

	stats, err := report.Collect(db)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.IsZero())
}

func TestCollect(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.SeedUser(t, db, "manager1", domain.RoleManager)
	client := testutil.SeedClient(t, db, "Harbor Cafe")
	beans := testutil.SeedProduct(t, db, "Arabica Beans", "10.00")
	filters := testutil.SeedProduct(t, db, "Paper Filters", "5.00")

	first, err := ledger.Create(db, client.ID, user.ID)
	require.NoError(t, err)
	_, err = ledger.AddItem(db, first.ID, beans.ID, 3, d("10")) // 27.00
	require.NoError(t, err)
	_, err = ledger.AddItem(db, first.ID, filters.ID, 2, d("0")) // 10.00
	require.NoError(t, err)

	second, err := ledger.Create(db, client.ID, user.ID)
	require.NoError(t, err)
	_, err = ledger.AddItem(db, second.ID, beans.ID, 1, d("0")) // 10.00
	require.NoError(t, err)

	stats, err := report.Collect(db)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.Equal(d("47.00")), "got %s", stats.TotalRevenue)
}

func TestCollectIncludesCancelled(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.SeedUser(t, db, "manager1", domain.RoleManager)
	client := testutil.SeedClient(t, db, "Harbor Cafe")
	beans := testutil.SeedProduct(t, db, "Arabica Beans", "10.00")

	order, err := ledger.Create(db, client.ID, user.ID)
	require.NoError(t, err)
	_, err = ledger.AddItem(db, order.ID, beans.ID, 2, d("0"))
	require.NoError(t, err)
	_, err = ledger.Transition(db, order.ID, domain.StatusCancelled)
	require.NoError(t, err)

	// Cancelled orders still count and their lines stay in the sum
	stats, err := report.Collect(db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.Equal(d("20.00")))
}
