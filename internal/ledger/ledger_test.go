package ledger_test

import (
	"testing"

	"coffee_backoffice/internal/domain"
	"coffee_backoffice/internal/ledger"
	"coffee_backoffice/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// newOrder seeds a manager, a client and an open order
func newOrder(t *testing.T, db *gorm.DB) domain.Order {
	t.Helper()
	user := testutil.SeedUser(t, db, "manager1", domain.RoleManager)
	client := testutil.SeedClient(t, db, "Harbor Cafe")
	order, err := ledger.Create(db, client.ID, user.ID)
	require.NoError(t, err)
	return order
}

func TestCreateOrder(t *testing.T) {
	db := testutil.OpenDB(t)
	order := newOrder(t, db)

	assert.Equal(t, domain.StatusNew, order.Status)
	assert.False(t, order.CreatedAt.IsZero())
	assert.Nil(t, order.ShippedAt)
}

func TestCreateOrderUnknownClient(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.SeedUser(t, db, "manager1", domain.RoleManager)

	_, err := ledger.Create(db, 999, user.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddItemAndTotals(t *testing.T) {
	db := testutil.OpenDB(t)
	order := newOrder(t, db)
	beans := testutil.SeedProduct(t, db, "Arabica Beans", "10.00")
	filters := testutil.SeedProduct(t, db, "Paper Filters", "5.00")

	item1, err := ledger.AddItem(db, order.ID, beans.ID, 3, d("10"))
	require.NoError(t, err)
	assert.True(t, item1.LineTotal().Equal(d("27.00")))

	item2, err := ledger.AddItem(db, order.ID, filters.ID, 2, d("0"))
	require.NoError(t, err)
	assert.True(t, item2.LineTotal().Equal(d("10.00")))

	total, err := ledger.OrderTotal(db, order.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(d("37.00")))
}

func TestOrderTotalEmptyOrder(t *testing.T) {
	db := testutil.OpenDB(t)
	order := newOrder(t, db)

	total, err := ledger.OrderTotal(db, order.ID)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestAddItemSnapshotsPrice(t *testing.T) {
	db := testutil.OpenDB(t)
	order := newOrder(t, db)
	beans := testutil.SeedProduct(t, db, "Arabica Beans", "10.00")

	item, err := ledger.AddItem(db, order.ID, beans.ID, 1, d("0"))
	require.NoError(t, err)

	// Catalog price edit after the add must not touch the line
	require.NoError(t, db.Model(&domain.Product{}).Where("id = ?", beans.ID).
		Update("price", d("99.00")).Error)

	got, err := ledger.Get(db, order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].Price.Equal(d("10.00")))
	assert.Equal(t, item.ID, got.Items[0].ID)

	total, err := ledger.OrderTotal(db, order.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(d("10.00")))
}

func TestAddItemValidation(t *testing.T) {
	db := testutil.OpenDB(t)
	order := newOrder(t, db)
	beans := testutil.SeedProduct(t, db, "Arabica Beans", "10.00")

	var validationErr *domain.ValidationError

	_, err := ledger.AddItem(db, order.ID, beans.ID, 0, d("0"))
	assert.ErrorAs(t, err, &validationErr)

	_, err = ledger.AddItem(db, order.ID, beans.ID, -2, d("0"))
	assert.ErrorAs(t, err, &validationErr)

	_, err = ledger.AddItem(db, order.ID, beans.ID, 1, d("101"))
	assert.ErrorAs(t, err, &validationErr)

	_, err = ledger.AddItem(db, order.ID, beans.ID, 1, d("-1"))
	assert.ErrorAs(t, err, &validationErr)

	// Boundary discounts are fine
	_, err = ledger.AddItem(db, order.ID, beans.ID, 1, d("0"))
	assert.NoError(t, err)
	_, err = ledger.AddItem(db, order.ID, beans.ID, 1, d("100"))
	assert.NoError(t, err)
}

func TestAddItemUnknownRefs(t *testing.T) {
	db := testutil.OpenDB(t)
	order := newOrder(t, db)

	_, err := ledger.AddItem(db, order.ID, 999, 1, d("0"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	beans := testutil.SeedProduct(t, db, "Arabica Beans", "10.00")
	_, err = ledger.AddItem(db, 999, beans.ID, 1, d("0"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddItemClosedOrder(t *testing.T) {
	db := testutil.OpenDB(t)
	order := newOrder(t, db)
	beans := testutil.SeedProduct(t, db, "Arabica Beans", "10.00")

	for _, next := range []domain.OrderStatus{domain.StatusShipping, domain.StatusDelivery, domain.StatusDelivered} {
		_, err := ledger.Transition(db, order.ID, next)
		require.NoError(t, err)
	}

	var stateErr *domain.StateError
	_, err := ledger.AddItem(db, order.ID, beans.ID, 1, d("0"))
	assert.ErrorAs(t, err, &stateErr)

	// The rejected add must not leave a line behind
	got, err := ledger.Get(db, order.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestRemoveItem(t *testing.T) {
	db := testutil.OpenDB(t)
	order := newOrder(t, db)
	beans := testutil.SeedProduct(t, db, "Arabica Beans", "10.00")

	item, err := ledger.AddItem(db, order.ID, beans.ID, 1, d("0"))
	require.NoError(t, err)

	require.NoError(t, ledger.RemoveItem(db, item.ID))

	got, err := ledger.Get(db, order.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Items)

	assert.ErrorIs(t, ledger.RemoveItem(db, item.ID), domain.ErrNotFound)
}

func TestRemoveItemClosedOrder(t *testing.T) {
	db := testutil.OpenDB(t)
	order := newOrder(t, db)
	beans := testutil.SeedProduct(t, db, "Arabica Beans", "10.00")

	item, err := ledger.AddItem(db, order.ID, beans.ID, 1, d("0"))
	require.NoError(t, err)

	_, err = ledger.Transition(db, order.ID, domain.StatusCancelled)
	require.NoError(t, err)

	var stateErr *domain.StateError
	assert.ErrorAs(t, ledger.RemoveItem(db, item.ID), &stateErr)
}

func TestTransitionHappyPath(t *testing.T) {
	db := testutil.OpenDB(t)
	order := newOrder(t, db)

	for _, next := range []domain.OrderStatus{domain.StatusShipping, domain.StatusDelivery, domain.StatusDelivered} {
		got, err := ledger.Transition(db, order.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, got.Status)
	}
}

func TestTransitionIllegalEdges(t *testing.T) {
	db := testutil.OpenDB(t)
	var stateErr *domain.StateError

	// Skipping straight to delivered
	order := newOrder(t, db)
	_, err := ledger.Transition(db, order.ID, domain.StatusDelivered)
	assert.ErrorAs(t, err, &stateErr)

	// Going backwards after shipping
	_, err = ledger.Transition(db, order.ID, domain.StatusShipping)
	require.NoError(t, err)
	_, err = ledger.Transition(db, order.ID, domain.StatusNew)
	assert.ErrorAs(t, err, &stateErr)

	// Nothing leaves cancelled
	cancelled, err := ledger.Create(db, order.ClientID, order.UserID)
	require.NoError(t, err)
	_, err = ledger.Transition(db, cancelled.ID, domain.StatusCancelled)
	require.NoError(t, err)
	_, err = ledger.Transition(db, cancelled.ID, domain.StatusShipping)
	assert.ErrorAs(t, err, &stateErr)

	// Unknown status
	var validationErr *domain.ValidationError
	_, err = ledger.Transition(db, order.ID, domain.OrderStatus("archived"))
	assert.ErrorAs(t, err, &validationErr)

	// Unknown order
	_, err = ledger.Transition(db, 999, domain.StatusShipping)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShippedAtSetOnce(t *testing.T) {
	db := testutil.OpenDB(t)
	order := newOrder(t, db)

	shipped, err := ledger.Transition(db, order.ID, domain.StatusShipping)
	require.NoError(t, err)
	require.NotNil(t, shipped.ShippedAt)
	stamp := *shipped.ShippedAt

	// Later transitions leave the stamp alone
	_, err = ledger.Transition(db, order.ID, domain.StatusDelivery)
	require.NoError(t, err)
	_, err = ledger.Transition(db, order.ID, domain.StatusDelivered)
	require.NoError(t, err)

	got, err := ledger.Get(db, order.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ShippedAt)
	assert.True(t, got.ShippedAt.Equal(stamp))
}

func TestListOrders(t *testing.T) {
	db := testutil.OpenDB(t)
	first := newOrder(t, db)

	client := testutil.SeedClient(t, db, "Second Cafe")
	second, err := ledger.Create(db, client.ID, first.UserID)
	require.NoError(t, err)

	orders, err := ledger.List(db)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
}
