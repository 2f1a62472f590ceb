package commands_test

import (
	"testing"
	"time"

	"farmsale/internal/core/domain/model/customer"
	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/order"
	"farmsale/internal/core/domain/model/session"
	"farmsale/internal/core/domain/model/unit"

	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, v int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(v)
	require.NoError(t, err)
	return id
}

func mustWeight(t *testing.T, v float64) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight(v)
	require.NoError(t, err)
	return w
}

func testCustomer(t *testing.T, id int64, name string) *customer.Customer {
	t.Helper()
	c, err := customer.RestoreCustomer(mustID(t, id), name, "0664 123")
	require.NoError(t, err)
	return c
}

func testSession(t *testing.T, id int64, date string, price float64) *session.Session {
	t.Helper()
	saleDate, err := kernel.NewSaleDate(date)
	require.NoError(t, err)
	pricePerKg, err := kernel.NewPrice(price)
	require.NoError(t, err)
	s, err := session.RestoreSession(mustID(t, id), saleDate, pricePerKg, session.Active)
	require.NoError(t, err)
	return s
}

func testUnit(t *testing.T, id int64, sessionID int64, weight float64) *unit.WeighedUnit {
	t.Helper()
	u, err := unit.RestoreWeighedUnit(
		mustID(t, id), mustID(t, sessionID), mustWeight(t, weight), time.Now())
	require.NoError(t, err)
	return u
}

func wholeSpec(t *testing.T) order.Spec {
	t.Helper()
	spec, err := order.NewCategorySpec(order.Whole, order.SizeUnspecified)
	require.NoError(t, err)
	return spec
}

func halfSpec(t *testing.T) order.Spec {
	t.Helper()
	spec, err := order.NewCategorySpec(order.Half, order.SizeUnspecified)
	require.NoError(t, err)
	return spec
}

func testPendingOrder(t *testing.T, id, sessionID, customerID int64, spec order.Spec) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		mustID(t, id), mustID(t, sessionID), mustID(t, customerID), spec, order.Pending, nil)
	require.NoError(t, err)
	return o
}

func testMatchedOrder(t *testing.T, id, sessionID, customerID, unitID int64, spec order.Spec) *order.Order {
	t.Helper()
	uid := mustID(t, unitID)
	o, err := order.RestoreOrder(
		mustID(t, id), mustID(t, sessionID), mustID(t, customerID), spec, order.Matched, &uid)
	require.NoError(t, err)
	return o
}

func testInvoicedOrder(t *testing.T, id, sessionID, customerID, unitID int64, spec order.Spec) *order.Order {
	t.Helper()
	uid := mustID(t, unitID)
	o, err := order.RestoreOrder(
		mustID(t, id), mustID(t, sessionID), mustID(t, customerID), spec, order.Invoiced, &uid)
	require.NoError(t, err)
	return o
}
