package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	sqlite_adapter "farmsale/internal/adapters/out/sqlite"
	"farmsale/internal/core/domain/model/customer"
	"farmsale/internal/core/domain/model/invoice"
	"farmsale/internal/core/domain/model/kernel"
	"farmsale/internal/core/domain/model/order"
	"farmsale/internal/core/domain/model/session"
	"farmsale/internal/core/domain/model/unit"
	"farmsale/internal/core/ports"
	"farmsale/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work and the
// aggregate repositories against a real SQLite database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	db      *gorm.DB
	factory ports.UnitOfWorkFactory
	ctx     context.Context
}

// SetupTest opens a fresh database file per test so tests stay independent.
func (s *UnitOfWorkIntegrationTestSuite) SetupTest() {
	db, err := sqlite_adapter.OpenDatabase(filepath.Join(s.T().TempDir(), "test.db"))
	s.Require().NoError(err)

	s.db = db
	s.factory = sqlite_adapter.NewGormUnitOfWorkFactory(db)
	s.ctx = context.Background()
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

// seedSession persists a session outside the unit of work under test.
func (s *UnitOfWorkIntegrationTestSuite) seedSession(date string, price float64) *session.Session {
	saleDate, err := kernel.NewSaleDate(date)
	s.Require().NoError(err)
	pricePerKg, err := kernel.NewPrice(price)
	s.Require().NoError(err)
	aggregate, err := session.NewSession(saleDate, pricePerKg)
	s.Require().NoError(err)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(s.ctx))
	s.Require().NoError(uow.SessionRepository().Add(s.ctx, aggregate))
	s.Require().NoError(uow.Commit(s.ctx))
	return aggregate
}

func (s *UnitOfWorkIntegrationTestSuite) seedCustomer(name string) *customer.Customer {
	aggregate, err := customer.NewCustomer(name, "0664 123")
	s.Require().NoError(err)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(s.ctx))
	s.Require().NoError(uow.CustomerRepository().Add(s.ctx, aggregate))
	s.Require().NoError(uow.Commit(s.ctx))
	return aggregate
}

func (s *UnitOfWorkIntegrationTestSuite) seedUnit(
	sessionID kernel.ID, weight float64,
) *unit.WeighedUnit {
	w, err := kernel.NewWeight(weight)
	s.Require().NoError(err)
	aggregate, err := unit.NewWeighedUnit(sessionID, w)
	s.Require().NoError(err)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(s.ctx))
	s.Require().NoError(uow.UnitRepository().Add(s.ctx, aggregate))
	s.Require().NoError(uow.Commit(s.ctx))
	return aggregate
}

func (s *UnitOfWorkIntegrationTestSuite) TestAddAssignsStoreID() {
	first := s.seedCustomer("Maier")
	second := s.seedCustomer("Huber")

	s.False(first.ID().IsZero())
	s.False(second.ID().IsZero())
	s.Greater(second.ID().Int64(), first.ID().Int64())
}

func (s *UnitOfWorkIntegrationTestSuite) TestCommitPersistsAcrossRepositories() {
	sale := s.seedSession("2025-12-20", 10)
	buyer := s.seedCustomer("Maier")

	spec, err := order.NewCategorySpec(order.Whole, order.SizeUnspecified)
	s.Require().NoError(err)
	aggregate, err := order.NewOrder(sale.ID(), buyer.ID(), spec)
	s.Require().NoError(err)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(s.ctx))
	s.Require().NoError(uow.OrderRepository().Add(s.ctx, aggregate))
	s.Require().NoError(uow.Commit(s.ctx))

	loaded, err := s.factory.Create().OrderRepository().Get(s.ctx, aggregate.ID())
	s.Require().NoError(err)
	s.Equal(order.Pending, loaded.Status())
	s.Equal(buyer.ID(), loaded.CustomerID())
	s.Equal(order.Whole, loaded.Spec().Portion())
}

func (s *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsChanges() {
	aggregate, err := customer.NewCustomer("Verworfen", "")
	s.Require().NoError(err)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(s.ctx))
	s.Require().NoError(uow.CustomerRepository().Add(s.ctx, aggregate))
	s.Require().NoError(uow.Rollback(s.ctx))

	_, err = s.factory.Create().CustomerRepository().Get(s.ctx, aggregate.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *UnitOfWorkIntegrationTestSuite) TestRollbackAfterCommitIsNoOp() {
	aggregate, err := customer.NewCustomer("Bleibt", "")
	s.Require().NoError(err)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(s.ctx))
	s.Require().NoError(uow.CustomerRepository().Add(s.ctx, aggregate))
	s.Require().NoError(uow.Commit(s.ctx))
	s.Require().NoError(uow.Rollback(s.ctx))

	_, err = s.factory.Create().CustomerRepository().Get(s.ctx, aggregate.ID())
	s.Require().NoError(err)
}

func (s *UnitOfWorkIntegrationTestSuite) TestWeightSpecRoundTrip() {
	sale := s.seedSession("2025-12-20", 10)
	buyer := s.seedCustomer("Maier")

	target, err := kernel.NewWeight(7.4)
	s.Require().NoError(err)
	spec, err := order.NewWeightSpec(target)
	s.Require().NoError(err)
	aggregate, err := order.NewOrder(sale.ID(), buyer.ID(), spec)
	s.Require().NoError(err)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(s.ctx))
	s.Require().NoError(uow.OrderRepository().Add(s.ctx, aggregate))
	s.Require().NoError(uow.Commit(s.ctx))

	loaded, err := s.factory.Create().OrderRepository().Get(s.ctx, aggregate.ID())
	s.Require().NoError(err)
	ws, ok := loaded.Spec().(order.WeightSpec)
	s.Require().True(ok)
	s.InDelta(7.4, ws.Target().Float64(), 1e-9)
}

func (s *UnitOfWorkIntegrationTestSuite) TestCategorySpecWithSizeRoundTrip() {
	sale := s.seedSession("2025-12-20", 10)
	buyer := s.seedCustomer("Maier")

	spec, err := order.NewCategorySpec(order.Half, order.SizeHeavy)
	s.Require().NoError(err)
	aggregate, err := order.NewOrder(sale.ID(), buyer.ID(), spec)
	s.Require().NoError(err)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(s.ctx))
	s.Require().NoError(uow.OrderRepository().Add(s.ctx, aggregate))
	s.Require().NoError(uow.Commit(s.ctx))

	loaded, err := s.factory.Create().OrderRepository().Get(s.ctx, aggregate.ID())
	s.Require().NoError(err)
	cs, ok := loaded.Spec().(order.CategorySpec)
	s.Require().True(ok)
	s.Equal(order.Half, cs.Portion())
	s.Equal(order.SizeHeavy, cs.Size())
}

func (s *UnitOfWorkIntegrationTestSuite) TestMatchedOrderRoundTrip() {
	sale := s.seedSession("2025-12-20", 10)
	buyer := s.seedCustomer("Maier")
	weighed := s.seedUnit(sale.ID(), 7.2)

	spec, err := order.NewCategorySpec(order.Whole, order.SizeUnspecified)
	s.Require().NoError(err)
	aggregate, err := order.NewOrder(sale.ID(), buyer.ID(), spec)
	s.Require().NoError(err)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(s.ctx))
	repo := uow.OrderRepository()
	s.Require().NoError(repo.Add(s.ctx, aggregate))
	s.Require().NoError(aggregate.Match(weighed.ID()))
	s.Require().NoError(repo.Update(s.ctx, aggregate))
	s.Require().NoError(uow.Commit(s.ctx))

	loaded, err := s.factory.Create().OrderRepository().Get(s.ctx, aggregate.ID())
	s.Require().NoError(err)
	s.Equal(order.Matched, loaded.Status())
	s.Require().NotNil(loaded.UnitID())
	s.Equal(weighed.ID(), *loaded.UnitID())
}

func (s *UnitOfWorkIntegrationTestSuite) TestCountByCustomer() {
	sale := s.seedSession("2025-12-20", 10)
	buyer := s.seedCustomer("Maier")
	other := s.seedCustomer("Huber")

	spec, err := order.NewCategorySpec(order.Whole, order.SizeUnspecified)
	s.Require().NoError(err)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(s.ctx))
	repo := uow.OrderRepository()
	for n := 0; n < 2; n++ {
		aggregate, orderErr := order.NewOrder(sale.ID(), buyer.ID(), spec)
		s.Require().NoError(orderErr)
		s.Require().NoError(repo.Add(s.ctx, aggregate))
	}
	s.Require().NoError(uow.Commit(s.ctx))

	repo = s.factory.Create().OrderRepository()
	count, err := repo.CountByCustomer(s.ctx, buyer.ID())
	s.Require().NoError(err)
	s.EqualValues(2, count)

	count, err = repo.CountByCustomer(s.ctx, other.ID())
	s.Require().NoError(err)
	s.EqualValues(0, count)
}

func (s *UnitOfWorkIntegrationTestSuite) TestCountInvoicedInYear() {
	sale := s.seedSession("2025-12-20", 10)
	earlier := s.seedSession("2024-12-21", 9)
	buyer := s.seedCustomer("Maier")

	invoiceOrder := func(sessionID kernel.ID) {
		weighed := s.seedUnit(sessionID, 6.5)
		spec, err := order.NewCategorySpec(order.Whole, order.SizeUnspecified)
		s.Require().NoError(err)
		aggregate, err := order.NewOrder(sessionID, buyer.ID(), spec)
		s.Require().NoError(err)

		uow := s.factory.Create()
		s.Require().NoError(uow.Begin(s.ctx))
		repo := uow.OrderRepository()
		s.Require().NoError(repo.Add(s.ctx, aggregate))
		s.Require().NoError(aggregate.Match(weighed.ID()))
		s.Require().NoError(aggregate.Invoice())
		s.Require().NoError(repo.Update(s.ctx, aggregate))
		s.Require().NoError(uow.Commit(s.ctx))
	}

	invoiceOrder(sale.ID())
	invoiceOrder(sale.ID())
	invoiceOrder(earlier.ID())

	repo := s.factory.Create().OrderRepository()
	count, err := repo.CountInvoicedInYear(s.ctx, 2025)
	s.Require().NoError(err)
	s.EqualValues(2, count)

	count, err = repo.CountInvoicedInYear(s.ctx, 2024)
	s.Require().NoError(err)
	s.EqualValues(1, count)
}

func (s *UnitOfWorkIntegrationTestSuite) TestSessionCascadeDelete() {
	sale := s.seedSession("2025-12-20", 10)
	buyer := s.seedCustomer("Maier")
	weighed := s.seedUnit(sale.ID(), 7.0)

	spec, err := order.NewCategorySpec(order.Whole, order.SizeUnspecified)
	s.Require().NoError(err)
	aggregate, err := order.NewOrder(sale.ID(), buyer.ID(), spec)
	s.Require().NoError(err)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(s.ctx))
	s.Require().NoError(uow.OrderRepository().Add(s.ctx, aggregate))
	s.Require().NoError(uow.Commit(s.ctx))

	uow = s.factory.Create()
	s.Require().NoError(uow.Begin(s.ctx))
	s.Require().NoError(uow.OrderRepository().DeleteBySession(s.ctx, sale.ID()))
	s.Require().NoError(uow.UnitRepository().DeleteBySession(s.ctx, sale.ID()))
	s.Require().NoError(uow.SessionRepository().Delete(s.ctx, sale.ID()))
	s.Require().NoError(uow.Commit(s.ctx))

	fresh := s.factory.Create()
	_, err = fresh.SessionRepository().Get(s.ctx, sale.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = fresh.UnitRepository().Get(s.ctx, weighed.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = fresh.OrderRepository().Get(s.ctx, aggregate.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *UnitOfWorkIntegrationTestSuite) TestSettingsUpsert() {
	repo := s.factory.Create().SettingsRepository()

	loaded, err := repo.GetInvoiceSettings(s.ctx)
	s.Require().NoError(err)
	s.Empty(loaded.ProductName)

	first := invoice.Settings{
		ProductName: "Martinigansl",
		FooterNote:  "Hinweis",
		ClosingText: "Schluss",
		ThanksText:  "Danke",
	}
	s.Require().NoError(repo.SaveInvoiceSettings(s.ctx, first))

	second := first
	second.ProductName = "Weihnachtspute"
	s.Require().NoError(repo.SaveInvoiceSettings(s.ctx, second))

	loaded, err = repo.GetInvoiceSettings(s.ctx)
	s.Require().NoError(err)
	s.Equal("Weihnachtspute", loaded.ProductName)
	s.Equal("Hinweis", loaded.FooterNote)
}

func (s *UnitOfWorkIntegrationTestSuite) TestSessionsNewestFirst() {
	s.seedSession("2025-12-20", 10)
	s.seedSession("2026-01-03", 11)
	s.seedSession("2024-12-21", 9)

	sessions, err := s.factory.Create().SessionRepository().GetAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(sessions, 3)
	s.Equal("2026-01-03", sessions[0].Date().String())
	s.Equal("2025-12-20", sessions[1].Date().String())
	s.Equal("2024-12-21", sessions[2].Date().String())
}
