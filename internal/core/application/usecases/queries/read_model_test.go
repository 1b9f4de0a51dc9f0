package queries_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	postgres_adapter "procurement/internal/adapters/out/postgres"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/booking"
	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/invoice"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/quote"
	"procurement/internal/core/domain/model/rfq"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ReadModelTestSuite seeds a SQLite database through the repositories and
// reads it back through the query handlers.
type ReadModelTestSuite struct {
	suite.Suite
	db      *gorm.DB
	factory ports.UnitOfWorkFactory
	ctx     context.Context
	now     time.Time

	customer    workflow.Actor
	purchasing  workflow.Actor
	warehouseA  workflow.Actor
	warehouseB  workflow.Actor
	quote       *quote.Quote
	rfqA, rfqB  *rfq.RFQ
	warehouseID kernel.UUID
}

func TestReadModelTestSuite(t *testing.T) {
	suite.Run(t, new(ReadModelTestSuite))
}

func (s *ReadModelTestSuite) SetupTest() {
	dsn := filepath.Join(s.T().TempDir(), "procurement.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)

	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.T().Cleanup(func() { _ = sqlDB.Close() })

	s.Require().NoError(postgres_adapter.Migrate(db))
	s.db = db
	s.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
	s.ctx = context.Background()
	s.now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	s.customer = s.actor(workflow.RoleCustomer, nil)
	s.purchasing = s.actor(workflow.RolePurchaseSupport, nil)
	s.warehouseID = kernel.NewUUID()
	otherWarehouse := kernel.NewUUID()
	s.warehouseA = s.actor(workflow.RoleWarehouse, &s.warehouseID)
	s.warehouseB = s.actor(workflow.RoleWarehouse, &otherWarehouse)

	s.seedQuote(otherWarehouse)
}

func (s *ReadModelTestSuite) actor(role workflow.Role, warehouseID *kernel.UUID) workflow.Actor {
	a, err := workflow.NewActor(kernel.NewUUID(), role, string(role)+"@example.com", warehouseID)
	s.Require().NoError(err)
	return a
}

// seedQuote stores a quote at C2 with one RFQ per warehouse; warehouse A has
// answered with a rate.
func (s *ReadModelTestSuite) seedQuote(otherWarehouse kernel.UUID) {
	uow := s.factory.Create()

	q, err := quote.NewQuote(kernel.NewUUID(), s.customer, quote.Details{
		CustomerEmail: "buyer@example.com",
		SpaceRequired: 800,
		Duration:      "6 months",
		Location:      "Coimbatore",
		GoodsType:     "spices",
	}, quote.FlowStandard, s.now)
	s.Require().NoError(err)
	s.Require().NoError(uow.QuoteRepository().Add(s.ctx, q))
	s.Require().NoError(q.Transition(workflow.StepPurchaseAccepted, workflow.ActionAccept,
		s.purchasing, "forwarding", s.now.Add(time.Minute)))
	s.Require().NoError(uow.QuoteRepository().Update(s.ctx, q))
	s.quote = q

	s.rfqA, err = rfq.NewRFQ(kernel.NewUUID(), q.ID(), s.warehouseID, nil, s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.rfqA.Accept("space available"))
	s.Require().NoError(uow.RFQRepository().Add(s.ctx, s.rfqA))

	s.rfqB, err = rfq.NewRFQ(kernel.NewUUID(), q.ID(), otherWarehouse, nil, s.now.Add(time.Second))
	s.Require().NoError(err)
	s.Require().NoError(uow.RFQRepository().Add(s.ctx, s.rfqB))

	amount, err := kernel.MoneyFromString("980.40")
	s.Require().NoError(err)
	rate, err := rfq.NewRate(kernel.NewUUID(), s.rfqA, amount, "per month", s.now)
	s.Require().NoError(err)
	s.Require().NoError(uow.RateRepository().Add(s.ctx, rate))
}

func (s *ReadModelTestSuite) TestGetQuote() {
	query, err := queries.NewGetQuoteQuery(s.customer, s.quote.ID())
	s.Require().NoError(err)

	got, err := queries.NewGetQuoteQueryHandler(s.db).Handle(s.ctx, query)
	s.Require().NoError(err)
	s.True(s.quote.ID().IsEqual(got.ID))
	s.Equal("warehouse_quote_requested", got.Status)
	s.Equal("C2", got.CurrentStep)
	s.Equal("spices", got.GoodsType)
	s.Nil(got.RequestedStart)
	s.Nil(got.FinalPrice)
	s.Require().Len(got.History, 2)
	s.Equal("C1", got.History[0].ToStep)
	s.Empty(got.History[0].FromStep)
	s.Equal("forwarding", got.History[1].Note)
	s.True(s.purchasing.ID().IsEqual(got.History[1].ActorID))
}

func (s *ReadModelTestSuite) TestGetQuote_Access() {
	handler := queries.NewGetQuoteQueryHandler(s.db)

	stranger := s.actor(workflow.RoleCustomer, nil)
	query, err := queries.NewGetQuoteQuery(stranger, s.quote.ID())
	s.Require().NoError(err)
	_, err = handler.Handle(s.ctx, query)
	s.Require().ErrorIs(err, errs.ErrPermissionDenied)

	uninvolved := kernel.NewUUID()
	query, err = queries.NewGetQuoteQuery(s.actor(workflow.RoleWarehouse, &uninvolved), s.quote.ID())
	s.Require().NoError(err)
	_, err = handler.Handle(s.ctx, query)
	s.Require().ErrorIs(err, errs.ErrPermissionDenied)

	query, err = queries.NewGetQuoteQuery(s.warehouseB, s.quote.ID())
	s.Require().NoError(err)
	_, err = handler.Handle(s.ctx, query)
	s.Require().NoError(err)

	query, err = queries.NewGetQuoteQuery(s.customer, kernel.NewUUID())
	s.Require().NoError(err)
	_, err = handler.Handle(s.ctx, query)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *ReadModelTestSuite) TestGetQuoteHistory() {
	query, err := queries.NewGetQuoteHistoryQuery(s.purchasing, s.quote.ID())
	s.Require().NoError(err)

	events, err := queries.NewGetQuoteHistoryQueryHandler(s.db).Handle(s.ctx, query)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(1, events[0].Seq)
	s.Equal(2, events[1].Seq)
	s.Equal("C1", events[1].FromStep)
	s.Equal("pending", events[1].FromStatus)
	s.Equal("purchase_support", events[1].ActorRole)
	s.True(events[1].OccurredAt.Equal(s.now.Add(time.Minute)))
}

func (s *ReadModelTestSuite) TestListQuoteRFQs() {
	handler := queries.NewListQuoteRFQsQueryHandler(s.db)

	query, err := queries.NewListQuoteRFQsQuery(s.purchasing, s.quote.ID())
	s.Require().NoError(err)
	all, err := handler.Handle(s.ctx, query)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.True(s.rfqA.ID().IsEqual(all[0].ID))
	s.Equal("responded", all[0].Status)
	s.Equal([]string{"space available"}, all[0].Notes)
	s.Require().Len(all[0].Rates, 1)
	s.Equal("980.40", all[0].Rates[0].Amount.String())
	s.Equal("pending", all[0].Rates[0].Status)
	s.Equal("sent", all[1].Status)
	s.Empty(all[1].Notes)
	s.Empty(all[1].Rates)

	query, err = queries.NewListQuoteRFQsQuery(s.warehouseB, s.quote.ID())
	s.Require().NoError(err)
	own, err := handler.Handle(s.ctx, query)
	s.Require().NoError(err)
	s.Require().Len(own, 1)
	s.True(s.rfqB.ID().IsEqual(own[0].ID))

	query, err = queries.NewListQuoteRFQsQuery(s.customer, s.quote.ID())
	s.Require().NoError(err)
	_, err = handler.Handle(s.ctx, query)
	s.Require().ErrorIs(err, errs.ErrPermissionDenied)
}

func (s *ReadModelTestSuite) TestListWarehouseRFQs() {
	handler := queries.NewListWarehouseRFQsQueryHandler(s.db)

	query, err := queries.NewListWarehouseRFQsQuery(s.warehouseA, "")
	s.Require().NoError(err)
	inbox, err := handler.Handle(s.ctx, query)
	s.Require().NoError(err)
	s.Require().Len(inbox, 1)
	s.True(s.quote.ID().IsEqual(inbox[0].QuoteID))
	s.Equal("Coimbatore", inbox[0].Location)
	s.Equal(800, inbox[0].SpaceRequired)
	s.Equal("C2", inbox[0].QuoteStep)

	query, err = queries.NewListWarehouseRFQsQuery(s.warehouseA, "sent")
	s.Require().NoError(err)
	inbox, err = handler.Handle(s.ctx, query)
	s.Require().NoError(err)
	s.Empty(inbox)

	query, err = queries.NewListWarehouseRFQsQuery(s.purchasing, "")
	s.Require().NoError(err)
	_, err = handler.Handle(s.ctx, query)
	s.Require().ErrorIs(err, errs.ErrPermissionDenied)
}

func (s *ReadModelTestSuite) seedBooking() *booking.Booking {
	uow := s.factory.Create()
	amount, err := kernel.MoneyFromString("5882.40")
	s.Require().NoError(err)
	b, err := booking.RestoreBooking(kernel.NewUUID(), s.quote.ID(), s.customer.ID(), s.warehouseID,
		booking.Confirmed, s.now.AddDate(0, 0, 7), "6 months", amount, s.now)
	s.Require().NoError(err)
	s.Require().NoError(uow.BookingRepository().Add(s.ctx, b))

	cargo, err := booking.NewCargoDispatch(kernel.NewUUID(), b, "pepper sacks", 120, 3000, s.now)
	s.Require().NoError(err)
	s.Require().NoError(uow.BookingRepository().AddCargo(s.ctx, cargo))
	s.Require().NoError(cargo.Approve())
	s.Require().NoError(uow.BookingRepository().UpdateCargo(s.ctx, cargo))
	carting, err := booking.NewCarting(kernel.NewUUID(), cargo, "tn38cd5678", "Dock 2", s.now)
	s.Require().NoError(err)
	s.Require().NoError(uow.BookingRepository().AddCarting(s.ctx, carting))

	request, err := delivery.NewRequest(kernel.NewUUID(), b, "Kochi port", nil, "fragile", s.now)
	s.Require().NoError(err)
	s.Require().NoError(request.Schedule())
	s.Require().NoError(uow.DeliveryRepository().AddRequest(s.ctx, request))
	advice, err := delivery.NewAdvice(kernel.NewUUID(), request, s.now)
	s.Require().NoError(err)
	s.Require().NoError(uow.DeliveryRepository().AddAdvice(s.ctx, advice))
	order, err := delivery.NewOrder(kernel.NewUUID(), advice, s.now)
	s.Require().NoError(err)
	s.Require().NoError(uow.DeliveryRepository().AddOrder(s.ctx, order))
	s.Require().NoError(uow.DeliveryRepository().UpdateAdvice(s.ctx, advice))
	report, err := delivery.NewReport(kernel.NewUUID(), order, "S. Iyer", "", nil, s.now.Add(time.Hour))
	s.Require().NoError(err)
	s.Require().NoError(uow.DeliveryRepository().UpdateOrder(s.ctx, order))
	s.Require().NoError(uow.DeliveryRepository().AddReport(s.ctx, report))

	inv, err := invoice.NewInvoice(kernel.NewUUID(), b, invoice.DefaultDueDays, s.now)
	s.Require().NoError(err)
	s.Require().NoError(uow.InvoiceRepository().Add(s.ctx, inv))
	return b
}

func (s *ReadModelTestSuite) TestGetBookingChain() {
	b := s.seedBooking()
	query, err := queries.NewGetBookingChainQuery(s.customer, b.ID())
	s.Require().NoError(err)

	chain, err := queries.NewGetBookingChainQueryHandler(s.db).Handle(s.ctx, query)
	s.Require().NoError(err)
	s.Equal("confirmed", chain.Status)
	s.Equal("5882.40", chain.TotalAmount.String())

	s.Require().Len(chain.Cargo, 1)
	s.Equal("approved", chain.Cargo[0].Status)
	s.Require().Len(chain.Cargo[0].Cartings, 1)
	s.Equal("Dock 2", chain.Cargo[0].Cartings[0].StagingArea)

	s.Require().Len(chain.Deliveries, 1)
	d := chain.Deliveries[0]
	s.Equal("fragile", d.Notes)
	s.Require().NotNil(d.Advice)
	s.Equal("ordered", d.Advice.Status)
	s.Require().NotNil(d.Order)
	s.Equal("executed", d.Order.Status)
	s.NotNil(d.Order.ExecutedAt)
	s.Require().NotNil(d.Report)
	s.Equal("S. Iyer", d.Report.ReceivedBy)

	s.Require().Len(chain.Invoices, 1)
	s.Equal("5882.40", chain.Invoices[0].Amount.String())
	s.Equal("draft", chain.Invoices[0].Status)
}

func (s *ReadModelTestSuite) TestGetBookingChain_Access() {
	b := s.seedBooking()
	handler := queries.NewGetBookingChainQueryHandler(s.db)

	for _, actor := range []workflow.Actor{s.actor(workflow.RoleCustomer, nil), s.warehouseB} {
		query, err := queries.NewGetBookingChainQuery(actor, b.ID())
		s.Require().NoError(err)
		_, err = handler.Handle(s.ctx, query)
		s.Require().ErrorIs(err, errs.ErrPermissionDenied)
	}

	query, err := queries.NewGetBookingChainQuery(s.warehouseA, b.ID())
	s.Require().NoError(err)
	_, err = handler.Handle(s.ctx, query)
	s.Require().NoError(err)

	query, err = queries.NewGetBookingChainQuery(s.purchasing, kernel.NewUUID())
	s.Require().NoError(err)
	_, err = handler.Handle(s.ctx, query)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
