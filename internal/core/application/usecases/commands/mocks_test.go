package commands_test

import (
	"context"
	"time"

	"procurement/internal/core/application/notifications"
	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/booking"
	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/invoice"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/quote"
	"procurement/internal/core/domain/model/rfq"
	"procurement/internal/core/domain/model/warehouse"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockQuoteRepository struct{ mock.Mock }

func (m *MockQuoteRepository) Add(ctx context.Context, q *quote.Quote) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuoteRepository) Update(ctx context.Context, q *quote.Quote) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuoteRepository) Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quote.Quote), args.Error(1)
}

func (m *MockQuoteRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quote.Quote), args.Error(1)
}

func (m *MockQuoteRepository) History(ctx context.Context, id kernel.UUID) ([]workflow.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]workflow.Event), args.Error(1)
}

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Add(ctx context.Context, w *warehouse.Warehouse) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*warehouse.Warehouse, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*warehouse.Warehouse), args.Error(1)
}

type MockRFQRepository struct{ mock.Mock }

func (m *MockRFQRepository) Add(ctx context.Context, r *rfq.RFQ) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRFQRepository) Update(ctx context.Context, r *rfq.RFQ) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRFQRepository) Get(ctx context.Context, id kernel.UUID) (*rfq.RFQ, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rfq.RFQ), args.Error(1)
}

func (m *MockRFQRepository) ListByQuote(ctx context.Context, quoteID kernel.UUID) ([]*rfq.RFQ, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rfq.RFQ), args.Error(1)
}

type MockRateRepository struct{ mock.Mock }

func (m *MockRateRepository) Add(ctx context.Context, r *rfq.Rate) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRateRepository) Update(ctx context.Context, r *rfq.Rate) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRateRepository) Get(ctx context.Context, id kernel.UUID) (*rfq.Rate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rfq.Rate), args.Error(1)
}

func (m *MockRateRepository) ListByQuote(ctx context.Context, quoteID kernel.UUID) ([]*rfq.Rate, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rfq.Rate), args.Error(1)
}

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByQuote(ctx context.Context, quoteID kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) AddCargo(ctx context.Context, c *booking.CargoDispatch) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateCargo(ctx context.Context, c *booking.CargoDispatch) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockBookingRepository) GetCargo(ctx context.Context, id kernel.UUID) (*booking.CargoDispatch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.CargoDispatch), args.Error(1)
}

func (m *MockBookingRepository) ListCargo(ctx context.Context, bookingID kernel.UUID) ([]*booking.CargoDispatch, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.CargoDispatch), args.Error(1)
}

func (m *MockBookingRepository) AddCarting(ctx context.Context, c *booking.Carting) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateCarting(ctx context.Context, c *booking.Carting) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockBookingRepository) GetCarting(ctx context.Context, id kernel.UUID) (*booking.Carting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Carting), args.Error(1)
}

func (m *MockBookingRepository) ListCarting(ctx context.Context, cargoID kernel.UUID) ([]*booking.Carting, error) {
	args := m.Called(ctx, cargoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Carting), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) AddRequest(ctx context.Context, r *delivery.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockDeliveryRepository) UpdateRequest(ctx context.Context, r *delivery.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockDeliveryRepository) GetRequest(ctx context.Context, id kernel.UUID) (*delivery.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Request), args.Error(1)
}

func (m *MockDeliveryRepository) ListRequests(ctx context.Context, bookingID kernel.UUID) ([]*delivery.Request, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Request), args.Error(1)
}

func (m *MockDeliveryRepository) AddAdvice(ctx context.Context, a *delivery.Advice) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockDeliveryRepository) UpdateAdvice(ctx context.Context, a *delivery.Advice) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockDeliveryRepository) GetAdvice(ctx context.Context, id kernel.UUID) (*delivery.Advice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Advice), args.Error(1)
}

func (m *MockDeliveryRepository) ListIssuedAdvices(ctx context.Context, limit int) ([]*delivery.Advice, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Advice), args.Error(1)
}

func (m *MockDeliveryRepository) AddOrder(ctx context.Context, o *delivery.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockDeliveryRepository) UpdateOrder(ctx context.Context, o *delivery.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockDeliveryRepository) GetOrder(ctx context.Context, id kernel.UUID) (*delivery.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Order), args.Error(1)
}

func (m *MockDeliveryRepository) AddReport(ctx context.Context, r *delivery.Report) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockDeliveryRepository) FindReportByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Report, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Report), args.Error(1)
}

func (m *MockDeliveryRepository) HasReportForBooking(ctx context.Context, bookingID kernel.UUID) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, i *invoice.Invoice) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, i *invoice.Invoice) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListByBooking(ctx context.Context, bookingID kernel.UUID) ([]*invoice.Invoice, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*invoice.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]*invoice.Invoice, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*invoice.Invoice), args.Error(1)
}

// MockUoW satisfies every unit of work shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) QuoteRepository() ports.QuoteRepository {
	args := m.Called()
	return args.Get(0).(ports.QuoteRepository)
}

func (m *MockUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

func (m *MockUoW) RFQRepository() ports.RFQRepository {
	args := m.Called()
	return args.Get(0).(ports.RFQRepository)
}

func (m *MockUoW) RateRepository() ports.RateRepository {
	args := m.Called()
	return args.Get(0).(ports.RateRepository)
}

func (m *MockUoW) BookingRepository() ports.BookingRepository {
	args := m.Called()
	return args.Get(0).(ports.BookingRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockQuoteUoWFactory struct{ mock.Mock }

func (m *MockQuoteUoWFactory) Create() commands.QuoteUoW {
	args := m.Called()
	return args.Get(0).(commands.QuoteUoW)
}

type MockWarehouseUoWFactory struct{ mock.Mock }

func (m *MockWarehouseUoWFactory) Create() commands.WarehouseUoW {
	args := m.Called()
	return args.Get(0).(commands.WarehouseUoW)
}

type MockNegotiationUoWFactory struct{ mock.Mock }

func (m *MockNegotiationUoWFactory) Create() commands.NegotiationUoW {
	args := m.Called()
	return args.Get(0).(commands.NegotiationUoW)
}

type MockAnnouncer struct{ mock.Mock }

func (m *MockAnnouncer) Announce(ctx context.Context, n notifications.Notice) {
	m.Called(ctx, n)
}

// repos bundles the mocks behind one MockUoW. Repository getters are optional
// so tests only spell out the calls that matter.
type repos struct {
	uow        *MockUoW
	quotes     *MockQuoteRepository
	warehouses *MockWarehouseRepository
	rfqs       *MockRFQRepository
	rates      *MockRateRepository
	bookings   *MockBookingRepository
	deliveries *MockDeliveryRepository
	invoices   *MockInvoiceRepository
}

func newRepos() *repos {
	r := &repos{
		uow:        new(MockUoW),
		quotes:     new(MockQuoteRepository),
		warehouses: new(MockWarehouseRepository),
		rfqs:       new(MockRFQRepository),
		rates:      new(MockRateRepository),
		bookings:   new(MockBookingRepository),
		deliveries: new(MockDeliveryRepository),
		invoices:   new(MockInvoiceRepository),
	}
	r.uow.On("QuoteRepository").Return(r.quotes).Maybe()
	r.uow.On("WarehouseRepository").Return(r.warehouses).Maybe()
	r.uow.On("RFQRepository").Return(r.rfqs).Maybe()
	r.uow.On("RateRepository").Return(r.rates).Maybe()
	r.uow.On("BookingRepository").Return(r.bookings).Maybe()
	r.uow.On("DeliveryRepository").Return(r.deliveries).Maybe()
	r.uow.On("InvoiceRepository").Return(r.invoices).Maybe()
	return r
}

// expectTx sets up a successful Begin/Commit/Rollback cycle.
func (r *repos) expectTx(ctx context.Context) {
	r.uow.On("Begin", ctx).Return(nil).Once()
	r.uow.On("Commit", ctx).Return(nil).Once()
	r.uow.On("Rollback", ctx).Return(nil).Once()
}

// expectAbortedTx sets up a transaction that is rolled back without commit.
func (r *repos) expectAbortedTx(ctx context.Context) {
	r.uow.On("Begin", ctx).Return(nil).Once()
	r.uow.On("Rollback", ctx).Return(nil).Once()
}

func (r *repos) factory() *MockUoWFactory {
	f := new(MockUoWFactory)
	f.On("Create").Return(r.uow)
	return f
}

func (r *repos) negotiationFactory() *MockNegotiationUoWFactory {
	f := new(MockNegotiationUoWFactory)
	f.On("Create").Return(r.uow)
	return f
}

func (r *repos) assertAll(t mock.TestingT) {
	r.uow.AssertExpectations(t)
	r.quotes.AssertExpectations(t)
	r.warehouses.AssertExpectations(t)
	r.rfqs.AssertExpectations(t)
	r.rates.AssertExpectations(t)
	r.bookings.AssertExpectations(t)
	r.deliveries.AssertExpectations(t)
	r.invoices.AssertExpectations(t)
}
