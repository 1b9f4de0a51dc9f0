package cmd_test

import (
	"context"
	"path/filepath"
	"testing"

	"procurement/cmd"
	"procurement/internal/adapters/out/notify/lognotify"
	postgres_adapter "procurement/internal/adapters/out/postgres"
	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/quote"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// WorkflowTestSuite drives the wired command and query handlers against a
// SQLite store, from the quote request to the paid invoice.
type WorkflowTestSuite struct {
	suite.Suite
	ctx  context.Context
	db   *gorm.DB
	root cmd.CompositionRoot

	customer   workflow.Actor
	purchase   workflow.Actor
	sales      workflow.Actor
	supervisor workflow.Actor
	accounts   workflow.Actor
}

func TestWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(WorkflowTestSuite))
}

func (s *WorkflowTestSuite) SetupTest() {
	dsn := filepath.Join(s.T().TempDir(), "workflow.db")
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

	s.ctx = context.Background()
	s.db = db
	s.root = cmd.NewCompositionRoot(cmd.Config{}, db, lognotify.NewNotifier(zap.NewNop()), zap.NewNop())

	s.customer = s.actor(workflow.RoleCustomer, nil)
	s.purchase = s.actor(workflow.RolePurchaseSupport, nil)
	s.sales = s.actor(workflow.RoleSalesSupport, nil)
	s.supervisor = s.actor(workflow.RoleSupervisor, nil)
	s.accounts = s.actor(workflow.RoleAccounts, nil)
}

func (s *WorkflowTestSuite) actor(role workflow.Role, warehouseID *kernel.UUID) workflow.Actor {
	a, err := workflow.NewActor(kernel.NewUUID(), role, string(role)+"@example.com", warehouseID)
	s.Require().NoError(err)
	return a
}

func (s *WorkflowTestSuite) money(v string) kernel.Money {
	m, err := kernel.MoneyFromString(v)
	s.Require().NoError(err)
	return m
}

func (s *WorkflowTestSuite) registerWarehouse(name string) kernel.UUID {
	c, err := commands.NewRegisterWarehouseCommand(s.supervisor, name, "Chennai", 1000, name+"@dock.example.com", kernel.NewUUID())
	s.Require().NoError(err)
	s.Require().NoError(s.root.Commands().RegisterWarehouse.Handle(s.ctx, c))
	return c.WarehouseID()
}

func (s *WorkflowTestSuite) createQuote() kernel.UUID {
	c, err := commands.NewCreateQuoteCommand(s.customer, quote.Details{
		CustomerEmail: "buyer@example.com",
		SpaceRequired: 500,
		Duration:      "3 months",
		Location:      "Chennai",
	}, quote.FlowStandard)
	s.Require().NoError(err)
	s.Require().NoError(s.root.Commands().CreateQuote.Handle(s.ctx, c))
	return c.QuoteID()
}

func (s *WorkflowTestSuite) getQuote(quoteID kernel.UUID) queries.QuoteResponse {
	q, err := queries.NewGetQuoteQuery(s.purchase, quoteID)
	s.Require().NoError(err)
	resp, err := s.root.Queries().GetQuote.Handle(s.ctx, q)
	s.Require().NoError(err)
	return resp
}

func (s *WorkflowTestSuite) rfqs(quoteID kernel.UUID) map[string]queries.RFQResponse {
	q, err := queries.NewListQuoteRFQsQuery(s.purchase, quoteID)
	s.Require().NoError(err)
	list, err := s.root.Queries().ListQuoteRFQs.Handle(s.ctx, q)
	s.Require().NoError(err)
	byWarehouse := make(map[string]queries.RFQResponse, len(list))
	for _, r := range list {
		byWarehouse[r.WarehouseID.String()] = r
	}
	return byWarehouse
}

func (s *WorkflowTestSuite) submitRate(warehouseID, rfqID kernel.UUID, amount string) kernel.UUID {
	c, err := commands.NewSubmitRateCommand(s.actor(workflow.RoleWarehouse, &warehouseID), rfqID, s.money(amount), "net 30")
	s.Require().NoError(err)
	s.Require().NoError(s.root.Commands().SubmitRate.Handle(s.ctx, c))
	return c.RateID()
}

func (s *WorkflowTestSuite) decide(actor workflow.Actor, quoteID kernel.UUID, decision workflow.Action) error {
	c, err := commands.NewAcceptRejectQuoteCommand(actor, quoteID, decision, "")
	s.Require().NoError(err)
	return s.root.Commands().AcceptRejectQuote.Handle(s.ctx, c)
}

// negotiate runs the quote up to processing with W1's rate of 1000 selected.
func (s *WorkflowTestSuite) negotiate() (quoteID, w1, w2, rate1, rate2 kernel.UUID) {
	w1 = s.registerWarehouse("w1")
	w2 = s.registerWarehouse("w2")

	quoteID = s.createQuote()
	s.Equal("pending", s.getQuote(quoteID).Status)

	rfqCmd, err := commands.NewCreateRFQCommand(s.purchase, quoteID, []kernel.UUID{w1, w2}, nil, "")
	s.Require().NoError(err)
	s.Require().NoError(s.root.Commands().CreateRFQ.Handle(s.ctx, rfqCmd))

	rfqs := s.rfqs(quoteID)
	s.Require().Len(rfqs, 2)
	s.Equal("sent", rfqs[w1.String()].Status)
	s.Equal("sent", rfqs[w2.String()].Status)
	s.Equal("warehouse_quote_requested", s.getQuote(quoteID).Status)

	rate1 = s.submitRate(w1, rfqs[w1.String()].ID, "1000")
	s.Equal("responded", s.rfqs(quoteID)[w1.String()].Status)
	s.Equal("warehouse_quote_received", s.getQuote(quoteID).Status)

	rate2 = s.submitRate(w2, rfqs[w2.String()].ID, "1100")

	sales := s.sales.ID()
	selectCmd, err := commands.NewSelectRateCommand(s.purchase, rate1, &sales)
	s.Require().NoError(err)
	s.Require().NoError(s.root.Commands().SelectRate.Handle(s.ctx, selectCmd))
	return quoteID, w1, w2, rate1, rate2
}

func (s *WorkflowTestSuite) TestQuoteToBooking() {
	quoteID, w1, w2, _, _ := s.negotiate()

	q := s.getQuote(quoteID)
	s.Equal("processing", q.Status)
	s.Require().NotNil(q.WarehouseID)
	s.True(q.WarehouseID.IsEqual(w1))
	s.Require().NotNil(q.FinalPrice)
	s.Equal("1000.00", q.FinalPrice.String())

	rfqs := s.rfqs(quoteID)
	s.Require().Len(rfqs[w1.String()].Rates, 1)
	s.Equal("accepted", rfqs[w1.String()].Rates[0].Status)
	s.Require().Len(rfqs[w2.String()].Rates, 1)
	s.Equal("rejected", rfqs[w2.String()].Rates[0].Status)

	priceCmd, err := commands.NewPriceQuoteCommand(s.sales, quoteID, s.money("1200"), "incl. handling")
	s.Require().NoError(err)
	s.Require().NoError(s.root.Commands().PriceQuote.Handle(s.ctx, priceCmd))
	s.Equal("quoted", s.getQuote(quoteID).Status)

	s.Require().NoError(s.decide(s.customer, quoteID, workflow.ActionAccept))
	s.Equal("customer_confirmation_pending", s.getQuote(quoteID).Status)

	s.Require().NoError(s.decide(s.supervisor, quoteID, workflow.ActionAccept))
	q = s.getQuote(quoteID)
	s.Equal("booking_confirmed", q.Status)
	s.Equal("C17", q.CurrentStep)

	b, err := postgres_adapter.NewGormUnitOfWorkFactory(s.db).Create().BookingRepository().FindByQuote(s.ctx, quoteID)
	s.Require().NoError(err)
	s.Require().NotNil(b)
	s.Equal("1200.00", b.TotalAmount().String())
	s.True(b.WarehouseID().IsEqual(w1))

	historyQuery, err := queries.NewGetQuoteHistoryQuery(s.customer, quoteID)
	s.Require().NoError(err)
	history, err := s.root.Queries().GetQuoteHistory.Handle(s.ctx, historyQuery)
	s.Require().NoError(err)
	steps := make([]string, 0, len(history))
	for _, e := range history {
		steps = append(steps, e.ToStep)
	}
	s.Equal([]string{"C1", "C3", "C6", "C6", "C9", "C11", "C13", "C17"}, steps)
}

func (s *WorkflowTestSuite) TestSecondSelectionIsConflict() {
	quoteID, _, _, _, rate2 := s.negotiate()

	sales := s.sales.ID()
	again, err := commands.NewSelectRateCommand(s.purchase, rate2, &sales)
	s.Require().NoError(err)
	err = s.root.Commands().SelectRate.Handle(s.ctx, again)

	s.Require().ErrorIs(err, errs.ErrConflict)
	q := s.getQuote(quoteID)
	s.Equal("1000.00", q.FinalPrice.String())
}

func (s *WorkflowTestSuite) TestLosingWarehouseCannotRejectConfirmedQuote() {
	quoteID, _, w2, _, _ := s.negotiate()
	priceCmd, err := commands.NewPriceQuoteCommand(s.sales, quoteID, s.money("1200"), "")
	s.Require().NoError(err)
	s.Require().NoError(s.root.Commands().PriceQuote.Handle(s.ctx, priceCmd))
	s.Require().NoError(s.decide(s.customer, quoteID, workflow.ActionAccept))
	s.Require().NoError(s.decide(s.supervisor, quoteID, workflow.ActionAccept))
	s.Equal("cancelled", s.rfqs(quoteID)[w2.String()].Status)

	err = s.decide(s.actor(workflow.RoleWarehouse, &w2), quoteID, workflow.ActionReject)

	s.Require().ErrorIs(err, errs.ErrPermissionDenied)
	q := s.getQuote(quoteID)
	s.Equal("booking_confirmed", q.Status)
	s.Equal("C17", q.CurrentStep)
}

func (s *WorkflowTestSuite) TestDeclinedWarehouseLosesAccess() {
	w1 := s.registerWarehouse("w1")
	w3 := s.registerWarehouse("w3")
	quoteID := s.createQuote()
	rfqCmd, err := commands.NewCreateRFQCommand(s.purchase, quoteID, []kernel.UUID{w1, w3}, nil, "")
	s.Require().NoError(err)
	s.Require().NoError(s.root.Commands().CreateRFQ.Handle(s.ctx, rfqCmd))

	operator := s.actor(workflow.RoleWarehouse, &w3)
	respond, err := commands.NewRespondRFQCommand(operator, s.rfqs(quoteID)[w3.String()].ID, workflow.ActionReject, "full")
	s.Require().NoError(err)
	s.Require().NoError(s.root.Commands().RespondRFQ.Handle(s.ctx, respond))

	err = s.decide(operator, quoteID, workflow.ActionReject)

	s.Require().ErrorIs(err, errs.ErrPermissionDenied)
	s.Equal("warehouse_quote_requested", s.getQuote(quoteID).Status)
}

func (s *WorkflowTestSuite) TestRepeatedConfirmationKeepsOneBooking() {
	quoteID, _, _, _, _ := s.negotiate()
	priceCmd, err := commands.NewPriceQuoteCommand(s.sales, quoteID, s.money("1200"), "")
	s.Require().NoError(err)
	s.Require().NoError(s.root.Commands().PriceQuote.Handle(s.ctx, priceCmd))
	s.Require().NoError(s.decide(s.customer, quoteID, workflow.ActionAccept))

	for range 2 {
		c, cmdErr := commands.NewTransitionQuoteCommand(s.supervisor, quoteID, workflow.StepBookingConfirmed, workflow.ActionAccept, "")
		s.Require().NoError(cmdErr)
		s.Require().NoError(s.root.Commands().TransitionQuote.Handle(s.ctx, c))
	}

	var count int64
	s.Require().NoError(s.db.Table("bookings").Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *WorkflowTestSuite) TestPostBookingCascade() {
	quoteID, w1, _, _, _ := s.negotiate()
	priceCmd, err := commands.NewPriceQuoteCommand(s.sales, quoteID, s.money("1200"), "")
	s.Require().NoError(err)
	s.Require().NoError(s.root.Commands().PriceQuote.Handle(s.ctx, priceCmd))
	s.Require().NoError(s.decide(s.customer, quoteID, workflow.ActionAccept))
	s.Require().NoError(s.decide(s.supervisor, quoteID, workflow.ActionAccept))

	b, err := postgres_adapter.NewGormUnitOfWorkFactory(s.db).Create().BookingRepository().FindByQuote(s.ctx, quoteID)
	s.Require().NoError(err)
	s.Require().NotNil(b)
	operator := s.actor(workflow.RoleWarehouse, &w1)
	cmds := s.root.Commands()

	cargo, err := commands.NewSubmitCargoDispatchCommand(s.customer, b.ID(), "cotton bales", 40, 1200)
	s.Require().NoError(err)
	s.Require().NoError(cmds.SubmitCargoDispatch.Handle(s.ctx, cargo))

	review, err := commands.NewReviewCargoDispatchCommand(s.supervisor, cargo.CargoID(), workflow.ActionApprove, "")
	s.Require().NoError(err)
	s.Require().NoError(cmds.ReviewCargoDispatch.Handle(s.ctx, review))

	advance, err := commands.NewAdvanceCargoDispatchCommand(operator, cargo.CargoID(), workflow.ActionProcess)
	s.Require().NoError(err)
	s.Require().NoError(cmds.AdvanceCargoDispatch.Handle(s.ctx, advance))

	carting, err := commands.NewSubmitCartingDetailCommand(operator, cargo.CargoID(), "TN-09-AB-1234", "Bay 4")
	s.Require().NoError(err)
	s.Require().NoError(cmds.SubmitCartingDetail.Handle(s.ctx, carting))

	confirm, err := commands.NewReviewCartingDetailCommand(s.supervisor, carting.CartingID(), workflow.ActionConfirm, "")
	s.Require().NoError(err)
	s.Require().NoError(cmds.ReviewCartingDetail.Handle(s.ctx, confirm))

	request, err := commands.NewCreateDeliveryRequestCommand(s.customer, b.ID(), "Bengaluru DC", nil, "")
	s.Require().NoError(err)
	s.Require().NoError(cmds.CreateDeliveryRequest.Handle(s.ctx, request))

	approve, err := commands.NewReviewDeliveryRequestCommand(s.supervisor, request.RequestID(), workflow.ActionApprove, "")
	s.Require().NoError(err)
	s.Require().NoError(cmds.ReviewDeliveryRequest.Handle(s.ctx, approve))

	chain := s.chain(b.ID())
	s.Require().Len(chain.Deliveries, 1)
	s.Equal("scheduled", chain.Deliveries[0].Status)
	s.Require().NotNil(chain.Deliveries[0].Advice)
	s.Equal("ordered", chain.Deliveries[0].Advice.Status)
	s.Require().NotNil(chain.Deliveries[0].Order)
	orderID := chain.Deliveries[0].Order.ID

	execute, err := commands.NewExecuteDeliveryOrderCommand(operator, orderID, "")
	s.Require().NoError(err)
	s.Require().NoError(cmds.ExecuteDeliveryOrder.Handle(s.ctx, execute))
	s.Equal("active", s.chain(b.ID()).Status)

	report, err := commands.NewSubmitDeliveryReportCommand(operator, orderID, "S. Iyer", "", nil)
	s.Require().NoError(err)
	s.Require().NoError(cmds.SubmitDeliveryReport.Handle(s.ctx, report))

	invoiceCmd, err := commands.NewRequestInvoiceCommand(s.customer, b.ID(), 15)
	s.Require().NoError(err)
	s.Require().NoError(cmds.RequestInvoice.Handle(s.ctx, invoiceCmd))

	reviewInvoice, err := commands.NewReviewInvoiceCommand(s.accounts, invoiceCmd.InvoiceID(), workflow.ActionApprove, "")
	s.Require().NoError(err)
	s.Require().NoError(cmds.ReviewInvoice.Handle(s.ctx, reviewInvoice))

	pay, err := commands.NewSubmitPaymentDetailsCommand(s.customer, invoiceCmd.InvoiceID(), "UTR-20250310-77")
	s.Require().NoError(err)
	s.Require().NoError(cmds.SubmitPaymentDetails.Handle(s.ctx, pay))

	chain = s.chain(b.ID())
	s.Equal("completed", chain.Status)
	s.Require().Len(chain.Cargo, 1)
	s.Equal("processing", chain.Cargo[0].Status)
	s.Require().Len(chain.Cargo[0].Cartings, 1)
	s.Equal("confirmed", chain.Cargo[0].Cartings[0].Status)
	s.Require().NotNil(chain.Deliveries[0].Report)
	s.Require().Len(chain.Invoices, 1)
	s.Equal("paid", chain.Invoices[0].Status)
	s.Equal("1200.00", chain.Invoices[0].Amount.String())
	s.Equal("UTR-20250310-77", chain.Invoices[0].PaymentReference)
}

func (s *WorkflowTestSuite) chain(bookingID kernel.UUID) queries.BookingChainResponse {
	q, err := queries.NewGetBookingChainQuery(s.customer, bookingID)
	s.Require().NoError(err)
	resp, err := s.root.Queries().GetBookingChain.Handle(s.ctx, q)
	s.Require().NoError(err)
	return resp
}
