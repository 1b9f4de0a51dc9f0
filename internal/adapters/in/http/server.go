package http

import (
	"context"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// CommandHandler is satisfied by every handler in the commands package.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler is satisfied by every handler in the queries package.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Commands groups the write side used by the API.
type Commands struct {
	CreateQuote           CommandHandler[commands.CreateQuoteCommand]
	AcceptRejectQuote     CommandHandler[commands.AcceptRejectQuoteCommand]
	TransitionQuote       CommandHandler[commands.TransitionQuoteCommand]
	PriceQuote            CommandHandler[commands.PriceQuoteCommand]
	RegisterWarehouse     CommandHandler[commands.RegisterWarehouseCommand]
	CreateRFQ             CommandHandler[commands.CreateRFQCommand]
	RespondRFQ            CommandHandler[commands.RespondRFQCommand]
	SubmitRate            CommandHandler[commands.SubmitRateCommand]
	SelectRate            CommandHandler[commands.SelectRateCommand]
	CancelBooking         CommandHandler[commands.CancelBookingCommand]
	SubmitCargoDispatch   CommandHandler[commands.SubmitCargoDispatchCommand]
	ReviewCargoDispatch   CommandHandler[commands.ReviewCargoDispatchCommand]
	AdvanceCargoDispatch  CommandHandler[commands.AdvanceCargoDispatchCommand]
	SubmitCartingDetail   CommandHandler[commands.SubmitCartingDetailCommand]
	ReviewCartingDetail   CommandHandler[commands.ReviewCartingDetailCommand]
	CreateDeliveryRequest CommandHandler[commands.CreateDeliveryRequestCommand]
	ReviewDeliveryRequest CommandHandler[commands.ReviewDeliveryRequestCommand]
	CreateDeliveryOrder   CommandHandler[commands.CreateDeliveryOrderCommand]
	ExecuteDeliveryOrder  CommandHandler[commands.ExecuteDeliveryOrderCommand]
	SubmitDeliveryReport  CommandHandler[commands.SubmitDeliveryReportCommand]
	RequestInvoice        CommandHandler[commands.RequestInvoiceCommand]
	ReviewInvoice         CommandHandler[commands.ReviewInvoiceCommand]
	SubmitPaymentDetails  CommandHandler[commands.SubmitPaymentDetailsCommand]
}

// Queries groups the read side used by the API.
type Queries struct {
	GetQuote          QueryHandler[queries.GetQuoteQuery, queries.QuoteResponse]
	GetQuoteHistory   QueryHandler[queries.GetQuoteHistoryQuery, []queries.QuoteEventResponse]
	ListQuoteRFQs     QueryHandler[queries.ListQuoteRFQsQuery, []queries.RFQResponse]
	ListWarehouseRFQs QueryHandler[queries.ListWarehouseRFQsQuery, []queries.WarehouseRFQResponse]
	GetBookingChain   QueryHandler[queries.GetBookingChainQuery, queries.BookingChainResponse]
}

// Server exposes the procurement workflow over JSON. Every route requires a
// bearer token; the acting role is checked by the command and query handlers.
type Server struct {
	commands Commands
	queries  Queries
}

func NewServer(cmds Commands, qs Queries) *Server {
	return &Server{commands: cmds, queries: qs}
}

// Register mounts the API under /api/v1 behind auth.
func (s *Server) Register(e *echo.Echo, auth echo.MiddlewareFunc) {
	api := e.Group(apiPrefix, auth)
	for _, r := range s.routes() {
		api.Add(r.method, r.path, r.handler)
	}
}
