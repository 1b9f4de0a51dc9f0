package http

import (
	"net/http"

	"procurement/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

const apiPrefix = "/api/v1"

// route describes one endpoint for both the router and the API document.
type route struct {
	method   string
	path     string
	handler  echo.HandlerFunc
	id       string
	tag      string
	summary  string
	request  any
	status   int
	response any
}

func (s *Server) routes() []route {
	return []route{
		{http.MethodPost, "/quotes", s.CreateQuote, "createQuote", "quotes",
			"Request a storage quote (C1)", CreateQuoteRequest{}, http.StatusCreated, CreatedResponse{}},
		{http.MethodGet, "/quotes/:id", s.GetQuote, "getQuote", "quotes",
			"Quote with its history", nil, http.StatusOK, queries.QuoteResponse{}},
		{http.MethodGet, "/quotes/:id/history", s.GetQuoteHistory, "getQuoteHistory", "quotes",
			"Audit trail of a quote", nil, http.StatusOK, []queries.QuoteEventResponse{}},
		{http.MethodPost, "/quotes/:id/decision", s.DecideQuote, "decideQuote", "quotes",
			"Accept, reject or cancel as the acting role", DecisionRequest{}, http.StatusOK, nil},
		{http.MethodPost, "/quotes/:id/transitions", s.TransitionQuote, "transitionQuote", "quotes",
			"Move a quote to an explicit step", TransitionRequest{}, http.StatusOK, nil},
		{http.MethodPost, "/quotes/:id/price", s.PriceQuote, "priceQuote", "quotes",
			"Quote or revise the customer price (C11, C15)", PriceRequest{}, http.StatusOK, nil},
		{http.MethodPost, "/quotes/:id/rfqs", s.CreateRFQ, "createRFQ", "negotiation",
			"Send RFQs to warehouses (C3)", CreateRFQRequest{}, http.StatusCreated, nil},
		{http.MethodGet, "/quotes/:id/rfqs", s.ListQuoteRFQs, "listQuoteRFQs", "negotiation",
			"RFQs and rates of a quote", nil, http.StatusOK, []queries.RFQResponse{}},

		{http.MethodPost, "/warehouses", s.RegisterWarehouse, "registerWarehouse", "negotiation",
			"Register a candidate warehouse", RegisterWarehouseRequest{}, http.StatusCreated, CreatedResponse{}},
		{http.MethodGet, "/rfqs", s.ListWarehouseRFQs, "listWarehouseRFQs", "negotiation",
			"RFQ inbox of the acting warehouse", nil, http.StatusOK, []queries.WarehouseRFQResponse{}},
		{http.MethodPost, "/rfqs/:id/response", s.RespondRFQ, "respondRFQ", "negotiation",
			"Acknowledge or decline an RFQ (C5, C7)", DecisionRequest{}, http.StatusOK, nil},
		{http.MethodPost, "/rfqs/:id/rates", s.SubmitRate, "submitRate", "negotiation",
			"Submit a rate for an RFQ (C6)", SubmitRateRequest{}, http.StatusCreated, CreatedResponse{}},
		{http.MethodPost, "/rates/:id/select", s.SelectRate, "selectRate", "negotiation",
			"Select a rate and assign sales (C9)", SelectRateRequest{}, http.StatusOK, nil},

		{http.MethodGet, "/bookings/:id", s.GetBookingChain, "getBookingChain", "bookings",
			"Booking with cargo, delivery and invoices", nil, http.StatusOK, queries.BookingChainResponse{}},
		{http.MethodPost, "/bookings/:id/cancel", s.CancelBooking, "cancelBooking", "bookings",
			"Cancel a booking (C20)", NoteRequest{}, http.StatusOK, nil},
		{http.MethodPost, "/bookings/:id/cargo", s.SubmitCargoDispatch, "submitCargoDispatch", "bookings",
			"Submit cargo dispatch details (C21)", CargoDispatchRequest{}, http.StatusCreated, CreatedResponse{}},
		{http.MethodPost, "/cargo/:id/review", s.ReviewCargoDispatch, "reviewCargoDispatch", "bookings",
			"Approve or reject a cargo dispatch (C22, C23)", DecisionRequest{}, http.StatusOK, nil},
		{http.MethodPost, "/cargo/:id/advance", s.AdvanceCargoDispatch, "advanceCargoDispatch", "bookings",
			"Mark cargo processing or completed (C24)", AdvanceCargoRequest{}, http.StatusOK, nil},
		{http.MethodPost, "/cargo/:id/cartings", s.SubmitCartingDetail, "submitCartingDetail", "bookings",
			"Submit carting details (C25)", CartingRequest{}, http.StatusCreated, CreatedResponse{}},
		{http.MethodPost, "/cartings/:id/review", s.ReviewCartingDetail, "reviewCartingDetail", "bookings",
			"Confirm or reject carting (C26, C27)", DecisionRequest{}, http.StatusOK, nil},

		{http.MethodPost, "/bookings/:id/delivery-requests", s.CreateDeliveryRequest, "createDeliveryRequest", "delivery",
			"Request a delivery (C28)", DeliveryRequestRequest{}, http.StatusCreated, CreatedResponse{}},
		{http.MethodPost, "/delivery-requests/:id/review", s.ReviewDeliveryRequest, "reviewDeliveryRequest", "delivery",
			"Approve or reject a delivery request (C32)", DecisionRequest{}, http.StatusOK, nil},
		{http.MethodPost, "/delivery-advices/:id/order", s.CreateDeliveryOrder, "createDeliveryOrder", "delivery",
			"Issue the delivery order of an advice (C32)", nil, http.StatusCreated, CreatedResponse{}},
		{http.MethodPost, "/delivery-orders/:id/execute", s.ExecuteDeliveryOrder, "executeDeliveryOrder", "delivery",
			"Execute a delivery order (C29)", NoteRequest{}, http.StatusOK, nil},
		{http.MethodPost, "/delivery-orders/:id/report", s.SubmitDeliveryReport, "submitDeliveryReport", "delivery",
			"Submit the delivery report (C30)", DeliveryReportRequest{}, http.StatusCreated, CreatedResponse{}},

		{http.MethodPost, "/bookings/:id/invoices", s.RequestInvoice, "requestInvoice", "invoices",
			"Request an invoice (C31)", InvoiceRequest{}, http.StatusCreated, CreatedResponse{}},
		{http.MethodPost, "/invoices/:id/review", s.ReviewInvoice, "reviewInvoice", "invoices",
			"Approve or reject a draft invoice (C8)", DecisionRequest{}, http.StatusOK, nil},
		{http.MethodPost, "/invoices/:id/payment", s.SubmitPaymentDetails, "submitPaymentDetails", "invoices",
			"Submit payment details (C33)", PaymentRequest{}, http.StatusOK, nil},
	}
}
