package http

import (
	"net/http"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/workflow"

	"github.com/labstack/echo/v4"
)

// GetBookingChain handles GET /api/v1/bookings/:id.
func (s *Server) GetBookingChain(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetBookingChainQuery(actor, bookingID)
	if err != nil {
		return err
	}
	chain, err := s.queries.GetBookingChain.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chain)
}

// CancelBooking handles POST /api/v1/bookings/:id/cancel (C20).
func (s *Server) CancelBooking(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req NoteRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewCancelBookingCommand(actor, bookingID, req.Note)
	if err != nil {
		return err
	}
	if err = s.commands.CancelBooking.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// SubmitCargoDispatch handles POST /api/v1/bookings/:id/cargo (C21).
func (s *Server) SubmitCargoDispatch(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req CargoDispatchRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewSubmitCargoDispatchCommand(actor, bookingID, req.Description, req.Packages, req.WeightKg)
	if err != nil {
		return err
	}
	if err = s.commands.SubmitCargoDispatch.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.CargoID()})
}

// ReviewCargoDispatch handles POST /api/v1/cargo/:id/review (C22, C23).
func (s *Server) ReviewCargoDispatch(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	cargoID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req DecisionRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewReviewCargoDispatchCommand(actor, cargoID, workflow.Action(req.Action), req.Note)
	if err != nil {
		return err
	}
	if err = s.commands.ReviewCargoDispatch.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// AdvanceCargoDispatch handles POST /api/v1/cargo/:id/advance (C24).
func (s *Server) AdvanceCargoDispatch(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	cargoID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req AdvanceCargoRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewAdvanceCargoDispatchCommand(actor, cargoID, workflow.Action(req.Action))
	if err != nil {
		return err
	}
	if err = s.commands.AdvanceCargoDispatch.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// SubmitCartingDetail handles POST /api/v1/cargo/:id/cartings (C25).
func (s *Server) SubmitCartingDetail(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	cargoID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req CartingRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewSubmitCartingDetailCommand(actor, cargoID, req.VehicleNumber, req.StagingArea)
	if err != nil {
		return err
	}
	if err = s.commands.SubmitCartingDetail.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.CartingID()})
}

// ReviewCartingDetail handles POST /api/v1/cartings/:id/review (C26, C27).
func (s *Server) ReviewCartingDetail(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	cartingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req DecisionRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewReviewCartingDetailCommand(actor, cartingID, workflow.Action(req.Action), req.Note)
	if err != nil {
		return err
	}
	if err = s.commands.ReviewCartingDetail.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// CreateDeliveryRequest handles POST /api/v1/bookings/:id/delivery-requests (C28).
func (s *Server) CreateDeliveryRequest(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req DeliveryRequestRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewCreateDeliveryRequestCommand(actor, bookingID, req.Destination, req.PreferredDate, req.Notes)
	if err != nil {
		return err
	}
	if err = s.commands.CreateDeliveryRequest.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.RequestID()})
}

// ReviewDeliveryRequest handles POST /api/v1/delivery-requests/:id/review (C32).
// Approval also issues the delivery advice and order.
func (s *Server) ReviewDeliveryRequest(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	requestID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req DecisionRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewReviewDeliveryRequestCommand(actor, requestID, workflow.Action(req.Action), req.Note)
	if err != nil {
		return err
	}
	if err = s.commands.ReviewDeliveryRequest.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// CreateDeliveryOrder handles POST /api/v1/delivery-advices/:id/order.
func (s *Server) CreateDeliveryOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	adviceID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateDeliveryOrderCommand(actor, adviceID)
	if err != nil {
		return err
	}
	if err = s.commands.CreateDeliveryOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.OrderID()})
}

// ExecuteDeliveryOrder handles POST /api/v1/delivery-orders/:id/execute (C29).
func (s *Server) ExecuteDeliveryOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req NoteRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewExecuteDeliveryOrderCommand(actor, orderID, req.Note)
	if err != nil {
		return err
	}
	if err = s.commands.ExecuteDeliveryOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// SubmitDeliveryReport handles POST /api/v1/delivery-orders/:id/report (C30).
func (s *Server) SubmitDeliveryReport(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req DeliveryReportRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewSubmitDeliveryReportCommand(actor, orderID, req.ReceivedBy, req.Remarks, req.DeliveredAt)
	if err != nil {
		return err
	}
	if err = s.commands.SubmitDeliveryReport.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.ReportID()})
}

// RequestInvoice handles POST /api/v1/bookings/:id/invoices (C31).
func (s *Server) RequestInvoice(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req InvoiceRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewRequestInvoiceCommand(actor, bookingID, req.DueInDays)
	if err != nil {
		return err
	}
	if err = s.commands.RequestInvoice.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.InvoiceID()})
}

// ReviewInvoice handles POST /api/v1/invoices/:id/review (C8).
func (s *Server) ReviewInvoice(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	invoiceID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req DecisionRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewReviewInvoiceCommand(actor, invoiceID, workflow.Action(req.Action), req.Note)
	if err != nil {
		return err
	}
	if err = s.commands.ReviewInvoice.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// SubmitPaymentDetails handles POST /api/v1/invoices/:id/payment (C33).
func (s *Server) SubmitPaymentDetails(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	invoiceID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req PaymentRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewSubmitPaymentDetailsCommand(actor, invoiceID, req.Reference)
	if err != nil {
		return err
	}
	if err = s.commands.SubmitPaymentDetails.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
