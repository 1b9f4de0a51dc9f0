package http

import (
	"net/http"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// RegisterWarehouse handles POST /api/v1/warehouses.
func (s *Server) RegisterWarehouse(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req RegisterWarehouseRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}
	operatorID, err := kernel.UUIDFromString(req.OperatorID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewRegisterWarehouseCommand(actor, req.Name, req.Location, req.Capacity, req.ContactEmail, operatorID)
	if err != nil {
		return err
	}
	if err = s.commands.RegisterWarehouse.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.WarehouseID()})
}

// CreateRFQ handles POST /api/v1/quotes/:id/rfqs (C3).
func (s *Server) CreateRFQ(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	quoteID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req CreateRFQRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}

	warehouseIDs := make([]kernel.UUID, 0, len(req.WarehouseIDs))
	for _, raw := range req.WarehouseIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("warehouseIds", err)
		}
		warehouseIDs = append(warehouseIDs, id)
	}
	cmd, err := commands.NewCreateRFQCommand(actor, quoteID, warehouseIDs, req.ValidUntil, req.Note)
	if err != nil {
		return err
	}
	if err = s.commands.CreateRFQ.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// ListQuoteRFQs handles GET /api/v1/quotes/:id/rfqs.
func (s *Server) ListQuoteRFQs(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	quoteID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewListQuoteRFQsQuery(actor, quoteID)
	if err != nil {
		return err
	}
	rfqs, err := s.queries.ListQuoteRFQs.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rfqs)
}

// ListWarehouseRFQs handles GET /api/v1/rfqs?status=, the warehouse inbox.
func (s *Server) ListWarehouseRFQs(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	status, err := queryString(c, "status")
	if err != nil {
		return err
	}
	query, err := queries.NewListWarehouseRFQsQuery(actor, status)
	if err != nil {
		return err
	}
	rfqs, err := s.queries.ListWarehouseRFQs.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rfqs)
}

// RespondRFQ handles POST /api/v1/rfqs/:id/response (C5, C7).
func (s *Server) RespondRFQ(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	rfqID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req DecisionRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewRespondRFQCommand(actor, rfqID, workflow.Action(req.Action), req.Note)
	if err != nil {
		return err
	}
	if err = s.commands.RespondRFQ.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// SubmitRate handles POST /api/v1/rfqs/:id/rates (C6).
func (s *Server) SubmitRate(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	rfqID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req SubmitRateRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}
	amount, err := kernel.MoneyFromString(req.Amount)
	if err != nil {
		return err
	}
	cmd, err := commands.NewSubmitRateCommand(actor, rfqID, amount, req.Terms)
	if err != nil {
		return err
	}
	if err = s.commands.SubmitRate.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.RateID()})
}

// SelectRate handles POST /api/v1/rates/:id/select (C9).
func (s *Server) SelectRate(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	rateID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req SelectRateRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}
	salesUserID, err := optionalID(req.SalesUserID, "salesUserId")
	if err != nil {
		return err
	}
	cmd, err := commands.NewSelectRateCommand(actor, rateID, salesUserID)
	if err != nil {
		return err
	}
	if err = s.commands.SelectRate.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
