package http

import (
	"net/http"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/quote"
	"procurement/internal/core/domain/model/workflow"

	"github.com/labstack/echo/v4"
)

// CreateQuote handles POST /api/v1/quotes (C1).
func (s *Server) CreateQuote(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req CreateQuoteRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}

	email := req.CustomerEmail
	if email == "" {
		email = actor.Email()
	}
	cmd, err := commands.NewCreateQuoteCommand(actor, quote.Details{
		CustomerEmail:  email,
		SpaceRequired:  req.SpaceRequired,
		Duration:       req.Duration,
		Location:       req.Location,
		GoodsType:      req.GoodsType,
		RequestedStart: req.RequestedStart,
	}, quote.FlowType(req.FlowType))
	if err != nil {
		return err
	}
	if err = s.commands.CreateQuote.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.QuoteID()})
}

// GetQuote handles GET /api/v1/quotes/:id.
func (s *Server) GetQuote(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	quoteID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetQuoteQuery(actor, quoteID)
	if err != nil {
		return err
	}
	resp, err := s.queries.GetQuote.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// GetQuoteHistory handles GET /api/v1/quotes/:id/history.
func (s *Server) GetQuoteHistory(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	quoteID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetQuoteHistoryQuery(actor, quoteID)
	if err != nil {
		return err
	}
	events, err := s.queries.GetQuoteHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// DecideQuote handles POST /api/v1/quotes/:id/decision: purchase support
// review (C2/C4), sales rejection (C12), customer answer (C13/C14) and
// customer withdrawal.
func (s *Server) DecideQuote(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	quoteID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req DecisionRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewAcceptRejectQuoteCommand(actor, quoteID, workflow.Action(req.Action), req.Note)
	if err != nil {
		return err
	}
	if err = s.commands.AcceptRejectQuote.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// TransitionQuote handles POST /api/v1/quotes/:id/transitions for steps that
// carry no payload, such as C10, C16, C17, C18 and C19.
func (s *Server) TransitionQuote(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	quoteID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req TransitionRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}
	step, err := workflow.ParseStep(req.Step)
	if err != nil {
		return err
	}
	cmd, err := commands.NewTransitionQuoteCommand(actor, quoteID, step, workflow.Action(req.Action), req.Note)
	if err != nil {
		return err
	}
	if err = s.commands.TransitionQuote.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// PriceQuote handles POST /api/v1/quotes/:id/price (C11, C15).
func (s *Server) PriceQuote(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	quoteID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req PriceRequest
	if err = bindRequest(c, &req); err != nil {
		return err
	}
	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return err
	}
	cmd, err := commands.NewPriceQuoteCommand(actor, quoteID, price, req.Note)
	if err != nil {
		return err
	}
	if err = s.commands.PriceQuote.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
