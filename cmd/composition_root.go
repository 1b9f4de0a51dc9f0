package cmd

import (
	"context"
	"fmt"

	httpin "procurement/internal/adapters/in/http"
	"procurement/internal/adapters/out/notify/lognotify"
	"procurement/internal/adapters/out/notify/mailapi"
	"procurement/internal/adapters/out/notify/redisstream"
	"procurement/internal/adapters/out/postgres"
	"procurement/internal/core/application/notifications"
	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/workflow"
	"procurement/internal/core/ports"
	"procurement/internal/jobs"
	"procurement/internal/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	announcer  commands.Announcer
	logger     *zap.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, notifier ports.Notifier, log *zap.Logger) CompositionRoot {
	mailboxes := notifications.Mailboxes{
		workflow.RolePurchaseSupport: config.PurchaseSupportMailbox,
		workflow.RoleSalesSupport:    config.SalesSupportMailbox,
		workflow.RoleSupervisor:      config.SupervisorMailbox,
		workflow.RoleAccounts:        config.AccountsMailbox,
	}
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB).WithLogger(logger.Component(log, "unit_of_work")),
		announcer:  notifications.NewDispatcher(notifier, mailboxes, log),
		logger:     log,
	}
}

// NewNotifier builds the notifier selected by NOTIFIER. The returned close
// function releases its connections.
func NewNotifier(ctx context.Context, config Config, log *zap.Logger) (ports.Notifier, func() error, error) {
	noop := func() error { return nil }

	switch config.Notifier {
	case NotifierMail:
		n, err := mailapi.NewNotifier(mailapi.Config{
			BaseURL: config.MailAPIURL,
			APIKey:  config.MailAPIKey,
			From:    config.MailFrom,
			Timeout: config.MailTimeout,
			Retries: 2,
		}, log)
		if err != nil {
			return nil, noop, err
		}
		return n, noop, nil
	case NotifierRedis:
		client, err := redisstream.NewClient(ctx, config.RedisAddr, config.RedisPassword, config.RedisDB)
		if err != nil {
			return nil, noop, fmt.Errorf("connect redis: %w", err)
		}
		return redisstream.NewNotifier(client, config.RedisStream, config.RedisStreamMaxLen, log), client.Close, nil
	default:
		return lognotify.NewNotifier(log), noop, nil
	}
}

func (c *CompositionRoot) quoteUoWFactory() commands.QuoteUoWFactory {
	return FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) warehouseUoWFactory() commands.WarehouseUoWFactory {
	return FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) negotiationUoWFactory() commands.NegotiationUoWFactory {
	return FuncNegotiationUoWFactory(func() commands.NegotiationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// Commands wires every command handler exposed over HTTP.
func (c *CompositionRoot) Commands() httpin.Commands {
	quoteUoW := c.quoteUoWFactory()
	negotiationUoW := c.negotiationUoWFactory()
	uow := c.fullUoWFactory()

	return httpin.Commands{
		CreateQuote:           commands.NewCreateQuoteCommandHandler(quoteUoW, c.announcer),
		AcceptRejectQuote:     commands.NewAcceptRejectQuoteCommandHandler(uow, c.announcer),
		TransitionQuote:       commands.NewTransitionQuoteCommandHandler(uow, c.announcer),
		PriceQuote:            commands.NewPriceQuoteCommandHandler(quoteUoW, c.announcer),
		RegisterWarehouse:     commands.NewRegisterWarehouseCommandHandler(c.warehouseUoWFactory()),
		CreateRFQ:             commands.NewCreateRFQCommandHandler(negotiationUoW, c.announcer),
		RespondRFQ:            commands.NewRespondRFQCommandHandler(negotiationUoW, c.announcer),
		SubmitRate:            commands.NewSubmitRateCommandHandler(negotiationUoW, c.announcer),
		SelectRate:            commands.NewSelectRateCommandHandler(negotiationUoW, c.announcer),
		CancelBooking:         commands.NewCancelBookingCommandHandler(uow, c.announcer),
		SubmitCargoDispatch:   commands.NewSubmitCargoDispatchCommandHandler(uow, c.announcer),
		ReviewCargoDispatch:   commands.NewReviewCargoDispatchCommandHandler(uow, c.announcer),
		AdvanceCargoDispatch:  commands.NewAdvanceCargoDispatchCommandHandler(uow, c.announcer),
		SubmitCartingDetail:   commands.NewSubmitCartingDetailCommandHandler(uow, c.announcer),
		ReviewCartingDetail:   commands.NewReviewCartingDetailCommandHandler(uow, c.announcer),
		CreateDeliveryRequest: commands.NewCreateDeliveryRequestCommandHandler(uow, c.announcer),
		ReviewDeliveryRequest: commands.NewReviewDeliveryRequestCommandHandler(uow, c.announcer, c.logger),
		CreateDeliveryOrder:   commands.NewCreateDeliveryOrderCommandHandler(uow, c.announcer),
		ExecuteDeliveryOrder:  commands.NewExecuteDeliveryOrderCommandHandler(uow, c.announcer),
		SubmitDeliveryReport:  commands.NewSubmitDeliveryReportCommandHandler(uow, c.announcer),
		RequestInvoice:        commands.NewRequestInvoiceCommandHandler(uow, c.announcer),
		ReviewInvoice:         commands.NewReviewInvoiceCommandHandler(uow, c.announcer),
		SubmitPaymentDetails:  commands.NewSubmitPaymentDetailsCommandHandler(uow, c.announcer),
	}
}

// Queries wires the read side.
func (c *CompositionRoot) Queries() httpin.Queries {
	return httpin.Queries{
		GetQuote:          queries.NewGetQuoteQueryHandler(c.gormDB),
		GetQuoteHistory:   queries.NewGetQuoteHistoryQueryHandler(c.gormDB),
		ListQuoteRFQs:     queries.NewListQuoteRFQsQueryHandler(c.gormDB),
		ListWarehouseRFQs: queries.NewListWarehouseRFQsQueryHandler(c.gormDB),
		GetBookingChain:   queries.NewGetBookingChainQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) Server() *httpin.Server {
	return httpin.NewServer(c.Commands(), c.Queries())
}

func (c *CompositionRoot) JobManager() *jobs.JobManager {
	uow := c.fullUoWFactory()
	return jobs.NewJobManager(
		commands.NewIssuePendingDeliveryOrdersCommandHandler(uow, c.announcer, c.logger),
		commands.NewMarkOverdueInvoicesCommandHandler(uow, c.logger),
		jobs.Specs{
			DeliveryOrderRetry: c.config.DeliveryOrderRetrySpec,
			InvoiceOverdue:     c.config.InvoiceOverdueSpec,
		},
		c.logger,
	)
}

type FuncQuoteUoWFactory func() commands.QuoteUoW

func (f FuncQuoteUoWFactory) Create() commands.QuoteUoW {
	return f()
}

type FuncWarehouseUoWFactory func() commands.WarehouseUoW

func (f FuncWarehouseUoWFactory) Create() commands.WarehouseUoW {
	return f()
}

type FuncNegotiationUoWFactory func() commands.NegotiationUoW

func (f FuncNegotiationUoWFactory) Create() commands.NegotiationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
