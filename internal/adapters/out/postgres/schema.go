package postgres

import (
	"procurement/internal/adapters/out/postgres/bookingrepo"
	"procurement/internal/adapters/out/postgres/deliveryrepo"
	"procurement/internal/adapters/out/postgres/invoicerepo"
	"procurement/internal/adapters/out/postgres/quoterepo"
	"procurement/internal/adapters/out/postgres/rfqrepo"
	"procurement/internal/adapters/out/postgres/warehouserepo"

	"gorm.io/gorm"
)

// Models lists every table of the schema in dependency order.
func Models() []any {
	return []any{
		&warehouserepo.WarehouseDTO{},
		&quoterepo.QuoteDTO{},
		&quoterepo.EventDTO{},
		&rfqrepo.RFQDTO{},
		&rfqrepo.RateDTO{},
		&bookingrepo.BookingDTO{},
		&bookingrepo.CargoDispatchDTO{},
		&bookingrepo.CartingDTO{},
		&deliveryrepo.RequestDTO{},
		&deliveryrepo.AdviceDTO{},
		&deliveryrepo.OrderDTO{},
		&deliveryrepo.ReportDTO{},
		&invoicerepo.InvoiceDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
