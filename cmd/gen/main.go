// Command gen regenerates the typed GORM query layer for the loyalty schema.
//
//	go run ./cmd/gen
package main

import (
	"stampcard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gen"
)

// LedgerQuerier holds the hand-written ledger reads. Methods are rendered
// by gen from the SQL in their comments.
type LedgerQuerier interface {
	// SELECT * FROM @@table WHERE customer_id = @customerID ORDER BY created_at DESC LIMIT @limit
	RecentForCustomer(customerID uuid.UUID, limit int) ([]*gen.T, error)

	// SELECT * FROM @@table WHERE location_id = @locationID ORDER BY created_at DESC LIMIT @limit
	RecentForLocation(locationID uuid.UUID, limit int) ([]*gen.T, error)
}

// CustomerQuerier covers the point-of-sale lookups.
type CustomerQuerier interface {
	// SELECT * FROM @@table WHERE tenant_id = @tenantID AND qr_code = @token LIMIT 1
	ByToken(tenantID uuid.UUID, token string) (gen.T, error)
}

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface | gen.WithoutContext,
		FieldNullable: true,
	})

	g.ApplyBasic(model.All()...)
	g.ApplyInterface(func(LedgerQuerier) {}, model.StampEventModel{}, model.RewardEventModel{})
	g.ApplyInterface(func(CustomerQuerier) {}, model.CustomerModel{})

	g.Execute()
}
