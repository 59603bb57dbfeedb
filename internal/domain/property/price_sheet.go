package property

import (
	"github.com/edificio/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ServicePriceSheet is the single shared record holding the building's current
// unit prices. It is read by the billing calculator and edited by an
// administrator.
type ServicePriceSheet struct {
	shared.BaseAggregateRoot
	Maintenance    decimal.Decimal `json:"maintenance"`
	Administration decimal.Decimal `json:"administration"`
	Internet       decimal.Decimal `json:"internet"`
	Cable          decimal.Decimal `json:"cable"`
	Municipality   decimal.Decimal `json:"municipality"`
}

// NewServicePriceSheet creates the price sheet record
func NewServicePriceSheet() *ServicePriceSheet {
	return &ServicePriceSheet{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
	}
}

// Update replaces all prices at once
func (p *ServicePriceSheet) Update(maintenance, administration, internet, cable, municipality decimal.Decimal) error {
	for _, v := range []decimal.Decimal{maintenance, administration, internet, cable, municipality} {
		if v.IsNegative() {
			return shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
		}
	}
	p.Maintenance = maintenance
	p.Administration = administration
	p.Internet = internet
	p.Cable = cable
	p.Municipality = municipality
	p.IncrementVersion()
	return nil
}
