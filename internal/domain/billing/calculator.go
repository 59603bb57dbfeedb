package billing

import (
	"github.com/edificio/backend/internal/domain/property"
	"github.com/edificio/backend/internal/domain/shared"
	"github.com/edificio/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Flat-rate add-on charges for contracted services
var (
	internetCharge = decimal.NewFromInt(50)
	cableCharge    = decimal.NewFromInt(50)
)

// BillInput carries the shared billing figures for one month. Water and
// electricity totals are nil when no bill was recorded for the building that
// month; a receipt then omits the corresponding line entirely.
type BillInput struct {
	Month            valueobject.MonthKey
	WaterBillTotal   *decimal.Decimal
	ElectricityTotal *decimal.Decimal
	Laundry          *LaundryUsage
}

// GenerateReceipt computes one resident's itemized receipt for the month.
// Returns (nil, nil) when the apartment is vacant: no receipt is generated
// for a unit without a resident.
func GenerateReceipt(apartment *property.Apartment, resident *property.Resident, prices *property.ServicePriceSheet, in BillInput) (*Receipt, error) {
	if apartment == nil {
		return nil, shared.NewDomainError("INVALID_APARTMENT", "Apartment is required")
	}
	if prices == nil {
		return nil, shared.NewDomainError("INVALID_PRICES", "Service price sheet is required")
	}
	if in.Month.IsZero() {
		return nil, shared.NewDomainError("INVALID_MONTH", "Billing month is required")
	}
	if apartment.IsVacant() || resident == nil {
		return nil, nil
	}

	lines := LineItems{
		{Kind: LineRent, Label: "Rent", Amount: apartment.Rent},
		{Kind: LineDebt, Label: "Previous debt", Amount: resident.Debt},
	}

	maintenance := prices.Maintenance.Round(0)
	administration := prices.Administration.Round(0)
	if apartment.IsGarage {
		maintenance = decimal.Zero
		administration = decimal.Zero
	}
	// The custom override is applied after the garage zeroing, so an explicit
	// custom maintenance on a garage still charges. Kept as observed, pending
	// product sign-off.
	if apartment.CustomMaintenance != nil {
		maintenance = apartment.CustomMaintenance.Round(0)
	}
	lines = append(lines,
		LineItem{Kind: LineMaintenance, Label: "Maintenance", Amount: maintenance},
		LineItem{Kind: LineAdministration, Label: "Administration", Amount: administration},
		LineItem{Kind: LineMunicipality, Label: "Municipality tax", Amount: apartment.Municipality.Round(0)},
	)

	if in.WaterBillTotal != nil {
		lines = append(lines, LineItem{
			Kind:   LineWater,
			Label:  "Water",
			Amount: meteredShare(*in.WaterBillTotal, apartment.WaterPercentage),
		})
	}
	if in.ElectricityTotal != nil {
		lines = append(lines, LineItem{
			Kind:   LineElectricity,
			Label:  "Electricity",
			Amount: meteredShare(*in.ElectricityTotal, apartment.ElectricityPercentage),
		})
	}

	if resident.Services.Has(property.ServiceInternet) {
		lines = append(lines, LineItem{Kind: LineInternet, Label: "Internet", Amount: internetCharge})
	}
	if resident.Services.Has(property.ServiceCable) {
		lines = append(lines, LineItem{Kind: LineCable, Label: "Cable TV", Amount: cableCharge})
	}
	if in.Laundry != nil {
		lines = append(lines, LineItem{Kind: LineLaundry, Label: "Laundry", Amount: in.Laundry.Total})
	}

	return newReceipt(resident.ID, apartment.ID, resident.Name, apartment.Name, in.Month, lines), nil
}

// meteredShare computes a unit's share of a building-wide bill:
// round(billTotal * percentage) / 100. The rounding happens before the
// division, matching the historical billing output.
func meteredShare(billTotal, percentage decimal.Decimal) decimal.Decimal {
	return billTotal.Mul(percentage).Round(0).Div(decimal.NewFromInt(100))
}
