package models

import (
	"github.com/edificio/backend/internal/domain/property"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ApartmentModel is the persistence model for the Apartment aggregate root.
type ApartmentModel struct {
	AggregateModel
	Name                  string           `gorm:"type:varchar(100);not null;uniqueIndex"`
	Rent                  decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	WaterPercentage       decimal.Decimal  `gorm:"type:decimal(7,4);not null;default:0"`
	ElectricityPercentage decimal.Decimal  `gorm:"type:decimal(7,4);not null;default:0"`
	Municipality          decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	CustomMaintenance     *decimal.Decimal `gorm:"type:decimal(18,4)"`
	IsGarage              bool             `gorm:"not null;default:false"`
	ResidentID            *uuid.UUID       `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (ApartmentModel) TableName() string {
	return "apartments"
}

// ToDomain converts the persistence model to a domain Apartment entity.
func (m *ApartmentModel) ToDomain() *property.Apartment {
	a := &property.Apartment{
		Name:                  m.Name,
		Rent:                  m.Rent,
		WaterPercentage:       m.WaterPercentage,
		ElectricityPercentage: m.ElectricityPercentage,
		Municipality:          m.Municipality,
		CustomMaintenance:     m.CustomMaintenance,
		IsGarage:              m.IsGarage,
		ResidentID:            m.ResidentID,
	}
	m.PopulateAggregateRoot(&a.BaseAggregateRoot)
	return a
}

// FromDomain populates the persistence model from a domain Apartment entity.
func (m *ApartmentModel) FromDomain(a *property.Apartment) {
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	m.Name = a.Name
	m.Rent = a.Rent
	m.WaterPercentage = a.WaterPercentage
	m.ElectricityPercentage = a.ElectricityPercentage
	m.Municipality = a.Municipality
	m.CustomMaintenance = a.CustomMaintenance
	m.IsGarage = a.IsGarage
	m.ResidentID = a.ResidentID
}

// ApartmentModelFromDomain creates a new persistence model from a domain Apartment.
func ApartmentModelFromDomain(a *property.Apartment) *ApartmentModel {
	m := &ApartmentModel{}
	m.FromDomain(a)
	return m
}

// ResidentModel is the persistence model for the Resident aggregate root.
type ResidentModel struct {
	AggregateModel
	Name         string            `gorm:"type:varchar(200);not null"`
	Email        string            `gorm:"type:varchar(320);not null;uniqueIndex"`
	PasswordHash string            `gorm:"type:varchar(100)"`
	Role         property.Role     `gorm:"type:varchar(20);not null;default:'RESIDENT'"`
	Services     property.Services `gorm:"type:jsonb;default:'[]'"`
	Debt         decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (ResidentModel) TableName() string {
	return "residents"
}

// ToDomain converts the persistence model to a domain Resident entity.
func (m *ResidentModel) ToDomain() *property.Resident {
	r := &property.Resident{
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		Services:     m.Services,
		Debt:         m.Debt,
	}
	m.PopulateAggregateRoot(&r.BaseAggregateRoot)
	return r
}

// FromDomain populates the persistence model from a domain Resident entity.
func (m *ResidentModel) FromDomain(r *property.Resident) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.Name = r.Name
	m.Email = r.Email
	m.PasswordHash = r.PasswordHash
	m.Role = r.Role
	m.Services = r.Services
	m.Debt = r.Debt
}

// ResidentModelFromDomain creates a new persistence model from a domain Resident.
func ResidentModelFromDomain(r *property.Resident) *ResidentModel {
	m := &ResidentModel{}
	m.FromDomain(r)
	return m
}

// ServicePriceSheetModel is the persistence model for the building-wide price
// sheet. The table holds a single row.
type ServicePriceSheetModel struct {
	AggregateModel
	Maintenance    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Administration decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Internet       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Cable          decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Municipality   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (ServicePriceSheetModel) TableName() string {
	return "service_price_sheet"
}

// ToDomain converts the persistence model to a domain ServicePriceSheet entity.
func (m *ServicePriceSheetModel) ToDomain() *property.ServicePriceSheet {
	p := &property.ServicePriceSheet{
		Maintenance:    m.Maintenance,
		Administration: m.Administration,
		Internet:       m.Internet,
		Cable:          m.Cable,
		Municipality:   m.Municipality,
	}
	m.PopulateAggregateRoot(&p.BaseAggregateRoot)
	return p
}

// FromDomain populates the persistence model from a domain ServicePriceSheet entity.
func (m *ServicePriceSheetModel) FromDomain(p *property.ServicePriceSheet) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Maintenance = p.Maintenance
	m.Administration = p.Administration
	m.Internet = p.Internet
	m.Cable = p.Cable
	m.Municipality = p.Municipality
}

// ServicePriceSheetModelFromDomain creates a new persistence model from a domain ServicePriceSheet.
func ServicePriceSheetModelFromDomain(p *property.ServicePriceSheet) *ServicePriceSheetModel {
	m := &ServicePriceSheetModel{}
	m.FromDomain(p)
	return m
}
