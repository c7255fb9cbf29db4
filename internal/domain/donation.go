package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Donation is a persisted monetary donation (one row in the donations table).
type Donation struct {
	ID         int64
	DonorName  string
	DonorCPF   string
	Amount     decimal.Decimal
	DonatedAt  time.Time
	DonorEmail *string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// NewDonation builds a Donation from a submission. When the submission carries no
// donation timestamp, DonatedAt is set to now so that it equals CreatedAt.
func NewDonation(in DonationInput, now time.Time) *Donation {
	donatedAt := now
	if in.DonatedAt != nil {
		donatedAt = *in.DonatedAt
	}
	return &Donation{
		DonorName:  in.DonorName,
		DonorCPF:   in.DonorCPF,
		Amount:     in.Amount,
		DonatedAt:  donatedAt,
		DonorEmail: in.DonorEmail,
		CreatedAt:  now,
	}
}

// DonationInput is a candidate donation as submitted by a caller.
type DonationInput struct {
	DonorName  string
	DonorCPF   string
	Amount     decimal.Decimal
	DonatedAt  *time.Time
	DonorEmail *string
}

// DonationView is the externally shaped donation returned by the service.
// swagger:model DonationView
type DonationView struct {
	ID         int64       `json:"id" example:"42"`
	DonorName  string      `json:"donor_name" example:"Maria Silva"`
	DonorCPF   string      `json:"donor_cpf" example:"12345678901"`
	Amount     json.Number `json:"amount" swaggertype:"number" example:"150.00"`
	DonatedAt  time.Time   `json:"donated_at"`
	DonorEmail *string     `json:"donor_email,omitempty" example:"maria@example.com"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  *time.Time  `json:"updated_at,omitempty"`
}

// View converts the stored row into its external shape. Amounts always carry two decimals.
func (d *Donation) View() *DonationView {
	return &DonationView{
		ID:         d.ID,
		DonorName:  d.DonorName,
		DonorCPF:   d.DonorCPF,
		Amount:     FormatAmount(d.Amount),
		DonatedAt:  d.DonatedAt,
		DonorEmail: d.DonorEmail,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// FormatAmount renders a monetary amount as a JSON number with two fraction digits.
func FormatAmount(amount decimal.Decimal) json.Number {
	return json.Number(amount.StringFixed(2))
}

// DonationSort selects the ordering of a donation listing.
type DonationSort int

const (
	SortDonatedAtDesc DonationSort = iota
	SortDonatedAtAsc
	SortIDAsc
)

// ListOptions controls ordering and paging of DonationRepository.List.
type ListOptions struct {
	Sort       DonationSort
	Pagination PaginationParams
}

// DonationRepository defines the interface for donation storage.
type DonationRepository interface {
	// Save inserts d when d.ID is zero (setting d.ID), otherwise updates it and refreshes UpdatedAt.
	Save(ctx context.Context, d *Donation) error
	GetByID(ctx context.Context, id int64) (*Donation, error)
	List(ctx context.Context, opts ListOptions) ([]*Donation, error)
	ListByCPF(ctx context.Context, cpf string) ([]*Donation, error)
	// ListByNameContains matches donor names containing fragment, ignoring case.
	ListByNameContains(ctx context.Context, fragment string) ([]*Donation, error)
	ListByMinAmount(ctx context.Context, min decimal.Decimal) ([]*Donation, error)
	ListByPeriod(ctx context.Context, from, to time.Time) ([]*Donation, error)
	ExistsByCPF(ctx context.Context, cpf string) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
	// SumAmountByCPF returns zero when the CPF has no donations.
	SumAmountByCPF(ctx context.Context, cpf string) (decimal.Decimal, error)
}

// DonationService defines the donation use cases.
type DonationService interface {
	Create(ctx context.Context, in DonationInput) (*DonationView, error)
	ListAll(ctx context.Context, params PaginationParams) ([]*DonationView, error)
	GetByID(ctx context.Context, id int64) (*DonationView, error)
	ListByCPF(ctx context.Context, cpf string) ([]*DonationView, error)
	ListByName(ctx context.Context, name string) ([]*DonationView, error)
	ListByMinAmount(ctx context.Context, min decimal.Decimal) ([]*DonationView, error)
	ListByPeriod(ctx context.Context, from, to time.Time) ([]*DonationView, error)
	SumByCPF(ctx context.Context, cpf string) (decimal.Decimal, error)
	Delete(ctx context.Context, id int64) error
}
