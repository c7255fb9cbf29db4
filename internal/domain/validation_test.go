package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidCPF(t *testing.T) {
	tests := []struct {
		cpf  string
		want bool
	}{
		{"12345678901", true},
		{"00000000000", true},
		{"", false},
		{"1234567890", false},
		{"123456789012", false},
		{"123.456.789-01", false},
		{"1234567890a", false},
		{"١٢٣٤٥٦٧٨٩٠١", false},
	}
	for _, tt := range tests {
		t.Run(tt.cpf, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCPF(tt.cpf))
		})
	}
}

func TestValidateDonation(t *testing.T) {
	tests := []struct {
		name      string
		in        DonationInput
		wantField string
	}{
		{
			name: "valid",
			in:   DonationInput{DonorName: "Maria Silva", DonorCPF: "12345678901", Amount: decimal.RequireFromString("150.00")},
		},
		{
			name:      "zero amount",
			in:        DonationInput{DonorName: "Maria Silva", DonorCPF: "12345678901", Amount: decimal.Zero},
			wantField: "amount",
		},
		{
			name:      "negative amount",
			in:        DonationInput{DonorName: "Maria Silva", DonorCPF: "12345678901", Amount: decimal.RequireFromString("-0.01")},
			wantField: "amount",
		},
		{
			name:      "missing cpf",
			in:        DonationInput{DonorName: "Maria Silva", Amount: decimal.RequireFromString("10")},
			wantField: "donor_cpf",
		},
		{
			name:      "short cpf",
			in:        DonationInput{DonorName: "Maria Silva", DonorCPF: "123", Amount: decimal.RequireFromString("10")},
			wantField: "donor_cpf",
		},
		{
			name:      "amount checked before cpf",
			in:        DonationInput{DonorCPF: "x", Amount: decimal.Zero},
			wantField: "amount",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDonation(tt.in)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.NotEmpty(t, verr.Message)
		})
	}
}

func TestNewDonation_DefaultsDonatedAtToNow(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	d := NewDonation(DonationInput{DonorName: "Maria Silva", DonorCPF: "12345678901", Amount: decimal.RequireFromString("150.00")}, now)
	assert.Equal(t, now, d.DonatedAt)
	assert.Equal(t, now, d.CreatedAt)
	assert.Nil(t, d.UpdatedAt)

	earlier := now.Add(-48 * time.Hour)
	d = NewDonation(DonationInput{DonorCPF: "12345678901", Amount: decimal.RequireFromString("1"), DonatedAt: &earlier}, now)
	assert.Equal(t, earlier, d.DonatedAt)
	assert.Equal(t, now, d.CreatedAt)
}

func TestDonation_View(t *testing.T) {
	email := "maria@example.com"
	d := &Donation{
		ID:         7,
		DonorName:  "Maria Silva",
		DonorCPF:   "12345678901",
		Amount:     decimal.RequireFromString("150"),
		DonatedAt:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		DonorEmail: &email,
		CreatedAt:  time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	v := d.View()
	assert.Equal(t, json.Number("150.00"), v.Amount)

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"amount":150.00`)
	assert.Contains(t, string(raw), `"donor_email":"maria@example.com"`)
	assert.NotContains(t, string(raw), `updated_at`)
}

func TestMaskCPF(t *testing.T) {
	assert.Equal(t, "123******01", MaskCPF("12345678901"))
	assert.Equal(t, "***", MaskCPF("12"))
}

func TestPaginationParams(t *testing.T) {
	assert.Equal(t, 0, PaginationParams{}.Offset())
	assert.False(t, PaginationParams{}.Limited())
	p := PaginationParams{Page: 3, PageSize: 20}
	assert.Equal(t, 40, p.Offset())
	assert.True(t, p.Limited())
}
