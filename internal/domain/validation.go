package domain

import (
	"regexp"

	"github.com/shopspring/decimal"
)

var cpfRegexp = regexp.MustCompile(`^[0-9]{11}$`)

// IsValidCPF reports whether cpf is exactly 11 ASCII digits.
// Check digits are not verified.
func IsValidCPF(cpf string) bool {
	return cpfRegexp.MatchString(cpf)
}

// ValidateDonation applies the business rules a submission must satisfy before it is stored:
// a strictly positive amount and a well-formed CPF.
func ValidateDonation(in DonationInput) error {
	if !in.Amount.GreaterThan(decimal.Zero) {
		return NewValidationError("amount", "donation amount must be greater than 0.00")
	}
	if !IsValidCPF(in.DonorCPF) {
		return NewValidationError("donor_cpf", "invalid CPF")
	}
	return nil
}

// MaskCPF hides the middle digits of a CPF for logging.
func MaskCPF(cpf string) string {
	if len(cpf) < 5 {
		return "***"
	}
	masked := []byte(cpf)
	for i := 3; i < len(masked)-2; i++ {
		masked[i] = '*'
	}
	return string(masked)
}
