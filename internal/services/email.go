package services

import (
	"context"
	"fmt"
	"log/slog"

	"donationrecords/internal/domain"
)

const donationReceiptTemplate = "donation_receipt"

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	if logger == nil {
		logger = slog.Default()
	}
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendDonationReceipt sends the receipt email using the "donation_receipt" template and the given data.
func (s *emailService) SendDonationReceipt(ctx context.Context, data *domain.DonationReceiptEmailData) error {
	if data == nil {
		return fmt.Errorf("donation receipt data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render(donationReceiptTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", donationReceiptTemplate, err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send donation receipt: %w", err)
	}
	s.logger.InfoContext(ctx, "donation receipt sent", "donation_id", data.DonationID)
	return nil
}
