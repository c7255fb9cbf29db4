package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// DonationReceiptEmailData holds data for the donation receipt email.
type DonationReceiptEmailData struct {
	Email      string
	DonorName  string
	DonationID int64
	Amount     string
	DonatedAt  string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendDonationReceipt(ctx context.Context, data *DonationReceiptEmailData) error
}
