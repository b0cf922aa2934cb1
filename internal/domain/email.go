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

// PurchaseReceiptEmailData holds data for the buyer's receipt and the seller's sale notice.
type PurchaseReceiptEmailData struct {
	Email        string
	Participant  string
	Counterparty string
	TicketID     string
	EventName    string
	Price        string
}

// NotificationService sends participant-facing emails about settled purchases.
type NotificationService interface {
	SendPurchaseReceipt(ctx context.Context, data *PurchaseReceiptEmailData) error
	SendSaleNotice(ctx context.Context, data *PurchaseReceiptEmailData) error
}
