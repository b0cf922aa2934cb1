package services

import (
	"context"
	"fmt"
	"log/slog"

	"fairtix/internal/domain"
)

type notificationService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewNotificationService returns a NotificationService that uses the given Mailer and template renderer.
func NewNotificationService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.NotificationService {
	return &notificationService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendPurchaseReceipt sends the buyer's receipt using the "purchase_receipt" template.
func (s *notificationService) SendPurchaseReceipt(ctx context.Context, data *domain.PurchaseReceiptEmailData) error {
	return s.send(ctx, "purchase_receipt", data)
}

// SendSaleNotice tells the previous owner their ticket sold, using the "sale_notice" template.
func (s *notificationService) SendSaleNotice(ctx context.Context, data *domain.PurchaseReceiptEmailData) error {
	return s.send(ctx, "sale_notice", data)
}

func (s *notificationService) send(ctx context.Context, templateName string, data *domain.PurchaseReceiptEmailData) error {
	if data == nil {
		return fmt.Errorf("%s data is nil", templateName)
	}
	subject, htmlBody, textBody, err := s.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", templateName, err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", templateName, err)
	}
	s.logger.InfoContext(ctx, "email sent", "template", templateName, "to", data.Email, "ticket_id", data.TicketID)
	return nil
}
