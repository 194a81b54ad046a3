package utils

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/imadityagolu/mct-5-amazone/models"
)

// EmailService sends transactional mail through SendGrid.
type EmailService struct {
	client *sendgrid.Client
	sender *mail.Email
}

func NewEmailService(apiKey, senderName, senderAddr string) *EmailService {
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: mail.NewEmail(senderName, senderAddr),
	}
}

// SendEmail sends a basic email to the specified recipient.
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(es.sender, subject, to, htmlContent, htmlContent)

	response, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("email provider returned status %d", response.StatusCode)
	}
	return nil
}

// SendOrderConfirmationEmail sends an order confirmation to the user.
func (es *EmailService) SendOrderConfirmationEmail(toEmail string, order models.Order) error {
	subject := "Order Confirmation"
	htmlContent := fmt.Sprintf(
		"<strong>Dear Customer,</strong><br><br>Thank you for your purchase! Your order (receipt: %s) has been placed successfully.<br><br>Total Amount: <strong>₹%.2f</strong><br>Payment ID: <strong>%s</strong><br><br>Thank you for shopping with us!",
		order.Receipt,
		float64(order.Amount)/100,
		order.PaymentID,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}
