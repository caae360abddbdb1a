package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/logger"
)

type sendGridNotifier struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridNotifier(apiKey, fromEmail, fromName string) Notifier {
	return &sendGridNotifier{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (n *sendGridNotifier) SendLockersReady(ctx context.Context, user *domain.User, lockers []domain.Locker) error {
	var codes []string
	for _, l := range lockers {
		codes = append(codes, l.Code)
	}

	subject := "Your Shipperd lockers are ready"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour account is set up and your lockers have been assigned:\n\n%s\n\nUse these codes when shipping to our warehouses.\n\nBest regards,\nThe Shipperd Team",
		user.Username, strings.Join(codes, "\n"))

	return n.send(user, subject, body)
}

func (n *sendGridNotifier) send(user *domain.User, subject, plainText string) error {
	from := mail.NewEmail(n.fromName, n.fromEmail)
	toName := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if toName == "" {
		toName = user.Username
	}
	recipient := mail.NewEmail(toName, user.Email)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	logger.ExternalServiceCall("sendgrid", "send", "to", user.Email)
	client := sendgrid.NewSendClient(n.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "send", nil)
	return nil
}
