package services

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	twilio "github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/harborview/realestate/backend/services/listing-service/internal/config"
	"github.com/harborview/realestate/backend/shared/go-models"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

// HTML template for the internal notification email.
const inquiryNotificationEmailHTML = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: monospace; line-height: 1.5; }
  .container { border: 1px solid #ccc; padding: 15px; max-width: 600px; }
  h2 { margin-top: 0; }
  ul { list-style: none; padding: 0; }
  li { margin-bottom: 5px; }
</style>
</head>
<body>
  <div class="container">
    <h2>New Property Inquiry</h2>
    <ul>
      <li><strong>Property:</strong> <a href="%s">%s</a></li>
      <li><strong>Name:</strong> %s</li>
      <li><strong>Email:</strong> %s</li>
      <li><strong>Phone:</strong> %s</li>
      <li><strong>Timestamp (UTC):</strong> %s</li>
    </ul>
    <p>%s</p>
  </div>
</body>
</html>`

// HTML template for the acknowledgement sent to the inquirer.
const inquiryAckEmailHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>We received your inquiry</title>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Arial, sans-serif; line-height: 1.6; color: #333; background-color: #f8f9fa; padding: 20px; }
  .container { max-width: 500px; margin: auto; background: #ffffff; border: 1px solid #e9ecef; border-radius: 8px; padding: 30px; }
  .footer { padding-top: 20px; font-size: 12px; color: #6c757d; text-align: center; }
</style>
</head>
<body>
  <div class="container">
    <p>Hello %s,</p>
    <p>Thanks for your interest in <a href="%s">%s</a>. An agent will get back to you shortly.</p>
    <div class="footer">© %d %s. All rights reserved.</div>
  </div>
</body>
</html>`

// EmailSender delivers one prepared message.
type EmailSender interface {
	SendEmail(msg *mail.SGMailV3) error
}

// SMSSender delivers one text message.
type SMSSender interface {
	SendSMS(to, body string) error
}

type sendgridSender struct {
	client *sendgrid.Client
}

func (s *sendgridSender) SendEmail(msg *mail.SGMailV3) error {
	resp, err := s.client.Send(msg)
	if err != nil {
		return fmt.Errorf("%w: sendgrid: %v", utils.ErrExternalServiceFailure, err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: sendgrid status %d: %s", utils.ErrExternalServiceFailure, resp.StatusCode, resp.Body)
	}
	return nil
}

type twilioSender struct {
	client *twilio.RestClient
	from   string
}

func (s *twilioSender) SendSMS(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("%w: failed to send sms via twilio: %v", utils.ErrExternalServiceFailure, err)
	}
	return nil
}

// InquiryNotifier tells the listing team (and the inquirer) about a new
// inquiry. Delivery problems are logged only.
type InquiryNotifier interface {
	InquiryCreated(ctx context.Context, inq *models.Inquiry, property *models.Property)
}

type inquiryNotifier struct {
	email EmailSender
	sms   SMSSender

	siteName    string
	siteURL     string
	fromEmail   string
	notifyEmail string
	notifyPhone string
}

// NewInquiryNotifier enables each channel only when it is fully configured.
func NewInquiryNotifier(cfg *config.Config) InquiryNotifier {
	n := &inquiryNotifier{
		siteName:    cfg.SiteName,
		siteURL:     cfg.AppUrl,
		fromEmail:   cfg.SendgridFromEmail,
		notifyEmail: cfg.InquiryNotifyEmail,
		notifyPhone: cfg.InquiryNotifyPhone,
	}
	if cfg.SendgridAPIKey != "" && cfg.SendgridFromEmail != "" {
		n.email = &sendgridSender{client: sendgrid.NewSendClient(cfg.SendgridAPIKey)}
	} else {
		utils.Logger.Info("SendGrid not configured; inquiry emails disabled")
	}
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioFromPhone != "" {
		n.sms = &twilioSender{
			client: twilio.NewRestClientWithParams(twilio.ClientParams{
				Username: cfg.TwilioAccountSID,
				Password: cfg.TwilioAuthToken,
			}),
			from: cfg.TwilioFromPhone,
		}
	} else {
		utils.Logger.Info("Twilio not configured; inquiry SMS disabled")
	}
	return n
}

func (n *inquiryNotifier) InquiryCreated(_ context.Context, inq *models.Inquiry, property *models.Property) {
	link := fmt.Sprintf("%s/properties/%s", n.siteURL, property.ID)

	if n.email != nil {
		if n.notifyEmail != "" {
			if err := n.email.SendEmail(n.internalEmail(inq, property, link)); err != nil {
				utils.Logger.WithError(err).Warnf("Failed to email inquiry %s to the listing team", inq.ID)
			}
		}
		if err := n.email.SendEmail(n.ackEmail(inq, property, link)); err != nil {
			utils.Logger.WithError(err).Warnf("Failed to acknowledge inquiry %s", inq.ID)
		}
	} else {
		utils.Logger.Debugf("Email channel off, skipping notifications for inquiry %s", inq.ID)
	}

	if n.sms != nil && n.notifyPhone != "" {
		body := fmt.Sprintf("New inquiry from %s on \"%s\": %s", inq.Name, property.Title, link)
		if err := n.sms.SendSMS(n.notifyPhone, body); err != nil {
			utils.Logger.WithError(err).Warnf("Failed to text inquiry %s to the listing team", inq.ID)
		}
	}
}

func (n *inquiryNotifier) internalEmail(inq *models.Inquiry, property *models.Property, link string) *mail.SGMailV3 {
	from := mail.NewEmail(n.siteName+" Inquiry-Bot", n.fromEmail)
	to := mail.NewEmail(n.siteName+" Team", n.notifyEmail)

	phone := utils.Val(inq.Phone)
	subject := fmt.Sprintf("[Inquiry] %s / %s", property.Title, inq.Name)
	plain := fmt.Sprintf(
		"Property: %s (%s)\nName: %s\nEmail: %s\nPhone: %s\n\n%s",
		property.Title, link, inq.Name, inq.Email, phone, inq.Message,
	)
	htmlContent := fmt.Sprintf(
		inquiryNotificationEmailHTML,
		link,
		html.EscapeString(property.Title),
		html.EscapeString(inq.Name),
		html.EscapeString(inq.Email),
		html.EscapeString(phone),
		time.Now().UTC().Format(time.RFC1123Z),
		html.EscapeString(inq.Message),
	)

	msg := mail.NewSingleEmail(from, subject, to, plain, htmlContent)
	msg.SetReplyTo(mail.NewEmail(inq.Name, inq.Email))
	return msg
}

func (n *inquiryNotifier) ackEmail(inq *models.Inquiry, property *models.Property, link string) *mail.SGMailV3 {
	from := mail.NewEmail(n.siteName, n.fromEmail)
	to := mail.NewEmail(inq.Name, inq.Email)

	subject := fmt.Sprintf("We received your inquiry about %s", property.Title)
	plain := fmt.Sprintf(
		"Hello %s,\n\nThanks for your interest in %s (%s). An agent will get back to you shortly.\n\n%s",
		inq.Name, property.Title, link, n.siteName,
	)
	htmlContent := fmt.Sprintf(
		inquiryAckEmailHTML,
		html.EscapeString(inq.Name),
		link,
		html.EscapeString(property.Title),
		time.Now().Year(),
		html.EscapeString(n.siteName),
	)
	return mail.NewSingleEmail(from, subject, to, plain, htmlContent)
}
