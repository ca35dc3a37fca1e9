package service

import (
	"fmt"
	"strconv"

	gomail "gopkg.in/gomail.v2"

	"github.com/rayto1224/ksbc-web/internals/configs"
	"github.com/rayto1224/ksbc-web/internals/features/activities/events/model"
)

// Mailer delivers the registration confirmation. Delivery failure is always
// non-fatal to the registration itself; callers surface it as a warning.
type Mailer interface {
	SendRegistrationConfirmation(event *model.EventModel, participant *model.EventParticipantModel) error
}

type SMTPMailer struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// NewSMTPMailerFromEnv returns nil when SMTP is not configured, which
// disables confirmation mail entirely.
func NewSMTPMailerFromEnv() *SMTPMailer {
	if configs.SMTPHost == "" {
		return nil
	}
	port, err := strconv.Atoi(configs.SMTPPort)
	if err != nil {
		port = 587
	}
	return &SMTPMailer{
		Host:     configs.SMTPHost,
		Port:     port,
		User:     configs.SMTPUser,
		Password: configs.SMTPPassword,
		From:     configs.MailFrom,
	}
}

func (m *SMTPMailer) SendRegistrationConfirmation(event *model.EventModel, participant *model.EventParticipantModel) error {
	name := participant.EventParticipantFullName
	if name == "" {
		name = participant.EventParticipantEmail
	}

	body := fmt.Sprintf(
		"<p>Dear %s,</p>"+
			"<p>Your registration for <strong>%s</strong> has been received.</p>"+
			"<p>Location: %s<br>Price: %s<br>Registered at: %s</p>"+
			"<p>God bless,<br>KSBC</p>",
		name,
		event.EventTitle,
		event.EventLocation,
		event.DisplayPrice(),
		participant.EventParticipantRegisteredAt.Format("2006-01-02 15:04"),
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", participant.EventParticipantEmail)
	msg.SetHeader("Subject", "Registration Confirmation: "+event.EventTitle)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.Host, m.Port, m.User, m.Password)
	return dialer.DialAndSend(msg)
}
