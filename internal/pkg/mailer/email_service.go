package mailer

import (
	"fmt"
	"io"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendCertificate(toEmail, attendeeName, eventTitle string, pdf []byte) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

// NewEmailService dials SMTP as email/password and sends from that same
// address, with senderName as the display name.
func NewEmailService(host string, port int, email, password, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, email, password)

	return &emailService{
		dialer:      d,
		senderEmail: email,
		senderName:  senderName,
	}
}

func (s *emailService) SendCertificate(toEmail, attendeeName, eventTitle string, pdf []byte) error {
	m := s.certificateMessage(toEmail, attendeeName, eventTitle, pdf)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send certificate to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Certificate sent to %s\n", toEmail)
	return nil
}

func (s *emailService) certificateMessage(toEmail, attendeeName, eventTitle string, pdf []byte) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Your certificate for %s", eventTitle))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Congratulations, %s!</h2>
			<p>Your certificate of attendance for <strong>%s</strong> is attached to this email.</p>
			<p>Keep it for your CPD records.</p>
		</div>
	`, attendeeName, eventTitle)

	m.SetBody("text/html", body)
	m.Attach("certificate.pdf", gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(pdf)
		return err
	}))

	return m
}
