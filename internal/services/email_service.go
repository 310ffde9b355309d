package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendReport(to, orgName, pdfPath string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendReport(to, orgName, pdfPath string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("%s operations summary", orgName))

	body := fmt.Sprintf(`
		<h3>Operations summary</h3>
		<p>The latest operations summary for %s is attached.</p>
		<p>This report was generated from the dashboard; figures reflect the state at generation time.</p>
	`, orgName)

	m.SetBody("text/html", body)
	m.Attach(pdfPath)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send report email: %w", err)
	}
	return nil
}
