package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendBookingApprovedNotification(ctx context.Context, email, spaceName, date, start, end string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Your space booking has been approved")

	body := fmt.Sprintf("Hello,\n\nYour booking for %s on %s from %s to %s has been approved.\n\nBest regards,\nThe SpaceBook Team", spaceName, date, start, end)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send approval notification: %w", err)
	}

	return nil
}

func (s *emailService) SendBookingRejectedNotification(ctx context.Context, email, spaceName, date, start, end string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Your space booking has been rejected")

	body := fmt.Sprintf("Hello,\n\nUnfortunately your booking for %s on %s from %s to %s has been rejected.\nPlease contact the library desk if you believe this is a mistake.\n\nBest regards,\nThe SpaceBook Team", spaceName, date, start, end)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send rejection notification: %w", err)
	}

	return nil
}
