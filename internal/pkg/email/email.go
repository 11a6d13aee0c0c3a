package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// DueStudent is one line item of a fee-due digest
type DueStudent struct {
	StudentID  string
	Name       string
	SeatNumber int
	DueDate    time.Time
	FeeAmount  int64
}

// EmailService defines the interface for email operations
type EmailService interface {
	SendWelcomeEmail(toEmail, libraryName string) error
	SendFeeDueDigest(toEmail, libraryName string, students []DueStudent) error
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
}

// EmailServiceImpl implements EmailService
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
	}
}

// SendWelcomeEmail greets a newly registered library owner
func (s *EmailServiceImpl) SendWelcomeEmail(toEmail, libraryName string) error {
	// If username or password is empty, log the email (for development only)
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("libraryName", libraryName).
			Msg("SMTP credentials not configured - welcome email not sent.")
		return nil
	}

	subject := "Your library account is ready"
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Welcome!</h2>
				<p>Your account for <strong>%s</strong> is active. You can now manage seats, admissions and fee collection from the dashboard.</p>
				<p>Best regards,<br>The Liberary Team</p>
			</div>
		</body>
		</html>
	`, libraryName)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// SendFeeDueDigest mails the owner a list of students whose fee is overdue
func (s *EmailServiceImpl) SendFeeDueDigest(toEmail, libraryName string, students []DueStudent) error {
	if len(students) == 0 {
		return nil
	}

	// If username or password is empty, log the digest (for development only)
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Int("dueCount", len(students)).
			Msg("SMTP credentials not configured - fee due digest not sent.")
		return nil
	}

	rows := ""
	for _, st := range students {
		rows += fmt.Sprintf(
			`<tr><td style="padding: 6px 12px;">%s</td><td style="padding: 6px 12px;">%s</td><td style="padding: 6px 12px;">%d</td><td style="padding: 6px 12px;">%s</td><td style="padding: 6px 12px;">%d</td></tr>`,
			st.StudentID, st.Name, st.SeatNumber, st.DueDate.Format("02 Jan 2006"), st.FeeAmount)
	}

	subject := fmt.Sprintf("Fee due reminder - %d student(s) overdue", len(students))
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Overdue fees at %s</h2>
				<p>The following students have passed their due date:</p>
				<table style="border-collapse: collapse; width: 100%%;">
					<tr style="background-color: #f0f0f0;"><th style="padding: 6px 12px;">ID</th><th style="padding: 6px 12px;">Name</th><th style="padding: 6px 12px;">Seat</th><th style="padding: 6px 12px;">Due since</th><th style="padding: 6px 12px;">Monthly fee</th></tr>
					%s
				</table>
				<p>Best regards,<br>The Liberary Team</p>
			</div>
		</body>
		</html>
	`, libraryName, rows)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// sendHTMLEmail sends an HTML email
func (s *EmailServiceImpl) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	// Set up authentication information
	auth := smtp.PlainAuth(
		"",
		s.config.Username,
		s.config.Password,
		s.config.Host,
	)

	// Set up email headers
	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	headers["To"] = toEmail
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	// Construct message
	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + htmlBody

	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	// Use TLS if configured
	if s.config.UseTLS {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true,
			ServerName:         s.config.Host,
		}

		conn, err := tls.Dial("tcp", serverAddress, tlsConfig)
		if err != nil {
			s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
			return fmt.Errorf("failed to connect to SMTP server: %w", err)
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, s.config.Host)
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to create SMTP client")
			return fmt.Errorf("failed to create SMTP client: %w", err)
		}
		defer client.Quit()

		if err = client.Auth(auth); err != nil {
			s.logger.Error().Err(err).Msg("SMTP authentication failed")
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}

		if err = client.Mail(s.config.FromEmail); err != nil {
			return fmt.Errorf("failed to set sender: %w", err)
		}
		if err = client.Rcpt(toEmail); err != nil {
			return fmt.Errorf("failed to set recipient: %w", err)
		}

		w, err := client.Data()
		if err != nil {
			return fmt.Errorf("failed to get data writer: %w", err)
		}
		_, err = w.Write([]byte(message))
		if err != nil {
			return fmt.Errorf("failed to write email message: %w", err)
		}
		err = w.Close()
		if err != nil {
			return fmt.Errorf("failed to close data writer: %w", err)
		}

		return nil
	}

	// Simple SMTP without TLS
	err := smtp.SendMail(
		serverAddress,
		auth,
		s.config.FromEmail,
		[]string{toEmail},
		[]byte(message),
	)
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
