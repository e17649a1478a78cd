package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net"
	netmail "net/mail"
	"net/smtp"
	"strconv"
	"time"
	c "unitactivity/internal/core/domain/common"
	e "unitactivity/internal/core/domain/errors"
	"unitactivity/internal/core/domain/mail"

	"github.com/google/uuid"
)

const implicitTLSPort = 465

// ErrAuthNotSupported is returned when credentials are configured but the
// relay does not offer AUTH.
var ErrAuthNotSupported = errors.New("smtp AUTH: relay does not advertise AUTH but EMAIL_USER is set")

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	Timeout  time.Duration
}

type SMTPSender struct {
	cfg SMTPConfig
	now func() time.Time
}

func NewSMTPSender(cfg SMTPConfig, now func() time.Time) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, e.NewInvalidConfigError("EMAIL_HOST", "must be set")
	}
	if cfg.Port <= 0 {
		return nil, e.NewInvalidConfigError("EMAIL_PORT", "must be positive")
	}
	if _, err := netmail.ParseAddress(cfg.From); err != nil {
		return nil, e.NewInvalidConfigError("EMAIL_FROM", err.Error())
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &SMTPSender{cfg: cfg, now: now}, nil
}

func (s *SMTPSender) Name() string {
	return "smtp"
}

func (s *SMTPSender) Send(ctx context.Context, msg mail.Message) (mail.DeliveryID, error) {
	client, err := s.connect(ctx)
	if err != nil {
		return "", err
	}
	defer client.Close()

	messageID := s.newMessageID()
	content, err := s.buildMessage(msg, messageID)
	if err != nil {
		return "", err
	}

	if err := client.Mail(s.cfg.From); err != nil {
		return "", fmt.Errorf("smtp MAIL FROM: %w", err)
	}
	if err := client.Rcpt(string(msg.To)); err != nil {
		return "", fmt.Errorf("smtp RCPT TO: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return "", fmt.Errorf("smtp DATA: %w", err)
	}
	if _, err := w.Write(content); err != nil {
		return "", fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("smtp DATA: %w", err)
	}
	if err := client.Quit(); err != nil {
		return "", fmt.Errorf("smtp QUIT: %w", err)
	}
	return mail.DeliveryID(messageID), nil
}

func (s *SMTPSender) Verify(ctx context.Context) error {
	client, err := s.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()
	return client.Quit()
}

func (s *SMTPSender) connect(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	dialer := &net.Dialer{Timeout: s.cfg.Timeout}

	var conn net.Conn
	var err error
	if s.cfg.Port == implicitTLSPort {
		tlsDialer := &tls.Dialer{NetDialer: dialer, Config: &tls.Config{ServerName: s.cfg.Host}}
		conn, err = tlsDialer.DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, fmt.Errorf("smtp connect: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	} else if s.cfg.Timeout > 0 {
		conn.SetDeadline(s.now().Add(s.cfg.Timeout))
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("smtp greeting: %w", err)
	}

	if s.cfg.Port != implicitTLSPort {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: s.cfg.Host}); err != nil {
				client.Close()
				return nil, fmt.Errorf("smtp STARTTLS: %w", err)
			}
		}
	}
	if s.cfg.Username != "" {
		if ok, _ := client.Extension("AUTH"); !ok {
			client.Close()
			return nil, ErrAuthNotSupported
		}
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err := client.Auth(auth); err != nil {
			client.Close()
			return nil, fmt.Errorf("smtp AUTH: %w", err)
		}
	}
	return client, nil
}

func (s *SMTPSender) newMessageID() string {
	domain := c.NewEmail(s.cfg.From).Domain()
	if domain == "" {
		domain = "localhost"
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}

func (s *SMTPSender) buildMessage(msg mail.Message, messageID string) ([]byte, error) {
	from := netmail.Address{Name: s.cfg.FromName, Address: s.cfg.From}

	var b bytes.Buffer
	b.WriteString("From: " + from.String() + "\r\n")
	b.WriteString("To: " + string(msg.To) + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject) + "\r\n")
	b.WriteString("Date: " + s.now().Format(time.RFC1123Z) + "\r\n")
	b.WriteString("Message-ID: " + messageID + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("Content-Transfer-Encoding: quoted-printable\r\n")
	b.WriteString("\r\n")

	qp := quotedprintable.NewWriter(&b)
	if _, err := qp.Write([]byte(msg.HTMLBody)); err != nil {
		return nil, err
	}
	if err := qp.Close(); err != nil {
		return nil, err
	}
	b.WriteString("\r\n")
	return b.Bytes(), nil
}
