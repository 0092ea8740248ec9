package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/langlens/account-service/internal/config"
	"github.com/langlens/account-service/internal/logger"
)

// smtpSender is the SMTP implementation of [Sender]. No mail library is
// pulled in for a single plain-text message per reset request; the net/smtp
// call is isolated behind sendMail so tests can stub it.
type smtpSender struct {
	addr   string
	from   string
	auth   smtp.Auth
	logger *logger.Logger

	// sendMail defaults to smtp.SendMail; overridable in tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender constructs a [Sender] that relays messages through the
// configured SMTP host. PLAIN authentication is enabled only when both
// username and password are set.
func NewSMTPSender(cfg config.Mail, log *logger.Logger) Sender {
	var auth smtp.Auth
	if cfg.Username != "" && cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &smtpSender{
		addr:     cfg.Host + ":" + strconv.Itoa(cfg.Port),
		from:     cfg.From,
		auth:     auth,
		logger:   log,
		sendMail: smtp.SendMail,
	}
}

// Send delivers one plain-text message. The context is consulted before
// dialing; net/smtp itself does not support cancellation mid-transaction.
func (s *smtpSender) Send(ctx context.Context, to, subject, body string) error {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return err
	}

	msg := buildMessage(s.from, to, subject, body)
	if err := s.sendMail(s.addr, s.auth, s.from, []string{to}, msg); err != nil {
		log.Err(err).Str("to", to).Msg("error sending mail")
		return fmt.Errorf("error sending mail: %w", err)
	}

	log.Debug().Str("to", to).Str("subject", subject).Msg("mail sent")
	return nil
}

// buildMessage assembles a minimal RFC 5322 plain-text message.
func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}
