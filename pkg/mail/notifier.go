// Package mail delivers guest credential and admin notification email
// through an SMTP relay.
package mail

import (
	"context"
	"fmt"
	"net"
	"strconv"

	gomail "github.com/wneessen/go-mail"

	"github.com/netops-lab/wlcguest/pkg/config"
	"github.com/netops-lab/wlcguest/pkg/job"
	"github.com/netops-lab/wlcguest/pkg/util"
	"github.com/netops-lab/wlcguest/pkg/wlc"
)

// GuestSubject is the subject of every credential message.
const GuestSubject = "Wireless Guest User Credentials"

// SMTP sends mail through a plain relay (no auth, opportunistic TLS off;
// internal relays only).
type SMTP struct {
	host            string
	port            int
	guestSender     config.Sender
	adminSender     config.Sender
	adminRecipients []string
}

// NewSMTP builds a notifier from the loaded settings.
func NewSMTP(cfg *config.Config) (*SMTP, error) {
	host, port, err := splitRelay(cfg.MailRelay)
	if err != nil {
		return nil, err
	}
	return &SMTP{
		host:            host,
		port:            port,
		guestSender:     cfg.GuestEmail,
		adminSender:     cfg.AdminEmail.Sender,
		adminRecipients: cfg.AdminRecipients(),
	}, nil
}

// splitRelay accepts "host" or "host:port"; the default SMTP port is 25.
func splitRelay(relay string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(relay)
	if err != nil {
		return relay, 25, nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("mail relay %q: invalid port: %w", relay, err)
	}
	return host, port, nil
}

func (s *SMTP) client() (*gomail.Client, error) {
	return gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithTLSPolicy(gomail.NoTLS),
	)
}

// Test verifies the relay is reachable before any job processing starts.
func (s *SMTP) Test(ctx context.Context) error {
	c, err := s.client()
	if err != nil {
		return err
	}
	if err := c.DialWithContext(ctx); err != nil {
		return fmt.Errorf("smtp relay %s:%d unreachable: %w", s.host, s.port, err)
	}
	return c.Close()
}

// SendGuestCredentials sends one credential message per account to every
// recipient of the job. Empty recipient entries (the explicit "no
// recipient" marker) are skipped.
func (s *SMTP) SendGuestCredentials(d *job.Descriptor, accounts []wlc.GuestAccount) error {
	var msgs []*gomail.Msg
	for _, recipient := range d.Recipients {
		if recipient == "" {
			continue
		}
		for _, account := range accounts {
			m, err := s.guestMessage(d, account, recipient)
			if err != nil {
				return err
			}
			msgs = append(msgs, m)
		}
	}
	if len(msgs) == 0 {
		util.WithJob(d.ID).Info("no guest email recipients, skipping credential mail")
		return nil
	}

	c, err := s.client()
	if err != nil {
		return err
	}
	return c.DialAndSend(msgs...)
}

func (s *SMTP) guestMessage(d *job.Descriptor, account wlc.GuestAccount, recipient string) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.FromFormat(s.guestSender.Name, s.guestSender.Address); err != nil {
		return nil, fmt.Errorf("guest sender %q: %w", s.guestSender.Address, err)
	}
	if err := m.To(recipient); err != nil {
		return nil, fmt.Errorf("guest recipient %q: %w", recipient, err)
	}
	m.Subject(GuestSubject)

	body := GuestBody(d, account)
	m.SetBodyString(gomail.TypeTextPlain, body)
	m.AddAlternativeString(gomail.TypeTextHTML, HTMLBody(body))
	return m, nil
}

// SendAdminReport sends a notification to all configured admin recipients.
func (s *SMTP) SendAdminReport(subject, body string) error {
	m := gomail.NewMsg()
	if err := m.FromFormat(s.adminSender.Name, s.adminSender.Address); err != nil {
		return fmt.Errorf("admin sender %q: %w", s.adminSender.Address, err)
	}
	if err := m.To(s.adminRecipients...); err != nil {
		return fmt.Errorf("admin recipients %v: %w", s.adminRecipients, err)
	}
	m.Subject(subject)
	m.SetBodyString(gomail.TypeTextPlain, body)
	m.AddAlternativeString(gomail.TypeTextHTML, HTMLBody(body))

	c, err := s.client()
	if err != nil {
		return err
	}
	return c.DialAndSend(m)
}
