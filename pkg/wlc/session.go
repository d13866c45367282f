package wlc

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/netops-lab/wlcguest/pkg/job"
)

// Session executes CLI commands against one controller.
type Session interface {
	Run(cmd string) (string, error)
	Close() error
}

// Dialer opens sessions to controllers.
type Dialer interface {
	Dial(addr string) (Session, error)
}

// SSHDialer connects to controllers with password authentication.
type SSHDialer struct {
	Username string
	Password string
	// Timeout bounds the TCP connect and SSH handshake. Zero means 10s.
	Timeout time.Duration
}

// Dial opens an SSH connection to addr (port 22 unless specified).
func (d *SSHDialer) Dial(addr string) (Session, error) {
	timeout := d.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	config := &ssh.ClientConfig{
		User: d.Username,
		Auth: []ssh.AuthMethod{
			ssh.Password(d.Password),
		},
		// WLC appliances rarely have verifiable host keys on record.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         timeout,
		// Older WLC firmware only offers legacy ciphers and kex methods.
		Config: ssh.Config{
			Ciphers: []string{
				"aes128-gcm@openssh.com", "aes256-gcm@openssh.com",
				"aes128-ctr", "aes192-ctr", "aes256-ctr",
				"aes128-cbc", "3des-cbc",
			},
			KeyExchanges: []string{
				"curve25519-sha256", "ecdh-sha2-nistp256",
				"diffie-hellman-group14-sha256",
				"diffie-hellman-group14-sha1", "diffie-hellman-group1-sha1",
			},
		},
	}

	if !strings.Contains(addr, ":") {
		addr += ":22"
	}
	client, err := ssh.Dial("tcp", addr, config)
	if err != nil {
		return nil, fmt.Errorf("ssh dial %s: %w", addr, err)
	}
	return &sshSession{client: client}, nil
}

// sshSession runs each command in its own exec session (stateless).
type sshSession struct {
	client *ssh.Client
}

func (s *sshSession) Run(cmd string) (string, error) {
	session, err := s.client.NewSession()
	if err != nil {
		return "", fmt.Errorf("ssh session: %w", err)
	}
	defer session.Close()

	// "save config" asks for confirmation; a pending "y" answers it.
	// Harmless for commands that read nothing.
	session.Stdin = strings.NewReader("y\n")

	output, err := session.CombinedOutput(cmd)
	if err != nil {
		return string(output), fmt.Errorf("ssh exec %q: %w", Redact(cmd), err)
	}
	return string(output), nil
}

func (s *sshSession) Close() error {
	return s.client.Close()
}

// FailureReason converts a transport error into the per-controller failure
// reason surfaced in reports, mirroring the session error taxonomy:
// connect timeout, authentication failure, dropped session, unspecified.
func FailureReason(ctrl job.Controller, err error) string {
	var netErr net.Error
	switch {
	case errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Sprintf("SSH connection timeout for %s (%s)", ctrl.Name, ctrl.Address)
	case strings.Contains(err.Error(), "unable to authenticate"),
		strings.Contains(err.Error(), "password rejected"):
		return fmt.Sprintf("SSH authentication failure for %s (%s)", ctrl.Name, ctrl.Address)
	case errors.Is(err, io.EOF),
		strings.Contains(err.Error(), "connection reset"),
		strings.Contains(err.Error(), "use of closed network connection"):
		return fmt.Sprintf("SSH session ended unexpectedly for %s (%s)", ctrl.Name, ctrl.Address)
	default:
		return fmt.Sprintf("unspecified SSH failure for %s (%s): %v", ctrl.Name, ctrl.Address, err)
	}
}
