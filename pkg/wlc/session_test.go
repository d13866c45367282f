package wlc

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/netops-lab/wlcguest/pkg/job"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestFailureReason(t *testing.T) {
	ctrl := job.Controller{Name: "WLC-B", Address: "10.0.0.2"}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"timeout",
			fmt.Errorf("ssh dial 10.0.0.2:22: %w", timeoutError{}),
			"SSH connection timeout for WLC-B (10.0.0.2)",
		},
		{
			"auth",
			errors.New("ssh: handshake failed: ssh: unable to authenticate, attempted methods [none password]"),
			"SSH authentication failure for WLC-B (10.0.0.2)",
		},
		{
			"dropped",
			fmt.Errorf("ssh exec: %w", io.EOF),
			"SSH session ended unexpectedly for WLC-B (10.0.0.2)",
		},
		{
			"reset",
			errors.New("read tcp: connection reset by peer"),
			"SSH session ended unexpectedly for WLC-B (10.0.0.2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FailureReason(ctrl, tt.err); got != tt.want {
				t.Errorf("FailureReason() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFailureReason_Unspecified(t *testing.T) {
	ctrl := job.Controller{Name: "WLC-B", Address: "10.0.0.2"}
	got := FailureReason(ctrl, errors.New("something odd"))
	if !strings.Contains(got, "unspecified SSH failure for WLC-B (10.0.0.2)") {
		t.Errorf("FailureReason() = %q", got)
	}
	if !strings.Contains(got, "something odd") {
		t.Errorf("FailureReason() should carry the underlying error, got %q", got)
	}
}

func TestSSHDialer_DefaultPort(t *testing.T) {
	// Unroutable address: the dial must fail, but quickly and with the
	// normalized host:port in the error.
	d := &SSHDialer{Username: "admin", Password: "pw", Timeout: 1}
	_, err := d.Dial("203.0.113.1")
	if err == nil {
		t.Fatal("expected dial error")
	}
	if !strings.Contains(err.Error(), "203.0.113.1:22") {
		t.Errorf("error %q should name host:22", err)
	}
}
