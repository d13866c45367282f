package wlc

import (
	"regexp"
	"strings"

	"github.com/netops-lab/wlcguest/pkg/job"
)

// GenericFailureReason is used when a controller produced unexpected output
// with no recognizable rejection message.
const GenericFailureReason = "WLC cli command execution failure, check the log for command output"

const (
	deletedUserMarker = "Deleted user"
	rejectedMarker    = "Guest user not added"
)

var userMissingPattern = regexp.MustCompile(`User.+does not exist`)

// CommandOutcome is the verdict for one controller.
type CommandOutcome struct {
	Controller job.Controller
	OK         bool
	Reason     string // set when !OK
}

// Classifier reduces the command responses of one controller session to a
// single CommandOutcome.
//
// An empty response is an implicit success signal. "Deleted user" and
// "User ... does not exist" are both acceptable: deleting an absent user is
// not an error. "Guest user not added" is an explicit controller rejection
// and forces failure regardless of other matches. Any other non-empty
// response fails the sequence with a generic reason.
type Classifier struct {
	failed bool
	reason string
}

// Observe classifies one command response.
func (c *Classifier) Observe(response string) {
	trimmed := strings.TrimSpace(response)
	if trimmed == "" {
		return
	}

	if strings.Contains(trimmed, rejectedMarker) {
		c.failed = true
		c.reason = Redact(trimmed)
		return
	}

	if strings.Contains(trimmed, deletedUserMarker) || userMissingPattern.MatchString(trimmed) {
		return
	}

	c.failed = true
	if c.reason == "" {
		c.reason = GenericFailureReason
	}
}

// Fail marks the sequence failed with an explicit reason, e.g. a transport
// error. The reason is redacted before being recorded.
func (c *Classifier) Fail(reason string) {
	c.failed = true
	c.reason = Redact(reason)
}

// Failed reports whether any observed response failed the sequence.
func (c *Classifier) Failed() bool {
	return c.failed
}

// Outcome returns the final verdict for ctrl.
func (c *Classifier) Outcome(ctrl job.Controller) CommandOutcome {
	if c.failed {
		reason := c.reason
		if reason == "" {
			reason = GenericFailureReason
		}
		return CommandOutcome{Controller: ctrl, OK: false, Reason: reason}
	}
	return CommandOutcome{Controller: ctrl, OK: true}
}
