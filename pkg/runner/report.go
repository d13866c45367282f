package runner

import (
	"fmt"
	"strings"

	"github.com/netops-lab/wlcguest/pkg/job"
	"github.com/netops-lab/wlcguest/pkg/wlc"
)

// Report accumulates the end-of-run admin success report across jobs.
type Report struct {
	accounts  int
	passedIDs []string
	blocks    []string
}

// AddJob appends the summary block for one successful job.
func (r *Report) AddJob(d *job.Descriptor, accounts []wlc.GuestAccount) {
	r.accounts += len(accounts)
	r.passedIDs = append(r.passedIDs, d.ID)

	var b strings.Builder
	fmt.Fprintf(&b, "Guest users for job id %s sent out to: %s\n", d.ID, d.RecipientList())

	links := make([]string, len(d.Controllers))
	for i, c := range d.Controllers {
		links[i] = fmt.Sprintf("%q", c.String())
	}
	fmt.Fprintf(&b, "Created on WLC: %s\n", strings.Join(links, ", "))

	for i, a := range accounts {
		fmt.Fprintf(&b, "Wifi User %d: %s - Lifetime: %d seconds\n", i+1, a.Username, d.LifetimeSeconds)
	}
	fmt.Fprintf(&b, "First user: %s, Last user: %s\n", accounts[0].Username, accounts[len(accounts)-1].Username)
	fmt.Fprintf(&b, "Active from %s until %s (%s)\n", d.WindowStartLocal(), d.WindowEndLocal(), d.Timezone)

	r.blocks = append(r.blocks, b.String())
}

// AccountsCreated returns the run-scoped count of provisioned accounts.
func (r *Report) AccountsCreated() int {
	return r.accounts
}

// PassedIDs returns the successful job ids in run order.
func (r *Report) PassedIDs() []string {
	return r.passedIDs
}

// Subject returns the success report subject line.
func (r *Report) Subject() string {
	return "Wireless Guest User Creation Report for Successful Job Id: " + strings.Join(r.passedIDs, ", ")
}

// Body returns the full success report body.
func (r *Report) Body() string {
	var b strings.Builder
	fmt.Fprintf(&b, "A total of %d guest e-mails have been sent out:\n\n", r.accounts)
	b.WriteString(strings.Join(r.blocks, "\n"))
	return b.String()
}

// FailureSubject returns the per-job failure notification subject.
func FailureSubject(jobID string) string {
	return fmt.Sprintf("Error / Wireless Guest User Creation - job id %s failed.", jobID)
}

// FailureBody composes the per-job failure notification: the failure
// reasons, every known descriptor field for diagnosis, and the outcome of
// every controller, successes included.
func FailureBody(jobID string, d *job.Descriptor, outcomes []wlc.CommandOutcome, resolveErr error) string {
	var b strings.Builder
	fmt.Fprintf(&b, "An error occurred in the Wireless Guest User Creation run.\n\n")
	fmt.Fprintf(&b, "Job id %s failed due to the following reason(s):\n", jobID)

	if resolveErr != nil {
		fmt.Fprintf(&b, "- %s\n", resolveErr)
	}
	for _, o := range outcomes {
		if o.OK {
			fmt.Fprintf(&b, "- %s: success\n", o.Controller)
		} else {
			fmt.Fprintf(&b, "- %s: %s\n", o.Controller, o.Reason)
		}
	}

	if d != nil {
		fmt.Fprintf(&b, "\nJob info:\n")
		fmt.Fprintf(&b, "id = %s\n", d.ID)
		for _, c := range d.Controllers {
			fmt.Fprintf(&b, "WLC = %s\n", c)
		}
		fmt.Fprintf(&b, "User Prefix = %s\n", d.UserPrefix)
		fmt.Fprintf(&b, "User Qty = %d\n", d.UserCount)
		fmt.Fprintf(&b, "WLAN id = %s\n", d.WLANID)
		fmt.Fprintf(&b, "SSID = %s\n", d.SSID)
		fmt.Fprintf(&b, "User Type = %s\n", d.UserType)
		fmt.Fprintf(&b, "Lifetime = %d\n", d.LifetimeSeconds)
		fmt.Fprintf(&b, "Timezone = %s\n", d.Timezone)
		fmt.Fprintf(&b, "Description = %s\n", d.Description)
		fmt.Fprintf(&b, "Email Recipient = %s\n", d.RecipientList())
	}
	return b.String()
}
