// Package runner orchestrates guest account provisioning: one job id at a
// time, one controller at a time, one command at a time. Per-job and
// per-controller failures are converted into result values and reported to
// the admin recipients; only configuration and data-source failures abort
// a run.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/netops-lab/wlcguest/pkg/config"
	"github.com/netops-lab/wlcguest/pkg/job"
	"github.com/netops-lab/wlcguest/pkg/util"
	"github.com/netops-lab/wlcguest/pkg/wlc"
)

// Notifier delivers guest credential and admin notification mail.
// Delivery failures are logged and never change a job's verdict.
type Notifier interface {
	Test(ctx context.Context) error
	SendGuestCredentials(d *job.Descriptor, accounts []wlc.GuestAccount) error
	SendAdminReport(subject, body string) error
}

// JobOutcome aggregates one job's per-controller verdicts.
type JobOutcome struct {
	ID         string
	Descriptor *job.Descriptor // nil when resolution failed
	Outcomes   []wlc.CommandOutcome
	Err        error // resolution or generation error, nil otherwise
}

// Success reports whether every controller outcome succeeded. A job with a
// resolution error never succeeds.
func (o *JobOutcome) Success() bool {
	if o.Err != nil {
		return false
	}
	for _, c := range o.Outcomes {
		if !c.OK {
			return false
		}
	}
	return len(o.Outcomes) > 0
}

// RunResult summarizes one invocation.
type RunResult struct {
	JobsPassed      int
	JobsFailed      int
	AccountsCreated int
	Outcomes        []*JobOutcome
}

// Runner executes provisioning runs.
type Runner struct {
	Config *config.Config
	Dialer wlc.Dialer
	Notify Notifier

	// Now is the clock used for the run-scoped window start.
	Now func() time.Time
}

// New creates a Runner with the real clock.
func New(cfg *config.Config, dialer wlc.Dialer, notify Notifier) *Runner {
	return &Runner{Config: cfg, Dialer: dialer, Notify: notify, Now: time.Now}
}

// Run processes the requested job ids in order. It returns an error only
// for run-level failures (bad arguments, unreachable relay, unreadable
// data source); individual job failures are reflected in the RunResult and
// reported to the admin recipients.
func (r *Runner) Run(ctx context.Context, jobIDs []string) (*RunResult, error) {
	if len(jobIDs) == 0 {
		return nil, fmt.Errorf("at least one job id argument is required")
	}
	if dup := firstDuplicate(jobIDs); dup != "" {
		return nil, fmt.Errorf("job id %s is given more than once; duplicate arguments are not allowed", dup)
	}

	util.Infof("testing availability of SMTP relay: %s", r.Config.MailRelay)
	if err := r.Notify.Test(ctx); err != nil {
		return nil, err
	}

	windowStart := r.Now().UTC()

	table, err := job.Load(r.Config.DataFile, r.Config.SkipRows)
	if err != nil {
		util.Errorf("data source load failed: %v", err)
		r.notifyAdmin("Error / Wireless Guest User Creation - data source unreadable",
			fmt.Sprintf("The guest creation run was aborted before any job processing.\n\n%v\n", err))
		return nil, err
	}

	result := &RunResult{}
	var report Report

	for _, id := range jobIDs {
		outcome := r.runJob(table, id, windowStart, &report)
		result.Outcomes = append(result.Outcomes, outcome)
		if outcome.Success() {
			result.JobsPassed++
		} else {
			result.JobsFailed++
		}
	}
	result.AccountsCreated = report.AccountsCreated()

	if report.AccountsCreated() > 0 {
		r.notifyAdmin(report.Subject(), report.Body())
	}

	util.Infof("run complete: %d job(s) passed, %d failed, %d account(s) created",
		result.JobsPassed, result.JobsFailed, result.AccountsCreated)
	return result, nil
}

// runJob resolves, provisions, and reports one job id.
func (r *Runner) runJob(table *job.Table, id string, windowStart time.Time, report *Report) *JobOutcome {
	log := util.WithJob(id)
	outcome := &JobOutcome{ID: id}

	d, err := job.Resolve(table, id, windowStart)
	if err != nil {
		log.Errorf("job resolution failed: %v", err)
		outcome.Err = err
		r.notifyAdmin(FailureSubject(id), FailureBody(id, nil, nil, err))
		return outcome
	}
	outcome.Descriptor = d

	cmds, accounts, err := wlc.BuildCommands(d)
	if err != nil {
		log.Errorf("command generation failed: %v", err)
		outcome.Err = err
		r.notifyAdmin(FailureSubject(id), FailureBody(id, d, nil, err))
		return outcome
	}

	// Controllers are provisioned one at a time, in job list order. A
	// failed controller never stops the remaining ones.
	for _, ctrl := range d.Controllers {
		outcome.Outcomes = append(outcome.Outcomes, r.provision(ctrl, cmds))
	}

	if !outcome.Success() {
		log.Error("guest user creation failed")
		r.notifyAdmin(FailureSubject(id), FailureBody(id, d, outcome.Outcomes, nil))
		return outcome
	}

	log.Infof("wireless guest users created: %s .. %s", accounts[0].Username, accounts[len(accounts)-1].Username)
	report.AddJob(d, accounts)

	log.Infof("sending credential e-mails to: %s", d.RecipientList())
	if err := r.Notify.SendGuestCredentials(d, accounts); err != nil {
		// Mail failure does not alter the job verdict.
		log.Errorf("credential mail delivery failed: %v", err)
	}
	return outcome
}

// provision runs the full command sequence against one controller and
// classifies the result. Transport errors become failed outcomes; the
// session is always closed before moving on.
func (r *Runner) provision(ctrl job.Controller, cmds []string) wlc.CommandOutcome {
	log := util.WithController(ctrl.Name)
	var c wlc.Classifier

	log.Infof("connecting to %s", ctrl)
	sess, err := r.Dialer.Dial(ctrl.Address)
	if err != nil {
		reason := wlc.FailureReason(ctrl, err)
		log.Error(reason)
		c.Fail(reason)
		return c.Outcome(ctrl)
	}
	defer sess.Close()

	for _, cmd := range cmds {
		log.Info(wlc.Redact(cmd))
		out, err := sess.Run(cmd)
		if err != nil {
			reason := wlc.FailureReason(ctrl, err)
			log.Error(reason)
			c.Fail(reason)
			break
		}
		if redacted := wlc.Redact(out); redacted != "" {
			log.Debugf("command output: %s", redacted)
		}
		// The save command always echoes a confirmation; its output is
		// logged but not classified.
		if cmd != wlc.SaveCommand {
			c.Observe(out)
		}
	}
	return c.Outcome(ctrl)
}

// notifyAdmin sends an admin notification, logging delivery failures.
func (r *Runner) notifyAdmin(subject, body string) {
	util.Infof("sending admin notification: %s", subject)
	if err := r.Notify.SendAdminReport(subject, body); err != nil {
		util.Errorf("admin mail delivery failed: %v", err)
	}
}

func firstDuplicate(ids []string) string {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return id
		}
		seen[id] = true
	}
	return ""
}
