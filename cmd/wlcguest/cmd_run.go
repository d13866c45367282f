package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/netops-lab/wlcguest/pkg/mail"
	"github.com/netops-lab/wlcguest/pkg/runner"
	"github.com/netops-lab/wlcguest/pkg/util"
	"github.com/netops-lab/wlcguest/pkg/wlc"
)

const bannerTimeFormat = "Mon Jan 02 15:04:05 MST 2006"

var runCmd = &cobra.Command{
	Use:   "run <job-id>...",
	Short: "Provision guest accounts for the given job ids",
	Long: `Run provisions every requested job id in order: stale accounts are
deleted, fresh accounts created with random passwords, credentials emailed
to the job recipients, and a report emailed to the administrators.

A failing job never stops the remaining ones; per-job failures are
reported to the admin recipients.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureDevicePassword(); err != nil {
			return err
		}

		util.Info(strings.Repeat("-", 100))
		util.Infof("run start time: %s", time.Now().UTC().Format(bannerTimeFormat))

		notifier, err := mail.NewSMTP(cfg)
		if err != nil {
			return err
		}
		dialer := &wlc.SSHDialer{
			Username: cfg.Device.Username,
			Password: cfg.Device.Password,
		}

		result, err := runner.New(cfg, dialer, notifier).Run(cmd.Context(), args)

		util.Infof("run end time: %s", time.Now().UTC().Format(bannerTimeFormat))
		util.Info(strings.Repeat("-", 100))

		if err != nil {
			return err
		}
		if result.JobsFailed > 0 {
			util.Warnf("%d job(s) failed, see admin notifications", result.JobsFailed)
		}
		return nil
	},
}
