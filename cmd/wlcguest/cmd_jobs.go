package main

import (
	"github.com/spf13/cobra"

	"github.com/netops-lab/wlcguest/pkg/cli"
	"github.com/netops-lab/wlcguest/pkg/job"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List the jobs defined in the data file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := job.Load(cfg.DataFile, cfg.SkipRows)
		if err != nil {
			return err
		}

		t := cli.NewTable("ID", "PREFIX", "USERS", "WLAN", "SSID", "CONTROLLERS", "RECIPIENTS")
		for i := 0; i < table.Len(); i++ {
			r := table.Row(i)
			t.Row(r.ID, r.UserPrefix, r.UserCount, r.WLANID, r.SSID, r.Names, r.Recipients)
		}
		t.Flush()

		if table.Len() == 0 {
			cmd.Printf("no jobs defined in %s\n", table.Path())
		} else {
			cmd.Printf("\n%d job(s) in %s\n", table.Len(), table.Path())
		}
		return nil
	},
}
