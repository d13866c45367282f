// Wlcguest - Cisco WLC Wireless Guest Account Provisioning
//
// A batch CLI that provisions temporary wireless guest accounts on Cisco
// Wireless LAN Controllers:
//   - Jobs are rows in a CSV data file, selected by id
//   - Accounts are recreated idempotently (delete before add) over SSH
//   - Credentials are emailed to the job recipients, reports to the admins
//
// Usage:
//
//	wlcguest run 5 7          # provision job ids 5 and 7
//	wlcguest jobs             # list jobs in the data file
//	wlcguest version
//
// Diagnostics go to the console and, when file_logging is enabled, to the
// configured log file. The exit code is 0 on every terminal path; success
// and failure are distinguished through log content and admin email.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"
	"golang.org/x/term"

	"github.com/netops-lab/wlcguest/pkg/config"
	"github.com/netops-lab/wlcguest/pkg/util"
	"github.com/netops-lab/wlcguest/pkg/version"
)

var (
	// Global option flags
	configPath string
	verbose    bool

	// Global state
	cfg       *config.Config
	logCloser func() error
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	if logCloser != nil {
		logCloser()
	}
	os.Exit(0)
}

var rootCmd = &cobra.Command{
	Use:               "wlcguest",
	Short:             "Cisco WLC wireless guest account provisioning",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `Wlcguest provisions temporary wireless guest accounts on Cisco Wireless
LAN Controllers from a CSV job data file, then emails the credentials to
the recipients of each job and a report to the administrators.

  wlcguest run <job-id>...`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for commands that never touch the config
		if isHelpOrVersion(cmd) {
			return nil
		}

		// Quiet by default, debug on -v
		if verbose {
			util.SetLogLevel("debug")
		} else {
			util.SetLogLevel("info")
		}

		// Local .env overrides for development and credentials
		gotenv.Load()

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if pw := os.Getenv("WLCGUEST_DEVICE_PASSWORD"); pw != "" {
			cfg.Device.Password = pw
		}

		if cfg.FileLogging {
			logCloser, err = util.EnableFileLogging(cfg.LogFile)
			if err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(runCmd, jobsCmd, versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wlcguest %s\n", version.Info())
	},
}

// isHelpOrVersion checks whether cmd (or any ancestor) is a help or
// version command.
func isHelpOrVersion(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "version", "completion":
			return true
		}
	}
	return false
}

// ensureDevicePassword prompts for the controller password when neither
// the config file nor the environment provides one.
func ensureDevicePassword() error {
	if cfg.Device.Password != "" {
		return nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("no device password in config or WLCGUEST_DEVICE_PASSWORD, and stdin is not a terminal")
	}
	fmt.Fprintf(os.Stderr, "Password for %s on the controllers: ", cfg.Device.Username)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}
	cfg.Device.Password = string(pw)
	return nil
}
