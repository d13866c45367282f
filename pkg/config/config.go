// Package config loads the wlcguest settings file.
//
// The settings file is YAML with three groups: device credentials for the
// controllers, sender identities for the guest and admin emails, and global
// run parameters (data file, mail relay, logging). The provisioning core
// receives the parsed Config and never touches the file format itself.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/netops-lab/wlcguest/pkg/util"
)

// Device holds the SSH credentials shared by all controllers.
type Device struct {
	// Platform identifies the controller CLI dialect (e.g. "cisco_wlc_ssh").
	Platform string `yaml:"platform"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Sender is a mail sender identity.
type Sender struct {
	Name    string `yaml:"sender_name"`
	Address string `yaml:"sender_address"`
}

// Admin is the admin notification mail identity and recipient list.
type Admin struct {
	Sender `yaml:",inline"`
	// Recipients is semicolon-delimited; multiple admins allowed.
	Recipients string `yaml:"recipients"`
}

// Config is the full settings file.
type Config struct {
	Device     Device `yaml:"device"`
	GuestEmail Sender `yaml:"guest_email"`
	AdminEmail Admin  `yaml:"admin_email"`

	// DataFile is the path to the CSV job data source.
	DataFile string `yaml:"data_file"`
	// SkipRows is the number of leading header rows to ignore in DataFile.
	SkipRows int `yaml:"skip_rows"`
	// MailRelay is the SMTP relay, "host" or "host:port" (default port 25).
	MailRelay string `yaml:"mail_relay"`

	FileLogging bool   `yaml:"file_logging"`
	LogFile     string `yaml:"log_file"`
}

// Error reports an unreadable or invalid settings file. It is fatal:
// no job processing happens without a valid config.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Load reads and validates the settings file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	if err := c.validate(); err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	return &c, nil
}

func (c *Config) validate() error {
	switch {
	case c.Device.Username == "":
		return fmt.Errorf("device.username is required")
	case c.GuestEmail.Address == "":
		return fmt.Errorf("guest_email.sender_address is required")
	case c.AdminEmail.Address == "":
		return fmt.Errorf("admin_email.sender_address is required")
	case c.AdminEmail.Recipients == "":
		return fmt.Errorf("admin_email.recipients is required")
	case c.DataFile == "":
		return fmt.Errorf("data_file is required")
	case c.SkipRows < 0:
		return fmt.Errorf("skip_rows must not be negative")
	case c.MailRelay == "":
		return fmt.Errorf("mail_relay is required")
	case c.FileLogging && c.LogFile == "":
		return fmt.Errorf("log_file is required when file_logging is enabled")
	}
	return nil
}

// AdminRecipients returns the parsed admin recipient addresses.
func (c *Config) AdminRecipients() []string {
	return util.SplitSemicolon(c.AdminEmail.Recipients)
}
