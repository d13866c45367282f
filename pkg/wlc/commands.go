// Package wlc generates, redacts, and classifies Cisco WLC CLI command
// traffic for guest account provisioning, and provides the SSH session
// used to deliver it.
package wlc

import (
	"fmt"

	"github.com/netops-lab/wlcguest/pkg/job"
)

// SaveCommand commits the running configuration to non-volatile storage.
// Issued exactly once per controller, after all account commands.
const SaveCommand = "save config"

// GuestAccount is one generated credential pair. Held in memory only long
// enough to render commands and compose the credential email.
type GuestAccount struct {
	Username string
	Password string
}

// BuildCommands produces the ordered command sequence for one controller
// and the accounts embedded in it.
//
// Per account: delete in current syntax, delete in legacy syntax, then add.
// Deletion always precedes creation so recreating an existing user cannot
// fail with "already exists"; the two delete variants cover controller
// firmware that accepts only one of the syntaxes, and a failed delete of an
// absent user is acceptable output (see Classifier).
func BuildCommands(d *job.Descriptor) ([]string, []GuestAccount, error) {
	cmds := make([]string, 0, 3*d.UserCount+1)
	accounts := make([]GuestAccount, 0, d.UserCount)

	for i := 1; i <= d.UserCount; i++ {
		username := fmt.Sprintf("%s_%d", d.UserPrefix, i)
		password, err := NewPassword()
		if err != nil {
			return nil, nil, err
		}

		cmds = append(cmds,
			fmt.Sprintf("config netuser delete username %s", username),
			fmt.Sprintf("config netuser delete %s", username),
			fmt.Sprintf("config netuser add %s %s wlan %s userType %s lifetime %d description %q",
				username, password, d.WLANID, d.UserType, d.LifetimeSeconds, d.Description),
		)
		accounts = append(accounts, GuestAccount{Username: username, Password: password})
	}

	cmds = append(cmds, SaveCommand)
	return cmds, accounts, nil
}
