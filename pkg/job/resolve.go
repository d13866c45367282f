package job

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/netops-lab/wlcguest/pkg/util"
)

// windowTimeFormat renders validity window timestamps, e.g.
// "Mon Jan 02 15:04:00 CET 2026". Seconds are always zero.
const windowTimeFormat = "Mon Jan 02 15:04:00 MST 2006"

// Controller is one provisioning target.
type Controller struct {
	Name    string
	Address string
}

// String returns the display form used in logs and admin reports.
func (c Controller) String() string {
	return c.Name + " - " + c.Address
}

// Descriptor is the validated, typed projection of one job row plus the
// run-scoped window start. Immutable once constructed.
type Descriptor struct {
	ID              string
	Controllers     []Controller
	UserPrefix      string
	UserCount       int
	WLANID          string
	SSID            string
	UserType        string
	LifetimeSeconds int
	Timezone        string
	Location        *time.Location
	Description     string
	// Recipients keeps the raw split of the recipient column. A single
	// empty entry is the explicit "no recipient" marker and is retained
	// for display formatting.
	Recipients []string

	WindowStart time.Time
}

// WindowEnd returns WindowStart plus the account lifetime.
func (d *Descriptor) WindowEnd() time.Time {
	return d.WindowStart.Add(time.Duration(d.LifetimeSeconds) * time.Second)
}

// WindowStartLocal renders the window start in the job's timezone.
func (d *Descriptor) WindowStartLocal() string {
	return d.WindowStart.In(d.Location).Format(windowTimeFormat)
}

// WindowEndLocal renders the window end in the job's timezone.
func (d *Descriptor) WindowEndLocal() string {
	return d.WindowEnd().In(d.Location).Format(windowTimeFormat)
}

// RecipientList returns the recipients joined for display.
func (d *Descriptor) RecipientList() string {
	return strings.Join(d.Recipients, "; ")
}

// Resolve locates the unique row matching jobID and produces a Descriptor
// with windowStart as the start of the validity window.
//
// Errors: ErrNoJobs on an empty table, *DuplicateIDError when the id is
// used more than once, *NotFoundError when it is absent, *FieldError when
// a field fails to parse, *ControllerMismatchError when the controller
// address and name lists differ in length.
func Resolve(t *Table, jobID string, windowStart time.Time) (*Descriptor, error) {
	if t.Len() == 0 {
		return nil, ErrNoJobs
	}

	idx := -1
	count := 0
	for i := 0; i < t.Len(); i++ {
		if t.Row(i).ID == jobID {
			count++
			idx = i
		}
	}
	if count > 1 {
		return nil, &DuplicateIDError{ID: jobID, Count: count}
	}
	if count == 0 {
		return nil, &NotFoundError{ID: jobID}
	}

	rec := t.Row(idx)

	for _, f := range []struct{ name, value string }{
		{"controllerAddresses", rec.Addresses},
		{"controllerNames", rec.Names},
		{"userPrefix", rec.UserPrefix},
		{"wlanId", rec.WLANID},
		{"ssid", rec.SSID},
		{"userType", rec.UserType},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, &FieldError{ID: jobID, Field: f.name, Err: fmt.Errorf("must not be empty")}
		}
	}

	userCount, err := strconv.Atoi(rec.UserCount)
	if err != nil {
		return nil, &FieldError{ID: jobID, Field: "userCount", Err: err}
	}
	if userCount < 1 {
		return nil, &FieldError{ID: jobID, Field: "userCount", Err: fmt.Errorf("must be positive, got %d", userCount)}
	}

	lifetime, err := strconv.Atoi(rec.Lifetime)
	if err != nil {
		return nil, &FieldError{ID: jobID, Field: "lifetimeSeconds", Err: err}
	}
	if lifetime < 0 {
		return nil, &FieldError{ID: jobID, Field: "lifetimeSeconds", Err: fmt.Errorf("must not be negative, got %d", lifetime)}
	}

	loc, err := time.LoadLocation(rec.Timezone)
	if err != nil {
		return nil, &FieldError{ID: jobID, Field: "timezoneCode", Err: err}
	}

	addresses := util.SplitSemicolon(rec.Addresses)
	names := util.SplitSemicolon(rec.Names)
	if len(addresses) != len(names) {
		return nil, &ControllerMismatchError{ID: jobID, Addresses: len(addresses), Names: len(names)}
	}

	controllers := make([]Controller, len(addresses))
	for i := range addresses {
		controllers[i] = Controller{Name: names[i], Address: addresses[i]}
	}

	recipients := strings.Split(rec.Recipients, ";")
	for i := range recipients {
		recipients[i] = strings.TrimSpace(recipients[i])
	}

	return &Descriptor{
		ID:              rec.ID,
		Controllers:     controllers,
		UserPrefix:      rec.UserPrefix,
		UserCount:       userCount,
		WLANID:          rec.WLANID,
		SSID:            rec.SSID,
		UserType:        rec.UserType,
		LifetimeSeconds: lifetime,
		Timezone:        rec.Timezone,
		Location:        loc,
		Description:     rec.Description,
		Recipients:      recipients,
		WindowStart:     windowStart,
	}, nil
}
