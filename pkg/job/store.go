// Package job loads the CSV job data source and resolves job ids into
// validated descriptors.
//
// One row of the data source describes one batch of guest accounts to
// provision on one or more controllers. Rows are positional; Load enforces
// the column count and Resolve turns the raw strings into typed fields so
// field-order mistakes surface in exactly one place.
package job

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// FieldCount is the fixed number of columns per job row.
const FieldCount = 12

// Column indexes of a job row.
const (
	colID = iota
	colAddresses
	colNames
	colUserPrefix
	colUserCount
	colWLANID
	colSSID
	colUserType
	colLifetime
	colTimezone
	colDescription
	colRecipients
)

// Record is one raw job row, fields still unparsed.
type Record struct {
	ID          string
	Addresses   string // semicolon-delimited controller addresses
	Names       string // semicolon-delimited controller display names
	UserPrefix  string
	UserCount   string
	WLANID      string
	SSID        string
	UserType    string
	Lifetime    string // seconds
	Timezone    string // IANA timezone name
	Description string
	Recipients  string // semicolon-delimited email addresses
}

// Table is the in-memory job data source.
type Table struct {
	path string
	rows []Record
}

// Load reads the CSV data source at path, skipping skipRows leading rows.
// Every remaining row must have exactly FieldCount columns.
func Load(path string, skipRows int) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataSourceError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Column count is validated per data row below; header rows are free-form.
	r.FieldsPerRecord = -1

	t := &Table{path: path}
	for line := 1; ; line++ {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &DataSourceError{Path: path, Err: err}
		}
		if line <= skipRows {
			continue
		}
		if len(fields) != FieldCount {
			return nil, &DataSourceError{
				Path: path,
				Err:  fmt.Errorf("line %d has %d columns, want %d", line, len(fields), FieldCount),
			}
		}
		t.rows = append(t.rows, Record{
			ID:          fields[colID],
			Addresses:   fields[colAddresses],
			Names:       fields[colNames],
			UserPrefix:  fields[colUserPrefix],
			UserCount:   fields[colUserCount],
			WLANID:      fields[colWLANID],
			SSID:        fields[colSSID],
			UserType:    fields[colUserType],
			Lifetime:    fields[colLifetime],
			Timezone:    fields[colTimezone],
			Description: fields[colDescription],
			Recipients:  fields[colRecipients],
		})
	}
	return t, nil
}

// Path returns the data source path the table was loaded from.
func (t *Table) Path() string {
	return t.path
}

// Len returns the number of job rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the i-th job row.
func (t *Table) Row(i int) Record {
	return t.rows[i]
}

// IDs returns all job ids in row order, duplicates included.
func (t *Table) IDs() []string {
	ids := make([]string, len(t.rows))
	for i, r := range t.rows {
		ids[i] = r.ID
	}
	return ids
}
