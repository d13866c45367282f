package job

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleCSV = `id,wlc ip,wlc name,prefix,qty,wlan,ssid,type,lifetime,timezone,description,recipients
5,10.0.0.1;10.0.0.2,WLC-A;WLC-B,GUEST,2,1,GuestWifi,guest,3600,Europe/Rome,Conference guests,guest@example.com
7,10.0.0.3,WLC-C,VISITOR,1,2,VisitorWifi,guest,7200,UTC,Visitors,a@example.com;b@example.com
`

func writeDataFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	table, err := Load(writeDataFile(t, sampleCSV), 1)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}

	r := table.Row(0)
	if r.ID != "5" || r.UserPrefix != "GUEST" || r.UserCount != "2" {
		t.Errorf("Row(0) = %+v", r)
	}
	if r.Addresses != "10.0.0.1;10.0.0.2" || r.Names != "WLC-A;WLC-B" {
		t.Errorf("Row(0) controllers = %q / %q", r.Addresses, r.Names)
	}
	if r.Timezone != "Europe/Rome" || r.Recipients != "guest@example.com" {
		t.Errorf("Row(0) tz/recipients = %q / %q", r.Timezone, r.Recipients)
	}

	ids := table.IDs()
	if len(ids) != 2 || ids[0] != "5" || ids[1] != "7" {
		t.Errorf("IDs() = %v", ids)
	}
}

func TestLoad_SingleRow(t *testing.T) {
	// A single-row table behaves exactly like a multi-row one.
	single := "header\n5,10.0.0.1,WLC-A,GUEST,2,1,GuestWifi,guest,3600,UTC,desc,x@example.com\n"
	table, err := Load(writeDataFile(t, single), 1)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", table.Len())
	}
	if table.Row(0).ID != "5" {
		t.Errorf("Row(0).ID = %q, want %q", table.Row(0).ID, "5")
	}
}

func TestLoad_NoSkipRows(t *testing.T) {
	content := "5,10.0.0.1,WLC-A,GUEST,2,1,GuestWifi,guest,3600,UTC,desc,x@example.com\n"
	table, err := Load(writeDataFile(t, content), 0)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), 0)
	var dserr *DataSourceError
	if !errors.As(err, &dserr) {
		t.Fatalf("error = %v, want *DataSourceError", err)
	}
}

func TestLoad_ColumnMismatch(t *testing.T) {
	content := "header\n5,10.0.0.1,WLC-A,GUEST,2\n"
	_, err := Load(writeDataFile(t, content), 1)
	var dserr *DataSourceError
	if !errors.As(err, &dserr) {
		t.Fatalf("error = %v, want *DataSourceError", err)
	}
}

func TestLoad_EmptyAfterSkip(t *testing.T) {
	table, err := Load(writeDataFile(t, "header only\n"), 1)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("Len() = %d, want 0", table.Len())
	}
}
