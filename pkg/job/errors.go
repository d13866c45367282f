package job

import (
	"errors"
	"fmt"
)

// ErrNoJobs is returned when the data source contains no job rows at all.
var ErrNoJobs = errors.New("no job ids exist in the data source")

// DataSourceError reports a data file that could not be read or parsed.
// It is fatal for the whole run.
type DataSourceError struct {
	Path string
	Err  error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source %s: %v", e.Path, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// DuplicateIDError reports a job id used by more than one row.
type DuplicateIDError struct {
	ID    string
	Count int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("job id %s is used by %d rows in the data source; remove the duplicates", e.ID, e.Count)
}

// NotFoundError reports a job id with no matching row.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("job id %s does not exist in the data source", e.ID)
}

// FieldError reports a row field that failed to parse or validate.
type FieldError struct {
	ID    string
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("job %s: field %s: %v", e.ID, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ControllerMismatchError reports controller address and name lists of
// different lengths. The job fails before any command generation.
type ControllerMismatchError struct {
	ID        string
	Addresses int
	Names     int
}

func (e *ControllerMismatchError) Error() string {
	return fmt.Sprintf("job %s: %d controller addresses but %d controller names", e.ID, e.Addresses, e.Names)
}
