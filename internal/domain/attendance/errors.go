package attendance

import (
	"fmt"
	"time"
)

// AlreadyMarkedError reports a second mark for the same employee and date.
// The (employee_id, date) uniqueness constraint backs this under concurrent
// writers; the pre-check only makes the error specific.
type AlreadyMarkedError struct {
	EmployeeID int64
	Date       time.Time
}

func (e *AlreadyMarkedError) Error() string {
	return fmt.Sprintf("attendance already marked for employee %d on %s",
		e.EmployeeID, e.Date.Format("2006-01-02"))
}
