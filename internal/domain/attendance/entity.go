package attendance

import (
	"time"
)

// Status is the closed set of daily attendance marks.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// Statuses lists every admissible mark; anything else is rejected at the
// boundary.
var Statuses = []string{string(StatusPresent), string(StatusAbsent)}

type Attendance struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	Status     Status
	CreatedAt  time.Time

	// DTO fields populated by joined list queries
	EmployeeName       *string
	EmployeeCode       *string
	EmployeeDepartment *string
}
