package employee

import "context"

type EmployeeRepository interface {
	// GetByID returns ErrEmployeeNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (Employee, error)

	// GetByEmployeeID looks up by the external employee code.
	// Returns nil, nil when absent; absence is not an error here.
	GetByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)

	// GetByEmail returns nil, nil when absent.
	GetByEmail(ctx context.Context, email string) (*Employee, error)

	// List returns employees in insertion order with offset/limit pagination.
	List(ctx context.Context, skip, limit int) ([]Employee, error)

	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// Delete removes the employee row; attendance rows go with it via the
	// cascading foreign key. Returns ErrEmployeeNotFound when nothing matched.
	Delete(ctx context.Context, id int64) error

	ExistsByID(ctx context.Context, id int64) (bool, error)
}
