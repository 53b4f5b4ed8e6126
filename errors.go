package bridge

import "fmt"

// UndefinedOperationError is returned by CallOperation when the named
// operation is not one the App recognizes or can delegate to the container.
//
//	// Laravel: BadMethodCallException from __call forwarding
type UndefinedOperationError struct {
	Op string
}

func (e UndefinedOperationError) Error() string {
	return fmt.Sprintf("bridge: undefined operation [%s]", e.Op)
}
