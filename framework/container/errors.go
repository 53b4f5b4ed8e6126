package container

import "fmt"

// UnboundError is returned by Make when no binding exists for a key.
//
//	// Laravel: Illuminate\Contracts\Container\BindingResolutionException
type UnboundError struct {
	Key string
}

func (e UnboundError) Error() string {
	return fmt.Sprintf("container: no binding registered for [%s]", e.Key)
}

// EntryNotFoundError is the standardized not-found signal surfaced through
// the Locator. It is returned only when the key is neither bound nor
// resolvable for a boundness-negative reason; a bound key whose constructor
// fails surfaces the original error instead.
//
//	// PSR-11: Psr\Container\NotFoundExceptionInterface
type EntryNotFoundError struct {
	ID    string
	cause error
}

func (e EntryNotFoundError) Error() string {
	return fmt.Sprintf("container: entry [%s] not found", e.ID)
}

// Unwrap exposes the underlying resolution failure, if any.
func (e EntryNotFoundError) Unwrap() error { return e.cause }
