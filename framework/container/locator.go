package container

// Locator is the narrow has/get lookup facade external callers use instead
// of touching the container directly. It implements the generic
// service-locator contract: Get fails with EntryNotFoundError when nothing
// is registered under the id, and never masks a real construction failure
// as not-found.
//
//	// PSR-11: Psr\Container\ContainerInterface
type Locator struct {
	container *Container
}

// NewLocator wraps a container. The locator borrows the container by
// reference; it does not own it.
func NewLocator(c *Container) *Locator {
	return &Locator{container: c}
}

// Has reports whether id is registered.
func (l *Locator) Has(id string) bool {
	return l.container.Bound(id)
}

// Get resolves id from the underlying container.
//
// When resolution fails, boundness is re-checked AFTER the failure: a
// binding may appear (or disappear) as a side effect of the attempt, and
// the reclassification must reflect the state at failure time. Only a
// failure with Bound(id) == false becomes EntryNotFoundError; otherwise the
// original error (e.g. a constructor failure) propagates unchanged.
func (l *Locator) Get(id string) (any, error) {
	v, err := l.container.Make(id)
	if err != nil {
		if !l.container.Bound(id) {
			return nil, EntryNotFoundError{ID: id, cause: err}
		}
		return nil, err
	}
	return v, nil
}
