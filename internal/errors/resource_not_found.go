package errors

import (
	"errors"
	"fmt"
)

// ResourceNotFound reports a name that is missing from a catalog, such as an
// unknown sample on the command line.
type ResourceNotFound struct {
	Kind string
	Name string
}

func NewResourceNotFound(kind, name string) ResourceNotFound {
	return ResourceNotFound{
		Kind: kind,
		Name: name,
	}
}

func (e ResourceNotFound) Error() string {
	return fmt.Sprintf("Unknown %s %q.", e.Kind, e.Name)
}

func IsResourceNotFound(err error) bool {
	var nf ResourceNotFound
	return errors.As(err, &nf)
}
