package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports a missing required field on an entity write.
type ValidationError struct {
	Entity string
	Field  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Entity, e.Field)
}

// TransportError reports a non-200 response or a network failure.
// Status is 0 when no response was received.
type TransportError struct {
	URL    string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("request %s: unexpected status %d", e.URL, e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

const (
	NotFoundCatalog         = "Unknown catalog"
	NotFoundResource        = "Unknown resource"
	NotFoundContainerFormat = "Missing resource container format"
)

// NotFoundError signals a data or configuration problem, never a transient one.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return e.Kind
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Key)
}

var (
	ErrContainerExists      = errors.New("resource container already exists")
	ErrContainerMissing     = errors.New("missing resource container")
	ErrManifestMissing      = errors.New("missing resource container manifest")
	ErrUnsupportedContainer = errors.New("unsupported resource container version")
	ErrOutdatedContainer    = errors.New("outdated resource container version")
)

// ContainerStateError wraps one of the container sentinels with the path it concerns.
type ContainerStateError struct {
	Path string
	Err  error
}

func (e *ContainerStateError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ContainerStateError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a NotFoundError of the given kind.
func IsNotFound(err error, kind string) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) && nf.Kind == kind
}
