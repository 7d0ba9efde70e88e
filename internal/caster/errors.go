package caster

import "fmt"

// UnsupportedContextTypeError is returned by an adapter's outcoming middleware
// when the context kind is not in its capability table. It is raised before
// any transport call is made.
type UnsupportedContextTypeError struct {
	Type string
}

func (e *UnsupportedContextTypeError) Error() string {
	return fmt.Sprintf("unsupported context type: %s", e.Type)
}

// UnsupportedAttachmentTypeError is returned for the first attachment whose
// kind is not in the adapter's attachment capability table. The whole send is
// aborted with no partial upload.
type UnsupportedAttachmentTypeError struct {
	Type string
}

func (e *UnsupportedAttachmentTypeError) Error() string {
	return fmt.Sprintf("unsupported attachment type: %s", e.Type)
}
