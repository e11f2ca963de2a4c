package apperrors

import (
	"fmt"
)

// Catalog/configuration problems are the one class of error that aborts
// instead of degrading to a warn/fail status. A malformed standard means the
// shipped catalog data is wrong, not that the user's photo is bad.

type UnsupportedUnitError struct {
	StandardID string
	Unit       string
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("standard %q uses unsupported unit %q (supported: inch, mm)", e.StandardID, e.Unit)
}

type DuplicateStandardError struct {
	StandardID string
}

func (e *DuplicateStandardError) Error() string {
	return fmt.Sprintf("duplicate standard id %q in catalog", e.StandardID)
}

type InvalidStandardError struct {
	StandardID string
	Reason     string
}

func (e *InvalidStandardError) Error() string {
	return fmt.Sprintf("invalid standard %q: %s", e.StandardID, e.Reason)
}

type UnknownStandardError struct {
	StandardID string
}

func (e *UnknownStandardError) Error() string {
	return fmt.Sprintf("unknown standard id %q", e.StandardID)
}
