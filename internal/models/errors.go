package models

import "errors"

// Engine error taxonomy. Handlers map these onto transport status codes;
// services always wrap them with fmt.Errorf("...: %w", err) for context.
var (
	// ErrFatalConfiguration indicates a reference data source is missing or
	// empty. Startup-class: the process cannot serve any request.
	ErrFatalConfiguration = errors.New("reference data source missing or empty")

	// ErrInvalidInput indicates a caller-supplied field failed validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCropNotFound indicates no crop rate row matches the requested name.
	ErrCropNotFound = errors.New("crop not found")

	// ErrNoInsurerAvailable indicates the registered insurer table is empty.
	ErrNoInsurerAvailable = errors.New("no insurance companies available")

	// ErrRendering indicates the document layout engine failed.
	ErrRendering = errors.New("certificate rendering failed")
)
