package utils

import "fmt"

// IncompleteFormatError reports a stream format that lacks a field needed to
// configure a codec.
type IncompleteFormatError struct {
	Format string
	Field  string
}

// Error returns the error message for IncompleteFormatError.
func (e IncompleteFormatError) Error() string {
	return fmt.Sprintf("stream format %s has no %s", e.Format, e.Field)
}

// UnsupportedSampleFormatError reports a sample format a component cannot carry.
type UnsupportedSampleFormatError struct {
	SampleFormat fmt.Stringer
}

// Error returns the error message for UnsupportedSampleFormatError.
func (e UnsupportedSampleFormatError) Error() string {
	if e.SampleFormat == nil {
		return "unsupported sample format"
	}
	return "unsupported sample format " + e.SampleFormat.String()
}

// NilParametersError represents an error indicating that codec parameters were nil.
type NilParametersError struct {
}

// Error method implementation for NilParametersError.
func (NilParametersError) Error() string {
	return "nil codec parameters"
}
