package main

import "fmt"

// DecodeError is returned when the input image can't be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error loading '%s': %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError is returned when the output image can't be encoded or written.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("error writing '%s': %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
