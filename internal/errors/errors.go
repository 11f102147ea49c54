package errors

import "fmt"

type BusinessErr struct {
	message string
}

func (e *BusinessErr) Error() string {
	return e.message
}

func NewBusinessErr(msg string) error {
	return &BusinessErr{message: msg}
}

type EntryNotFoundErr struct {
	message string
}

func (e *EntryNotFoundErr) Error() string {
	return e.message
}

func NewEntryNotFoundErr(msg string) *EntryNotFoundErr {
	return &EntryNotFoundErr{message: msg}
}

type StatusErr struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusErr) Error() string {
	return fmt.Sprintf("%s %s responded with status %d", e.Method, e.Path, e.Code)
}

func NewStatusErr(method string, path string, code int) *StatusErr {
	return &StatusErr{Method: method, Path: path, Code: code}
}
