package errors

import (
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type ErrorType string

const (
	ErrTypeInputNotFound   ErrorType = "INPUT_NOT_FOUND"
	ErrTypeSchemaViolation ErrorType = "SCHEMA_VIOLATION"
	ErrTypeOutputFailure   ErrorType = "OUTPUT_FAILURE"
	ErrTypeInternal        ErrorType = "INTERNAL"
)

type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Stack   []byte
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func (e *DomainError) StackTrace() []byte {
	return e.Stack
}

func New(errType ErrorType, message string, err error) *DomainError {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func InputNotFound(message string, err error) *DomainError {
	return New(ErrTypeInputNotFound, message, err)
}

func SchemaViolation(message string, err error) *DomainError {
	return New(ErrTypeSchemaViolation, message, err)
}

func OutputFailure(message string, err error) *DomainError {
	return New(ErrTypeOutputFailure, message, err)
}

func Internal(message string, err error) *DomainError {
	return New(ErrTypeInternal, message, err)
}
