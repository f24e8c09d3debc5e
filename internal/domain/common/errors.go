package common

import (
	"errors"
	"fmt"
)

// ConnectionError means no database connection could be leased.
type ConnectionError struct {
	Err error
}

func (e ConnectionError) Error() string {
	return fmt.Sprintf("lease connection: %v", e.Err)
}

func (e ConnectionError) Unwrap() error {
	return e.Err
}

func NewConnection(err error) error {
	return ConnectionError{Err: err}
}

func IsConnection(err error) bool {
	var ce ConnectionError
	return errors.As(err, &ce)
}

// QueryError means a connection was leased but the statement failed.
type QueryError struct {
	Entity string
	Err    error
}

func (e QueryError) Error() string {
	return fmt.Sprintf("%s query: %v", e.Entity, e.Err)
}

func (e QueryError) Unwrap() error {
	return e.Err
}

func NewQuery(entity string, err error) error {
	return QueryError{Entity: entity, Err: err}
}

func IsQuery(err error) bool {
	var qe QueryError
	return errors.As(err, &qe)
}
