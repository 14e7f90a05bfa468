package engine

import "fmt"

// ValidationError rejects a submission before any store access. Field
// names the offending request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("market.order.%s_%s", e.Reason, e.Field)
}

// ConsistencyViolation means an internal book invariant failed, e.g. a
// decrement below zero. The submission's transaction is rolled back.
type ConsistencyViolation struct {
	Reason string
}

func (e *ConsistencyViolation) Error() string {
	return "engine.consistency." + e.Reason
}

// StorageFailure wraps a persistence error inside the atomic unit. The
// transaction is rolled back and the caller may retry.
type StorageFailure struct {
	Err error
}

func (e *StorageFailure) Error() string {
	return "engine.storage_failure: " + e.Err.Error()
}

func (e *StorageFailure) Unwrap() error {
	return e.Err
}
