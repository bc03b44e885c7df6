package domain

import "encoding/json"

// Result is the outcome of a domain operation. Exactly one of Data or Error
// is meaningful, selected by Success.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error,omitempty"`

	err error
}

// OK wraps a successful value.
func OK[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Fail wraps err. The message is what callers see; the error itself stays
// reachable through Err for classification.
func Fail[T any](err error) Result[T] {
	return Result[T]{Success: false, Error: err.Error(), err: err}
}

// From builds a Result from a (value, error) pair.
func From[T any](data T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return OK(data)
}

// Err returns the underlying error of a failed result, or nil.
func (r Result[T]) Err() error {
	return r.err
}

// MarshalJSON emits data on success, even when it is empty, and error on
// failure.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.Success {
		return json.Marshal(struct {
			Success bool `json:"success"`
			Data    T    `json:"data"`
		}{Success: true, Data: r.Data})
	}
	return json.Marshal(struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}{Success: false, Error: r.Error})
}
