package store

// ReadError reports that durable data was present but could not be read
// or deserialized. It is non-fatal: the in-memory collection falls back
// to empty and the caller surfaces the notice to the user.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string { return "read expenses: " + e.Err.Error() }
func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a failed persist step. The in-memory mutation is
// rolled back before this is returned, so durable and in-memory state
// stay consistent.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return "persist expenses: " + e.Err.Error() }
func (e *WriteError) Unwrap() error { return e.Err }
