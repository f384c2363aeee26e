package customerr

// ValidationError marks user-input mistakes. They are replied to and never
// fatal: the session stays usable after any of them.
type ValidationError struct {
	Err string
}

func (e *ValidationError) Error() string {
	return e.Err
}
