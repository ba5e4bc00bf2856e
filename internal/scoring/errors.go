package scoring

// ConfigError represents a startup-time configuration violation, such as a
// weight profile whose components do not sum to 1.0.
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}
