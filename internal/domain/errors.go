package domain

// ConfigurationError reports bad local input at bootstrap: an unreadable
// key file, or key text that matches neither supported encoding. The
// message carries the underlying cause and, when known, remediation
// guidance for enrollment.
type ConfigurationError struct {
	Msg   string
	Cause error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return e.Msg + ": " + e.Cause.Error()
	}
	return e.Msg
}

func (e *ConfigurationError) Unwrap() error { return e.Cause }

// SignEncryptError reports a failure in the sign/encrypt domain:
// certificate or serial parsing failed, or the directory returned no
// usable certificate.
type SignEncryptError struct {
	Msg   string
	Cause error
}

func (e *SignEncryptError) Error() string {
	if e.Cause != nil {
		return e.Msg + ": " + e.Cause.Error()
	}
	return e.Msg
}

func (e *SignEncryptError) Unwrap() error { return e.Cause }
