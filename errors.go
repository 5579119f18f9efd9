package codeclean

import "fmt"

// ParseError reports source text that is not valid Go. No partial output is
// produced for the file it refers to.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing source: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RenderError reports a failure to print a rewritten tree back to text.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering tree: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// ConfigError reports an invalid transform configuration, detected before
// any parsing happens.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}
