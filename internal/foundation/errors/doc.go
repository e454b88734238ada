// Package errors provides classified error primitives used at the sitecfg
// command boundary.
//
// Library packages return plain wrapped errors and typed errors such as
// siteconfig.ConfigurationError. The CLI wraps them into a ClassifiedError so
// the CLIErrorAdapter can choose an exit code and a user-facing message.
//
// Example usage:
//
//	err := errors.ConfigError(loadErr, "load site configuration").
//		WithContext("path", configPath).
//		Build()
package errors
