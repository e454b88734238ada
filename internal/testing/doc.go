// Package testing contains fixture and assertion helpers shared by tests.
package testing

const (
	testDirPermissions  = 0o750
	testFilePermissions = 0o600
)
