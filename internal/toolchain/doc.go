// Package toolchain wraps external command execution behind a stub-friendly
// Runner interface and provides PATH/version probes for prerequisite checks.
// Commands run synchronously; non-zero exit is reported via Result.ExitCode,
// never by parsing output.
package toolchain
