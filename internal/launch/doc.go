// Package launch hands resolved actions to the operating system.
//
// URLs open in a named browser or the system handler, commands run through
// the platform shell, and paths open with the platform opener. Processes
// are started and not waited on. Failures are reported once and never
// retried.
//
// Browser strings may carry arguments ("firefox -P work") and are split
// with shell quoting rules. Shell commands are parsed before they are
// spawned so a syntax error is reported here instead of by a detached
// child process.
package launch
