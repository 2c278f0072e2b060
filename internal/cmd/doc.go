// Package cmd runs external programs for the launcher and git sync.
//
// Failures carry the program's trimmed stderr as the error message so the
// user sees what went wrong without a verbose rerun. Every invocation is
// echoed through [log.Logger.Command] when verbose.
//
// Long-running GUI programs (browsers, file openers) are started with
// [Start] and not waited on; short commands use [RunContext] and
// [OutputContext].
package cmd
