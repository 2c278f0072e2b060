// Package prompt provides the interactive prompts.
//
// Every prompt renders to stderr so stdout stays free for printed results.
//
// Available prompts:
//   - [Keyword]: the launcher input, with live suggestions from a [match.Engine]
//   - [Select]: fuzzy-filtered single selection, used for projects
//   - [TextInput]: single-line text input
//   - [Confirm]: yes/no confirmation
package prompt
