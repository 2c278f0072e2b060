// Package match drives one free-text input line against the namespace.
//
// Input is classified on every keystroke. Text shaped like a filesystem
// path switches to live directory listing; anything else is matched against
// item keys. Once the text before the first space equals a key exactly,
// that item is locked in and the rest of the line is its arguments.
//
// Suggestions are rendered with bracket tags ([cmd], [global], [app],
// [dir], [file]) and an optional URL hint. StripDecoration reverses the
// rendering so the resolver only ever sees a plain key or path.
package match
