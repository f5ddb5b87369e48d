// Package input loads puzzle text as an ordered list of lines.
//
// Lines are split on '\n' with terminator semantics: a trailing newline
// does not add an empty final line, and a '\r' before the newline is
// dropped. Content must be valid UTF-8.
//
// Errors:
//
//   - ErrEmptyPath: Import was called with "".
//   - ErrInvalidEncoding: the content is not valid UTF-8.
//   - I/O errors are wrapped, so errors.Is(err, fs.ErrNotExist) works.
package input
