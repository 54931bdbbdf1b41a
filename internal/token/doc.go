// Package token defines lexical token kinds for the Cinder compiler.
// Invariants:
//   - Token.Text is a slice of the original source (no copies), except for
//     string literals, whose Text is the decoded NFC-normalized value.
//   - Token.Span covers the token's raw source bytes exactly.
//   - Built-in type names (int, bool, string, float, void) are keywords in
//     Cinder; class names are identifiers resolved by the semantic layer.
package token
