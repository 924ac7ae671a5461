// Package render implements the fixed-width bordered layout engine that
// turns named content sections into a release-style text document.
//
// The engine is purely functional: templates and sections are immutable
// inputs, and every renderer produces new slices rather than editing in
// place. It performs no I/O beyond template loading and never fails:
// missing or malformed templates degrade to unbordered plain text.
//
// Key pieces:
//   - Template/Templates: raw banner line sequences (header, footer,
//     separator)
//   - ExtractMotifs: cyclic left/right border fragments from the separator
//     body
//   - BuildSeparator: the 3-line titled section separator
//   - FrameSection: wraps, pads, and borders a section's lines to a fixed
//     width
//   - FormatLine: dot-leader or centered formatting of a single line
//   - Assemble: the final document from an ordered section list
package render
