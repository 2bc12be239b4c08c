// Package viz draws rhythm patterns as braille-dot circles for the terminal.
//
// [Canvas] addresses individual braille dots; [Circle] lays a pattern's
// steps around a ring, joins its onsets into a polygon and marks the
// onsets' center of gravity, so a balanced pattern shows its marker at the
// ring's center.
package viz
