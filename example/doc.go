// Package example provides concrete score-row callbacks (LCS similarity,
// Levenshtein distance) and an alignment assembler that interprets a
// stream of atoms into a printable string. None of this is part of the
// driver; it exists so the core package is demonstrably usable end to end.
package example
