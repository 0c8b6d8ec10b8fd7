// Package debug provides optional file-based debug logging.
//
// When the MATCHGEO_DEBUG environment variable is set to a file path, a
// debug-level slog handler appends to that file. Otherwise no handler is
// created and logging stays silent.
package debug
