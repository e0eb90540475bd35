// Package logtail reads the end of forager's log file for the diagnostics
// overlay.
//
// # Reading Log Files
//
// Read keeps a ring buffer of maxLines entries while scanning the file once,
// so memory stays O(maxLines) regardless of file size and lines come back in
// chronological order:
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//
// A missing file returns no lines and no error; the log file is created
// lazily by the first write.
//
// # Levels
//
// Level pulls the level out of a line written by either slog handler so the
// UI can color warnings and errors:
//
//	logtail.Level(`ts=... level=warn msg="recipe lookup failed"`) // "warn"
package logtail
