// Package logging configures process-wide structured logging for ppt.
//
// Configuration follows the shape of a Python logging dictionary (version, formatters,
// handlers, root) so the same .configs/log.conf file drives both the Python package and
// this tooling. Setup is the only place that touches the process-wide slog default; it is
// called explicitly by the binaries and entry points, never at import time.
//
// Formatters use %-style patterns such as "%(asctime)s - %(levelname)s - %(message)s"
// rendered by PatternHandler; the literal format "json" selects slog's JSON handler.
package logging
