// Package textfile scans and rewrites plain-text files line by line.
//
// Line indexes are zero based. SearchFile reports NotFound rather than an error so callers
// can treat a missing file and a missing marker the same way; ReplaceLine returns
// classified errors.
package textfile
