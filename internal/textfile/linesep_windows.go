//go:build windows

package textfile

// LineSeparator terminates lines written by this package.
const LineSeparator = "\r\n"
