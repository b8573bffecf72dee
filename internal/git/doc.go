// Package git reads repository metadata for log context. It never modifies a repository.
package git
