// Package process runs external tools.
//
// Orchestration code depends on the Runner interface so it can be exercised with
// processtest.FakeRunner instead of spawning real processes.
package process
