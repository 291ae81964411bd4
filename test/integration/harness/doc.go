// Package harness provides utilities for integration testing the inboxsim CLI.
// It handles binary compilation, environment isolation, study fixtures and command execution.
//
// Environment variables managed:
//   - INBOXSIM_HOME: Isolated per test (temp directory)
//   - INBOXSIM_DEBUG: Disabled to reduce noise
package harness
