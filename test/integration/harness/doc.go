// Package harness provides utilities for integration testing the clipkeys CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - CLIPKEYS_HOME: Isolated per test (temp directory)
//   - CLIPKEYS_DEBUG: Disabled to reduce noise
//   - CLIPKEYS_PLATFORM: Pinned to linux so the meta key renders as WIN
package harness
