// Package ui renders the styled, run-once output of the non-interactive
// commands (scan, info, press).
//
// Unlike the interactive remote in package tui, nothing here reads input:
// each component renders to a string and a Printer writes it out.
//
//   - Header: command banner showing operation name and parameters
//   - Result: success/failure/warning boxes with ordered details
//   - DeviceLine and DeviceDetails: one-line and full device descriptions
//   - StepLine: a ✓/✗ line for one sent action
//
// # Logging Integration
//
// Logging is silent unless TVREMOTE_LOG_LEVEL or --log-level enables it, so
// this output is all the user sees by default.
package ui
