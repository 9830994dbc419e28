// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// This package defines error types that include remediation steps and
// Markdown-formatted guidance for the known failure modes of descriptor
// generation (unknown targets, invalid module selections, incomplete catalog
// tables, configuration problems).
package issue
