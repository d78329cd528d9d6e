// Package api
// License: Apache-2.0
//
// Shared error taxonomy for the libds container library.
// Structured errors carry an ErrorCode plus optional context and wrap
// package-level sentinels so callers can branch with errors.Is.
package api
