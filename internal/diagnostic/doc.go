// Package diagnostic provides structured warnings, errors and notes
// collected while building the device model.
//
// Key capabilities:
//   - Unsupported child class warnings with "did you mean" suggestions
//   - Notes for source attributes the field templates do not know
//   - Promotion of warnings to errors for strict runs
package diagnostic
