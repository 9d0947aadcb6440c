// Package store reads and writes the few files solarenroll touches.
//
// Enrollment records are never persisted. The package only covers:
//   - Answers files that drive a non-interactive enrollment (YAML or JSON).
//   - The CLI configuration file, written atomically.
package store
