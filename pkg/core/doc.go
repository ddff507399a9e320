// Package core defines the shared language of the saju engine.
//
// This package contains:
//   - Calendar values (Date, DateTime) and Julian Day Number arithmetic
//   - The engine input (BirthMoment) and its text parser
//   - The error kinds every calculator returns
//
// The Golden Rule: pkg/core imports ONLY the standard library.
// All other packages depend on core, not the reverse.
package core
