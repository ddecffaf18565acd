// Package config loads field files: YAML documents holding user-authored
// tensor literals and index expressions.
//
// A field file is validated as a whole. Every problem is reported as a
// diagnostic with a stable code, so that a single run surfaces all bad
// fields instead of stopping at the first one. Resolve converts a valid
// file into native arrays and index descriptors.
package config
