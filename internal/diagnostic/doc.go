// Package diagnostic collects structured errors, warnings and notes produced
// while validating user-authored literal and index fields.
//
// Every diagnostic carries a stable code, the field it refers to and,
// where one exists, suggested replacements.
package diagnostic
