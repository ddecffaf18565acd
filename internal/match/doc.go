// Package match provides name normalization and edit-distance similarity,
// used to suggest the intended spelling of an unknown dtype tag.
package match
