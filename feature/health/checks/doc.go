// Package checks implements the storage and schema checks used by the health feature
// and the health command.
package checks
