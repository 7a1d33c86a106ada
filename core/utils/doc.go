// Package utils provides loose type conversions shared by the record decoder,
// the HTTP handlers and the CLI.
package utils
