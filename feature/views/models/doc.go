// Package models defines the database tables backing stored views.
//
// A View row holds the view settings and the current selection as a JSON array of
// positions. Its items live in list_view_items, one row per record, ordered by Position.
package models
