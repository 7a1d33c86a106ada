// Package database handles the view database connection and schema inspection.
//
// It wraps GORM to open either MySQL (production) or SQLite (local runs and tests)
// from the application's configuration.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table. The health feature compares them
// with the columns the view models expect.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "list_views")
package database
