// Package health exposes infrastructure checks over HTTP.
//
// Checks live in the checks subpackage:
//   - storage: the bucket exists and the source prefix holds at least one snapshot.
//     With ?fix=true the bucket and a prefix marker are created.
//   - schema: the view tables match the GORM models (missing columns, type mismatches).
//
// Routes: GET /health, GET /health/storage, GET /health/schema.
package health
