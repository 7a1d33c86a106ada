// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key header or api_key query) protecting the API.
//   - rayid: assigns every request a ray id (uuid), stores it in the Fiber locals
//     for logger.WithRayID and echoes it in the X-Ray-ID response header.
//
// Both are registered globally in the start command, rayid first.
package middleware
