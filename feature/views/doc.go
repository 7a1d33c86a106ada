// Package views stores lists that are kept in sync with source snapshots.
//
// A view remembers its items, in their own order, and the positions the user has
// selected. Refreshing a view reconciles the stored items with the current
// snapshot: records gone from the source are dropped, matched records take the
// source payload in place and new records are inserted by the view's strategy.
// The selection follows the surviving items.
//
// # Routes
//
//	GET    /views                    list views
//	POST   /views                    create a view
//	GET    /views/:id                view with items and selection
//	PUT    /views/:id/selection      replace the selection
//	POST   /views/:id/refresh        reconcile (?dry_run=true, ?reload=true)
//	DELETE /views/:id                delete a view
//	PUT    /sources/:name            upload a snapshot
//
// Mutations of one view are serialized by the service.
package views
