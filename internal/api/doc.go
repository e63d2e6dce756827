// Package api serves the recommender over HTTP and defines its wire-format
// types.
//
// # Routes
//
// GET /api/recommend?q=&n=: resolve a query and return up to n hits.
//
// GET /api/top-rated?page=&perPage=: one page of the rating-ordered catalog.
//
// GET /api/health: liveness and catalog size.
//
// # Design Notes
//
// DTOs use camelCase JSON tags. Every request receives a UUID request id,
// echoed in the X-Request-ID header and logged as correlation_id. Callers may
// supply their own id in that header. The engine is read-only, so handlers
// run concurrently without locking.
package api
