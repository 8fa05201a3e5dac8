// Package resilience provides fault tolerance patterns for store access.
//
// The circuitbreaker subpackage guards the relational store: once the database
// keeps failing, queries are rejected immediately instead of piling up on a dead
// connection pool. Failed operations are never retried; a rejected call surfaces
// to the caller as a store failure.
//
// Usage Example:
//
//	db := circuitbreaker.NewDBCircuitBreaker(sqlDB, logger)
//	rows, err := db.QueryContext(ctx, "SELECT id FROM communities WHERE id = $1", id)
package resilience
