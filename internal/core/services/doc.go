// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The discovery pipeline lives here: the filter predicate and the
// collection loop that drives search rounds against the store.
package services
