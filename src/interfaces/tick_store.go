package interfaces

import "mt-bridge/src/models"

// -----------------------------------------------------------------------------
// ITickStore defines the contract for tick history persistence.
// -----------------------------------------------------------------------------

type ITickStore interface {

	// -----------------------------------------------------------------------------

	// Initialize sets up the database schema and tables.
	Initialize() error

	// -----------------------------------------------------------------------------

	// SaveTicksBulk inserts a batch of ticks.
	SaveTicksBulk(ticks []models.MTick) error

	// -----------------------------------------------------------------------------

	// Close the database connection
	Close() error
}
