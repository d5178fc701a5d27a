package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// VenueRepo returns a VenueRepository bound to the current transaction.
	VenueRepo() VenueRepository

	// EventRepo returns an EventRepository bound to the current transaction.
	EventRepo() EventRepository

	// CandidateRepo returns a DuplicateCandidateRepository bound to the current transaction.
	CandidateRepo() DuplicateCandidateRepository

	// MergeAuditRepo returns a MergeAuditRepository bound to the current transaction.
	MergeAuditRepo() MergeAuditRepository
}
