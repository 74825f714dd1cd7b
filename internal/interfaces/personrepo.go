package interfaces

import (
	"context"

	"github.com/haguru/persona/internal/models"
)

// PersonRepository defines the contract for storing and retrieving Person
// records. Lookups that miss return a nil person and a nil error; only real
// failures produce errors.
type PersonRepository interface {
	// Insert persists a new person, stamping its ID and timestamps.
	Insert(ctx context.Context, person *models.Person) (*models.Person, error)
	// InsertMany persists people in order; the first failure aborts the batch.
	InsertMany(ctx context.Context, people []*models.Person) ([]*models.Person, error)
	// FindByName returns all people whose name matches exactly.
	FindByName(ctx context.Context, name string) ([]models.Person, error)
	// FindOneByFood returns the first person whose favorites contain the food.
	FindOneByFood(ctx context.Context, food string) (*models.Person, error)
	// FindByID returns the person with the given hex ID.
	FindByID(ctx context.Context, id string) (*models.Person, error)
	// Replace overwrites the stored person matching the given person's ID,
	// refreshing its updatedAt timestamp.
	Replace(ctx context.Context, person *models.Person) error
	// SetAgeByName atomically sets the age of the first person with the given
	// name and returns the post-update record, or nil when no name matches.
	SetAgeByName(ctx context.Context, name string, age int) (*models.Person, error)
	// DeleteByID removes the person with the given hex ID and returns the
	// removed record, or nil when the ID does not exist.
	DeleteByID(ctx context.Context, id string) (*models.Person, error)
	// DeleteByName removes every person with the given name and returns the
	// count of removed records.
	DeleteByName(ctx context.Context, name string) (int64, error)
	// DeleteAll clears the collection and returns the count of removed records.
	DeleteAll(ctx context.Context) (int64, error)
	// SearchByFood returns up to limit people whose favorites contain the
	// food, sorted by name ascending, projected down to name and favorites.
	SearchByFood(ctx context.Context, food string, limit int64) ([]models.Person, error)
	// Stats aggregates the collection into a summary.
	Stats(ctx context.Context) (*models.PersonStats, error)
	// EnsureIndices creates the unique sparse email index.
	EnsureIndices(ctx context.Context) error
	// Close disconnects the underlying client.
	Close(ctx context.Context) error
}
