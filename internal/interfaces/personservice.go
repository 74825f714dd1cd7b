package interfaces

import (
	"context"

	"github.com/haguru/persona/internal/models"
)

// PersonService is the operation catalog the demo and seed drivers run
// against. Every method validates its input locally, delegates to the
// repository and logs the outcome.
type PersonService interface {
	CreatePerson(ctx context.Context, person *models.Person) (*models.Person, error)
	CreateMany(ctx context.Context, people []*models.Person) ([]*models.Person, error)
	FindByName(ctx context.Context, name string) ([]models.Person, error)
	FindOneByFood(ctx context.Context, food string) (*models.Person, error)
	FindByID(ctx context.Context, id string) (*models.Person, error)
	UpdatePerson(ctx context.Context, id string, patch models.PersonPatch) (*models.Person, error)
	AddFavoriteFood(ctx context.Context, id string, food string) (*models.Person, error)
	SetAgeByName(ctx context.Context, name string, age int) (*models.Person, error)
	DeleteByID(ctx context.Context, id string) (*models.Person, error)
	DeleteManyByName(ctx context.Context, name string) (int64, error)
	SearchByFood(ctx context.Context, food string) ([]models.Person, error)
	Stats(ctx context.Context) (*models.PersonStats, error)
	RemoveAll(ctx context.Context) (int64, error)
}
