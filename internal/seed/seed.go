// Package seed clears the people collection and loads a fixed set of sample
// records, then runs a few sample queries against them.
package seed

import (
	"context"
	"fmt"

	"github.com/haguru/persona/internal/interfaces"
	"github.com/haguru/persona/internal/models"

	"golang.org/x/time/rate"
)

// SamplePeople returns the ten fixed records the seed script inserts.
// Every record has an age so the seeded average is the plain arithmetic mean.
func SamplePeople() []*models.Person {
	return []*models.Person{
		models.NewPerson("John Doe").WithAge(30).WithEmail("john.doe@example.com").WithFoods("pizza", "pasta"),
		models.NewPerson("Jane Smith").WithAge(25).WithEmail("jane.smith@example.com").WithFoods("sushi", "ramen"),
		models.NewPerson("Alice Johnson").WithAge(35).WithEmail("alice.johnson@example.com").WithFoods("tacos"),
		models.NewPerson("Bob Brown").WithAge(40).WithEmail("bob.brown@example.com").WithFoods("pizza", "burgers"),
		models.NewPerson("Carol White").WithAge(28).WithEmail("carol.white@example.com").WithFoods("salad", "pasta"),
		models.NewPerson("David Green").WithAge(52).WithEmail("david.green@example.com").WithFoods("steak"),
		models.NewPerson("Emma Black").WithAge(19).WithEmail("emma.black@example.com").WithFoods("pizza", "ice cream"),
		models.NewPerson("Frank Gray").WithAge(61).WithEmail("frank.gray@example.com").WithFoods("soup"),
		models.NewPerson("Grace Blue").WithAge(33).WithEmail("grace.blue@example.com").WithFoods("curry", "naan"),
		models.NewPerson("Henry Reed").WithAge(47).WithEmail("henry.reed@example.com").WithFoods("pasta"),
	}
}

// Runner seeds the collection and exercises a few read paths.
type Runner struct {
	Service interfaces.PersonService
	Logger  interfaces.Logger
	Limiter *rate.Limiter
}

// NewRunner creates a seed Runner. insertsPerSecond paces the inserts so a
// tutorial run does not hammer a shared cluster; zero or negative disables
// pacing.
func NewRunner(service interfaces.PersonService, logger interfaces.Logger, insertsPerSecond float64) *Runner {
	var limiter *rate.Limiter
	if insertsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(insertsPerSecond), 1)
	}
	return &Runner{
		Service: service,
		Logger:  logger,
		Limiter: limiter,
	}
}

// Run clears the collection, inserts the sample records one at a time and
// runs the sample queries. It stops at the first error.
func (r *Runner) Run(ctx context.Context) error {
	r.Logger.Info("Seeding people collection")

	removed, err := r.Service.RemoveAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear collection: %w", err)
	}
	r.Logger.Info("Cleared collection", "removed", removed)

	for _, person := range SamplePeople() {
		if r.Limiter != nil {
			if err := r.Limiter.Wait(ctx); err != nil {
				return fmt.Errorf("seed pacing interrupted: %w", err)
			}
		}
		created, err := r.Service.CreatePerson(ctx, person)
		if err != nil {
			return fmt.Errorf("failed to seed %q: %w", person.Name, err)
		}
		r.Logger.Info("Seeded person", "name", created.Name, "ID", created.ID.Hex())
	}

	return r.runSampleQueries(ctx)
}

// runSampleQueries demonstrates the read paths against the seeded data.
func (r *Runner) runSampleQueries(ctx context.Context) error {
	people, err := r.Service.FindByName(ctx, "John Doe")
	if err != nil {
		return err
	}
	r.Logger.Info("Sample query: find by name", "name", "John Doe", "count", len(people))

	person, err := r.Service.FindOneByFood(ctx, "sushi")
	if err != nil {
		return err
	}
	if person != nil {
		r.Logger.Info("Sample query: find one by food", "food", "sushi", "name", person.Name)
	}

	matches, err := r.Service.SearchByFood(ctx, "pizza")
	if err != nil {
		return err
	}
	for _, match := range matches {
		r.Logger.Info("Sample query: search by food", "food", "pizza", "name", match.Name, "foods", match.FavoriteFoods)
	}

	stats, err := r.Service.Stats(ctx)
	if err != nil {
		return err
	}
	r.Logger.Info("Sample query: stats",
		"total", stats.Total, "active", stats.Active, "averageAge", stats.AverageAge)

	return nil
}
