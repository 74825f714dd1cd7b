// Package demo runs every service operation once, in a fixed order, logging
// human-readable progress. It stops at the first error; there is no recovery.
package demo

import (
	"context"
	"fmt"

	"github.com/haguru/persona/internal/interfaces"
	"github.com/haguru/persona/internal/models"
)

// Runner drives the fixed demonstration sequence.
type Runner struct {
	Service interfaces.PersonService
	Logger  interfaces.Logger
}

// NewRunner creates a demo Runner.
func NewRunner(service interfaces.PersonService, logger interfaces.Logger) *Runner {
	return &Runner{
		Service: service,
		Logger:  logger,
	}
}

// Run walks through the whole operation catalog once.
func (r *Runner) Run(ctx context.Context) error {
	r.Logger.Info("Starting CRUD demonstration")

	// Start from a clean collection so the sequence is reproducible.
	if _, err := r.Service.RemoveAll(ctx); err != nil {
		return err
	}

	// 1. Insert one record.
	john, err := r.Service.CreatePerson(ctx,
		models.NewPerson("John Doe").WithAge(30).WithEmail("john.doe@example.com").WithFoods("pizza", "pasta"))
	if err != nil {
		return err
	}
	r.Logger.Info("Step 1: created person", "name", john.Name, "ID", john.ID.Hex())

	// 2. Insert many records.
	batch, err := r.Service.CreateMany(ctx, []*models.Person{
		models.NewPerson("Mary Poppins").WithAge(41).WithEmail("mary.poppins@example.com").WithFoods("scones"),
		models.NewPerson("Luke Skywalker").WithAge(23).WithFoods("pizza", "blue milk"),
		models.NewPerson("Mary Poppins").WithAge(39).WithFoods("tea cakes"),
	})
	if err != nil {
		return err
	}
	r.Logger.Info("Step 2: created batch", "count", len(batch))

	// 3. Find all records matching a name.
	marys, err := r.Service.FindByName(ctx, "Mary Poppins")
	if err != nil {
		return err
	}
	r.Logger.Info("Step 3: found by name", "name", "Mary Poppins", "count", len(marys))

	// 4. Find the first record containing a favorite food.
	pizzaFan, err := r.Service.FindOneByFood(ctx, "pizza")
	if err != nil {
		return err
	}
	if pizzaFan != nil {
		r.Logger.Info("Step 4: found one by food", "food", "pizza", "name", pizzaFan.Name)
	}

	// 5. Find by ID.
	found, err := r.Service.FindByID(ctx, john.ID.Hex())
	if err != nil {
		return err
	}
	if found != nil {
		r.Logger.Info("Step 5: found by ID", "ID", found.ID.Hex(), "name", found.Name)
	}

	// 6. Read-modify-write update: merge a scalar and append a food.
	newAge := 31
	updated, err := r.Service.UpdatePerson(ctx, john.ID.Hex(), models.PersonPatch{
		Age:      &newAge,
		AddFoods: []string{"lasagna"},
	})
	if err != nil {
		return err
	}
	r.Logger.Info("Step 6: updated person", "name", updated.Name, "age", *updated.Age, "foods", updated.FavoriteFoods)

	// 7. Convenience wrapper: append one fixed food item.
	updated, err = r.Service.AddFavoriteFood(ctx, john.ID.Hex(), "hamburger")
	if err != nil {
		return err
	}
	r.Logger.Info("Step 7: appended favorite food", "name", updated.Name, "foods", updated.FavoriteFoods)

	// 8. Atomic find-one-and-update by name.
	aged, err := r.Service.SetAgeByName(ctx, "Luke Skywalker", 24)
	if err != nil {
		return err
	}
	if aged != nil {
		r.Logger.Info("Step 8: set age by name", "name", aged.Name, "age", *aged.Age)
	}

	// 9. Chained query: filter, sort, limit, projection.
	matches, err := r.Service.SearchByFood(ctx, "pizza")
	if err != nil {
		return err
	}
	for _, match := range matches {
		r.Logger.Info("Step 9: search by food", "name", match.Name, "foods", match.FavoriteFoods)
	}

	// 10. Aggregate stats.
	stats, err := r.Service.Stats(ctx)
	if err != nil {
		return err
	}
	r.Logger.Info("Step 10: stats", "total", stats.Total, "active", stats.Active, "averageAge", stats.AverageAge)

	// 11. Delete by ID.
	removed, err := r.Service.DeleteByID(ctx, john.ID.Hex())
	if err != nil {
		return err
	}
	if removed != nil {
		r.Logger.Info("Step 11: deleted by ID", "name", removed.Name)
	}

	// 12. Delete all records matching a name.
	count, err := r.Service.DeleteManyByName(ctx, "Mary Poppins")
	if err != nil {
		return err
	}
	r.Logger.Info("Step 12: deleted by name", "name", "Mary Poppins", "count", count)

	// 13. Find by a now-nonexistent ID returns absent, not an error.
	gone, err := r.Service.FindByID(ctx, john.ID.Hex())
	if err != nil {
		return err
	}
	if gone != nil {
		return fmt.Errorf("expected deleted person %s to be absent", john.ID.Hex())
	}
	r.Logger.Info("Step 13: deleted person is absent", "ID", john.ID.Hex())

	r.Logger.Info("CRUD demonstration finished")
	return nil
}
