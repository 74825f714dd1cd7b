// personservice.go
package personservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/haguru/persona/internal/interfaces"
	"github.com/haguru/persona/internal/models"
	"github.com/haguru/persona/pkg/helper"
)

// PersonService wraps the repository with input validation, logging and
// per-operation metrics. Every method performs at most one repository call,
// except UpdatePerson which is the read-modify-write path: fetch, merge in
// memory, write back. That path has no concurrency guard; two concurrent
// updates to the same record can silently lose one write.
type PersonService struct {
	PersonRepo interfaces.PersonRepository
	Logger     interfaces.Logger
	Metrics    interfaces.Metrics
}

// NewPersonService creates a new PersonService instance.
func NewPersonService(repo interfaces.PersonRepository, logger interfaces.Logger, metrics interfaces.Metrics) *PersonService {
	return &PersonService{
		PersonRepo: repo,
		Logger:     logger,
		Metrics:    metrics,
	}
}

// CreatePerson validates and persists one person, returning the stored record
// with its generated ID and timestamps.
func (s *PersonService) CreatePerson(ctx context.Context, person *models.Person) (*models.Person, error) {
	funcName := helper.GetFuncName()
	defer s.observe(OpCreate, time.Now())
	s.Logger.Debug("Entering function", "func", funcName)

	if person == nil {
		err := fmt.Errorf("%s", ErrNilPerson)
		s.Logger.Error(ErrNilPerson, "func", funcName)
		s.countError(OpCreate)
		return nil, err
	}
	if err := person.Validate(); err != nil {
		s.Logger.Error(ErrInvalidPerson, "func", funcName, "name", person.Name, "error", err)
		s.countError(OpCreate)
		return nil, fmt.Errorf("%s: %w", ErrInvalidPerson, err)
	}

	created, err := s.PersonRepo.Insert(ctx, person)
	if err != nil {
		s.Logger.Error(ErrFailedToCreate, "func", funcName, "name", person.Name, "error", err)
		s.countError(OpCreate)
		return nil, fmt.Errorf("%s: %w", ErrFailedToCreate, err)
	}

	s.Logger.Info("Person created", "func", funcName, "name", created.Name, "ID", created.ID.Hex())
	return created, nil
}

// CreateMany validates and persists a batch of people in order. The first
// failure aborts the whole batch.
func (s *PersonService) CreateMany(ctx context.Context, people []*models.Person) ([]*models.Person, error) {
	funcName := helper.GetFuncName()
	defer s.observe(OpCreateMany, time.Now())
	s.Logger.Debug("Entering function", "func", funcName, "count", len(people))

	if len(people) == 0 {
		err := fmt.Errorf("%s", ErrEmptyBatch)
		s.Logger.Error(ErrEmptyBatch, "func", funcName)
		s.countError(OpCreateMany)
		return nil, err
	}
	for _, person := range people {
		if person == nil {
			err := fmt.Errorf("%s", ErrNilPerson)
			s.Logger.Error(ErrNilPerson, "func", funcName)
			s.countError(OpCreateMany)
			return nil, err
		}
		if err := person.Validate(); err != nil {
			s.Logger.Error(ErrInvalidPerson, "func", funcName, "name", person.Name, "error", err)
			s.countError(OpCreateMany)
			return nil, fmt.Errorf("%s: %w", ErrInvalidPerson, err)
		}
	}

	created, err := s.PersonRepo.InsertMany(ctx, people)
	if err != nil {
		s.Logger.Error(ErrFailedToCreate, "func", funcName, "count", len(people), "error", err)
		s.countError(OpCreateMany)
		return nil, fmt.Errorf("%s: %w", ErrFailedToCreate, err)
	}

	s.Logger.Info("People created", "func", funcName, "count", len(created))
	return created, nil
}

// FindByName returns every person whose name matches exactly. An empty result
// is not an error.
func (s *PersonService) FindByName(ctx context.Context, name string) ([]models.Person, error) {
	funcName := helper.GetFuncName()
	defer s.observe(OpFindByName, time.Now())
	s.Logger.Debug("Entering function", "func", funcName, "name", name)

	if strings.TrimSpace(name) == "" {
		err := fmt.Errorf("%s", ErrEmptyName)
		s.Logger.Error(ErrEmptyName, "func", funcName)
		s.countError(OpFindByName)
		return nil, err
	}

	people, err := s.PersonRepo.FindByName(ctx, name)
	if err != nil {
		s.Logger.Error(ErrFailedToFind, "func", funcName, "name", name, "error", err)
		s.countError(OpFindByName)
		return nil, fmt.Errorf("%s: %w", ErrFailedToFind, err)
	}

	s.Logger.Info("People found by name", "func", funcName, "name", name, "count", len(people))
	return people, nil
}

// FindOneByFood returns the first person whose favorites contain the food,
// or nil when nobody does.
func (s *PersonService) FindOneByFood(ctx context.Context, food string) (*models.Person, error) {
	funcName := helper.GetFuncName()
	defer s.observe(OpFindOneByFood, time.Now())
	s.Logger.Debug("Entering function", "func", funcName, "food", food)

	if strings.TrimSpace(food) == "" {
		err := fmt.Errorf("%s", ErrEmptyFood)
		s.Logger.Error(ErrEmptyFood, "func", funcName)
		s.countError(OpFindOneByFood)
		return nil, err
	}

	person, err := s.PersonRepo.FindOneByFood(ctx, food)
	if err != nil {
		s.Logger.Error(ErrFailedToFind, "func", funcName, "food", food, "error", err)
		s.countError(OpFindOneByFood)
		return nil, fmt.Errorf("%s: %w", ErrFailedToFind, err)
	}

	if person == nil {
		s.Logger.Info("No person found by food", "func", funcName, "food", food)
	} else {
		s.Logger.Info("Person found by food", "func", funcName, "food", food, "name", person.Name)
	}
	return person, nil
}

// FindByID returns the person with the given hex ID, or nil when the ID does
// not exist. An absent record is not an error.
func (s *PersonService) FindByID(ctx context.Context, id string) (*models.Person, error) {
	funcName := helper.GetFuncName()
	defer s.observe(OpFindByID, time.Now())
	s.Logger.Debug("Entering function", "func", funcName, "ID", id)

	if strings.TrimSpace(id) == "" {
		err := fmt.Errorf("%s", ErrEmptyID)
		s.Logger.Error(ErrEmptyID, "func", funcName)
		s.countError(OpFindByID)
		return nil, err
	}

	person, err := s.PersonRepo.FindByID(ctx, id)
	if err != nil {
		s.Logger.Error(ErrFailedToFind, "func", funcName, "ID", id, "error", err)
		s.countError(OpFindByID)
		return nil, fmt.Errorf("%s: %w", ErrFailedToFind, err)
	}

	if person == nil {
		s.Logger.Info("No person found by ID", "func", funcName, "ID", id)
	} else {
		s.Logger.Info("Person found by ID", "func", funcName, "ID", id, "name", person.Name)
	}
	return person, nil
}

// UpdatePerson is the read-modify-write path: fetch the record, merge the
// patch in memory (scalar fields overwrite, foods append without duplicates),
// re-validate and write the whole record back. It fails when the ID does not
// exist. There is no lock or version check between the read and the write.
func (s *PersonService) UpdatePerson(ctx context.Context, id string, patch models.PersonPatch) (*models.Person, error) {
	funcName := helper.GetFuncName()
	defer s.observe(OpUpdate, time.Now())
	s.Logger.Debug("Entering function", "func", funcName, "ID", id)

	if strings.TrimSpace(id) == "" {
		err := fmt.Errorf("%s", ErrEmptyID)
		s.Logger.Error(ErrEmptyID, "func", funcName)
		s.countError(OpUpdate)
		return nil, err
	}

	person, err := s.PersonRepo.FindByID(ctx, id)
	if err != nil {
		s.Logger.Error(ErrFailedToFind, "func", funcName, "ID", id, "error", err)
		s.countError(OpUpdate)
		return nil, fmt.Errorf("%s: %w", ErrFailedToFind, err)
	}
	if person == nil {
		err := fmt.Errorf("%s: %s", ErrPersonNotFound, id)
		s.Logger.Error(ErrPersonNotFound, "func", funcName, "ID", id)
		s.countError(OpUpdate)
		return nil, err
	}

	patch.Apply(person)
	if err := person.Validate(); err != nil {
		s.Logger.Error(ErrInvalidPerson, "func", funcName, "ID", id, "error", err)
		s.countError(OpUpdate)
		return nil, fmt.Errorf("%s: %w", ErrInvalidPerson, err)
	}

	if err := s.PersonRepo.Replace(ctx, person); err != nil {
		s.Logger.Error(ErrFailedToUpdate, "func", funcName, "ID", id, "error", err)
		s.countError(OpUpdate)
		return nil, fmt.Errorf("%s: %w", ErrFailedToUpdate, err)
	}

	s.Logger.Info("Person updated", "func", funcName, "ID", id, "name", person.Name)
	return person, nil
}

// AddFavoriteFood appends one food to a person's favorites via the
// read-modify-write update. Appending a food already present is a no-op.
func (s *PersonService) AddFavoriteFood(ctx context.Context, id string, food string) (*models.Person, error) {
	funcName := helper.GetFuncName()
	defer s.observe(OpAddFood, time.Now())
	s.Logger.Debug("Entering function", "func", funcName, "ID", id, "food", food)

	if strings.TrimSpace(food) == "" {
		err := fmt.Errorf("%s", ErrEmptyFood)
		s.Logger.Error(ErrEmptyFood, "func", funcName)
		s.countError(OpAddFood)
		return nil, err
	}

	return s.UpdatePerson(ctx, id, models.PersonPatch{AddFoods: []string{food}})
}

// SetAgeByName atomically sets the age of the first person with the given
// name via a server-side find-and-update, returning the post-update record,
// or nil when no name matches.
func (s *PersonService) SetAgeByName(ctx context.Context, name string, age int) (*models.Person, error) {
	funcName := helper.GetFuncName()
	defer s.observe(OpSetAgeByName, time.Now())
	s.Logger.Debug("Entering function", "func", funcName, "name", name, "age", age)

	if strings.TrimSpace(name) == "" {
		err := fmt.Errorf("%s", ErrEmptyName)
		s.Logger.Error(ErrEmptyName, "func", funcName)
		s.countError(OpSetAgeByName)
		return nil, err
	}
	if age < models.MinAge || age > models.MaxAge {
		err := fmt.Errorf("%s: %d", ErrInvalidAge, age)
		s.Logger.Error(ErrInvalidAge, "func", funcName, "age", age)
		s.countError(OpSetAgeByName)
		return nil, err
	}

	person, err := s.PersonRepo.SetAgeByName(ctx, name, age)
	if err != nil {
		s.Logger.Error(ErrFailedToUpdate, "func", funcName, "name", name, "error", err)
		s.countError(OpSetAgeByName)
		return nil, fmt.Errorf("%s: %w", ErrFailedToUpdate, err)
	}

	if person == nil {
		s.Logger.Info("No person matched for age update", "func", funcName, "name", name)
	} else {
		s.Logger.Info("Person age updated", "func", funcName, "name", name, "age", age)
	}
	return person, nil
}

// DeleteByID removes the person with the given hex ID and returns the removed
// record, or nil when the ID does not exist.
func (s *PersonService) DeleteByID(ctx context.Context, id string) (*models.Person, error) {
	funcName := helper.GetFuncName()
	defer s.observe(OpDeleteByID, time.Now())
	s.Logger.Debug("Entering function", "func", funcName, "ID", id)

	if strings.TrimSpace(id) == "" {
		err := fmt.Errorf("%s", ErrEmptyID)
		s.Logger.Error(ErrEmptyID, "func", funcName)
		s.countError(OpDeleteByID)
		return nil, err
	}

	person, err := s.PersonRepo.DeleteByID(ctx, id)
	if err != nil {
		s.Logger.Error(ErrFailedToDelete, "func", funcName, "ID", id, "error", err)
		s.countError(OpDeleteByID)
		return nil, fmt.Errorf("%s: %w", ErrFailedToDelete, err)
	}

	if person == nil {
		s.Logger.Info("No person to delete", "func", funcName, "ID", id)
	} else {
		s.Logger.Info("Person deleted", "func", funcName, "ID", id, "name", person.Name)
	}
	return person, nil
}

// DeleteManyByName removes every person with the given name and returns the
// count of removed records.
func (s *PersonService) DeleteManyByName(ctx context.Context, name string) (int64, error) {
	funcName := helper.GetFuncName()
	defer s.observe(OpDeleteByName, time.Now())
	s.Logger.Debug("Entering function", "func", funcName, "name", name)

	if strings.TrimSpace(name) == "" {
		err := fmt.Errorf("%s", ErrEmptyName)
		s.Logger.Error(ErrEmptyName, "func", funcName)
		s.countError(OpDeleteByName)
		return 0, err
	}

	count, err := s.PersonRepo.DeleteByName(ctx, name)
	if err != nil {
		s.Logger.Error(ErrFailedToDelete, "func", funcName, "name", name, "error", err)
		s.countError(OpDeleteByName)
		return 0, fmt.Errorf("%s: %w", ErrFailedToDelete, err)
	}

	s.Logger.Info("People deleted by name", "func", funcName, "name", name, "count", count)
	return count, nil
}

// SearchByFood runs the chained query: filter by food, sort by name
// ascending, limit to SearchLimit, project down to name and favorites.
func (s *PersonService) SearchByFood(ctx context.Context, food string) ([]models.Person, error) {
	funcName := helper.GetFuncName()
	defer s.observe(OpSearchByFood, time.Now())
	s.Logger.Debug("Entering function", "func", funcName, "food", food)

	if strings.TrimSpace(food) == "" {
		err := fmt.Errorf("%s", ErrEmptyFood)
		s.Logger.Error(ErrEmptyFood, "func", funcName)
		s.countError(OpSearchByFood)
		return nil, err
	}

	people, err := s.PersonRepo.SearchByFood(ctx, food, SearchLimit)
	if err != nil {
		s.Logger.Error(ErrFailedToFind, "func", funcName, "food", food, "error", err)
		s.countError(OpSearchByFood)
		return nil, fmt.Errorf("%s: %w", ErrFailedToFind, err)
	}

	s.Logger.Info("People found by food search", "func", funcName, "food", food, "count", len(people))
	return people, nil
}

// Stats aggregates the collection into a summary: total count, active count
// and the average age over people that have an age.
func (s *PersonService) Stats(ctx context.Context) (*models.PersonStats, error) {
	funcName := helper.GetFuncName()
	defer s.observe(OpStats, time.Now())
	s.Logger.Debug("Entering function", "func", funcName)

	stats, err := s.PersonRepo.Stats(ctx)
	if err != nil {
		s.Logger.Error(ErrFailedToAggregate, "func", funcName, "error", err)
		s.countError(OpStats)
		return nil, fmt.Errorf("%s: %w", ErrFailedToAggregate, err)
	}

	s.Logger.Info("People stats computed", "func", funcName,
		"total", stats.Total, "active", stats.Active, "averageAge", stats.AverageAge)
	return stats, nil
}

// RemoveAll clears the collection and returns the count of removed records.
func (s *PersonService) RemoveAll(ctx context.Context) (int64, error) {
	funcName := helper.GetFuncName()
	defer s.observe(OpRemoveAll, time.Now())
	s.Logger.Debug("Entering function", "func", funcName)

	count, err := s.PersonRepo.DeleteAll(ctx)
	if err != nil {
		s.Logger.Error(ErrFailedToDelete, "func", funcName, "error", err)
		s.countError(OpRemoveAll)
		return 0, fmt.Errorf("%s: %w", ErrFailedToDelete, err)
	}

	s.Logger.Info("Collection cleared", "func", funcName, "count", count)
	return count, nil
}

// observe records one started operation and its duration.
func (s *PersonService) observe(op string, start time.Time) {
	if s.Metrics == nil {
		return
	}
	s.Metrics.IncCounterVec(OperationRequestsTotal, op)
	s.Metrics.ObserveHistogramVec(OperationDurationSeconds, time.Since(start).Seconds(), op)
}

// countError records one failed operation.
func (s *PersonService) countError(op string) {
	if s.Metrics == nil {
		return
	}
	s.Metrics.IncCounterVec(OperationErrorsTotal, op)
}
