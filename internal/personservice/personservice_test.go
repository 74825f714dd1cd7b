package personservice

import (
	"context"
	"errors"
	"testing"

	"github.com/haguru/persona/internal/interfaces/mocks"
	"github.com/haguru/persona/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestService(t *testing.T) (*PersonService, *mocks.MockPersonRepository) {
	repo := mocks.NewMockPersonRepository(t)
	service := NewPersonService(repo, mocks.NewNoopLogger(), nil)
	return service, repo
}

func TestPersonService_CreatePerson(t *testing.T) {
	t.Run("valid person is persisted", func(t *testing.T) {
		service, repo := newTestService(t)
		person := models.NewPerson("John Doe").WithAge(30).WithFoods("pizza", "pasta")
		repo.On("Insert", mock.Anything, person).Return(person, nil)

		created, err := service.CreatePerson(context.Background(), person)

		require.NoError(t, err)
		assert.Equal(t, "John Doe", created.Name)
	})

	t.Run("nil person is rejected locally", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreatePerson(context.Background(), nil)

		assert.Error(t, err)
	})

	t.Run("short name is rejected before any repository call", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreatePerson(context.Background(), models.NewPerson("A"))

		assert.Error(t, err)
	})

	t.Run("name with digits is rejected", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreatePerson(context.Background(), models.NewPerson("John Doe3"))

		assert.Error(t, err)
	})

	t.Run("repository error is wrapped and re-raised", func(t *testing.T) {
		service, repo := newTestService(t)
		person := models.NewPerson("John Doe")
		repoErr := errors.New("boom")
		repo.On("Insert", mock.Anything, person).Return(nil, repoErr)

		_, err := service.CreatePerson(context.Background(), person)

		require.Error(t, err)
		assert.ErrorIs(t, err, repoErr)
	})
}

func TestPersonService_CreateMany(t *testing.T) {
	t.Run("empty batch is rejected", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateMany(context.Background(), nil)

		assert.Error(t, err)
	})

	t.Run("one invalid record aborts the whole batch", func(t *testing.T) {
		service, _ := newTestService(t)
		people := []*models.Person{
			models.NewPerson("John Doe"),
			models.NewPerson("1nvalid"),
		}

		_, err := service.CreateMany(context.Background(), people)

		assert.Error(t, err)
	})

	t.Run("valid batch is persisted", func(t *testing.T) {
		service, repo := newTestService(t)
		people := []*models.Person{
			models.NewPerson("John Doe"),
			models.NewPerson("Jane Smith"),
		}
		repo.On("InsertMany", mock.Anything, people).Return(people, nil)

		created, err := service.CreateMany(context.Background(), people)

		require.NoError(t, err)
		assert.Len(t, created, 2)
	})
}

func TestPersonService_FindByID(t *testing.T) {
	t.Run("nonexistent ID returns nil without error", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.On("FindByID", mock.Anything, "64b0c0c0c0c0c0c0c0c0c0c0").Return(nil, nil)

		person, err := service.FindByID(context.Background(), "64b0c0c0c0c0c0c0c0c0c0c0")

		require.NoError(t, err)
		assert.Nil(t, person)
	})

	t.Run("empty ID is rejected locally", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.FindByID(context.Background(), "")

		assert.Error(t, err)
	})
}

func TestPersonService_UpdatePerson(t *testing.T) {
	t.Run("missing record fails", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.On("FindByID", mock.Anything, "64b0c0c0c0c0c0c0c0c0c0c0").Return(nil, nil)

		_, err := service.UpdatePerson(context.Background(), "64b0c0c0c0c0c0c0c0c0c0c0", models.PersonPatch{})

		assert.Error(t, err)
	})

	t.Run("merges scalars and appends foods", func(t *testing.T) {
		service, repo := newTestService(t)
		stored := models.NewPerson("John Doe").WithAge(30).WithFoods("pizza", "pasta")
		stored.ID = primitive.NewObjectID()
		repo.On("FindByID", mock.Anything, stored.ID.Hex()).Return(stored, nil)
		repo.On("Replace", mock.Anything, stored).Return(nil)

		newAge := 31
		updated, err := service.UpdatePerson(context.Background(), stored.ID.Hex(), models.PersonPatch{
			Age:      &newAge,
			AddFoods: []string{"hamburger"},
		})

		require.NoError(t, err)
		assert.Equal(t, 31, *updated.Age)
		assert.Equal(t, []string{"pizza", "pasta", "hamburger"}, updated.FavoriteFoods)
	})

	t.Run("patch producing an invalid record is rejected", func(t *testing.T) {
		service, repo := newTestService(t)
		stored := models.NewPerson("John Doe")
		stored.ID = primitive.NewObjectID()
		repo.On("FindByID", mock.Anything, stored.ID.Hex()).Return(stored, nil)

		badName := "x"
		_, err := service.UpdatePerson(context.Background(), stored.ID.Hex(), models.PersonPatch{Name: &badName})

		assert.Error(t, err)
	})
}

func TestPersonService_AddFavoriteFood(t *testing.T) {
	t.Run("appends a new food via read-modify-write", func(t *testing.T) {
		service, repo := newTestService(t)
		stored := models.NewPerson("John Doe").WithAge(30).WithFoods("pizza", "pasta")
		stored.ID = primitive.NewObjectID()
		repo.On("FindByID", mock.Anything, stored.ID.Hex()).Return(stored, nil)
		repo.On("Replace", mock.Anything, stored).Return(nil)

		updated, err := service.AddFavoriteFood(context.Background(), stored.ID.Hex(), "hamburger")

		require.NoError(t, err)
		assert.Equal(t, []string{"pizza", "pasta", "hamburger"}, updated.FavoriteFoods)
	})

	t.Run("appending a food already present does not duplicate it", func(t *testing.T) {
		service, repo := newTestService(t)
		stored := models.NewPerson("John Doe").WithFoods("pizza", "pasta")
		stored.ID = primitive.NewObjectID()
		repo.On("FindByID", mock.Anything, stored.ID.Hex()).Return(stored, nil)
		repo.On("Replace", mock.Anything, stored).Return(nil)

		updated, err := service.AddFavoriteFood(context.Background(), stored.ID.Hex(), "pizza")

		require.NoError(t, err)
		assert.Equal(t, []string{"pizza", "pasta"}, updated.FavoriteFoods)
	})

	t.Run("empty food is rejected locally", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.AddFavoriteFood(context.Background(), "64b0c0c0c0c0c0c0c0c0c0c0", "  ")

		assert.Error(t, err)
	})
}

func TestPersonService_SetAgeByName(t *testing.T) {
	t.Run("age out of range is rejected locally", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.SetAgeByName(context.Background(), "John Doe", 121)

		assert.Error(t, err)
	})

	t.Run("no match returns nil without error", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.On("SetAgeByName", mock.Anything, "Nobody Here", 30).Return(nil, nil)

		person, err := service.SetAgeByName(context.Background(), "Nobody Here", 30)

		require.NoError(t, err)
		assert.Nil(t, person)
	})
}

func TestPersonService_DeleteManyByName(t *testing.T) {
	service, repo := newTestService(t)
	repo.On("DeleteByName", mock.Anything, "Mary Poppins").Return(int64(2), nil)

	count, err := service.DeleteManyByName(context.Background(), "Mary Poppins")

	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestPersonService_SearchByFood(t *testing.T) {
	t.Run("uses the fixed search limit", func(t *testing.T) {
		service, repo := newTestService(t)
		results := []models.Person{
			{Name: "Alice Johnson", FavoriteFoods: []string{"pizza"}},
			{Name: "John Doe", FavoriteFoods: []string{"pizza", "pasta"}},
		}
		repo.On("SearchByFood", mock.Anything, "pizza", int64(SearchLimit)).Return(results, nil)

		people, err := service.SearchByFood(context.Background(), "pizza")

		require.NoError(t, err)
		require.Len(t, people, 2)
		// projection leaves only name and favorites
		assert.Nil(t, people[0].Age)
		assert.Equal(t, "Alice Johnson", people[0].Name)
	})

	t.Run("empty food is rejected locally", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.SearchByFood(context.Background(), "")

		assert.Error(t, err)
	})
}

func TestPersonService_Stats(t *testing.T) {
	service, repo := newTestService(t)
	repo.On("Stats", mock.Anything).Return(&models.PersonStats{Total: 10, Active: 9, AverageAge: 37}, nil)

	stats, err := service.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.Total)
	assert.Equal(t, int64(9), stats.Active)
	assert.InDelta(t, 37.0, stats.AverageAge, 1e-9)
}

func TestPersonService_RemoveAll(t *testing.T) {
	service, repo := newTestService(t)
	repo.On("DeleteAll", mock.Anything).Return(int64(10), nil)

	count, err := service.RemoveAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(10), count)
}
