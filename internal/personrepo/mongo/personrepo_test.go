package mongo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/haguru/persona/internal/interfaces"
	"github.com/haguru/persona/internal/interfaces/mocks"
	"github.com/haguru/persona/internal/models"
	"github.com/haguru/persona/internal/personrepo/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongosdk "go.mongodb.org/mongo-driver/mongo"
)

func newTestRepo(t *testing.T) (interfaces.PersonRepository, *mocks.MockDBClient) {
	dbClient := mocks.NewMockDBClient(t)
	repo, err := NewMongoPersonRepository(dbClient)
	require.NoError(t, err)
	return repo, dbClient
}

func TestNewMongoPersonRepository_NilClient(t *testing.T) {
	_, err := NewMongoPersonRepository(nil)
	assert.Error(t, err)
}

func TestMongoPersonRepository_Insert(t *testing.T) {
	t.Run("stamps ID and timestamps", func(t *testing.T) {
		repo, dbClient := newTestRepo(t)
		person := models.NewPerson("John Doe")
		objID := primitive.NewObjectID()
		dbClient.On("InsertOne", mock.Anything, constants.PeopleCollection, person).Return(objID, nil)

		created, err := repo.Insert(context.Background(), person)

		require.NoError(t, err)
		assert.Equal(t, objID, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	})

	t.Run("duplicate email surfaces as sentinel", func(t *testing.T) {
		repo, dbClient := newTestRepo(t)
		person := models.NewPerson("John Doe").WithEmail("john.doe@example.com")
		dupErr := errors.New(`write exception: write errors: [E11000 duplicate key error collection: personaDB.people index: email_1]`)
		dbClient.On("InsertOne", mock.Anything, constants.PeopleCollection, person).Return(nil, dupErr)

		_, err := repo.Insert(context.Background(), person)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})
}

func TestMongoPersonRepository_FindByID(t *testing.T) {
	t.Run("malformed hex is an error", func(t *testing.T) {
		repo, _ := newTestRepo(t)

		_, err := repo.FindByID(context.Background(), "not-a-hex-id")

		assert.Error(t, err)
	})

	t.Run("nonexistent ID returns nil without error", func(t *testing.T) {
		repo, dbClient := newTestRepo(t)
		objID := primitive.NewObjectID()
		notFound := fmt.Errorf("no match: %w", mongosdk.ErrNoDocuments)
		dbClient.On("FindOne", mock.Anything, constants.PeopleCollection,
			bson.M{constants.FieldID: objID}, mock.Anything).Return(notFound)

		person, err := repo.FindByID(context.Background(), objID.Hex())

		require.NoError(t, err)
		assert.Nil(t, person)
	})

	t.Run("decodes the matching record", func(t *testing.T) {
		repo, dbClient := newTestRepo(t)
		objID := primitive.NewObjectID()
		dbClient.On("FindOne", mock.Anything, constants.PeopleCollection,
			bson.M{constants.FieldID: objID}, mock.Anything).
			Run(func(args mock.Arguments) {
				person := args.Get(3).(*models.Person)
				person.ID = objID
				person.Name = "John Doe"
			}).Return(nil)

		person, err := repo.FindByID(context.Background(), objID.Hex())

		require.NoError(t, err)
		require.NotNil(t, person)
		assert.Equal(t, "John Doe", person.Name)
	})
}

func TestMongoPersonRepository_Replace(t *testing.T) {
	t.Run("zero ID is rejected", func(t *testing.T) {
		repo, _ := newTestRepo(t)

		err := repo.Replace(context.Background(), models.NewPerson("John Doe"))

		assert.Error(t, err)
	})

	t.Run("no match maps to not-found", func(t *testing.T) {
		repo, dbClient := newTestRepo(t)
		person := models.NewPerson("John Doe")
		person.ID = primitive.NewObjectID()
		dbClient.On("ReplaceOne", mock.Anything, constants.PeopleCollection,
			bson.M{constants.FieldID: person.ID}, person).Return(int64(0), nil)

		err := repo.Replace(context.Background(), person)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("refreshes updatedAt", func(t *testing.T) {
		repo, dbClient := newTestRepo(t)
		person := models.NewPerson("John Doe")
		person.ID = primitive.NewObjectID()
		dbClient.On("ReplaceOne", mock.Anything, constants.PeopleCollection,
			bson.M{constants.FieldID: person.ID}, person).Return(int64(1), nil)

		require.NoError(t, repo.Replace(context.Background(), person))
		assert.False(t, person.UpdatedAt.IsZero())
	})
}

func TestMongoPersonRepository_SetAgeByName(t *testing.T) {
	t.Run("no match returns nil without error", func(t *testing.T) {
		repo, dbClient := newTestRepo(t)
		notFound := fmt.Errorf("no match: %w", mongosdk.ErrNoDocuments)
		dbClient.On("FindOneAndUpdate", mock.Anything, constants.PeopleCollection,
			bson.M{constants.FieldName: "Nobody Here"}, mock.Anything, mock.Anything).Return(notFound)

		person, err := repo.SetAgeByName(context.Background(), "Nobody Here", 30)

		require.NoError(t, err)
		assert.Nil(t, person)
	})

	t.Run("returns the post-update record", func(t *testing.T) {
		repo, dbClient := newTestRepo(t)
		dbClient.On("FindOneAndUpdate", mock.Anything, constants.PeopleCollection,
			bson.M{constants.FieldName: "John Doe"}, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				person := args.Get(4).(*models.Person)
				person.Name = "John Doe"
				age := 31
				person.Age = &age
			}).Return(nil)

		person, err := repo.SetAgeByName(context.Background(), "John Doe", 31)

		require.NoError(t, err)
		require.NotNil(t, person)
		assert.Equal(t, 31, *person.Age)
	})
}

func TestMongoPersonRepository_DeleteByName(t *testing.T) {
	repo, dbClient := newTestRepo(t)
	dbClient.On("DeleteMany", mock.Anything, constants.PeopleCollection,
		bson.M{constants.FieldName: "Mary Poppins"}).Return(int64(2), nil)

	count, err := repo.DeleteByName(context.Background(), "Mary Poppins")

	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestMongoPersonRepository_SearchByFood(t *testing.T) {
	repo, dbClient := newTestRepo(t)
	wantOpts := &interfaces.FindOptions{
		Sort:  map[string]int{constants.FieldName: 1},
		Limit: 2,
		Projection: map[string]int{
			constants.FieldID:    0,
			constants.FieldName:  1,
			constants.FieldFoods: 1,
		},
	}
	dbClient.On("FindMany", mock.Anything, constants.PeopleCollection,
		bson.M{constants.FieldFoods: "pizza"}, wantOpts, mock.Anything).
		Run(func(args mock.Arguments) {
			people := args.Get(4).(*[]models.Person)
			*people = []models.Person{
				{Name: "Alice Johnson", FavoriteFoods: []string{"pizza"}},
				{Name: "John Doe", FavoriteFoods: []string{"pizza", "pasta"}},
			}
		}).Return(nil)

	people, err := repo.SearchByFood(context.Background(), "pizza", 2)

	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, "Alice Johnson", people[0].Name)
	assert.Nil(t, people[0].Age)
}

func TestMongoPersonRepository_Stats(t *testing.T) {
	t.Run("decodes the aggregation result", func(t *testing.T) {
		repo, dbClient := newTestRepo(t)
		dbClient.On("Aggregate", mock.Anything, constants.PeopleCollection, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				raw := args.Get(3).(*[]bson.M)
				*raw = []bson.M{{
					"_id":        nil,
					"total":      int32(10),
					"active":     int32(9),
					"averageAge": 37.0,
				}}
			}).Return(nil)

		stats, err := repo.Stats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(10), stats.Total)
		assert.Equal(t, int64(9), stats.Active)
		assert.InDelta(t, 37.0, stats.AverageAge, 1e-9)
	})

	t.Run("null average decodes to zero", func(t *testing.T) {
		repo, dbClient := newTestRepo(t)
		dbClient.On("Aggregate", mock.Anything, constants.PeopleCollection, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				raw := args.Get(3).(*[]bson.M)
				*raw = []bson.M{{
					"_id":        nil,
					"total":      int32(3),
					"active":     int32(3),
					"averageAge": nil,
				}}
			}).Return(nil)

		stats, err := repo.Stats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.Total)
		assert.Zero(t, stats.AverageAge)
	})

	t.Run("empty collection yields zero stats", func(t *testing.T) {
		repo, dbClient := newTestRepo(t)
		dbClient.On("Aggregate", mock.Anything, constants.PeopleCollection, mock.Anything, mock.Anything).Return(nil)

		stats, err := repo.Stats(context.Background())

		require.NoError(t, err)
		assert.Zero(t, stats.Total)
		assert.Zero(t, stats.Active)
		assert.Zero(t, stats.AverageAge)
	})
}

func TestMongoPersonRepository_EnsureIndices(t *testing.T) {
	repo, dbClient := newTestRepo(t)
	dbClient.On("EnsureSchema", mock.Anything, constants.PeopleCollection, mock.Anything).Return(nil)

	assert.NoError(t, repo.EnsureIndices(context.Background()))
}
