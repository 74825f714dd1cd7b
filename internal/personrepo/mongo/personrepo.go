package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/haguru/persona/internal/interfaces"
	"github.com/haguru/persona/internal/models"
	"github.com/haguru/persona/internal/personrepo/constants"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/go-viper/mapstructure/v2"
	mongosdk "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when an operation requires a record that does
	// not exist.
	ErrNotFound = errors.New("person not found")
	// ErrDuplicateEmail is returned when an insert collides with the unique
	// sparse email index.
	ErrDuplicateEmail = errors.New("email already exists")
)

// MongoPersonRepository implements PersonRepository using the generic DBClient.
type MongoPersonRepository struct {
	dbClient interfaces.DBClient
	now      func() time.Time
}

// NewMongoPersonRepository creates a new MongoDB repository instance.
func NewMongoPersonRepository(dbClient interfaces.DBClient) (interfaces.PersonRepository, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	return &MongoPersonRepository{
		dbClient: dbClient,
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

// Insert saves a new person, stamping its ID and created/updated timestamps.
func (r *MongoPersonRepository) Insert(ctx context.Context, person *models.Person) (*models.Person, error) {
	r.stampForInsert(person)

	insertedID, err := r.dbClient.InsertOne(ctx, constants.PeopleCollection, person)
	if err != nil {
		if isDuplicateKeyErr(err) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateEmail, err)
		}
		return nil, fmt.Errorf("failed to insert person: %w", err)
	}

	objID, ok := insertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("failed to assert inserted ID to ObjectID")
	}
	person.ID = objID
	return person, nil
}

// InsertMany saves people in order; the first failure aborts the batch.
func (r *MongoPersonRepository) InsertMany(ctx context.Context, people []*models.Person) ([]*models.Person, error) {
	documents := make([]interfaces.Document, 0, len(people))
	for _, person := range people {
		r.stampForInsert(person)
		documents = append(documents, person)
	}

	insertedIDs, err := r.dbClient.InsertMany(ctx, constants.PeopleCollection, documents)
	if err != nil {
		if isDuplicateKeyErr(err) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateEmail, err)
		}
		return nil, fmt.Errorf("failed to insert people: %w", err)
	}

	for i, insertedID := range insertedIDs {
		if i >= len(people) {
			break
		}
		if objID, ok := insertedID.(primitive.ObjectID); ok {
			people[i].ID = objID
		}
	}
	return people, nil
}

// FindByName retrieves every person whose name matches exactly.
func (r *MongoPersonRepository) FindByName(ctx context.Context, name string) ([]models.Person, error) {
	filter := bson.M{constants.FieldName: name}

	var people []models.Person
	if err := r.dbClient.FindMany(ctx, constants.PeopleCollection, filter, nil, &people); err != nil {
		return nil, fmt.Errorf("failed to find people by name: %w", err)
	}
	return people, nil
}

// FindOneByFood retrieves the first person whose favorites contain the food.
// A miss is not an error; it returns nil.
func (r *MongoPersonRepository) FindOneByFood(ctx context.Context, food string) (*models.Person, error) {
	filter := bson.M{constants.FieldFoods: food}

	var person models.Person
	err := r.dbClient.FindOne(ctx, constants.PeopleCollection, filter, &person)
	if err != nil {
		if errors.Is(err, mongosdk.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find person by food: %w", err)
	}
	return &person, nil
}

// FindByID retrieves the person with the given hex ID. A nonexistent ID is
// not an error; it returns nil.
func (r *MongoPersonRepository) FindByID(ctx context.Context, id string) (*models.Person, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid person ID %q: %w", id, err)
	}

	filter := bson.M{constants.FieldID: objID}

	var person models.Person
	err = r.dbClient.FindOne(ctx, constants.PeopleCollection, filter, &person)
	if err != nil {
		if errors.Is(err, mongosdk.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find person by ID: %w", err)
	}
	return &person, nil
}

// Replace overwrites the stored person matching the given person's ID and
// refreshes its updatedAt timestamp. There is no version check; a concurrent
// replace between a caller's read and this write wins silently.
func (r *MongoPersonRepository) Replace(ctx context.Context, person *models.Person) error {
	if person.ID.IsZero() {
		return fmt.Errorf("person ID is required for replace")
	}
	person.UpdatedAt = r.now()

	filter := bson.M{constants.FieldID: person.ID}
	matched, err := r.dbClient.ReplaceOne(ctx, constants.PeopleCollection, filter, person)
	if err != nil {
		if isDuplicateKeyErr(err) {
			return fmt.Errorf("%w: %v", ErrDuplicateEmail, err)
		}
		return fmt.Errorf("failed to replace person: %w", err)
	}
	if matched == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, person.ID.Hex())
	}
	return nil
}

// SetAgeByName atomically sets the age of the first person with the given
// name and returns the post-update record. A miss returns nil, not an error.
func (r *MongoPersonRepository) SetAgeByName(ctx context.Context, name string, age int) (*models.Person, error) {
	filter := bson.M{constants.FieldName: name}
	update := bson.M{"$set": bson.M{
		constants.FieldAge:       age,
		constants.FieldUpdatedAt: r.now(),
	}}

	var person models.Person
	err := r.dbClient.FindOneAndUpdate(ctx, constants.PeopleCollection, filter, update, &person)
	if err != nil {
		if errors.Is(err, mongosdk.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to set age by name: %w", err)
	}
	return &person, nil
}

// DeleteByID removes the person with the given hex ID and returns the removed
// record. A nonexistent ID returns nil, not an error.
func (r *MongoPersonRepository) DeleteByID(ctx context.Context, id string) (*models.Person, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid person ID %q: %w", id, err)
	}

	filter := bson.M{constants.FieldID: objID}

	var person models.Person
	err = r.dbClient.FindOneAndDelete(ctx, constants.PeopleCollection, filter, &person)
	if err != nil {
		if errors.Is(err, mongosdk.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete person by ID: %w", err)
	}
	return &person, nil
}

// DeleteByName removes every person with the given name.
func (r *MongoPersonRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	filter := bson.M{constants.FieldName: name}

	count, err := r.dbClient.DeleteMany(ctx, constants.PeopleCollection, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete people by name: %w", err)
	}
	return count, nil
}

// DeleteAll clears the collection.
func (r *MongoPersonRepository) DeleteAll(ctx context.Context) (int64, error) {
	count, err := r.dbClient.DeleteMany(ctx, constants.PeopleCollection, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to clear people collection: %w", err)
	}
	return count, nil
}

// SearchByFood runs the chained query: filter by food, sort by name
// ascending, cap the result count and project down to name and favorites.
func (r *MongoPersonRepository) SearchByFood(ctx context.Context, food string, limit int64) ([]models.Person, error) {
	filter := bson.M{constants.FieldFoods: food}
	opts := &interfaces.FindOptions{
		Sort:  map[string]int{constants.FieldName: 1},
		Limit: limit,
		Projection: map[string]int{
			constants.FieldID:    0,
			constants.FieldName:  1,
			constants.FieldFoods: 1,
		},
	}

	var people []models.Person
	if err := r.dbClient.FindMany(ctx, constants.PeopleCollection, filter, opts, &people); err != nil {
		return nil, fmt.Errorf("failed to search people by food: %w", err)
	}
	return people, nil
}

// Stats aggregates the collection into a summary: total records, active
// records and the average age over records that have an age ($avg skips
// missing and null values).
func (r *MongoPersonRepository) Stats(ctx context.Context) (*models.PersonStats, error) {
	pipeline := []interfaces.Document{
		bson.D{{Key: "$group", Value: bson.M{
			constants.FieldID: nil,
			"total":           bson.M{"$sum": 1},
			"active": bson.M{"$sum": bson.M{
				"$cond": bson.A{
					bson.M{"$eq": bson.A{"$" + constants.FieldIsActive, true}},
					1,
					0,
				},
			}},
			"averageAge": bson.M{"$avg": "$" + constants.FieldAge},
		}}},
	}

	var raw []bson.M
	if err := r.dbClient.Aggregate(ctx, constants.PeopleCollection, pipeline, &raw); err != nil {
		return nil, fmt.Errorf("failed to aggregate people stats: %w", err)
	}

	stats := &models.PersonStats{}
	if len(raw) == 0 {
		// empty collection
		return stats, nil
	}

	// $avg yields null when no record has an age
	if raw[0]["averageAge"] == nil {
		raw[0]["averageAge"] = float64(0)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           stats,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build stats decoder: %w", err)
	}
	if err := decoder.Decode(map[string]interface{}(raw[0])); err != nil {
		return nil, fmt.Errorf("failed to decode people stats: %w", err)
	}
	return stats, nil
}

// EnsureIndices creates the unique sparse index on email so only non-null
// emails must be unique.
func (r *MongoPersonRepository) EnsureIndices(ctx context.Context) error {
	indexModel := mongosdk.IndexModel{
		Keys:    bson.M{constants.FieldEmail: 1},
		Options: options.Index().SetUnique(true).SetSparse(true),
	}
	return r.dbClient.EnsureSchema(ctx, constants.PeopleCollection, indexModel)
}

// Close disconnects the underlying client.
func (r *MongoPersonRepository) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}

func (r *MongoPersonRepository) stampForInsert(person *models.Person) {
	if person.ID.IsZero() {
		person.ID = primitive.NewObjectID()
	}
	now := r.now()
	person.CreatedAt = now
	person.UpdatedAt = now
	if person.FavoriteFoods == nil {
		person.FavoriteFoods = []string{}
	}
}

// isDuplicateKeyErr recognizes the server's duplicate key violation.
func isDuplicateKeyErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "E11000 duplicate key error")
}
