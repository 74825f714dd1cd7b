package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/haguru/persona/config"
	"github.com/haguru/persona/internal/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	DEFAULT_MAXPOOLSIZE = 20
	IDFIELD             = "_id"
)

// ErrNoDocuments is the driver's no-match sentinel, re-exported so callers
// can use errors.Is without importing the driver.
var ErrNoDocuments = mongo.ErrNoDocuments

// MongoDBClient implements the interfaces.DBClient interface for MongoDB operations.
type MongoDBClient struct {
	ServerOpts       *options.ServerAPIOptions
	client           *mongo.Client
	db               *mongo.Database
	timeout          time.Duration
	maxPoolSize      uint64
	minPoolSize      uint64
	connected        bool
	validCollections map[string]bool // A map to validate collection names
}

// NewMongoDB returns an interface for the db client and an error if it occurs.
func NewMongoDB(dbConfig *config.MongoDBConfig) (interfaces.DBClient, error) {
	maxPoolSize := dbConfig.MaxPoolSize
	if maxPoolSize == 0 {
		maxPoolSize = DEFAULT_MAXPOOLSIZE
	}

	db := &MongoDBClient{
		timeout:          dbConfig.Timeout,
		maxPoolSize:      maxPoolSize,
		minPoolSize:      dbConfig.MinPoolSize,
		ServerOpts:       config.BuildServerAPIOptions(dbConfig.Options),
		validCollections: config.ListToMap(dbConfig.ValidCollections),
	}

	return db, nil
}

// Connect establishes a connection to the MongoDB database using the provided DSN (Data Source Name).
// It initializes the MongoDB client and sets the database instance.
// The DSN should be in the format "mongodb://<host>:<port>/<database>".
// The function extracts the database name from the DSN and sets it as the active database for the client.
// A single failed attempt is terminal; no retry is performed.
func (m *MongoDBClient) Connect(ctx context.Context, dsn string) error {
	// Validate the DSN format
	if dsn == "" {
		return fmt.Errorf("MongoDBClient: DSN is empty")
	}
	if !strings.HasPrefix(dsn, "mongodb://") && !strings.HasPrefix(dsn, "mongodb+srv://") {
		return fmt.Errorf("MongoDBClient: Invalid DSN format, expected 'mongodb://' or 'mongodb+srv://'")
	}

	// Set a timeout for the connection
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}
	clientOptions := options.Client().ApplyURI(dsn)

	// Set the server API options if provided
	if m.ServerOpts != nil {
		clientOptions.SetServerAPIOptions(m.ServerOpts)
	}
	// Set the connection pool bounds
	clientOptions.SetMaxPoolSize(m.maxPoolSize)
	clientOptions.SetMinPoolSize(m.minPoolSize)

	// Set read preference to primaryPreferred
	clientOptions.SetReadPreference(readpref.PrimaryPreferred())

	// Connect to the MongoDB server
	var err error
	m.client, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		return err
	}

	// Check if the connection is successful by pinging the server
	if err = m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("MongoDBClient: Failed to connect to MongoDB server: %v", err)
	}

	// Extract the database name from the DSN
	databaseName, err := getDBNameFromMongoDSN(dsn)
	if err != nil {
		return fmt.Errorf("MongoDBClient: Failed to extract database name from datasource name(dsn): %v", err)
	}

	m.db = m.client.Database(databaseName)
	m.connected = true
	return nil
}

// Disconnect closes the connection to the MongoDB database.
// It checks if the client is not nil before attempting to disconnect.
func (m *MongoDBClient) Disconnect(ctx context.Context) error {
	if m.client != nil {
		m.connected = false
		return m.client.Disconnect(ctx)
	}

	return nil
}

// Connected reports whether a connection is currently established.
func (m *MongoDBClient) Connected() bool {
	return m.connected
}

// Ping verifies the MongoDB connection health using a ping command.
func (m *MongoDBClient) Ping(ctx context.Context) error {
	if m.client == nil {
		return fmt.Errorf("MongoDBClient is not connected to a database")
	}
	return m.client.Ping(ctx, nil)
}

// InsertOne inserts a document and returns its ID.
func (m *MongoDBClient) InsertOne(ctx context.Context, collectionName string, document interfaces.Document) (interface{}, error) {
	collection, err := m.collection(collectionName)
	if err != nil {
		return nil, err
	}

	res, err := collection.InsertOne(ctx, document)
	if err != nil {
		return nil, fmt.Errorf("MongoDBClient: Failed to insert one into %s: %w", collectionName, err)
	}

	return res.InsertedID, nil
}

// InsertMany inserts documents in order and returns their IDs. The operation
// is ordered: the first failure aborts the rest of the batch.
func (m *MongoDBClient) InsertMany(ctx context.Context, collectionName string, documents []interfaces.Document) ([]interface{}, error) {
	collection, err := m.collection(collectionName)
	if err != nil {
		return nil, err
	}

	docs := make([]interface{}, 0, len(documents))
	for _, document := range documents {
		docs = append(docs, document)
	}

	opts := options.InsertMany().SetOrdered(true)
	res, err := collection.InsertMany(ctx, docs, opts)
	if err != nil {
		return nil, fmt.Errorf("MongoDBClient: Failed to insert many into %s: %w", collectionName, err)
	}

	return res.InsertedIDs, nil
}

// FindOne retrieves a single document from the specified collection using a filter.
// It decodes the result into the provided variable. When no document matches,
// the returned error wraps ErrNoDocuments.
func (m *MongoDBClient) FindOne(ctx context.Context, collectionName string, filter interfaces.Document, result interfaces.Document) error {
	collection, err := m.collection(collectionName)
	if err != nil {
		return err
	}

	err = collection.FindOne(ctx, filter).Decode(result)
	if err != nil {
		return fmt.Errorf("MongoDBClient: Failed to find one in %s: %w", collectionName, err)
	}

	return nil
}

// FindMany retrieves multiple documents from the specified collection,
// honoring the sort, limit and projection options, and decodes them into
// 'results' (a pointer to a slice).
func (m *MongoDBClient) FindMany(ctx context.Context, collectionName string, filter interfaces.Document, findOpts *interfaces.FindOptions, results interfaces.Document) error {
	collection, err := m.collection(collectionName)
	if err != nil {
		return err
	}

	opts := buildFindOptions(findOpts)
	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("MongoDBClient: Finding many in %s failed: %w", collectionName, err)
	}

	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("MongoDBClient: Failed to decode cursor for %s: %w", collectionName, err)
	}

	return nil
}

// ReplaceOne replaces the single document matching the filter.
// Returns the count of matched documents and an error if the operation fails.
func (m *MongoDBClient) ReplaceOne(ctx context.Context, collectionName string, filter interfaces.Document, replacement interfaces.Document) (int64, error) {
	collection, err := m.collection(collectionName)
	if err != nil {
		return 0, err
	}

	res, err := collection.ReplaceOne(ctx, filter, replacement)
	if err != nil {
		return 0, fmt.Errorf("MongoDBClient: Failed replacing one in %s: %w", collectionName, err)
	}

	return res.MatchedCount, nil
}

// FindOneAndUpdate atomically applies the update to the first matching
// document and decodes the post-update document into 'result'. When no
// document matches, the returned error wraps ErrNoDocuments.
func (m *MongoDBClient) FindOneAndUpdate(ctx context.Context, collectionName string, filter interfaces.Document, update interfaces.Document, result interfaces.Document) error {
	collection, err := m.collection(collectionName)
	if err != nil {
		return err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(result)
	if err != nil {
		return fmt.Errorf("MongoDBClient: Failed find-and-update in %s: %w", collectionName, err)
	}

	return nil
}

// FindOneAndDelete atomically removes the first matching document and decodes
// the removed document into 'result'. When no document matches, the returned
// error wraps ErrNoDocuments.
func (m *MongoDBClient) FindOneAndDelete(ctx context.Context, collectionName string, filter interfaces.Document, result interfaces.Document) error {
	collection, err := m.collection(collectionName)
	if err != nil {
		return err
	}

	err = collection.FindOneAndDelete(ctx, filter).Decode(result)
	if err != nil {
		return fmt.Errorf("MongoDBClient: Failed find-and-delete in %s: %w", collectionName, err)
	}

	return nil
}

// DeleteMany removes multiple documents from a collection using a filter.
// Returns the count of deleted documents and an error if the operation fails.
func (m *MongoDBClient) DeleteMany(ctx context.Context, collectionName string, filter interfaces.Document) (int64, error) {
	collection, err := m.collection(collectionName)
	if err != nil {
		return 0, err
	}

	res, err := collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("MongoDBClient: Failed deleting many from %s: %w", collectionName, err)
	}

	return res.DeletedCount, nil
}

// CountDocuments counts the documents matching the filter.
func (m *MongoDBClient) CountDocuments(ctx context.Context, collectionName string, filter interfaces.Document) (int64, error) {
	collection, err := m.collection(collectionName)
	if err != nil {
		return 0, err
	}

	count, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("MongoDBClient: Failed counting documents in %s: %w", collectionName, err)
	}

	return count, nil
}

// Aggregate runs an aggregation pipeline and decodes the resulting documents
// into 'results' (a pointer to a slice).
func (m *MongoDBClient) Aggregate(ctx context.Context, collectionName string, pipeline []interfaces.Document, results interfaces.Document) error {
	collection, err := m.collection(collectionName)
	if err != nil {
		return err
	}

	stages := make(mongo.Pipeline, 0, len(pipeline))
	for _, stage := range pipeline {
		doc, err := toBSONDocument(stage)
		if err != nil {
			return fmt.Errorf("MongoDBClient: Invalid aggregation stage for %s: %w", collectionName, err)
		}
		stages = append(stages, doc)
	}

	cursor, err := collection.Aggregate(ctx, stages)
	if err != nil {
		return fmt.Errorf("MongoDBClient: Aggregation in %s failed: %w", collectionName, err)
	}

	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("MongoDBClient: Failed to decode aggregation cursor for %s: %w", collectionName, err)
	}

	return nil
}

// EnsureSchema creates the required index on the specified collection using the provided mongo.IndexModel.
// If the collection does not exist, it will be created automatically.
// This is MongoDB-specific and not part of the generic DBClient.
func (m *MongoDBClient) EnsureSchema(ctx context.Context, collectionName string, schema interfaces.Document) error {
	// verify m.db is not nil
	if m.db == nil {
		return fmt.Errorf("MongoDBClient is not connected to a database")
	}

	if schema == nil {
		return fmt.Errorf("EnsureSchema expects schema to be a mongo.IndexModel")
	}

	// Type assertion to mongo.IndexModel
	model, ok := schema.(mongo.IndexModel)
	if !ok {
		return fmt.Errorf("EnsureSchema: expected mongo.IndexModel for MongoDB")
	}
	// Create the index on the specified collection
	collection := m.db.Collection(collectionName)
	_, err := collection.Indexes().CreateOne(ctx, model)
	return err
}

// collection validates the collection name and returns a handle to it.
func (m *MongoDBClient) collection(collectionName string) (*mongo.Collection, error) {
	if m.db == nil {
		return nil, fmt.Errorf("MongoDBClient is not connected to a database")
	}

	if collectionName == "" {
		return nil, fmt.Errorf("MongoDBClient: Collection name cannot be empty")
	}

	if !m.validCollections[collectionName] {
		return nil, fmt.Errorf("MongoDBClient: Invalid collection name: %s", collectionName)
	}

	return m.db.Collection(collectionName), nil
}

// buildFindOptions translates the generic find options into driver options.
// Sort maps are single-field in practice; multi-field order is unspecified.
func buildFindOptions(findOpts *interfaces.FindOptions) *options.FindOptions {
	opts := options.Find()
	if findOpts == nil {
		return opts
	}

	if len(findOpts.Sort) > 0 {
		sort := bson.D{}
		for field, direction := range findOpts.Sort {
			sort = append(sort, bson.E{Key: field, Value: direction})
		}
		opts.SetSort(sort)
	}
	if findOpts.Limit > 0 {
		opts.SetLimit(findOpts.Limit)
	}
	if len(findOpts.Projection) > 0 {
		projection := bson.D{}
		for field, include := range findOpts.Projection {
			projection = append(projection, bson.E{Key: field, Value: include})
		}
		opts.SetProjection(projection)
	}

	return opts
}

// toBSONDocument converts a generic stage document into bson.D.
func toBSONDocument(stage interfaces.Document) (bson.D, error) {
	switch doc := stage.(type) {
	case bson.D:
		return doc, nil
	case bson.M:
		d := bson.D{}
		for key, value := range doc {
			d = append(d, bson.E{Key: key, Value: value})
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unsupported stage type %T", stage)
	}
}

// getDBNameFromMongoDSN extracts the database name from a MongoDB DSN.
func getDBNameFromMongoDSN(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("failed to parse MongoDB DSN: %w", err)
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("no database name found in MongoDB DSN path: %s", dsn)
	}

	// If the path contains additional segments (e.g., /db/collection), use only the first as the database name.
	// For most cases, the path is just the database name.
	if idx := strings.Index(dbName, "/"); idx != -1 {
		dbName = dbName[:idx]
	}

	return dbName, nil
}
