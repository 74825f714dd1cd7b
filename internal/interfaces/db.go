package interfaces

import "context"

// Document is a generic interface to represent data that can be stored
// and retrieved from the database. It could be a struct, a map[string]interface{},
// or any type that can be marshaled/unmarshaled by the specific database driver.
type Document interface{}

// FindOptions narrows a multi-document query: sort order, result cap and
// field projection. A nil *FindOptions means no options.
type FindOptions struct {
	// Sort maps field names to a direction: 1 ascending, -1 descending.
	Sort map[string]int
	// Limit caps the number of returned documents; 0 means unlimited.
	Limit int64
	// Projection maps field names to inclusion (1) or exclusion (0).
	Projection map[string]int
}

// DBClient defines the interface for a generic document database client.
// It abstracts the operations the repositories need so they never touch the
// driver directly.
type DBClient interface {
	// Connect establishes a connection to the database.
	// It takes a context for cancellation and timeouts, and a DSN (Data Source Name) string.
	// Returns an error if the connection fails. A failed attempt is terminal;
	// no retry is performed.
	Connect(ctx context.Context, dsn string) error

	// Disconnect closes the database connection.
	// It is a no-op when no connection was established.
	Disconnect(ctx context.Context) error

	// Connected reports whether a connection is currently established.
	Connected() bool

	// Ping checks the health of the database connection.
	Ping(ctx context.Context) error

	// InsertOne inserts a single document into the specified collection.
	// Returns the generated ID of the inserted document and an error.
	InsertOne(ctx context.Context, collectionName string, document Document) (interface{}, error)

	// InsertMany inserts documents in order; the first failure aborts the batch.
	// Returns the generated IDs of the inserted documents and an error.
	InsertMany(ctx context.Context, collectionName string, documents []Document) ([]interface{}, error)

	// FindOne retrieves a single document matching the filter and decodes it
	// into 'result'. Returns an error wrapping the driver's no-documents error
	// when nothing matches.
	FindOne(ctx context.Context, collectionName string, filter Document, result Document) error

	// FindMany retrieves all documents matching the filter, honoring the given
	// options, and decodes them into 'results' (a pointer to a slice).
	FindMany(ctx context.Context, collectionName string, filter Document, opts *FindOptions, results Document) error

	// ReplaceOne replaces the single document matching the filter with
	// 'replacement'. Returns the count of matched documents and an error.
	ReplaceOne(ctx context.Context, collectionName string, filter Document, replacement Document) (int64, error)

	// FindOneAndUpdate atomically applies 'update' to the first document
	// matching the filter and decodes the post-update document into 'result'.
	// Returns an error wrapping the driver's no-documents error when nothing
	// matches.
	FindOneAndUpdate(ctx context.Context, collectionName string, filter Document, update Document, result Document) error

	// FindOneAndDelete atomically removes the first document matching the
	// filter and decodes the removed document into 'result'.
	FindOneAndDelete(ctx context.Context, collectionName string, filter Document, result Document) error

	// DeleteMany deletes all documents matching the filter.
	// Returns the count of deleted documents and an error.
	DeleteMany(ctx context.Context, collectionName string, filter Document) (int64, error)

	// CountDocuments counts the documents matching the filter.
	CountDocuments(ctx context.Context, collectionName string, filter Document) (int64, error)

	// Aggregate runs an aggregation pipeline and decodes the resulting
	// documents into 'results' (a pointer to a slice).
	Aggregate(ctx context.Context, collectionName string, pipeline []Document, results Document) error

	// EnsureSchema creates the required index/schema artifact on the
	// specified collection. The concrete schema type is driver-specific.
	EnsureSchema(ctx context.Context, collectionName string, schema Document) error
}
