package personservice

const (
	// Error messages for person service operations
	ErrNilPerson         = "person cannot be nil"
	ErrEmptyBatch        = "batch cannot be empty"
	ErrInvalidPerson     = "person failed validation"
	ErrEmptyName         = "name cannot be empty"
	ErrEmptyFood         = "food cannot be empty"
	ErrEmptyID           = "person ID cannot be empty"
	ErrInvalidAge        = "age is out of range"
	ErrPersonNotFound    = "person not found"
	ErrFailedToCreate    = "failed to create person"
	ErrFailedToFind      = "failed to find people"
	ErrFailedToUpdate    = "failed to update person"
	ErrFailedToDelete    = "failed to delete people"
	ErrFailedToAggregate = "failed to aggregate people"

	// Metrics names shared with the app wiring.
	OperationRequestsTotal       = "operation_requests_total"
	OperationRequestsTotalHelp   = "Total number of service operations started"
	OperationErrorsTotal         = "operation_errors_total"
	OperationErrorsTotalHelp     = "Total number of service operations that failed"
	OperationDurationSeconds     = "operation_duration_seconds"
	OperationDurationSecondsHelp = "Duration of service operations in seconds"

	// Operation label values.
	OpCreate        = "create"
	OpCreateMany    = "create_many"
	OpFindByName    = "find_by_name"
	OpFindOneByFood = "find_one_by_food"
	OpFindByID      = "find_by_id"
	OpUpdate        = "update"
	OpAddFood       = "add_food"
	OpSetAgeByName  = "set_age_by_name"
	OpDeleteByID    = "delete_by_id"
	OpDeleteByName  = "delete_by_name"
	OpSearchByFood  = "search_by_food"
	OpStats         = "stats"
	OpRemoveAll     = "remove_all"

	// SearchLimit caps the chained food search.
	SearchLimit = 2
)

// OperationDurationSecondsBuckets matches the latency profile of single
// round-trip document operations.
var OperationDurationSecondsBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// OperationLabels is the label set for the per-operation metrics.
var OperationLabels = []string{"op"}
