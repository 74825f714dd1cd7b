package constants

const (
	// PeopleCollection is the single collection this service owns.
	PeopleCollection = "people"

	// Field names as stored in the collection.
	FieldID        = "_id"
	FieldName      = "name"
	FieldAge       = "age"
	FieldFoods     = "favoriteFoods"
	FieldEmail     = "email"
	FieldUpdatedAt = "updatedAt"
	FieldIsActive  = "isActive"
)
