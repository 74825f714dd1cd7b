package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	structValidator "github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// Field constraints for a Person record.
	MinNameLength = 2
	MaxNameLength = 100
	MinAge        = 0
	MaxAge        = 120
	MinFoodLength = 2
	MaxFoodLength = 50
	MaxFoods      = 20
)

var nameRegexp = regexp.MustCompile(`^[A-Za-z ]+$`)

// validate is the shared Person validator with the alphaspace rule installed.
var validate = newPersonValidator()

func newPersonValidator() *structValidator.Validate {
	v := structValidator.New()
	// name allows letters and spaces only
	_ = v.RegisterValidation("alphaspace", func(fl structValidator.FieldLevel) bool {
		return nameRegexp.MatchString(fl.Field().String())
	})
	return v
}

// Person represents one person record as stored in the database.
// Age and Email are pointers so that an absent value is distinguishable from a
// zero value; email uniqueness is enforced by a sparse unique index so nil
// emails never collide.
type Person struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" mapstructure:"_id"`
	Name          string             `bson:"name" mapstructure:"name" validate:"required,alphaspace,min=2,max=100"`
	Age           *int               `bson:"age,omitempty" mapstructure:"age" validate:"omitempty,gte=0,lte=120"`
	FavoriteFoods []string           `bson:"favoriteFoods" mapstructure:"favoriteFoods" validate:"max=20,dive,min=2,max=50"`
	Email         *string            `bson:"email,omitempty" mapstructure:"email" validate:"omitempty,email"`
	CreatedAt     time.Time          `bson:"createdAt" mapstructure:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" mapstructure:"updatedAt"`
	IsActive      bool               `bson:"isActive" mapstructure:"isActive"`
}

// NewPerson creates a Person with the schema defaults applied: empty food
// list, active, no timestamps yet (the repository stamps those on insert).
func NewPerson(name string) *Person {
	return &Person{
		Name:          name,
		FavoriteFoods: []string{},
		IsActive:      true,
	}
}

// WithAge sets the optional age and returns the person for chaining.
func (p *Person) WithAge(age int) *Person {
	p.Age = &age
	return p
}

// WithEmail sets the optional email and returns the person for chaining.
func (p *Person) WithEmail(email string) *Person {
	p.Email = &email
	return p
}

// WithFoods sets the favorite foods list and returns the person for chaining.
func (p *Person) WithFoods(foods ...string) *Person {
	p.FavoriteFoods = foods
	return p
}

// Normalize applies the schema's canonical form in place: the name and each
// food entry are trimmed, the email is trimmed and lowercased.
func (p *Person) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	for i, food := range p.FavoriteFoods {
		p.FavoriteFoods[i] = strings.TrimSpace(food)
	}
	if p.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*p.Email))
		p.Email = &email
	}
}

// Validate normalizes the person and checks every field constraint.
// It returns the first violation found.
func (p *Person) Validate() error {
	p.Normalize()
	if err := validate.Struct(p); err != nil {
		errs, ok := err.(structValidator.ValidationErrors)
		if !ok {
			return fmt.Errorf("person validation failed: %w", err)
		}
		return fmt.Errorf("person validation failed: %s", errs)
	}
	return nil
}

// HasFood reports whether the given food is already in the favorites list.
func (p *Person) HasFood(food string) bool {
	for _, f := range p.FavoriteFoods {
		if f == food {
			return true
		}
	}
	return false
}

// AppendFood adds a food to the favorites list unless it is already present.
// It reports whether the list changed.
func (p *Person) AppendFood(food string) bool {
	food = strings.TrimSpace(food)
	if p.HasFood(food) {
		return false
	}
	p.FavoriteFoods = append(p.FavoriteFoods, food)
	return true
}

// PersonPatch carries the fields a read-modify-write update may change.
// Nil pointers mean "leave as is"; AddFoods entries are appended to the
// favorites list, skipping duplicates.
type PersonPatch struct {
	Name     *string
	Age      *int
	Email    *string
	IsActive *bool
	AddFoods []string
}

// Apply merges the patch into the person. It reports whether anything changed.
func (patch *PersonPatch) Apply(p *Person) bool {
	changed := false
	if patch.Name != nil && *patch.Name != p.Name {
		p.Name = *patch.Name
		changed = true
	}
	if patch.Age != nil {
		if p.Age == nil || *p.Age != *patch.Age {
			age := *patch.Age
			p.Age = &age
			changed = true
		}
	}
	if patch.Email != nil {
		if p.Email == nil || *p.Email != *patch.Email {
			email := *patch.Email
			p.Email = &email
			changed = true
		}
	}
	if patch.IsActive != nil && *patch.IsActive != p.IsActive {
		p.IsActive = *patch.IsActive
		changed = true
	}
	for _, food := range patch.AddFoods {
		if p.AppendFood(food) {
			changed = true
		}
	}
	return changed
}

// PersonStats summarizes the collection: total records, active records and
// the average age over records that have an age.
type PersonStats struct {
	Total      int64   `mapstructure:"total"`
	Active     int64   `mapstructure:"active"`
	AverageAge float64 `mapstructure:"averageAge"`
}
