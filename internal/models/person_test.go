package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerson_Validate(t *testing.T) {
	tests := []struct {
		name    string
		person  *Person
		wantErr bool
	}{
		{
			name:    "valid person",
			person:  NewPerson("John Doe").WithAge(30).WithEmail("john.doe@example.com").WithFoods("pizza", "pasta"),
			wantErr: false,
		},
		{
			name:    "valid without optional fields",
			person:  NewPerson("Jane Smith"),
			wantErr: false,
		},
		{
			name:    "name too short",
			person:  NewPerson("A"),
			wantErr: true,
		},
		{
			name:    "name with digits",
			person:  NewPerson("John Doe3"),
			wantErr: true,
		},
		{
			name:    "name with punctuation",
			person:  NewPerson("John_Doe"),
			wantErr: true,
		},
		{
			name:    "empty name",
			person:  NewPerson(""),
			wantErr: true,
		},
		{
			name:    "name too long",
			person:  NewPerson(strings.Repeat("a", 101)),
			wantErr: true,
		},
		{
			name:    "name of only whitespace",
			person:  NewPerson("   "),
			wantErr: true,
		},
		{
			name:    "age below range",
			person:  NewPerson("John Doe").WithAge(-1),
			wantErr: true,
		},
		{
			name:    "age above range",
			person:  NewPerson("John Doe").WithAge(121),
			wantErr: true,
		},
		{
			name:    "age at upper bound",
			person:  NewPerson("John Doe").WithAge(120),
			wantErr: false,
		},
		{
			name:    "too many foods",
			person:  NewPerson("John Doe").WithFoods(make([]string, 21)...),
			wantErr: true,
		},
		{
			name:    "food too short",
			person:  NewPerson("John Doe").WithFoods("a"),
			wantErr: true,
		},
		{
			name:    "food too long",
			person:  NewPerson("John Doe").WithFoods(strings.Repeat("a", 51)),
			wantErr: true,
		},
		{
			name:    "invalid email",
			person:  NewPerson("John Doe").WithEmail("not-an-email"),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.person.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPerson_Normalize(t *testing.T) {
	person := NewPerson("  John Doe  ").
		WithEmail("  John.Doe@Example.COM ").
		WithFoods(" pizza ", "pasta")

	require.NoError(t, person.Validate())

	assert.Equal(t, "John Doe", person.Name)
	assert.Equal(t, "john.doe@example.com", *person.Email)
	assert.Equal(t, []string{"pizza", "pasta"}, person.FavoriteFoods)
}

func TestPerson_AppendFood(t *testing.T) {
	person := NewPerson("John Doe").WithFoods("pizza", "pasta")

	assert.True(t, person.AppendFood("hamburger"))
	assert.Equal(t, []string{"pizza", "pasta", "hamburger"}, person.FavoriteFoods)

	// appending an existing food must not duplicate it
	assert.False(t, person.AppendFood("pizza"))
	assert.Equal(t, []string{"pizza", "pasta", "hamburger"}, person.FavoriteFoods)
}

func TestPerson_HasFood(t *testing.T) {
	person := NewPerson("John Doe").WithFoods("pizza")

	assert.True(t, person.HasFood("pizza"))
	assert.False(t, person.HasFood("sushi"))
}

func TestPersonPatch_Apply(t *testing.T) {
	person := NewPerson("John Doe").WithAge(30).WithFoods("pizza", "pasta")

	newName := "Johnny Doe"
	newAge := 31
	inactive := false
	patch := PersonPatch{
		Name:     &newName,
		Age:      &newAge,
		IsActive: &inactive,
		AddFoods: []string{"hamburger", "pizza"},
	}

	changed := patch.Apply(person)

	assert.True(t, changed)
	assert.Equal(t, "Johnny Doe", person.Name)
	assert.Equal(t, 31, *person.Age)
	assert.False(t, person.IsActive)
	assert.Equal(t, []string{"pizza", "pasta", "hamburger"}, person.FavoriteFoods)
}

func TestPersonPatch_Apply_NoChanges(t *testing.T) {
	person := NewPerson("John Doe").WithAge(30).WithFoods("pizza")

	sameAge := 30
	patch := PersonPatch{
		Age:      &sameAge,
		AddFoods: []string{"pizza"},
	}

	assert.False(t, patch.Apply(person))
	assert.Equal(t, []string{"pizza"}, person.FavoriteFoods)
}
