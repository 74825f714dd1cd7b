// Code generated by mockery. Edited by hand to track interface changes.
package mocks

import (
	"context"

	"github.com/haguru/persona/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockPersonRepository is a mock implementation of interfaces.PersonRepository.
type MockPersonRepository struct {
	mock.Mock
}

func NewMockPersonRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPersonRepository {
	m := &MockPersonRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPersonRepository) Insert(ctx context.Context, person *models.Person) (*models.Person, error) {
	args := m.Called(ctx, person)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonRepository) InsertMany(ctx context.Context, people []*models.Person) ([]*models.Person, error) {
	args := m.Called(ctx, people)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Person), args.Error(1)
}

func (m *MockPersonRepository) FindByName(ctx context.Context, name string) ([]models.Person, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Person), args.Error(1)
}

func (m *MockPersonRepository) FindOneByFood(ctx context.Context, food string) (*models.Person, error) {
	args := m.Called(ctx, food)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonRepository) FindByID(ctx context.Context, id string) (*models.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonRepository) Replace(ctx context.Context, person *models.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockPersonRepository) SetAgeByName(ctx context.Context, name string, age int) (*models.Person, error) {
	args := m.Called(ctx, name, age)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonRepository) DeleteByID(ctx context.Context, id string) (*models.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPersonRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPersonRepository) SearchByFood(ctx context.Context, food string, limit int64) ([]models.Person, error) {
	args := m.Called(ctx, food, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Person), args.Error(1)
}

func (m *MockPersonRepository) Stats(ctx context.Context) (*models.PersonStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PersonStats), args.Error(1)
}

func (m *MockPersonRepository) EnsureIndices(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPersonRepository) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
