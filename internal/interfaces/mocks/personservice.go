// Code generated by mockery. Edited by hand to track interface changes.
package mocks

import (
	"context"

	"github.com/haguru/persona/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockPersonService is a mock implementation of interfaces.PersonService.
type MockPersonService struct {
	mock.Mock
}

func NewMockPersonService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPersonService {
	m := &MockPersonService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPersonService) CreatePerson(ctx context.Context, person *models.Person) (*models.Person, error) {
	args := m.Called(ctx, person)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonService) CreateMany(ctx context.Context, people []*models.Person) ([]*models.Person, error) {
	args := m.Called(ctx, people)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Person), args.Error(1)
}

func (m *MockPersonService) FindByName(ctx context.Context, name string) ([]models.Person, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Person), args.Error(1)
}

func (m *MockPersonService) FindOneByFood(ctx context.Context, food string) (*models.Person, error) {
	args := m.Called(ctx, food)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonService) FindByID(ctx context.Context, id string) (*models.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonService) UpdatePerson(ctx context.Context, id string, patch models.PersonPatch) (*models.Person, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonService) AddFavoriteFood(ctx context.Context, id string, food string) (*models.Person, error) {
	args := m.Called(ctx, id, food)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonService) SetAgeByName(ctx context.Context, name string, age int) (*models.Person, error) {
	args := m.Called(ctx, name, age)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonService) DeleteByID(ctx context.Context, id string) (*models.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPersonService) DeleteManyByName(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPersonService) SearchByFood(ctx context.Context, food string) ([]models.Person, error) {
	args := m.Called(ctx, food)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Person), args.Error(1)
}

func (m *MockPersonService) Stats(ctx context.Context) (*models.PersonStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PersonStats), args.Error(1)
}

func (m *MockPersonService) RemoveAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
