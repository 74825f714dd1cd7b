// Code generated by mockery. Edited by hand to track interface changes.
package mocks

import (
	"context"

	"github.com/haguru/persona/internal/interfaces"
	"github.com/stretchr/testify/mock"
)

// MockDBClient is a mock implementation of interfaces.DBClient.
type MockDBClient struct {
	mock.Mock
}

func NewMockDBClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDBClient {
	m := &MockDBClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDBClient) Connect(ctx context.Context, dsn string) error {
	args := m.Called(ctx, dsn)
	return args.Error(0)
}

func (m *MockDBClient) Disconnect(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBClient) Connected() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockDBClient) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBClient) InsertOne(ctx context.Context, collectionName string, document interfaces.Document) (interface{}, error) {
	args := m.Called(ctx, collectionName, document)
	return args.Get(0), args.Error(1)
}

func (m *MockDBClient) InsertMany(ctx context.Context, collectionName string, documents []interfaces.Document) ([]interface{}, error) {
	args := m.Called(ctx, collectionName, documents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]interface{}), args.Error(1)
}

func (m *MockDBClient) FindOne(ctx context.Context, collectionName string, filter interfaces.Document, result interfaces.Document) error {
	args := m.Called(ctx, collectionName, filter, result)
	return args.Error(0)
}

func (m *MockDBClient) FindMany(ctx context.Context, collectionName string, filter interfaces.Document, opts *interfaces.FindOptions, results interfaces.Document) error {
	args := m.Called(ctx, collectionName, filter, opts, results)
	return args.Error(0)
}

func (m *MockDBClient) ReplaceOne(ctx context.Context, collectionName string, filter interfaces.Document, replacement interfaces.Document) (int64, error) {
	args := m.Called(ctx, collectionName, filter, replacement)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDBClient) FindOneAndUpdate(ctx context.Context, collectionName string, filter interfaces.Document, update interfaces.Document, result interfaces.Document) error {
	args := m.Called(ctx, collectionName, filter, update, result)
	return args.Error(0)
}

func (m *MockDBClient) FindOneAndDelete(ctx context.Context, collectionName string, filter interfaces.Document, result interfaces.Document) error {
	args := m.Called(ctx, collectionName, filter, result)
	return args.Error(0)
}

func (m *MockDBClient) DeleteMany(ctx context.Context, collectionName string, filter interfaces.Document) (int64, error) {
	args := m.Called(ctx, collectionName, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDBClient) CountDocuments(ctx context.Context, collectionName string, filter interfaces.Document) (int64, error) {
	args := m.Called(ctx, collectionName, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDBClient) Aggregate(ctx context.Context, collectionName string, pipeline []interfaces.Document, results interfaces.Document) error {
	args := m.Called(ctx, collectionName, pipeline, results)
	return args.Error(0)
}

func (m *MockDBClient) EnsureSchema(ctx context.Context, collectionName string, schema interfaces.Document) error {
	args := m.Called(ctx, collectionName, schema)
	return args.Error(0)
}
