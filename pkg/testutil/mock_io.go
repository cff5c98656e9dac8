package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockIO is a testify mock implementing types.IO
type MockIO struct {
	mock.Mock
}

// Confirm records the call and returns the configured answer
func (m *MockIO) Confirm(question string, defaultAnswer bool) (bool, error) {
	args := m.Called(question, defaultAnswer)
	return args.Bool(0), args.Error(1)
}

// Write records the call
func (m *MockIO) Write(message string) {
	m.Called(message)
}

// WriteError records the call
func (m *MockIO) WriteError(message string) {
	m.Called(message)
}
