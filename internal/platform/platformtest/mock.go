// Package platformtest provides a testify mock of platform.Shell.
package platformtest

import (
	"github.com/stretchr/testify/mock"
)

// MockShell is a mock implementation of platform.Shell
type MockShell struct {
	mock.Mock
}

// DocumentsDir mocks the DocumentsDir method
func (m *MockShell) DocumentsDir() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// OpenFolder mocks the OpenFolder method
func (m *MockShell) OpenFolder(path string) error {
	return m.Called(path).Error(0)
}

// RevealFile mocks the RevealFile method
func (m *MockShell) RevealFile(path string) error {
	return m.Called(path).Error(0)
}

// NewMockShell creates a mock whose documents directory is dir
func NewMockShell(dir string) *MockShell {
	m := new(MockShell)
	m.On("DocumentsDir").Return(dir, nil).Maybe()
	return m
}
