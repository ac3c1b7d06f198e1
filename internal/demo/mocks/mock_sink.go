package mocks

import (
	"github.com/stretchr/testify/mock"
)

type MockSink struct {
	mock.Mock
}

func (m *MockSink) Printf(format string, args ...any) {
	callArgs := make([]any, 0, len(args)+1)
	callArgs = append(callArgs, format)
	callArgs = append(callArgs, args...)
	m.Called(callArgs...)
}
