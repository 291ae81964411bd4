package mocks

import (
	mock "github.com/stretchr/testify/mock"

	"github.com/renato0307/inboxsim/internal/domain"
)

// MockEventLogger is a mock type for the EventLogger type
type MockEventLogger struct {
	mock.Mock
}

type MockEventLogger_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventLogger) EXPECT() *MockEventLogger_Expecter {
	return &MockEventLogger_Expecter{mock: &_m.Mock}
}

// Append provides a mock function with given fields: event
func (_m *MockEventLogger) Append(event domain.LogEvent) error {
	ret := _m.Called(event)

	if len(ret) == 0 {
		panic("no return value specified for Append")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(domain.LogEvent) error); ok {
		r0 = rf(event)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockEventLogger_Append_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Append'
type MockEventLogger_Append_Call struct {
	*mock.Call
}

// Append is a helper method to define mock.On call
func (_e *MockEventLogger_Expecter) Append(event interface{}) *MockEventLogger_Append_Call {
	return &MockEventLogger_Append_Call{Call: _e.mock.On("Append", event)}
}

func (_c *MockEventLogger_Append_Call) Run(run func(event domain.LogEvent)) *MockEventLogger_Append_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(domain.LogEvent))
	})
	return _c
}

func (_c *MockEventLogger_Append_Call) Return(_a0 error) *MockEventLogger_Append_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockEventLogger_Append_Call) RunAndReturn(run func(domain.LogEvent) error) *MockEventLogger_Append_Call {
	_c.Call.Return(run)
	return _c
}

// Close provides a mock function with no fields
func (_m *MockEventLogger) Close() error {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Close")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockEventLogger_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type MockEventLogger_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *MockEventLogger_Expecter) Close() *MockEventLogger_Close_Call {
	return &MockEventLogger_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockEventLogger_Close_Call) Run(run func()) *MockEventLogger_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockEventLogger_Close_Call) Return(_a0 error) *MockEventLogger_Close_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockEventLogger_Close_Call) RunAndReturn(run func() error) *MockEventLogger_Close_Call {
	_c.Call.Return(run)
	return _c
}

// Path provides a mock function with no fields
func (_m *MockEventLogger) Path() string {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Path")
	}

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// MockEventLogger_Path_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Path'
type MockEventLogger_Path_Call struct {
	*mock.Call
}

// Path is a helper method to define mock.On call
func (_e *MockEventLogger_Expecter) Path() *MockEventLogger_Path_Call {
	return &MockEventLogger_Path_Call{Call: _e.mock.On("Path")}
}

func (_c *MockEventLogger_Path_Call) Run(run func()) *MockEventLogger_Path_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockEventLogger_Path_Call) Return(_a0 string) *MockEventLogger_Path_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockEventLogger_Path_Call) RunAndReturn(run func() string) *MockEventLogger_Path_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockEventLogger creates a new instance of MockEventLogger. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockEventLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventLogger {
	m := &MockEventLogger{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
