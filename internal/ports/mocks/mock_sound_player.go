package mocks

import (
	mock "github.com/stretchr/testify/mock"
)

// MockSoundPlayer is a mock type for the SoundPlayer type
type MockSoundPlayer struct {
	mock.Mock
}

type MockSoundPlayer_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSoundPlayer) EXPECT() *MockSoundPlayer_Expecter {
	return &MockSoundPlayer_Expecter{mock: &_m.Mock}
}

// PlaySound provides a mock function with no fields
func (_m *MockSoundPlayer) PlaySound() error {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for PlaySound")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockSoundPlayer_PlaySound_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'PlaySound'
type MockSoundPlayer_PlaySound_Call struct {
	*mock.Call
}

// PlaySound is a helper method to define mock.On call
func (_e *MockSoundPlayer_Expecter) PlaySound() *MockSoundPlayer_PlaySound_Call {
	return &MockSoundPlayer_PlaySound_Call{Call: _e.mock.On("PlaySound")}
}

func (_c *MockSoundPlayer_PlaySound_Call) Run(run func()) *MockSoundPlayer_PlaySound_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockSoundPlayer_PlaySound_Call) Return(_a0 error) *MockSoundPlayer_PlaySound_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockSoundPlayer_PlaySound_Call) RunAndReturn(run func() error) *MockSoundPlayer_PlaySound_Call {
	_c.Call.Return(run)
	return _c
}

// PlaySoundForEvent provides a mock function with given fields: eventType
func (_m *MockSoundPlayer) PlaySoundForEvent(eventType string) error {
	ret := _m.Called(eventType)

	if len(ret) == 0 {
		panic("no return value specified for PlaySoundForEvent")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(string) error); ok {
		r0 = rf(eventType)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockSoundPlayer_PlaySoundForEvent_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'PlaySoundForEvent'
type MockSoundPlayer_PlaySoundForEvent_Call struct {
	*mock.Call
}

// PlaySoundForEvent is a helper method to define mock.On call
func (_e *MockSoundPlayer_Expecter) PlaySoundForEvent(eventType interface{}) *MockSoundPlayer_PlaySoundForEvent_Call {
	return &MockSoundPlayer_PlaySoundForEvent_Call{Call: _e.mock.On("PlaySoundForEvent", eventType)}
}

func (_c *MockSoundPlayer_PlaySoundForEvent_Call) Run(run func(eventType string)) *MockSoundPlayer_PlaySoundForEvent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockSoundPlayer_PlaySoundForEvent_Call) Return(_a0 error) *MockSoundPlayer_PlaySoundForEvent_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockSoundPlayer_PlaySoundForEvent_Call) RunAndReturn(run func(string) error) *MockSoundPlayer_PlaySoundForEvent_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockSoundPlayer creates a new instance of MockSoundPlayer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockSoundPlayer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSoundPlayer {
	m := &MockSoundPlayer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
