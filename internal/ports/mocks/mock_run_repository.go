package mocks

import (
	"context"
	"time"

	mock "github.com/stretchr/testify/mock"

	"github.com/renato0307/inboxsim/internal/domain"
)

// MockRunRepository is a mock type for the RunRepository type
type MockRunRepository struct {
	mock.Mock
}

type MockRunRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRunRepository) EXPECT() *MockRunRepository_Expecter {
	return &MockRunRepository_Expecter{mock: &_m.Mock}
}

// Close provides a mock function with no fields
func (_m *MockRunRepository) Close() error {
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

// MockRunRepository_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type MockRunRepository_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *MockRunRepository_Expecter) Close() *MockRunRepository_Close_Call {
	return &MockRunRepository_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockRunRepository_Close_Call) Run(run func()) *MockRunRepository_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRunRepository_Close_Call) Return(_a0 error) *MockRunRepository_Close_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRunRepository_Close_Call) RunAndReturn(run func() error) *MockRunRepository_Close_Call {
	_c.Call.Return(run)
	return _c
}

// Create provides a mock function with given fields: ctx, run
func (_m *MockRunRepository) Create(ctx context.Context, run domain.Run) error {
	ret := _m.Called(ctx, run)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Run) error); ok {
		r0 = rf(ctx, run)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockRunRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockRunRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
func (_e *MockRunRepository_Expecter) Create(ctx interface{}, run interface{}) *MockRunRepository_Create_Call {
	return &MockRunRepository_Create_Call{Call: _e.mock.On("Create", ctx, run)}
}

func (_c *MockRunRepository_Create_Call) Run(run func(ctx context.Context, run domain.Run)) *MockRunRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Run))
	})
	return _c
}

func (_c *MockRunRepository_Create_Call) Return(_a0 error) *MockRunRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRunRepository_Create_Call) RunAndReturn(run func(context.Context, domain.Run) error) *MockRunRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// Finish provides a mock function with given fields: ctx, id, status, at
func (_m *MockRunRepository) Finish(ctx context.Context, id string, status domain.RunStatus, at time.Time) error {
	ret := _m.Called(ctx, id, status, at)

	if len(ret) == 0 {
		panic("no return value specified for Finish")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.RunStatus, time.Time) error); ok {
		r0 = rf(ctx, id, status, at)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockRunRepository_Finish_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Finish'
type MockRunRepository_Finish_Call struct {
	*mock.Call
}

// Finish is a helper method to define mock.On call
func (_e *MockRunRepository_Expecter) Finish(ctx interface{}, id interface{}, status interface{}, at interface{}) *MockRunRepository_Finish_Call {
	return &MockRunRepository_Finish_Call{Call: _e.mock.On("Finish", ctx, id, status, at)}
}

func (_c *MockRunRepository_Finish_Call) Run(run func(ctx context.Context, id string, status domain.RunStatus, at time.Time)) *MockRunRepository_Finish_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(domain.RunStatus), args[3].(time.Time))
	})
	return _c
}

func (_c *MockRunRepository_Finish_Call) Return(_a0 error) *MockRunRepository_Finish_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRunRepository_Finish_Call) RunAndReturn(run func(context.Context, string, domain.RunStatus, time.Time) error) *MockRunRepository_Finish_Call {
	_c.Call.Return(run)
	return _c
}

// FinishSession provides a mock function with given fields: ctx, id, position, at, visible, unread
func (_m *MockRunRepository) FinishSession(ctx context.Context, id string, position int, at time.Time, visible int, unread int) error {
	ret := _m.Called(ctx, id, position, at, visible, unread)

	if len(ret) == 0 {
		panic("no return value specified for FinishSession")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int, time.Time, int, int) error); ok {
		r0 = rf(ctx, id, position, at, visible, unread)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockRunRepository_FinishSession_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FinishSession'
type MockRunRepository_FinishSession_Call struct {
	*mock.Call
}

// FinishSession is a helper method to define mock.On call
func (_e *MockRunRepository_Expecter) FinishSession(ctx interface{}, id interface{}, position interface{}, at interface{}, visible interface{}, unread interface{}) *MockRunRepository_FinishSession_Call {
	return &MockRunRepository_FinishSession_Call{Call: _e.mock.On("FinishSession", ctx, id, position, at, visible, unread)}
}

func (_c *MockRunRepository_FinishSession_Call) Run(run func(ctx context.Context, id string, position int, at time.Time, visible int, unread int)) *MockRunRepository_FinishSession_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int), args[3].(time.Time), args[4].(int), args[5].(int))
	})
	return _c
}

func (_c *MockRunRepository_FinishSession_Call) Return(_a0 error) *MockRunRepository_FinishSession_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRunRepository_FinishSession_Call) RunAndReturn(run func(context.Context, string, int, time.Time, int, int) error) *MockRunRepository_FinishSession_Call {
	_c.Call.Return(run)
	return _c
}

// Get provides a mock function with given fields: ctx, id
func (_m *MockRunRepository) Get(ctx context.Context, id string) (*domain.Run, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *domain.Run
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.Run, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.Run); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Run)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockRunRepository_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'
type MockRunRepository_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
func (_e *MockRunRepository_Expecter) Get(ctx interface{}, id interface{}) *MockRunRepository_Get_Call {
	return &MockRunRepository_Get_Call{Call: _e.mock.On("Get", ctx, id)}
}

func (_c *MockRunRepository_Get_Call) Run(run func(ctx context.Context, id string)) *MockRunRepository_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockRunRepository_Get_Call) Return(_a0 *domain.Run, _a1 error) *MockRunRepository_Get_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockRunRepository_Get_Call) RunAndReturn(run func(context.Context, string) (*domain.Run, error)) *MockRunRepository_Get_Call {
	_c.Call.Return(run)
	return _c
}

// List provides a mock function with given fields: ctx, limit
func (_m *MockRunRepository) List(ctx context.Context, limit int) ([]domain.Run, error) {
	ret := _m.Called(ctx, limit)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []domain.Run
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) ([]domain.Run, error)); ok {
		return rf(ctx, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) []domain.Run); ok {
		r0 = rf(ctx, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Run)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockRunRepository_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type MockRunRepository_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
func (_e *MockRunRepository_Expecter) List(ctx interface{}, limit interface{}) *MockRunRepository_List_Call {
	return &MockRunRepository_List_Call{Call: _e.mock.On("List", ctx, limit)}
}

func (_c *MockRunRepository_List_Call) Run(run func(ctx context.Context, limit int)) *MockRunRepository_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int))
	})
	return _c
}

func (_c *MockRunRepository_List_Call) Return(_a0 []domain.Run, _a1 error) *MockRunRepository_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockRunRepository_List_Call) RunAndReturn(run func(context.Context, int) ([]domain.Run, error)) *MockRunRepository_List_Call {
	_c.Call.Return(run)
	return _c
}

// StartSession provides a mock function with given fields: ctx, id, session
func (_m *MockRunRepository) StartSession(ctx context.Context, id string, session domain.RunSession) error {
	ret := _m.Called(ctx, id, session)

	if len(ret) == 0 {
		panic("no return value specified for StartSession")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.RunSession) error); ok {
		r0 = rf(ctx, id, session)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockRunRepository_StartSession_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'StartSession'
type MockRunRepository_StartSession_Call struct {
	*mock.Call
}

// StartSession is a helper method to define mock.On call
func (_e *MockRunRepository_Expecter) StartSession(ctx interface{}, id interface{}, session interface{}) *MockRunRepository_StartSession_Call {
	return &MockRunRepository_StartSession_Call{Call: _e.mock.On("StartSession", ctx, id, session)}
}

func (_c *MockRunRepository_StartSession_Call) Run(run func(ctx context.Context, id string, session domain.RunSession)) *MockRunRepository_StartSession_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(domain.RunSession))
	})
	return _c
}

func (_c *MockRunRepository_StartSession_Call) Return(_a0 error) *MockRunRepository_StartSession_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRunRepository_StartSession_Call) RunAndReturn(run func(context.Context, string, domain.RunSession) error) *MockRunRepository_StartSession_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRunRepository creates a new instance of MockRunRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockRunRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRunRepository {
	m := &MockRunRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
