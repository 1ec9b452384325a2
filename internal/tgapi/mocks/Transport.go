package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/central-university-dev/go-tgbot/internal/tgapi"
)

type Transport struct {
	mock.Mock
}

func (_m *Transport) Request(ctx context.Context, endpoint string, query string) ([]byte, error) {
	ret := _m.Called(ctx, endpoint, query)

	if rf, ok := ret.Get(0).(func(context.Context, string, string) ([]byte, error)); ok {
		return rf(ctx, endpoint, query)
	}

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

func (_m *Transport) Upload(ctx context.Context, endpoint string, fields []tgapi.FormField) ([]byte, error) {
	ret := _m.Called(ctx, endpoint, fields)

	if rf, ok := ret.Get(0).(func(context.Context, string, []tgapi.FormField) ([]byte, error)); ok {
		return rf(ctx, endpoint, fields)
	}

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

func NewTransport(t interface {
	mock.TestingT
	Cleanup(func())
}) *Transport {
	m := &Transport{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
