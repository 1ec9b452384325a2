package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/central-university-dev/go-tgbot/internal/tgapi"
)

type Doer struct {
	mock.Mock
}

func (_m *Doer) Do(ctx context.Context, req tgapi.Request) (json.RawMessage, error) {
	ret := _m.Called(ctx, req)

	if rf, ok := ret.Get(0).(func(context.Context, tgapi.Request) (json.RawMessage, error)); ok {
		return rf(ctx, req)
	}

	var r0 json.RawMessage
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(json.RawMessage)
	}

	return r0, ret.Error(1)
}

func NewDoer(t interface {
	mock.TestingT
	Cleanup(func())
}) *Doer {
	m := &Doer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
