package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/central-university-dev/go-tgbot/internal/domain/models"
)

type Sink struct {
	mock.Mock
}

func (_m *Sink) Name() string {
	ret := _m.Called()

	return ret.String(0)
}

func (_m *Sink) Publish(ctx context.Context, updates []models.Update) error {
	ret := _m.Called(ctx, updates)

	if rf, ok := ret.Get(0).(func(context.Context, []models.Update) error); ok {
		return rf(ctx, updates)
	}

	return ret.Error(0)
}

func (_m *Sink) Close() error {
	ret := _m.Called()

	return ret.Error(0)
}

func NewSink(t interface {
	mock.TestingT
	Cleanup(func())
}) *Sink {
	m := &Sink{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
