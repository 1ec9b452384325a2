package ptr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/central-university-dev/go-tgbot/pkg/ptr"
)

func FuzzPtr_Int(f *testing.F) {
	f.Add(0)
	f.Add(1)
	f.Add(-1)
	f.Fuzz(func(t *testing.T, i int) {
		p := ptr.Ptr(i)
		assert.Equal(t, i, *p)
		assert.Equal(t, i, ptr.PtrGet(p))
	})
}

func FuzzPtr_Int64(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(100))
	f.Add(int64(-100))
	f.Fuzz(func(t *testing.T, i int64) {
		p := ptr.Ptr(i)
		assert.Equal(t, i, *p)
		assert.Equal(t, i, ptr.PtrGet(p))
	})
}

func FuzzPtr_Float64(f *testing.F) {
	f.Add(0.0)
	f.Add(55.75)
	f.Add(-37.61)
	f.Fuzz(func(t *testing.T, v float64) {
		p := ptr.Ptr(v)
		assert.Equal(t, v, *p)
	})
}

func TestPtr_ReturnsCopy(t *testing.T) {
	v := 10
	p := ptr.Ptr(v)

	v = 20

	assert.Equal(t, 10, *p)
}

func TestPtrGet_Nil(t *testing.T) {
	assert.Equal(t, 0, ptr.PtrGet[int](nil))
	assert.Equal(t, "", ptr.PtrGet[string](nil))
	assert.Equal(t, int64(0), ptr.PtrGet[int64](nil))
}
