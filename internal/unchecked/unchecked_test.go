package unchecked

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAt(t *testing.T) {
	s := make([]uint16, 256)
	for i := range s {
		s[i] = uint16(i * 3)
	}

	for i := range s {
		assert.Equal(t, &s[i], At(s, uint(i)))
		assert.Equal(t, s[i], *At(s, uint(i)))
	}
}

func TestAt_Write(t *testing.T) {
	type pair struct {
		a int64
		b string
	}
	s := make([]pair, 16)

	*At(s, 15) = pair{a: 7, b: "last"}
	*At(s, 0) = pair{a: 1, b: "first"}

	assert.Equal(t, pair{a: 1, b: "first"}, s[0])
	assert.Equal(t, pair{a: 7, b: "last"}, s[15])
	for i := 1; i < 15; i++ {
		assert.Zero(t, s[i])
	}
}

func TestAt_ZeroSizedElements(t *testing.T) {
	s := make([]struct{}, 8)
	assert.NotNil(t, At(s, 7))
}

func BenchmarkAt(b *testing.B) {
	s := make([]uint32, 1<<16)
	b.ReportAllocs()
	b.ResetTimer()

	var sum uint32
	for i := 0; i < b.N; i++ {
		sum += *At(s, uint(uint16(i)))
	}
	_ = sum
}
