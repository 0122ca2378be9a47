package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	s := Slice{[]byte("ACGT"), nil, []byte("A")}

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []byte("ACGT"), s.Seq(0))
	assert.Empty(t, s.Seq(1))
	assert.Equal(t, []int{4, 0, 1}, Lengths(s))
}
