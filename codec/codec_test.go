package codec

import (
	"testing"

	"github.com/hupe1980/guidetree/testutil"
	"github.com/hupe1980/guidetree/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// balanced builds a tree over samples with leaves of at most leafSize.
func balanced(samples []int, leafSize int) *tree.Node {
	if len(samples) <= leafSize {
		return tree.NewLeaf(samples)
	}
	mid := len(samples) / 2
	return tree.NewInternal(balanced(samples[:mid], leafSize), balanced(samples[mid:], leafSize))
}

func codecs() []Codec {
	return []Codec{
		JSON{},
		Binary{Compression: CompressionNone},
		Binary{Compression: CompressionLZ4},
		Binary{Compression: CompressionZSTD},
	}
}

func TestRoundTrip(t *testing.T) {
	labeled := balanced(testutil.Range(5000), 100)
	labeled.LabelInternal(5000)

	withIDs := tree.NewInternal(tree.NewLeaf([]int{3}), tree.NewLeaf([]int{1, 2}))
	withIDs.Left.ID = 3

	trees := map[string]*tree.Node{
		"single leaf":  tree.NewLeaf([]int{0, 1, 2}),
		"empty leaf":   tree.NewLeaf([]int{}),
		"balanced":     balanced(testutil.Range(5000), 100),
		"labeled":      labeled,
		"explicit ids": withIDs,
	}

	for _, c := range codecs() {
		for name, root := range trees {
			t.Run(c.Name()+"/"+name, func(t *testing.T) {
				data, err := c.Marshal(root)
				require.NoError(t, err)

				got, err := c.Unmarshal(data)
				require.NoError(t, err)
				assert.True(t, tree.Equal(root, got), "want:\n%s\ngot:\n%s", root, got)
			})
		}
	}
}

func TestByName(t *testing.T) {
	for _, c := range codecs() {
		got, ok := ByName(c.Name())
		require.True(t, ok, c.Name())
		assert.Equal(t, c, got)
	}

	_, ok := ByName("go-json")
	assert.False(t, ok)
}

func TestBinary_Compresses(t *testing.T) {
	samples := make([]int, 20000)
	for i := range samples {
		samples[i] = i % 16
	}
	root := balanced(samples, 1000)
	plain := MustMarshal(Binary{}, root)

	for _, c := range []Compression{CompressionLZ4, CompressionZSTD} {
		data := MustMarshal(Binary{Compression: c}, root)
		assert.Equal(t, byte(c), data[5])
		assert.Less(t, len(data), len(plain), c.String())
	}
}

func TestBinary_StoresIncompressibleUncompressed(t *testing.T) {
	data := MustMarshal(Binary{Compression: CompressionLZ4}, tree.NewLeaf([]int{7}))

	// Header, then a block whose compressed size field is zero.
	assert.Equal(t, []byte{0, 0, 0, 0}, data[headerSize+4:headerSize+8])

	got, err := Binary{}.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, got.Samples)
}

func TestBinary_Corrupt(t *testing.T) {
	good := MustMarshal(Binary{}, balanced(testutil.Range(50), 10))

	badVersion := append([]byte(nil), good...)
	badVersion[4] = 99

	badTag := append([]byte(nil), good...)
	badTag[headerSize+blockHeaderSize] = 7

	trailing := append([]byte(nil), good...)
	trailing = append(trailing, 0)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrCorrupt},
		{"bad magic", append([]byte("XXXX"), good[4:]...), ErrCorrupt},
		{"bad version", badVersion, ErrVersion},
		{"truncated", good[:len(good)-3], ErrCorrupt},
		{"bad tag", badTag, ErrCorrupt},
		{"trailing", trailing, ErrCorrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Binary{}.Unmarshal(tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBinary_MalformedTree(t *testing.T) {
	root := tree.NewInternal(tree.NewLeaf([]int{0}), tree.NewLeaf([]int{1}))
	root.Right = nil

	_, err := Binary{}.Marshal(root)
	assert.ErrorIs(t, err, tree.ErrMalformed)

	_, err = Binary{Compression: Compression(9)}.Marshal(tree.NewLeaf([]int{0}))
	assert.Error(t, err)
}

func TestJSON_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `{"id":`},
		{"one child", `{"id":-1,"left":{"id":0,"samples":[0]}}`},
		{"internal with samples", `{"id":-1,"samples":[1],"left":{"id":0},"right":{"id":1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := JSON{}.Unmarshal([]byte(tt.data))
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}
