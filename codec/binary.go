package codec

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/hupe1980/guidetree/tree"
)

var magic = [4]byte{'G', 'T', 'R', 'E'}

const (
	version    = 1
	headerSize = len(magic) + 2

	tagLeaf     = 0
	tagInternal = 1
)

// ErrVersion is returned for data written by an unknown format version.
var ErrVersion = errors.New("codec: unsupported version")

// Binary is a compact pre-order encoding of a tree.
//
// Layout: "GTRE" | version u8 | compression u8 | block. The block holds, per
// node in pre-order, a tag byte, the varint id and for leaves the uvarint
// sample count followed by varint samples.
type Binary struct {
	Compression Compression
}

// Name returns "binary" with the compression as suffix, e.g. "binary+lz4".
func (b Binary) Name() string {
	if b.Compression == CompressionNone {
		return "binary"
	}
	return "binary+" + b.Compression.String()
}

// Marshal encodes root.
func (b Binary) Marshal(root *tree.Node) ([]byte, error) {
	if root == nil {
		return nil, errors.New("codec: nil tree")
	}

	payload, err := appendNode(nil, root)
	if err != nil {
		return nil, err
	}

	block, err := compressBlock(payload, b.Compression)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, headerSize+len(block))
	out = append(out, magic[:]...)
	out = append(out, version, byte(b.Compression))
	return append(out, block...), nil
}

// Unmarshal decodes data. The compression recorded in the header is used,
// not b.Compression.
func (Binary) Unmarshal(data []byte) (*tree.Node, error) {
	if len(data) < headerSize || [4]byte(data[:4]) != magic {
		return nil, fmt.Errorf("%w: bad magic", ErrCorrupt)
	}
	if data[4] != version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, data[4])
	}

	payload, err := decompressBlock(data[headerSize:], Compression(data[5]))
	if err != nil {
		return nil, err
	}

	d := &decoder{buf: payload}
	root, err := d.node()
	if err != nil {
		return nil, err
	}
	if len(d.buf) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(d.buf))
	}
	return root, nil
}

func appendNode(dst []byte, n *tree.Node) ([]byte, error) {
	if (n.Left == nil) != (n.Right == nil) {
		return nil, fmt.Errorf("%w: node with one child", tree.ErrMalformed)
	}

	if n.IsLeaf() {
		dst = append(dst, tagLeaf)
		dst = binary.AppendVarint(dst, int64(n.ID))
		dst = binary.AppendUvarint(dst, uint64(len(n.Samples)))
		for _, s := range n.Samples {
			dst = binary.AppendVarint(dst, int64(s))
		}
		return dst, nil
	}

	dst = append(dst, tagInternal)
	dst = binary.AppendVarint(dst, int64(n.ID))

	var err error
	if dst, err = appendNode(dst, n.Left); err != nil {
		return nil, err
	}
	return appendNode(dst, n.Right)
}

type decoder struct {
	buf []byte
}

func (d *decoder) node() (*tree.Node, error) {
	if len(d.buf) == 0 {
		return nil, fmt.Errorf("%w: unexpected end of tree", ErrCorrupt)
	}
	tag := d.buf[0]
	d.buf = d.buf[1:]

	id, err := d.varint()
	if err != nil {
		return nil, err
	}

	switch tag {
	case tagLeaf:
		count, n := binary.Uvarint(d.buf)
		if n <= 0 || count > uint64(len(d.buf)) {
			return nil, fmt.Errorf("%w: bad sample count", ErrCorrupt)
		}
		d.buf = d.buf[n:]

		samples := make([]int, count)
		for i := range samples {
			s, err := d.varint()
			if err != nil {
				return nil, err
			}
			samples[i] = int(s)
		}
		leaf := tree.NewLeaf(samples)
		leaf.ID = int(id)
		return leaf, nil

	case tagInternal:
		left, err := d.node()
		if err != nil {
			return nil, err
		}
		right, err := d.node()
		if err != nil {
			return nil, err
		}
		n := tree.NewInternal(left, right)
		n.ID = int(id)
		return n, nil

	default:
		return nil, fmt.Errorf("%w: unknown tag %d", ErrCorrupt, tag)
	}
}

func (d *decoder) varint() (int64, error) {
	v, n := binary.Varint(d.buf)
	if n <= 0 {
		return 0, fmt.Errorf("%w: bad varint", ErrCorrupt)
	}
	d.buf = d.buf[n:]
	return v, nil
}
