package persistence

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/guidetree/blobstore"
	"github.com/hupe1980/guidetree/codec"
	"github.com/hupe1980/guidetree/tree"
)

// Options configures Save and Encode.
type Options struct {
	// Codec encodes the tree. Defaults to codec.Default.
	Codec codec.Codec
}

// Encode wraps the codec payload of root in a checksummed envelope.
func Encode(root *tree.Node, optFns ...func(*Options)) ([]byte, error) {
	opts := Options{Codec: codec.Default}
	for _, fn := range optFns {
		fn(&opts)
	}

	name := opts.Codec.Name()
	if len(name) == 0 || len(name) > maxCodecName {
		return nil, fmt.Errorf("%w: name %q", ErrUnknownCodec, name)
	}

	payload, err := opts.Codec.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("persistence: encode with %s: %w", name, err)
	}

	buf := make([]byte, 0, fixedHeaderSize+len(name)+len(payload))
	buf = binary.LittleEndian.AppendUint32(buf, MagicNumber)
	buf = binary.LittleEndian.AppendUint32(buf, Version)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(payload)))
	buf = binary.LittleEndian.AppendUint32(buf, CalculateChecksum(payload))
	buf = append(buf, byte(len(name)))
	buf = append(buf, name...)
	return append(buf, payload...), nil
}

// Decode verifies an envelope and decodes the tree with the codec it names.
func Decode(data []byte) (*tree.Node, error) {
	if len(data) < fixedHeaderSize {
		return nil, fmt.Errorf("%w: %d byte header", ErrTruncated, len(data))
	}
	if magic := binary.LittleEndian.Uint32(data[0:]); magic != MagicNumber {
		return nil, fmt.Errorf("%w: 0x%08x", ErrInvalidMagic, magic)
	}
	if version := binary.LittleEndian.Uint32(data[4:]); version != Version {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, version)
	}

	payloadLen := binary.LittleEndian.Uint64(data[8:])
	checksum := binary.LittleEndian.Uint32(data[16:])
	nameLen := int(data[20])

	rest := data[fixedHeaderSize:]
	if len(rest) < nameLen || uint64(len(rest)-nameLen) != payloadLen {
		return nil, fmt.Errorf("%w: expected %d payload bytes", ErrTruncated, payloadLen)
	}
	name := string(rest[:nameLen])
	payload := rest[nameLen:]

	if err := verify(payload, checksum); err != nil {
		return nil, err
	}

	c, ok := codec.ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	return c.Unmarshal(payload)
}

// Save encodes root and writes it to store under name.
func Save(ctx context.Context, store blobstore.BlobStore, name string, root *tree.Node, optFns ...func(*Options)) error {
	data, err := Encode(root, optFns...)
	if err != nil {
		return err
	}
	if err := store.Put(ctx, name, data); err != nil {
		return fmt.Errorf("persistence: put %q: %w", name, err)
	}
	return nil
}

// Load reads and decodes the tree stored under name.
func Load(ctx context.Context, store blobstore.BlobStore, name string) (*tree.Node, error) {
	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, fmt.Errorf("persistence: read %q: %w", name, err)
	}
	root, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("persistence: decode %q: %w", name, err)
	}
	return root, nil
}
