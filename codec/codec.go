// Package codec encodes guide trees for storage and exchange.
//
// Codec selection is a format boundary: persisted trees record the codec
// name, and ByName resolves it again on load. Changing a codec's byte layout
// breaks trees written by older versions.
package codec

import (
	"fmt"

	"github.com/hupe1980/guidetree/tree"
)

// Codec encodes/decodes guide trees.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(root *tree.Node) ([]byte, error)
	Unmarshal(data []byte) (*tree.Node, error)
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "binary":
		return Binary{Compression: CompressionNone}, true
	case "binary+lz4":
		return Binary{Compression: CompressionLZ4}, true
	case "binary+zstd":
		return Binary{Compression: CompressionZSTD}, true
	default:
		return nil, false
	}
}

// Default is the codec used when none is configured.
var Default Codec = Binary{Compression: CompressionLZ4}

// MustMarshal is a helper for tests.
func MustMarshal(c Codec, root *tree.Node) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(root)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
