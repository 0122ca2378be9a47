package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hupe1980/guidetree/tree"
)

// JSON is the standard-library JSON codec. It nests nodes as objects with
// "id", "samples", "left" and "right" keys, which makes trees easy to inspect
// or hand to tools in other languages.
type JSON struct{}

type jsonNode struct {
	ID      int       `json:"id"`
	Samples []int     `json:"samples,omitempty"`
	Left    *jsonNode `json:"left,omitempty"`
	Right   *jsonNode `json:"right,omitempty"`
}

// Marshal encodes root to JSON.
func (JSON) Marshal(root *tree.Node) ([]byte, error) {
	if root == nil {
		return nil, errors.New("codec: nil tree")
	}
	return json.Marshal(toJSON(root))
}

// Unmarshal decodes a tree from JSON.
func (JSON) Unmarshal(data []byte) (*tree.Node, error) {
	var jn jsonNode
	if err := json.Unmarshal(data, &jn); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return fromJSON(&jn)
}

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

func toJSON(n *tree.Node) *jsonNode {
	if n == nil {
		return nil
	}
	return &jsonNode{
		ID:      n.ID,
		Samples: n.Samples,
		Left:    toJSON(n.Left),
		Right:   toJSON(n.Right),
	}
}

func fromJSON(jn *jsonNode) (*tree.Node, error) {
	if (jn.Left == nil) != (jn.Right == nil) {
		return nil, fmt.Errorf("%w: node with one child", ErrCorrupt)
	}

	if jn.Left == nil {
		samples := jn.Samples
		if samples == nil {
			samples = []int{}
		}
		leaf := tree.NewLeaf(samples)
		leaf.ID = jn.ID
		return leaf, nil
	}

	if len(jn.Samples) > 0 {
		return nil, fmt.Errorf("%w: internal node with samples", ErrCorrupt)
	}
	left, err := fromJSON(jn.Left)
	if err != nil {
		return nil, err
	}
	right, err := fromJSON(jn.Right)
	if err != nil {
		return nil, err
	}
	n := tree.NewInternal(left, right)
	n.ID = jn.ID
	return n, nil
}
