package merge

import (
	"fmt"

	"github.com/hupe1980/guidetree/sequence"
	"github.com/hupe1980/guidetree/tree"
)

// Kernel computes a possibly asymmetric edit distance.
type Kernel interface {
	Distance(a, b []byte) (int, error)
}

// Pass walks the tree rooted at root and collapses every internal node whose
// children are both leaves and contain a pair (i, j), i from the left leaf and
// j from the right, with max(k(i, j), k(j, i)) <= threshold. A collapsed node
// becomes a leaf owning the left samples followed by the right samples.
//
// Each node is tested before, between and after the visits of its children,
// so a collapse below can enable a collapse above within the same pass.
// Pass returns the number of collapsed nodes. A kernel error aborts the pass
// and leaves the merges performed so far in place.
func Pass(root *tree.Node, seqs sequence.Sequences, kernel Kernel, threshold int) (int, error) {
	p := &pass{seqs: seqs, kernel: kernel, threshold: threshold}
	if err := p.visit(root); err != nil {
		return p.merged, err
	}
	return p.merged, nil
}

type pass struct {
	seqs      sequence.Sequences
	kernel    Kernel
	threshold int
	merged    int
}

func (p *pass) visit(n *tree.Node) error {
	if n == nil {
		return nil
	}
	if err := p.test(n); err != nil {
		return err
	}
	if err := p.visit(n.Left); err != nil {
		return err
	}
	if err := p.test(n); err != nil {
		return err
	}
	if err := p.visit(n.Right); err != nil {
		return err
	}
	return p.test(n)
}

// test collapses n if its leaf children hold a close pair.
func (p *pass) test(n *tree.Node) error {
	if n.IsLeaf() || !n.Left.IsLeaf() || !n.Right.IsLeaf() {
		return nil
	}

	hit, err := p.closePair(n.Left.Samples, n.Right.Samples)
	if err != nil {
		return err
	}
	if !hit {
		return nil
	}

	samples := make([]int, 0, len(n.Left.Samples)+len(n.Right.Samples))
	samples = append(samples, n.Left.Samples...)
	samples = append(samples, n.Right.Samples...)
	n.Collapse(samples)
	p.merged++
	return nil
}

// closePair stops at the first pair within the threshold.
func (p *pass) closePair(left, right []int) (bool, error) {
	for _, i := range left {
		a := p.seqs.Seq(i)
		for _, j := range right {
			b := p.seqs.Seq(j)
			ab, err := p.kernel.Distance(a, b)
			if err != nil {
				return false, fmt.Errorf("merge: distance(%d, %d): %w", i, j, err)
			}
			ba, err := p.kernel.Distance(b, a)
			if err != nil {
				return false, fmt.Errorf("merge: distance(%d, %d): %w", j, i, err)
			}
			if max(ab, ba) <= p.threshold {
				return true, nil
			}
		}
	}
	return false, nil
}
