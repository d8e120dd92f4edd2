package reader

import (
	"fmt"

	"github.com/elan-voss/tessera/index"
	"github.com/elan-voss/tessera/path"
)

// UnexpectedNodeError reports that Expect found a node type outside the
// set it was asked to permit.
type UnexpectedNodeError struct {
	Got      index.NodeType
	Expected []index.NodeType
}

func (e *UnexpectedNodeError) Error() string {
	return fmt.Sprintf("reader: unexpected node %s, expected one of %v", e.Got, e.Expected)
}

// frame tracks one open container on the reader's path-reconstruction
// stack: whether it is an object or array, the step that addresses the
// container itself within its parent, and enough in-progress state
// (current key, child count) to address the container's own children.
type frame struct {
	isObject   bool
	selfStep   path.Step
	hasSelf    bool
	currentKey string
	childCount int
}

// Reader is a pull-style cursor over an *index.Index. Callers advance it
// node by node with Next, or skip whole structures with NextStructure.
// CurrentPath lazily reconstructs the JSON path of wherever the cursor
// currently sits, by replaying the container-entry stack; it does not
// keep a path.Path up to date on every advance.
type Reader struct {
	ix    *index.Index
	pos   int
	stack []frame
	done  bool
}

// New returns a reader positioned on the document's root value.
func New(ix *index.Index) *Reader {
	return &Reader{ix: ix, pos: 1}
}

// Done reports whether the cursor has advanced past the end of the index.
func (r *Reader) Done() bool {
	return r.done || r.pos >= r.ix.WordLen()
}

// Index returns the parse index this reader is cursoring over, for
// callers (such as package format's adapters) that need to decode a
// token's bytes directly.
func (r *Reader) Index() *index.Index {
	return r.ix
}

// WordIndex returns the code-word index the cursor currently sits on, for
// callers that need to extract a subtree rooted at the current node.
func (r *Reader) WordIndex() int {
	return r.pos
}

// Current returns the node the cursor currently sits on.
func (r *Reader) Current() (index.Node, bool) {
	if r.Done() {
		return index.Node{}, false
	}
	return r.ix.NodeAt(r.pos), true
}

// CurrentPath reconstructs the path of the node the cursor currently sits
// on, relative to the document root.
func (r *Reader) CurrentPath() path.Path {
	n, ok := r.Current()
	if !ok {
		return path.Root()
	}
	switch n.Type {
	case index.ObjectEnd, index.ArrayEnd:
		if len(r.stack) == 0 {
			return path.Root()
		}
		return buildPath(r.stack[:len(r.stack)-1])
	case index.KeyCanonical, index.KeyEscaped:
		return buildPath(r.stack)
	default:
		p := buildPath(r.stack)
		if len(r.stack) == 0 {
			return p
		}
		top := r.stack[len(r.stack)-1]
		if top.isObject {
			return p.Key(top.currentKey)
		}
		return p.Index(top.childCount)
	}
}

func buildPath(frames []frame) path.Path {
	p := path.Root()
	for _, f := range frames {
		if !f.hasSelf {
			continue
		}
		if f.selfStep.IsKey() {
			p = p.Key(f.selfStep.Key())
		} else {
			p = p.Index(f.selfStep.Index())
		}
	}
	return p
}

// Next advances the cursor to the next node in source order, descending
// into containers rather than skipping them. It returns false once the
// cursor has passed the end of the index.
func (r *Reader) Next() bool {
	n, ok := r.Current()
	if !ok {
		r.done = true
		return false
	}

	switch n.Type {
	case index.ObjectBegin, index.ArrayBegin:
		var step path.Step
		hasSelf := false
		if len(r.stack) > 0 {
			top := r.stack[len(r.stack)-1]
			if top.isObject {
				step = path.KeyStep(top.currentKey)
			} else {
				step = path.IndexStep(top.childCount)
			}
			hasSelf = true
		}
		r.stack = append(r.stack, frame{
			isObject: n.Type == index.ObjectBegin,
			selfStep: step,
			hasSelf:  hasSelf,
		})
		r.pos += 3

	case index.ObjectEnd, index.ArrayEnd:
		if len(r.stack) > 0 {
			r.stack = r.stack[:len(r.stack)-1]
		}
		r.pos++
		r.markChildConsumed()

	case index.KeyCanonical, index.KeyEscaped:
		key, _ := r.ix.DecodeToken(n)
		if len(r.stack) > 0 {
			r.stack[len(r.stack)-1].currentKey = key
		}
		r.pos = r.ix.NextIndex(r.pos)

	default:
		r.pos = r.ix.NextIndex(r.pos)
		r.markChildConsumed()
	}

	if r.pos >= r.ix.WordLen() {
		r.done = true
		return false
	}
	return true
}

func (r *Reader) markChildConsumed() {
	if len(r.stack) == 0 {
		return
	}
	top := &r.stack[len(r.stack)-1]
	top.childCount++
	top.currentKey = ""
}

// NextStructure advances past the current node as a unit: for an
// object_begin or array_begin node, the cursor lands on the sibling (or
// closer) following the matching closer, without visiting any of the
// container's descendants individually.
func (r *Reader) NextStructure() bool {
	n, ok := r.Current()
	if !ok {
		r.done = true
		return false
	}
	if !n.Type.IsContainerOpener() {
		return r.Next()
	}

	target := r.ix.NextIndex(n.CloseIndex)
	r.pos = target
	r.markChildConsumed()
	if r.pos >= r.ix.WordLen() {
		r.done = true
		return false
	}
	return true
}

// NextKey advances the cursor to the next object key at the current
// nesting depth, skipping over intervening values and nested structures.
// It returns false if the cursor exhausts the current container without
// finding another key (e.g. it reaches the enclosing object's closer).
func (r *Reader) NextKey() bool {
	depth := len(r.stack)
	if n, ok := r.Current(); ok && (n.Type == index.KeyCanonical || n.Type == index.KeyEscaped) {
		if !r.Next() {
			return false
		}
	}
	for {
		n, ok := r.Current()
		if !ok {
			return false
		}
		if len(r.stack) < depth {
			return false
		}
		if (n.Type == index.KeyCanonical || n.Type == index.KeyEscaped) && len(r.stack) == depth {
			return true
		}
		if n.Type.IsContainerOpener() && len(r.stack) == depth {
			if !r.NextStructure() {
				return false
			}
			continue
		}
		if !r.Next() {
			return false
		}
	}
}

// Expect asserts that the current node's type is one of want, returning
// an *UnexpectedNodeError if not.
func (r *Reader) Expect(want ...index.NodeType) error {
	n, ok := r.Current()
	if !ok {
		return &UnexpectedNodeError{Expected: want}
	}
	for _, t := range want {
		if n.Type == t {
			return nil
		}
	}
	return &UnexpectedNodeError{Got: n.Type, Expected: want}
}
