package index

import (
	"fmt"
	"strings"
)

// DebugString renders the index as a line-per-node dump using each node
// type's single-character debug tag. Intended for test failures and
// interactive inspection, not a stable serialization format.
func (ix *Index) DebugString() string {
	var sb strings.Builder
	for i := 0; i < len(ix.words); {
		n := ix.NodeAt(i)
		fmt.Fprintf(&sb, "%c@%d", n.Type.DebugTag(), n.Offset)
		switch {
		case n.Type.isContainerOpener():
			fmt.Fprintf(&sb, " close=%d count=%d\n", n.CloseIndex, n.ElementCount)
		case n.Type == ErrorNode:
			fmt.Fprintf(&sb, " code=%s\n", n.Code)
		case n.Type.hasLengthWord():
			fmt.Fprintf(&sb, " len=%d %q\n", n.Length, ix.Token(n))
		default:
			sb.WriteByte('\n')
		}
		i += wordCount(n.Type)
	}
	return sb.String()
}
