package sevent

import (
	"github.com/katalvlaran/polyskel/skelgraph"
	"github.com/katalvlaran/polyskel/wavefront"
)

// remapIncoming redirects every incoming edge of from.Skel onto to.Skel,
// merging the two converging traces at a single output node.
func remapIncoming(from, to *wavefront.Node) error {
	return skelgraph.RemapIncoming(from.Skel, to.Skel)
}
