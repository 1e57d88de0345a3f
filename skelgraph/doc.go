// Package skelgraph (polyskel) — the output skeleton graph.
//
//	go get github.com/katalvlaran/polyskel/skelgraph
package skelgraph
