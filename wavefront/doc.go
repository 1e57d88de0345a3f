// Package wavefront (polyskel) — the moving-node ring.
//
//	go get github.com/katalvlaran/polyskel/wavefront
package wavefront
