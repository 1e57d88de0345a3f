// Package vec2 (polyskel) — 2D vector primitives.
//
//	go get github.com/katalvlaran/polyskel/vec2
package vec2
