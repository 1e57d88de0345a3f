// Package engine (polyskel) — the event-driven scheduler.
//
//	go get github.com/katalvlaran/polyskel/engine
package engine
