// Package sevent (polyskel) — the event system.
//
//	go get github.com/katalvlaran/polyskel/sevent
package sevent
