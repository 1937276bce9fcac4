//go:build arm64

package trie

import "golang.org/x/sys/cpu"

func init() {
	// CNT lives in the ASIMD unit.
	hasPopcount = cpu.ARM64.HasASIMD
}
