package supertrie_test

import (
	"fmt"
	"log"
	"os"

	"github.com/bits-and-blooms/bitset"
	"github.com/exacttw/supertrie"
)

func vertices(n uint, vs ...uint) *bitset.BitSet {
	b := bitset.New(n)
	for _, v := range vs {
		b.Set(v)
	}
	return b
}

// Example demonstrates storing two pairs and querying them.
func Example() {
	idx, err := supertrie.New(6, 2)
	if err != nil {
		log.Fatal(err)
	}

	_ = idx.Insert(vertices(6, 0, 1), vertices(6, 2, 3))
	_ = idx.Insert(vertices(6, 0), vertices(6, 2, 3, 4))

	found, _ := idx.Query(vertices(6, 0), vertices(6, 1, 2))
	for _, b := range found {
		fmt.Println(b)
	}
	// Output: {2,3}
}

// ExampleIndex_Dump prints the trie built from two pairs.
func ExampleIndex_Dump() {
	idx, _ := supertrie.New(6, 2, supertrie.WithFastPath(false))
	_ = idx.Insert(vertices(6, 0, 1), vertices(6, 2, 3))
	_ = idx.Insert(vertices(6, 0), vertices(6, 2, 3, 4))

	idx.Dump(os.Stdout)
	// Output:
	// ### universe(6), size(2), nodes(3), fast(false)
	// [ROOT] key: [] path: []
	//   union: {0,1} inter: {2,3}
	// .[FULL] key: [2 3] path: [2 3]
	// .  union: {0,1} inter: {2,3}
	// .  block: {0,1}
	// ..[LEAF] key: [4] path: [2 3 4]
	// ..  union: {0} inter: {2,3,4}
	// ..  block: {0}
}

// ExampleBasicMetricsCollector shows how to observe pruning.
func ExampleBasicMetricsCollector() {
	metrics := &supertrie.BasicMetricsCollector{}
	idx, _ := supertrie.New(6, 2, supertrie.WithMetricsCollector(metrics))
	_ = idx.Insert(vertices(6, 0, 1), vertices(6, 2, 3))
	_, _ = idx.Query(vertices(6, 5), vertices(6))

	stats := metrics.GetStats()
	fmt.Println(stats.InsertCount, stats.QueryCount, stats.QueryResults)
	// Output: 1 1 0
}
