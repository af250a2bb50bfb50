// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trdom/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls from a hub
// are safe and all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200 // number of concurrent adds
	var wg sync.WaitGroup
	wg.Add(num)

	errs := make(chan error, num)
	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			errs <- g.AddEdge(0, id)
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbrs, err := g.NeighborIDs(0)
	require.NoError(t, err)
	require.Len(t, nbrs, num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentNeighborsAndClone validates concurrent reads and clones do
// not race with each other.
func TestConcurrentNeighborsAndClone(t *testing.T) {
	g := core.NewGraph()
	for i := 1; i <= 50; i++ {
		require.NoError(t, g.AddEdge(0, i))
	}

	const readers = 50
	const cloners = 20
	var wg sync.WaitGroup
	wg.Add(readers + cloners)

	lens := make(chan int, readers+cloners)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			nbrs, _ := g.NeighborIDs(0)
			lens <- len(nbrs)
		}()
	}
	for i := 0; i < cloners; i++ {
		go func() {
			defer wg.Done()
			lens <- g.Clone().EdgeCount()
		}()
	}
	wg.Wait()
	close(lens)
	for n := range lens {
		require.Equal(t, 50, n)
	}
}
