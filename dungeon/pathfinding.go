package dungeon

import (
	"container/heap"
)

// maxPathSteps bounds how many nodes a single search may expand
const maxPathSteps = 65536

// FindPath uses A* over Exits to find a path between two tiles.
// The returned steps start with start and end with end; ok is false when
// no path exists.
func FindPath(m *Map, start, end int) (steps []int, ok bool) {
	if start == end {
		return []int{start}, true
	}

	openSet := make(PriorityQueue, 0)
	heap.Init(&openSet)

	// Maps for tracking
	cameFrom := make(map[int]int)
	gScore := map[int]float64{start: 0}
	closed := make(map[int]bool)

	seq := 0
	heap.Push(&openSet, &Item{value: start, priority: m.PathDistance(start, end), seq: seq})

	// Main A* loop
	for expanded := 0; openSet.Len() > 0 && expanded < maxPathSteps; expanded++ {
		current := heap.Pop(&openSet).(*Item).value
		if current == end {
			// Path found, reconstruct and return it
			return reconstructPath(cameFrom, start, end), true
		}
		if closed[current] {
			continue
		}
		closed[current] = true

		for _, exit := range m.Exits(current) {
			if closed[exit.Idx] {
				continue
			}

			tentative := gScore[current] + exit.Cost
			if known, exists := gScore[exit.Idx]; exists && tentative >= known {
				continue
			}

			// This is a better path
			cameFrom[exit.Idx] = current
			gScore[exit.Idx] = tentative
			seq++
			heap.Push(&openSet, &Item{
				value:    exit.Idx,
				priority: tentative + m.PathDistance(exit.Idx, end),
				seq:      seq,
			})
		}
	}

	// No path found
	return nil, false
}

// reconstructPath builds the path from start to goal
func reconstructPath(cameFrom map[int]int, start, end int) []int {
	path := []int{end}
	for current := end; current != start; {
		current = cameFrom[current]
		path = append(path, current)
	}

	// Reverse into start-to-end order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Item is an entry in the A* open set
type Item struct {
	value    int
	priority float64
	seq      int // insertion order, breaks priority ties deterministically
	index    int
}

// PriorityQueue implementation for A* pathfinding
type PriorityQueue []*Item

func (pq PriorityQueue) Len() int { return len(pq) }

func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].priority == pq[j].priority {
		return pq[i].seq < pq[j].seq
	}
	return pq[i].priority < pq[j].priority
}

func (pq PriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *PriorityQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*Item)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // avoid memory leak
	item.index = -1 // for safety
	*pq = old[0 : n-1]
	return item
}
