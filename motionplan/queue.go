package motionplan

import (
	"container/heap"

	"github.com/scanbot-robotics/scanplan/spatialmath"
)

// openItem is one entry in the A* open set: a candidate state, the pose it
// corresponds to, and the priority it was inserted with. counter is a
// monotonically increasing insertion index used to break priority ties
// deterministically (spec.md §4.4 "Tie-break"), the way
// other_examples/.../systems-astar.go.go's nodeHeap orders on a single
// numeric key via container/heap.
type openItem struct {
	key      spatialmath.Key
	pose     spatialmath.RobotPose
	priority float64
	counter  int64
	index    int // maintained by container/heap
}

type openHeap []*openItem

func (h openHeap) Len() int { return len(h) }

func (h openHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].counter < h[j].counter
}

func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *openHeap) Push(x any) {
	item := x.(*openItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

var _ heap.Interface = (*openHeap)(nil)
