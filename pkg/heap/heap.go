package heap

import (
	array "generic_containers/pkg/array/generic"
	"generic_containers/pkg/container"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const DefaultCapacity = array.DefaultCapacity

// Node is a heap slot. Data is optional, priority is always set.
type Node[D, P any] struct {
	data    D
	pri     P
	hasData bool
}

func (n Node[D, P]) Data() (D, bool) {
	return n.data, n.hasData
}

func (n Node[D, P]) Priority() P {
	return n.pri
}

// PriorityQueue is a binary heap ordered by comparePriority. A priority
// ranked >= 1 against another one sits closer to the root, so the default
// orientation is a max-heap; pass container.Reverse for a min-heap.
type PriorityQueue[D, P any] struct {
	nodes        array.Array[Node[D, P]]
	compareData  container.Compare[D]
	comparePri   container.Compare[P]
	freeData     container.Free[D]
	freePriority container.Free[P]
	log          *zap.Logger
}

// New creates an empty queue with room for capacity nodes (10 when
// capacity is 0).
func New[D, P any](
	capacity int,
	compareData container.Compare[D],
	comparePriority container.Compare[P],
	freeData container.Free[D],
	freePriority container.Free[P],
	opts ...container.Option,
) (*PriorityQueue[D, P], error) {
	if comparePriority == nil {
		return nil, container.Misconfigured("priority queue", "compare priority")
	}
	if capacity < 0 {
		return nil, container.InvalidArgument("negative capacity %d", capacity)
	}
	if capacity == 0 {
		capacity = DefaultCapacity
	}

	cfg := container.NewConfig(opts...)
	return &PriorityQueue[D, P]{
		nodes:        array.New[Node[D, P]](capacity),
		compareData:  compareData,
		comparePri:   comparePriority,
		freeData:     freeData,
		freePriority: freePriority,
		log:          cfg.Logger.Named("heap"),
	}, nil
}

// Heapify builds a queue from priorities (and data, when not nil, paired by
// index) in O(n) by sifting down every internal node.
func Heapify[D, P any](
	data []D,
	priorities []P,
	compareData container.Compare[D],
	comparePriority container.Compare[P],
	freeData container.Free[D],
	freePriority container.Free[P],
	opts ...container.Option,
) (*PriorityQueue[D, P], error) {
	if len(priorities) == 0 {
		return nil, container.InvalidArgument("heapify: no priorities")
	}
	if data != nil && len(data) != len(priorities) {
		return nil, container.InvalidArgument(
			"heapify: %d data elements for %d priorities", len(data), len(priorities),
		)
	}

	pq, err := New(len(priorities), compareData, comparePriority, freeData, freePriority, opts...)
	if err != nil {
		return nil, err
	}

	for i, pri := range priorities {
		n := Node[D, P]{pri: pri}
		if data != nil {
			n.data = data[i]
			n.hasData = true
		}
		pq.nodes.Push(n)
	}

	for i := pq.Size()/2 - 1; i >= 0; i-- {
		pq.siftDown(i)
	}

	return pq, nil
}

// Free releases every node, calling the destructors on each payload.
func (pq *PriorityQueue[D, P]) Free() {
	for i := range pq.nodes.Items() {
		pq.release(pq.nodes.Get(i))
	}
	pq.nodes.Truncate(0)
}

func (pq *PriorityQueue[D, P]) Push(data D, priority P) {
	pq.push(Node[D, P]{data: data, pri: priority, hasData: true})
}

// PushPriority adds a node that carries no data.
func (pq *PriorityQueue[D, P]) PushPriority(priority P) {
	pq.push(Node[D, P]{pri: priority})
}

func (pq *PriorityQueue[D, P]) push(n Node[D, P]) {
	if pq.nodes.Len() == pq.nodes.Cap() {
		pq.log.Debug("growing slot array",
			zap.Int("from", pq.nodes.Cap()),
			zap.Int("to", pq.nodes.Cap()*array.GrowthRatio),
		)
	}
	i := pq.nodes.Push(n)
	pq.siftUp(i)
}

// Pop removes the root node.
func (pq *PriorityQueue[D, P]) Pop() error {
	if pq.Empty() {
		return errors.Wrap(container.ErrEmpty, "priority queue pop")
	}

	last := pq.nodes.Len() - 1
	pq.nodes.Swap(0, last)
	pq.release(pq.nodes.Get(last))
	pq.nodes.Popn()
	pq.siftDown(0)
	return nil
}

// Top returns the data of the root node. ok is false on an empty queue or
// when the root carries no data.
func (pq *PriorityQueue[D, P]) Top() (data D, ok bool) {
	if pq.Empty() {
		return data, false
	}
	return pq.nodes.Get(0).Data()
}

func (pq *PriorityQueue[D, P]) TopPriority() (pri P, ok bool) {
	if pq.Empty() {
		return pri, false
	}
	return pq.nodes.Get(0).pri, true
}

// ChangePriority replaces the priority of the node at index and moves it
// down when the new priority ranks lower, up when it ranks higher. The old
// priority goes to the priority destructor. An equal priority is ignored.
func (pq *PriorityQueue[D, P]) ChangePriority(index int, priority P) error {
	if err := pq.checkIndex(index); err != nil {
		return err
	}

	n := pq.nodes.Get(index)
	cmp := pq.comparePri(n.pri, priority)
	if cmp == 0 {
		return nil
	}

	if pq.freePriority != nil {
		pq.freePriority(n.pri)
	}
	n.pri = priority
	if cmp >= 1 {
		pq.siftDown(index)
	} else {
		pq.siftUp(index)
	}
	return nil
}

// ChangeData replaces the data of the node at index, releasing the old
// data. Data does not take part in ordering.
func (pq *PriorityQueue[D, P]) ChangeData(index int, data D) error {
	if err := pq.checkIndex(index); err != nil {
		return err
	}

	n := pq.nodes.Get(index)
	if !n.hasData {
		return container.InvalidArgument("node %d carries no data", index)
	}
	if pq.freeData != nil {
		pq.freeData(n.data)
	}
	n.data = data
	return nil
}

// FindData returns the index of the first node whose data equals data, or
// container.NotFound.
func (pq *PriorityQueue[D, P]) FindData(data D) int {
	if pq.compareData == nil {
		return container.NotFound
	}
	for i, n := range pq.nodes.Items() {
		if n.hasData && pq.compareData(n.data, data) == 0 {
			return i
		}
	}
	return container.NotFound
}

func (pq *PriorityQueue[D, P]) FindPriority(priority P) int {
	for i, n := range pq.nodes.Items() {
		if pq.comparePri(n.pri, priority) == 0 {
			return i
		}
	}
	return container.NotFound
}

// Traverse visits every node in array order.
func (pq *PriorityQueue[D, P]) Traverse(visit func(n Node[D, P])) {
	if visit == nil {
		return
	}
	for _, n := range pq.nodes.Items() {
		visit(n)
	}
}

// At returns the node stored at index.
func (pq *PriorityQueue[D, P]) At(index int) (Node[D, P], bool) {
	if pq.checkIndex(index) != nil {
		return Node[D, P]{}, false
	}
	return *pq.nodes.Get(index), true
}

func (pq *PriorityQueue[D, P]) Size() int {
	return pq.nodes.Len()
}

func (pq *PriorityQueue[D, P]) Cap() int {
	return pq.nodes.Cap()
}

func (pq *PriorityQueue[D, P]) Empty() bool {
	return pq.nodes.Len() == 0
}

func (pq *PriorityQueue[D, P]) checkIndex(index int) error {
	if index < 0 || index >= pq.nodes.Len() {
		pq.log.Debug("rejected index", zap.Int("index", index), zap.Int("size", pq.nodes.Len()))
		return container.InvalidArgument("index %d out of range [0, %d)", index, pq.nodes.Len())
	}
	return nil
}

func (pq *PriorityQueue[D, P]) release(n *Node[D, P]) {
	if n.hasData && pq.freeData != nil {
		pq.freeData(n.data)
	}
	if pq.freePriority != nil {
		pq.freePriority(n.pri)
	}
	*n = Node[D, P]{}
}
