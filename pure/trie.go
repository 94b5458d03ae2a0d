package pure

import (
	"sync"
	"sync/atomic"
)

// Key is one level of a trie path: a comparable value or a keyed
// fmt.Stringer.
type Key any

// node holds the value stored at its own path and the children below it, so
// a path and its prefixes can carry values side by side.
type node[O any] struct {
	children sync.Map // Key -> *node[O]
	value    atomic.Pointer[O]
}

// Trie is a bounded memo table indexed by key paths.
//
// It keeps two generations. Stores go to the head generation; when it
// reaches maxSize the older generation is dropped and the head flips, so at
// most 2*maxSize entries are retained.
type Trie[O any] struct {
	mu      sync.RWMutex
	roots   [2]*node[O]
	headIdx uint32
	size    atomic.Uint32
	maxSize uint32
}

func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("pure: trie maxSize should be greater than 0")
	}
	return &Trie[O]{
		roots:   [2]*node[O]{{}, {}},
		maxSize: maxSize,
	}
}

// Load looks keys up in the head generation, then in the previous one. A
// path that only prefixes stored paths is a miss.
func (t *Trie[O]) Load(keys []Key) (O, bool) {
	head, prev := t.generations()
	for _, root := range [2]*node[O]{head, prev} {
		if n := lookup(root, keys); n != nil {
			if v := n.value.Load(); v != nil {
				return *v, true
			}
		}
	}
	var zero O
	return zero, false
}

// Store records value under keys in the head generation.
func (t *Trie[O]) Store(keys []Key, value O) {
	if t.size.CompareAndSwap(t.maxSize, 0) {
		t.rotate()
	}
	head, _ := t.generations()
	traverse(head, keys).value.Store(&value)
	t.size.Add(1)
}

func (t *Trie[O]) generations() (head, prev *node[O]) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.roots[t.headIdx], t.roots[1-t.headIdx]
}

func (t *Trie[O]) rotate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.headIdx = 1 - t.headIdx
	t.roots[t.headIdx] = &node[O]{}
}

func lookup[O any](root *node[O], keys []Key) *node[O] {
	if len(keys) == 0 {
		panic("pure: empty trie keys")
	}
	n := root
	for _, k := range keys {
		next, ok := n.children.Load(k)
		if !ok {
			return nil
		}
		n = next.(*node[O])
	}
	return n
}

func traverse[O any](root *node[O], keys []Key) *node[O] {
	if len(keys) == 0 {
		panic("pure: empty trie keys")
	}
	n := root
	for _, k := range keys {
		next, _ := n.children.LoadOrStore(k, &node[O]{})
		n = next.(*node[O])
	}
	return n
}
