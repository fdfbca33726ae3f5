package tree

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// GreenID is an opaque handle to a node stored in an arena. Nodes are owned
// exclusively by their arena and live as long as it does.
type GreenID int

type TagKind int

const (
	// TagRule marks a node produced by a successful rule match.
	TagRule TagKind = iota
	// TagPlaceholder reserves a node whose real content is not known yet.
	TagPlaceholder
	// TagRuleMismatch marks a node where the engine expected a rule that did
	// not match.
	TagRuleMismatch
	// TagTokenMismatch marks a node where the engine expected terminal text
	// that did not match.
	TagTokenMismatch
)

// Tag identifies what a green node represents. The error-marker kinds are
// plain data embedded by a matching engine to represent partial or erroneous
// parses; nothing in this package produces them.
type Tag struct {
	Kind TagKind

	// Rule is the matched rule's slot for TagRule, or the expected slot for
	// TagRuleMismatch.
	Rule int

	// Token is the expected terminal text for TagTokenMismatch.
	Token string
}

func RuleTag(rule int) Tag {
	return Tag{
		Kind: TagRule,
		Rule: rule,
	}
}

func PlaceholderTag() Tag {
	return Tag{
		Kind: TagPlaceholder,
	}
}

func RuleMismatchTag(expected int) Tag {
	return Tag{
		Kind: TagRuleMismatch,
		Rule: expected,
	}
}

func TokenMismatchTag(expected string) Tag {
	return Tag{
		Kind:  TagTokenMismatch,
		Token: expected,
	}
}

// GreenNode is an immutable unit of tree storage. It records only its local
// width, never an absolute position, so identical subtrees at different
// offsets share one node.
type GreenNode struct {
	Tag      Tag
	Width    int
	Children []GreenID
}

const arenaShardCount = 32

type arenaShard struct {
	mu      sync.Mutex
	buckets map[uint64][]GreenID
}

// Arena is an append-only, hash-consed store of green nodes. Any number of
// goroutines may allocate concurrently; allocation is confluent, so two
// structurally equal submissions resolve to the same GreenID regardless of
// which arrives first.
type Arena struct {
	mu     sync.RWMutex
	nodes  []GreenNode
	shards [arenaShardCount]arenaShard
}

func NewArena() *Arena {
	a := &Arena{}
	for i := range a.shards {
		a.shards[i].buckets = map[uint64][]GreenID{}
	}
	return a
}

// Alloc stores a node with the given content, or returns the id of an
// already-stored structurally identical node. Candidates sharing a content
// hash are verified by full equality; the hash is never trusted alone.
func (a *Arena) Alloc(tag Tag, children []GreenID, width int) GreenID {
	h := hashNode(tag, children, width)
	shard := &a.shards[h%arenaShardCount]

	// The shard lock is held across lookup and insert so two concurrent
	// allocations of the same content cannot both miss the bucket.
	shard.mu.Lock()
	defer shard.mu.Unlock()

	for _, id := range shard.buckets[h] {
		if a.nodeEquals(id, tag, children, width) {
			return id
		}
	}

	node := GreenNode{
		Tag:      tag,
		Width:    width,
		Children: append([]GreenID(nil), children...),
	}
	a.mu.Lock()
	id := GreenID(len(a.nodes))
	a.nodes = append(a.nodes, node)
	a.mu.Unlock()

	shard.buckets[h] = append(shard.buckets[h], id)
	return id
}

// Node returns the stored node for id. The returned value must be treated
// as immutable; in particular its Children slice is shared with the arena.
func (a *Arena) Node(id GreenID) GreenNode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.nodes[id]
}

// Len returns the number of distinct nodes stored so far.
func (a *Arena) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.nodes)
}

// NewPlaceholder allocates a zero-child placeholder node of the given width,
// reserving a slot whose real content is not yet known.
func (a *Arena) NewPlaceholder(width int) GreenID {
	return a.Alloc(PlaceholderTag(), nil, width)
}

func (a *Arena) nodeEquals(id GreenID, tag Tag, children []GreenID, width int) bool {
	a.mu.RLock()
	n := a.nodes[id]
	a.mu.RUnlock()
	if n.Tag != tag || n.Width != width || len(n.Children) != len(children) {
		return false
	}
	for i, c := range n.Children {
		if c != children[i] {
			return false
		}
	}
	return true
}

func hashNode(tag Tag, children []GreenID, width int) uint64 {
	d := xxhash.New()
	var buf [8]byte
	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		d.Write(buf[:])
	}
	writeInt(int(tag.Kind))
	writeInt(tag.Rule)
	writeInt(len(tag.Token))
	d.WriteString(tag.Token)
	writeInt(width)
	writeInt(len(children))
	for _, c := range children {
		writeInt(int(c))
	}
	return d.Sum64()
}
