package driver

import (
	"sync"

	"github.com/nihei9/durum/grammar"
	"github.com/nihei9/durum/tree"
)

// BuildFunc re-derives the root green node for the current buffer content.
// A matching engine walks text against the compiled grammar and allocates
// its result into the arena; unchanged subtrees dedupe to their existing
// nodes, so rebuilding after an edit reuses storage instead of copying it.
type BuildFunc func(g *grammar.Grammar, arena *tree.Arena, text string) tree.GreenID

// Session owns a text buffer and keeps a parse tree derived from it up to
// date as edits arrive. The grammar and arena are shared by reference with
// any number of builders; the session itself serializes edit application.
type Session struct {
	grammar *grammar.Grammar
	arena   *tree.Arena
	buffer  *TextBuffer
	build   BuildFunc
	edits   chan Edit

	// sendMu guards the edit channel's lifecycle so Push never races Close;
	// mu guards the buffer and the derived root.
	sendMu sync.RWMutex
	closed bool

	mu   sync.Mutex
	root *tree.RedNode
}

const editQueueCap = 64

func NewSession(g *grammar.Grammar, arena *tree.Arena, text string, build BuildFunc) *Session {
	s := &Session{
		grammar: g,
		arena:   arena,
		buffer:  NewTextBuffer(text),
		build:   build,
		edits:   make(chan Edit, editQueueCap),
	}
	s.rebuild()
	return s
}

// Push queues an edit for application. It reports ErrSessionClosed once
// Close has been called, and ErrEditQueueFull when no Serve loop is
// draining the queue fast enough. Push never blocks, so Close cannot be
// stalled behind a send into a full queue.
func (s *Session) Push(e Edit) error {
	s.sendMu.RLock()
	defer s.sendMu.RUnlock()
	if s.closed {
		return ErrSessionClosed
	}
	select {
	case s.edits <- e:
		return nil
	default:
		return ErrEditQueueFull
	}
}

// Close stops accepting edits. Serve returns after draining what was
// already queued.
func (s *Session) Close() {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.edits)
}

// Serve applies queued edits until the session is closed. Each invalid edit
// is reported to onErr (when non-nil) and skipped; the buffer and tree stay
// as they were, and the session keeps serving.
func (s *Session) Serve(onErr func(Edit, error)) {
	for e := range s.edits {
		if err := s.Apply(e); err != nil && onErr != nil {
			onErr(e, err)
		}
	}
}

// Apply validates and applies a single edit, then re-derives the tree root
// from the edited text.
func (s *Session) Apply(e Edit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.buffer.Apply(e); err != nil {
		return err
	}
	s.rebuildLocked()
	return nil
}

// Root returns the red root over the most recently derived tree.
func (s *Session) Root() *tree.RedNode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.root
}

// Text returns the current buffer content.
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffer.Text()
}

func (s *Session) rebuild() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rebuildLocked()
}

func (s *Session) rebuildLocked() {
	if s.build == nil {
		id := s.arena.NewPlaceholder(s.buffer.Len())
		s.root = s.arena.Root(id)
		return
	}
	id := s.build(s.grammar, s.arena, s.buffer.Text())
	s.root = s.arena.Root(id)
}
