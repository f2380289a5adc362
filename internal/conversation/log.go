package conversation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yaronsalon/salon-ai-assistant/internal/emotion"
)

// Entry is one processed message turn. Entries are append-only and never
// rewritten.
type Entry struct {
	ID        string        `json:"id"`
	Phone     string        `json:"phone"`
	Message   string        `json:"message"`
	Response  string        `json:"response"`
	Emotion   emotion.Label `json:"emotion"`
	Timestamp time.Time     `json:"timestamp"`
}

// Snapshot is the derived analytics view over the full log history.
type Snapshot struct {
	TotalMessages int                   `json:"totalMessages"`
	EmotionStats  map[emotion.Label]int `json:"emotionStats"`
	LastMessage   *Entry                `json:"lastMessage,omitempty"`
	Recent        []Entry               `json:"recentMessages"`
}

// recentLimit bounds the Recent slice in snapshots, not the log itself.
const recentLimit = 10

// Recorder is the append-only conversation log consumed by the pipeline
// and the stats surface.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
	Snapshot(ctx context.Context) (Snapshot, error)
}

// MemoryLog keeps the conversation log in process memory. Appends are
// mutex-serialized so concurrent HTTP handlers stay safe. The log grows
// for the process lifetime; there is no eviction.
type MemoryLog struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemoryLog creates an empty in-memory conversation log.
func NewMemoryLog() *MemoryLog {
	return &MemoryLog{}
}

// Record appends a turn to the log, filling ID and timestamp when unset.
func (l *MemoryLog) Record(ctx context.Context, e Entry) error {
	stampEntry(&e)

	l.mu.Lock()
	l.entries = append(l.entries, e)
	l.mu.Unlock()
	return nil
}

// Snapshot computes totals and the emotion histogram over the full
// history at call time.
func (l *MemoryLog) Snapshot(ctx context.Context) (Snapshot, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return buildSnapshot(l.entries), nil
}

func stampEntry(e *Entry) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
}

func buildSnapshot(entries []Entry) Snapshot {
	snap := Snapshot{
		TotalMessages: len(entries),
		EmotionStats:  make(map[emotion.Label]int),
		Recent:        []Entry{},
	}
	for _, e := range entries {
		snap.EmotionStats[e.Emotion]++
	}
	if n := len(entries); n > 0 {
		last := entries[n-1]
		snap.LastMessage = &last

		start := n - recentLimit
		if start < 0 {
			start = 0
		}
		snap.Recent = append(snap.Recent, entries[start:]...)
	}
	return snap
}
