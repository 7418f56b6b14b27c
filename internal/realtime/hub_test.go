package realtime

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeConn scripts inbound messages and records outbound writes.
type fakeConn struct {
	mu       sync.Mutex
	inbound  chan []byte
	written  [][]byte
	closed   chan struct{}
	closeOne sync.Once
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		inbound: make(chan []byte, 8),
		closed:  make(chan struct{}),
	}
}

func (f *fakeConn) ReadMessage() (int, []byte, error) {
	select {
	case msg, ok := <-f.inbound:
		if !ok {
			return 0, nil, assert.AnError
		}
		return 1, msg, nil
	case <-f.closed:
		return 0, nil, assert.AnError
	}
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if messageType == 1 {
		buf := make([]byte, len(data))
		copy(buf, data)
		f.written = append(f.written, buf)
	}
	return nil
}

func (f *fakeConn) SetReadLimit(int64) {}

func (f *fakeConn) SetReadDeadline(time.Time) error { return nil }

func (f *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (f *fakeConn) SetPongHandler(func(string) error) {}

func (f *fakeConn) Close() error {
	f.closeOne.Do(func() { close(f.closed) })
	return nil
}

func (f *fakeConn) textMessages() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]byte, len(f.written))
	copy(out, f.written)
	return out
}

func (f *fakeConn) waitForMessages(t *testing.T, n int) [][]byte {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if msgs := f.textMessages(); len(msgs) >= n {
			return msgs
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for %d messages, got %d", n, len(f.textMessages()))
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func joinMessage(userID int64) []byte {
	data, _ := json.Marshal(map[string]interface{}{"event": "join", "user_id": userID})
	return data
}

func serveAsync(h *Hub, conn *fakeConn) chan struct{} {
	done := make(chan struct{})
	go func() {
		h.Serve(conn)
		close(done)
	}()
	return done
}

func TestHub_JoinAndEmit(t *testing.T) {
	h := NewHub(zap.NewNop())

	conn := newFakeConn()
	done := serveAsync(h, conn)
	conn.inbound <- joinMessage(7)

	// Wait for the join to land before emitting.
	require.Eventually(t, func() bool {
		h.mu.RLock()
		defer h.mu.RUnlock()
		return len(h.rooms[7]) == 1
	}, 2*time.Second, 5*time.Millisecond)

	h.EmitToUser(7, "tx:new", map[string]interface{}{"title": "Coffee"})

	msgs := conn.waitForMessages(t, 1)

	var env envelope
	require.NoError(t, json.Unmarshal(msgs[0], &env))
	assert.Equal(t, "tx:new", env.Event)

	conn.Close()
	<-done
}

func TestHub_EmitToOtherRoomNotDelivered(t *testing.T) {
	h := NewHub(zap.NewNop())

	conn7 := newFakeConn()
	conn8 := newFakeConn()
	done7 := serveAsync(h, conn7)
	done8 := serveAsync(h, conn8)
	conn7.inbound <- joinMessage(7)
	conn8.inbound <- joinMessage(8)

	require.Eventually(t, func() bool {
		h.mu.RLock()
		defer h.mu.RUnlock()
		return len(h.rooms[7]) == 1 && len(h.rooms[8]) == 1
	}, 2*time.Second, 5*time.Millisecond)

	h.EmitToUser(7, "tx:new", map[string]interface{}{"title": "Coffee"})
	h.EmitToUser(7, "tx:summary:invalidate", map[string]interface{}{"user_id": 7})

	msgs := conn7.waitForMessages(t, 2)

	var first, second envelope
	require.NoError(t, json.Unmarshal(msgs[0], &first))
	require.NoError(t, json.Unmarshal(msgs[1], &second))
	assert.Equal(t, "tx:new", first.Event)
	assert.Equal(t, "tx:summary:invalidate", second.Event)

	// Room 8 saw nothing.
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, conn8.textMessages())

	conn7.Close()
	conn8.Close()
	<-done7
	<-done8
}

func TestHub_EmitToEmptyRoomIsNoop(t *testing.T) {
	h := NewHub(zap.NewNop())

	// Must not panic or block.
	h.EmitToUser(42, "tx:new", map[string]interface{}{})
}

func TestHub_DisconnectReleasesMembership(t *testing.T) {
	h := NewHub(zap.NewNop())

	conn := newFakeConn()
	done := serveAsync(h, conn)
	conn.inbound <- joinMessage(7)

	require.Eventually(t, func() bool {
		h.mu.RLock()
		defer h.mu.RUnlock()
		return len(h.rooms[7]) == 1
	}, 2*time.Second, 5*time.Millisecond)

	conn.Close()
	<-done

	h.mu.RLock()
	defer h.mu.RUnlock()
	assert.Empty(t, h.rooms)
}

func TestHub_JoinIgnoresInvalidUserID(t *testing.T) {
	h := NewHub(zap.NewNop())

	conn := newFakeConn()
	done := serveAsync(h, conn)
	conn.inbound <- joinMessage(0)
	conn.inbound <- []byte("not json")

	time.Sleep(20 * time.Millisecond)

	h.mu.RLock()
	assert.Empty(t, h.rooms)
	h.mu.RUnlock()

	conn.Close()
	<-done
}
