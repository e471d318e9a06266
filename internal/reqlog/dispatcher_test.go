package reqlog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu      sync.Mutex
	entries []Entry
	fail    bool
}

func (s *fakeStore) Save(ctx context.Context, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("store unavailable")
	}
	s.entries = append(s.entries, e)
	return nil
}

func (s *fakeStore) saved() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestMiddlewareRecordsRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := &fakeStore{}
	d := NewDispatcher(store)

	r := gin.New()
	r.Use(d.Middleware())
	r.GET("/pets", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})

	req := httptest.NewRequest(http.MethodGet, "/pets?x=1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	waitFor(t, func() bool { return len(store.saved()) == 1 })

	e := store.saved()[0]
	assert.Equal(t, http.MethodGet, e.Method)
	assert.Equal(t, "/pets?x=1", e.URL)
	assert.Equal(t, http.StatusOK, e.Status)
	assert.WithinDuration(t, time.Now(), e.Timestamp, 5*time.Second)
}

func TestMiddlewareRecordsErrorStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := &fakeStore{}
	d := NewDispatcher(store)

	r := gin.New()
	r.Use(d.Middleware())

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	waitFor(t, func() bool { return len(store.saved()) == 1 })
	assert.Equal(t, http.StatusNotFound, store.saved()[0].Status)
}

func TestStoreFailureDoesNotAffectRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := &fakeStore{fail: true}
	d := NewDispatcher(store)

	r := gin.New()
	r.Use(d.Middleware())
	r.GET("/pets", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})

	// a resposta sai normalmente mesmo com o store quebrado
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/pets", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestDispatchDropsWhenQueueFull(t *testing.T) {
	blocked := make(chan struct{})
	store := &blockingStore{release: blocked}
	d := NewDispatcher(store)

	// enche a fila além da capacidade; nada pode bloquear
	done := make(chan struct{})
	go func() {
		for i := 0; i < 500; i++ {
			d.Dispatch(Entry{Method: http.MethodGet, URL: "/x", Status: 200})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}
	close(blocked)
}

type blockingStore struct {
	release chan struct{}
}

func (s *blockingStore) Save(ctx context.Context, e Entry) error {
	<-s.release
	return nil
}
