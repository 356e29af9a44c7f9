// Package watch implements dev-mode live reload: a filesystem watcher on
// the content directory plus a websocket hub that notifies connected
// browsers after a change burst settles.
package watch

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"

	"github.com/arvidh/docread/internal/search"
)

// ReloadMessage is broadcast to browsers when content changed.
const ReloadMessage = "reload"

// Hub tracks connected browsers and broadcasts reload messages.
type Hub struct {
	mu       sync.Mutex
	conns    map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			// Live reload is a dev-mode convenience on localhost.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler upgrades incoming connections and registers them with the hub.
func (h *Hub) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("watch: upgrading connection: %v", err)
			return
		}
		h.mu.Lock()
		h.conns[conn] = true
		h.mu.Unlock()

		// Drain messages until the browser goes away.
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					h.drop(conn)
					return
				}
			}
		}()
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()
}

// Broadcast sends msg to every connected browser. Dead connections are
// dropped along the way.
func (h *Hub) Broadcast(msg string) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			h.drop(c)
		}
	}
}

// Count returns the number of connected browsers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Watcher watches a content directory and collapses change bursts into a
// single onChange call per quiet period.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce *search.Debouncer
	onChange func()
	done     chan struct{}
}

// NewWatcher starts watching dir. quiet <= 0 selects the default
// debounce period.
func NewWatcher(dir string, quiet time.Duration, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		fsw:      fsw,
		debounce: search.NewDebouncer(quiet),
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				w.debounce.Trigger(w.onChange)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("watch: %v", err)
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher and cancels any pending notification.
func (w *Watcher) Close() error {
	close(w.done)
	w.debounce.Stop()
	return w.fsw.Close()
}
