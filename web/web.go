// Package web provides a read-only HTTP server over a ledger file.
//
// The server exposes a small JSON API for reading accounts and balances,
// optionally reloading the ledger when the file changes on disk.
//
// SECURITY WARNING: This server has no authentication and should only be
// bound to localhost (127.0.0.1). Do not expose it to untrusted networks.
package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/recount-app/recount/ledger"
	"github.com/recount-app/recount/parser"
)

type Server struct {
	Port         int
	Host         string
	Version      string
	CommitSHA    string
	WatchEnabled bool

	mu  sync.RWMutex
	doc *ledger.AccountsDocument

	// ledgerFile is the absolute path of the served file.
	ledgerFile string
}

func New(port int, ledgerFile string) *Server {
	return NewWithVersion(port, ledgerFile, "", "")
}

func NewWithVersion(port int, ledgerFile, version, commitSHA string) *Server {
	return &Server{
		Port:       port,
		Host:       "127.0.0.1",
		Version:    version,
		CommitSHA:  commitSHA,
		ledgerFile: ledgerFile,
	}
}

func (s *Server) Start(ctx context.Context) error {
	if s.ledgerFile == "" {
		return fmt.Errorf("ledger file is required")
	}

	if err := s.reloadDocument(); err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}

	if s.WatchEnabled {
		if err := s.startWatcher(ctx); err != nil {
			return fmt.Errorf("failed to start file watcher: %w", err)
		}
	}

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	return http.ListenAndServe(addr, s.router())
}

func (s *Server) router() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/accounts", s.handleGetAccounts)
	mux.HandleFunc("GET /api/balances", s.handleGetBalances)

	return mux
}

// reloadDocument parses the ledger file from disk and swaps in the new
// document. Caller must NOT hold the mutex.
func (s *Server) reloadDocument() error {
	source, err := os.ReadFile(s.ledgerFile)
	if err != nil {
		return err
	}

	doc, err := parser.ParseBytes(source)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()

	return nil
}

// startWatcher watches the ledger file and reloads it on changes.
func (s *Server) startWatcher(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(s.ledgerFile); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", s.ledgerFile, err)
	}

	go s.runWatcher(ctx, watcher)

	return nil
}

// runWatcher processes file system events with debouncing.
func (s *Server) runWatcher(ctx context.Context, watcher *fsnotify.Watcher) {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		_ = watcher.Close()
	}()

	// Debounce timer - editors often write files in multiple steps
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			// React to write/create/remove/rename events
			// (Remove/Rename are common in atomic saves)
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}

			debounceTimer = time.AfterFunc(debounceDelay, func() {
				s.handleFileChange(watcher)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}

// handleFileChange reloads the ledger and re-arms the watch. A file that
// fails to parse leaves the previous document in place.
func (s *Server) handleFileChange(watcher *fsnotify.Watcher) {
	if err := s.reloadDocument(); err != nil {
		log.Printf("Failed to reload ledger: %v", err)
		return
	}

	// Re-add to keep watching files replaced by atomic saves.
	if err := watcher.Add(s.ledgerFile); err != nil {
		log.Printf("Warning: failed to watch %s: %v", s.ledgerFile, err)
	}
}
