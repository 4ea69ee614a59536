package cloudsync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"bakery-backend/internal/models"
)

// Default is the process-wide syncer, set up in main. Nil when cloud
// mirroring is disabled.
var Default *Syncer

// NotifyChange records a local write on the default syncer, if any.
// Handlers call this after every successful mutation.
func NotifyChange() {
	if Default != nil {
		Default.NotifyChange()
	}
}

// Syncer mirrors the aggregate document to a jsonbin-style remote store.
//
// Writes push the whole document (PUT); a poll loop pulls the remote
// document (GET <url>/latest) and replaces local state with it. Pulls are
// suppressed for a short window after any local write so an in-flight edit
// is not clobbered. This is last-write-wins: concurrent sessions can
// silently overwrite each other and no merge is attempted.
type Syncer struct {
	url      string
	apiKey   string
	interval time.Duration
	suppress time.Duration
	client   *http.Client

	load    func() (models.AppData, error)
	replace func(models.AppData) error

	mu             sync.Mutex
	lastLocalWrite time.Time
	changes        chan struct{}
}

func New(url, apiKey string, interval, suppress time.Duration,
	load func() (models.AppData, error), replace func(models.AppData) error) *Syncer {
	return &Syncer{
		url:      url,
		apiKey:   apiKey,
		interval: interval,
		suppress: suppress,
		client:   &http.Client{Timeout: 15 * time.Second},
		load:     load,
		replace:  replace,
		changes:  make(chan struct{}, 1),
	}
}

// NotifyChange marks the local-write timestamp and queues a push. The
// queue has depth one: pushes always send the latest snapshot, so
// coalescing bursts is safe.
func (s *Syncer) NotifyChange() {
	s.mu.Lock()
	s.lastLocalWrite = time.Now()
	s.mu.Unlock()

	select {
	case s.changes <- struct{}{}:
	default:
	}
}

// Run drives pushes and the poll loop until ctx is cancelled. Failures are
// non-fatal: local state stays usable and the next cycle retries.
func (s *Syncer) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.changes:
			if err := s.Push(ctx); err != nil {
				log.Printf("[WARN] cloud push failed: %v", err)
			}
		case <-ticker.C:
			if !s.shouldPull(time.Now()) {
				continue
			}
			if err := s.Pull(ctx); err != nil {
				log.Printf("[WARN] cloud pull failed: %v", err)
			}
		}
	}
}

// shouldPull suppresses remote pulls right after a local write.
func (s *Syncer) shouldPull(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastLocalWrite) >= s.suppress
}

// Push uploads the current aggregate document.
func (s *Syncer) Push(ctx context.Context) error {
	data, err := s.load()
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Master-Key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("remote store answered %s", resp.Status)
	}
	return nil
}

// Pull fetches the latest remote document and replaces local state with it.
func (s *Syncer) Pull(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url+"/latest", nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Master-Key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("remote store answered %s", resp.Status)
	}

	// The store wraps the document in a {"record": ...} envelope. The
	// record goes through the same defaults merge as a backup import, so
	// a partial remote document (another client, older format) cannot
	// erase the packaging catalog or zero the settings.
	var envelope struct {
		Record json.RawMessage `json:"record"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decoding remote envelope: %w", err)
	}

	data, err := models.ParseDocument(envelope.Record)
	if err != nil {
		return fmt.Errorf("decoding remote document: %w", err)
	}

	return s.replace(data)
}
