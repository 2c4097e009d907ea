package note

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Remote is the external table created notes are copied into
type Remote interface {
	Insert(ctx context.Context, title string) error
}

// MirrorResult is the outcome of copying one created note
type MirrorResult struct {
	Title string
	Err   error
}

// Mirror copies created note titles into a Remote in the background.
// The local collection never depends on the outcome, results are only
// logged and published on Results.
type Mirror struct {
	log     *zap.SugaredLogger
	remote  Remote
	timeout time.Duration
	results chan MirrorResult
	wg      sync.WaitGroup
}

// NewMirror builds a Mirror keeping up to buffer unread results,
// later results are dropped until Results is drained.
func NewMirror(log *zap.SugaredLogger, remote Remote, timeout time.Duration, buffer int) *Mirror {
	if buffer < 0 {
		buffer = 0
	}
	return &Mirror{
		log:     log,
		remote:  remote,
		timeout: timeout,
		results: make(chan MirrorResult, buffer),
	}
}

// Created starts copying the title and returns immediately
func (m *Mirror) Created(title string) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		ctx, cancel := context.Background(), context.CancelFunc(func() {})
		if m.timeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, m.timeout)
		}
		defer cancel()

		err := m.remote.Insert(ctx, title)
		if err != nil {
			m.log.Errorw("failed to mirror note", "title", title, "ERROR", err)
		}

		select {
		case m.results <- MirrorResult{Title: title, Err: err}:
		default:
		}
	}()
}

func (m *Mirror) Results() <-chan MirrorResult {
	return m.results
}

// Wait blocks until every started copy finished
func (m *Mirror) Wait() {
	m.wg.Wait()
}

// Close waits for the running copies and closes Results.
// Created must not be called after Close.
func (m *Mirror) Close() {
	m.wg.Wait()
	close(m.results)
}
