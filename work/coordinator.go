// Package work coordinates the background tasks that share the
// document: the highlight-refresh task and the asynchronous save
// worker.
package work

import (
	"os"

	"github.com/hed-editor/hed/doc"
	"github.com/hed-editor/hed/log"
)

// SaveRequest carries the target path and an owned snapshot, so the
// worker never shares a lock with editing and a later Save As cannot
// leave a stale filename behind.
type SaveRequest struct {
	Path string
	Data []byte
	// Gen is the edit generation the snapshot was taken at; it rides
	// along unchanged so the editing loop can tell whether the result
	// still covers the latest edits.
	Gen uint64
}

// SaveResult reports one completed save back to the editing loop.
type SaveResult struct {
	Path  string
	Bytes int
	Gen   uint64
	Err   error
}

// Coordinator owns the save worker goroutine and the join handle of
// the in-flight highlight refresh.
type Coordinator struct {
	d *doc.Document

	refreshDone chan struct{}

	saveCh  chan SaveRequest
	results chan SaveResult
}

func NewCoordinator(d *doc.Document) *Coordinator {
	c := &Coordinator{
		d:       d,
		saveCh:  make(chan SaveRequest, 1),
		results: make(chan SaveResult, 4),
	}
	go c.saveLoop()
	return c
}

// ScheduleHighlight spawns a whole-document highlight recompute. Any
// still-running refresh is joined first, so refreshes are strictly
// sequential: the editing loop may block briefly on the tail of the
// previous keystroke's refresh, never on two at once.
func (c *Coordinator) ScheduleHighlight() {
	c.WaitHighlight()
	done := make(chan struct{})
	c.refreshDone = done
	go func() {
		c.d.RefreshHighlights()
		log.Debug(log.CatHighlight, "refresh complete, %d rows", func() int {
			c.d.RLock()
			defer c.d.RUnlock()
			return c.d.RowCount()
		}())
		close(done)
	}()
}

// WaitHighlight joins the in-flight refresh, if any.
func (c *Coordinator) WaitHighlight() {
	if c.refreshDone != nil {
		<-c.refreshDone
		c.refreshDone = nil
	}
}

// RequestSave hands a snapshot to the save worker. Blocks only when a
// previous request is still queued.
func (c *Coordinator) RequestSave(req SaveRequest) {
	c.saveCh <- req
}

// Results delivers save outcomes; the editing loop drains this into
// the status bar.
func (c *Coordinator) Results() <-chan SaveResult {
	return c.results
}

// Close joins the refresh task and stops the save worker after it has
// drained pending requests.
func (c *Coordinator) Close() {
	c.WaitHighlight()
	close(c.saveCh)
}

func (c *Coordinator) saveLoop() {
	for req := range c.saveCh {
		err := os.WriteFile(req.Path, req.Data, 0644)
		if err != nil {
			log.Error(log.CatSave, "write %s: %v", req.Path, err)
		} else {
			log.Info(log.CatSave, "wrote %s, %d bytes", req.Path, len(req.Data))
		}
		c.results <- SaveResult{Path: req.Path, Bytes: len(req.Data), Gen: req.Gen, Err: err}
	}
	close(c.results)
}
