package session

import (
	"context"
	"time"
)

// RevealTask is the cancellable scheduled work that types a bot reply into
// the transcript one character per tick. At most one task is active per
// session; starting a new turn cancels the previous task and leaves its
// partial text standing.
type RevealTask struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Cancel stops the task. The partially revealed text is not completed.
func (t *RevealTask) Cancel() {
	t.cancel()
}

// Done is closed when the task finishes, whether it revealed the full text
// or was cancelled.
func (t *RevealTask) Done() <-chan struct{} {
	return t.done
}

// startReveal begins revealing full into the message at index idx. The caller
// holds the session lock.
func (s *Session) startReveal(full string, idx int) *RevealTask {
	ctx, cancel := context.WithCancel(context.Background())
	task := &RevealTask{cancel: cancel, done: make(chan struct{})}
	runes := []rune(full)
	interval := s.revealInterval

	go func() {
		defer close(task.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for i := 0; i < len(runes); {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				i++
				s.mu.Lock()
				s.messages[idx].Text = string(runes[:i])
				s.mu.Unlock()
			}
		}
		s.speak(full)
	}()

	return task
}
