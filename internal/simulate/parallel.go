package simulate

import (
	"golang.org/x/sync/errgroup"

	"github.com/boshu2/agentaudit/internal/types"
)

// generateSharded fills the session slice using a bounded worker pool.
// Each worker writes only its own index range of the preallocated slice,
// and aggregation runs once after all shards complete, so the result is
// identical to the sequential path.
func (s *Simulator) generateSharded(sessions []types.SessionMetrics) {
	var g errgroup.Group
	g.SetLimit(s.Workers)

	chunk := (len(sessions) + s.Workers - 1) / s.Workers
	for start := 0; start < len(sessions); start += chunk {
		end := start + chunk
		if end > len(sessions) {
			end = len(sessions)
		}
		start, end := start, end
		g.Go(func() error {
			for i := start; i < end; i++ {
				sessions[i] = s.session(i)
			}
			return nil
		})
	}
	// Workers cannot fail: sessions are pure arithmetic.
	_ = g.Wait()
}
