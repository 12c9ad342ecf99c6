// Package progress drives the cosmetic generation progress bar. The real
// remote latency is unknown and unbounded, so the percentage shown to the
// operator is simulated: it climbs steadily, stalls just under done, and only
// jumps to 100 when the real result actually lands.
package progress

import (
	"math/rand/v2"
	"sync"
	"time"
)

const (
	// DefaultInterval is the tick period for the simulated progress.
	DefaultInterval = 325 * time.Millisecond

	// ceiling keeps the bar from looking finished while the remote call is
	// still in flight. Only Complete may set 100.
	ceiling = 97.0

	maxLogLines = 8

	logLineChance = 0.45
)

// Snapshot is a point-in-time copy of the simulator state, safe to hand to
// the UI.
type Snapshot struct {
	Percent  float64  `json:"percent"`
	Stage    string   `json:"stage"`
	LogLines []string `json:"log_lines"`
	Running  bool     `json:"running"`
}

type Simulator struct {
	interval time.Duration

	mu       sync.Mutex
	percent  float64
	stage    string
	logLines []string
	running  bool
	ticker   *time.Ticker
	done     chan struct{}
}

func NewSimulator() *Simulator {
	return NewSimulatorWithInterval(DefaultInterval)
}

// NewSimulatorWithInterval exists so tests can tick fast.
func NewSimulatorWithInterval(interval time.Duration) *Simulator {
	return &Simulator{interval: interval}
}

// Start resets the simulator to zero and begins ticking. Starting an
// already-running simulator is a no-op.
func (s *Simulator) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	s.percent = 0
	s.stage = stageFor(0)
	s.logLines = nil
	s.running = true
	s.ticker = time.NewTicker(s.interval)
	s.done = make(chan struct{})

	go s.loop(s.ticker, s.done)
}

func (s *Simulator) loop(ticker *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-ticker.C:
			s.tick()
		case <-done:
			return
		}
	}
}

func (s *Simulator) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	increment := 2.0 + rand.Float64()*9.0
	s.percent += increment
	if s.percent > ceiling {
		s.percent = ceiling
	}
	s.stage = stageFor(s.percent)

	if rand.Float64() < logLineChance {
		s.pushLogLine(randomLogLine())
	}
}

// pushLogLine prepends (most recent first) and evicts past the cap.
// Caller holds the lock.
func (s *Simulator) pushLogLine(line string) {
	s.logLines = append([]string{line}, s.logLines...)
	if len(s.logLines) > maxLogLines {
		s.logLines = s.logLines[:maxLogLines]
	}
}

// Complete stops the ticker and pins the bar at exactly 100. The only way
// percent ever reaches 100.
func (s *Simulator) Complete() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
	s.percent = 100
	s.stage = stageDone
}

// Stop halts the ticker without asserting success; percent stays wherever
// the last tick left it.
func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
}

func (s *Simulator) stopLocked() {
	if !s.running {
		return
	}
	s.running = false
	s.ticker.Stop()
	close(s.done)
	s.ticker = nil
	s.done = nil
}

// Snapshot returns a copy of the current state.
func (s *Simulator) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]string, len(s.logLines))
	copy(lines, s.logLines)

	return Snapshot{
		Percent:  s.percent,
		Stage:    s.stage,
		LogLines: lines,
		Running:  s.running,
	}
}
