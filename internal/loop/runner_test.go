package loop

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go-body-defense/internal/config"
)

type counterState struct {
	A, B  int
	Steps int
	Total float64
}

// counterSim держит инвариант A == B; снимок, увидевший A != B, был бы частичным.
type counterSim struct {
	state    counterState
	inUpdate atomic.Bool
	updates  atomic.Int64
	block    chan struct{}
}

func (s *counterSim) Update(dt float64) {
	s.inUpdate.Store(true)
	defer s.inUpdate.Store(false)
	if s.block != nil {
		<-s.block
	}
	s.state.A++
	time.Sleep(50 * time.Microsecond)
	s.state.B++
	s.state.Steps++
	s.state.Total += dt
	s.updates.Add(1)
}

func (s *counterSim) Snapshot() *counterState {
	cp := s.state
	return &cp
}

func TestStepClampsDelta(t *testing.T) {
	sim := &counterSim{}
	r := NewRunner[counterState](sim)
	r.Step(5)
	if got := r.Latest().Total; got != config.MaxDeltaTime {
		t.Errorf("Total = %v, want clamped %v", got, config.MaxDeltaTime)
	}
	if r.Ticks() != 1 {
		t.Errorf("Ticks = %d", r.Ticks())
	}
}

func TestLatestNeverPartial(t *testing.T) {
	sim := &counterSim{}
	r := NewRunner[counterState](sim)
	r.Start(context.Background())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			deadline := time.Now().Add(100 * time.Millisecond)
			for time.Now().Before(deadline) {
				snap := r.Latest()
				if snap.A != snap.B {
					t.Errorf("partial snapshot: %+v", snap)
					return
				}
				r.Do(func() { sim.state.A++; sim.state.B++ })
			}
		}()
	}
	wg.Wait()
	r.Stop()

	if sim.updates.Load() == 0 {
		t.Error("runner never stepped")
	}
}

func TestStopWaitsForInFlightUpdate(t *testing.T) {
	sim := &counterSim{block: make(chan struct{})}
	r := NewRunner[counterState](sim)
	r.Start(context.Background())

	// Ждём, пока шаг начнётся и застрянет
	deadline := time.Now().Add(2 * time.Second)
	for !sim.inUpdate.Load() {
		if time.Now().After(deadline) {
			t.Fatal("update never started")
		}
		time.Sleep(time.Millisecond)
	}

	stopped := make(chan struct{})
	go func() {
		r.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop returned while an update was in flight")
	case <-time.After(20 * time.Millisecond):
	}

	close(sim.block)
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
	if sim.inUpdate.Load() {
		t.Error("update aborted mid-way")
	}
	if snap := r.Latest(); snap.A != snap.B {
		t.Errorf("final snapshot partial: %+v", snap)
	}
}

func TestStopWithoutStart(t *testing.T) {
	r := NewRunner[counterState](&counterSim{})
	done := make(chan struct{})
	go func() {
		r.Stop()
		r.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop without Start blocked")
	}
}

func TestStartAfterStopIsNoop(t *testing.T) {
	sim := &counterSim{}
	r := NewRunner[counterState](sim)
	r.Stop()
	r.Start(context.Background())
	time.Sleep(5 * time.Second / config.TicksPerSecond)
	if n := sim.updates.Load(); n != 0 {
		t.Errorf("stopped runner ran %d updates", n)
	}
	done := make(chan struct{})
	go func() {
		r.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second Stop blocked")
	}
}

func TestContextCancelStops(t *testing.T) {
	r := NewRunner[counterState](&counterSim{})
	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)
	cancel()
	select {
	case <-r.Done():
	case <-time.After(time.Second):
		t.Fatal("runner ignored context cancellation")
	}
}
