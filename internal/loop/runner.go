// Package loop drives a simulation on its own goroutine at a fixed cadence.
package loop

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"go-body-defense/internal/config"
)

// Simulation — то, что умеет крутить Runner.
type Simulation[S any] interface {
	Update(deltaTime float64)
	Snapshot() *S
}

// Runner вызывает Update с частотой TicksPerSecond. Каждый Update и каждая
// команда Do выполняются целиком под одним мьютексом, после чего свежий
// снимок публикуется атомарной заменой указателя.
type Runner[S any] struct {
	sim    Simulation[S]
	period time.Duration

	mu     sync.Mutex
	latest atomic.Pointer[S]
	ticks  atomic.Int64

	life    sync.Mutex // Защищает cancel и stopped
	cancel  context.CancelFunc
	stopped bool
	done    chan struct{}
}

// NewRunner создаёт раннер и сразу публикует начальный снимок.
func NewRunner[S any](sim Simulation[S]) *Runner[S] {
	r := &Runner[S]{
		sim:    sim,
		period: time.Second / config.TicksPerSecond,
		done:   make(chan struct{}),
	}
	r.latest.Store(sim.Snapshot())
	return r
}

// Start запускает цикл в отдельной горутине. Повторный вызов и вызов
// после Stop ничего не делают.
func (r *Runner[S]) Start(ctx context.Context) {
	r.life.Lock()
	defer r.life.Unlock()
	if r.stopped || r.cancel != nil {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	go r.run(ctx)
}

func (r *Runner[S]) run(ctx context.Context) {
	defer close(r.done)
	log.Printf("loop: started at %d ticks/s", config.TicksPerSecond)

	ticker := time.NewTicker(r.period)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			log.Printf("loop: stopped after %d ticks", r.ticks.Load())
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			r.Step(dt)
		}
	}
}

// Step выполняет один шаг симуляции. Большие паузы обрезаются до MaxDeltaTime.
func (r *Runner[S]) Step(dt float64) {
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sim.Update(dt)
	r.ticks.Add(1)
	r.latest.Store(r.sim.Snapshot())
}

// Do выполняет команду ввода между шагами симуляции и публикует снимок.
func (r *Runner[S]) Do(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn()
	r.latest.Store(r.sim.Snapshot())
}

// Latest возвращает последний опубликованный снимок. Снимок не меняется после публикации.
func (r *Runner[S]) Latest() *S {
	return r.latest.Load()
}

// Ticks — сколько шагов выполнено.
func (r *Runner[S]) Ticks() int64 {
	return r.ticks.Load()
}

// Stop останавливает цикл и ждёт завершения текущего шага.
func (r *Runner[S]) Stop() {
	r.life.Lock()
	if !r.stopped {
		r.stopped = true
		if r.cancel == nil {
			close(r.done)
		} else {
			r.cancel()
		}
	}
	r.life.Unlock()
	<-r.done
}

// Done закрывается, когда цикл завершён.
func (r *Runner[S]) Done() <-chan struct{} {
	return r.done
}
