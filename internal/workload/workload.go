// Package workload provides the built-in units of work that can be
// benchmarked by name. Each workload is a self-contained function with no
// shared mutable state, so it stays safe under concurrent callers.
package workload

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/ciricc/go-ratebench/pkg/ratebench"
)

// Registry maps workload names to runnable work functions.
type Registry struct {
	works map[string]ratebench.Work
}

// NewRegistry returns a registry populated with the built-in workloads.
func NewRegistry() *Registry {
	return &Registry{
		works: map[string]ratebench.Work{
			"noop":     noopWork(),
			"sleep1ms": sleepWork(time.Millisecond),
			"sha256":   sha256Work(),
			"json":     jsonWork(),
			"sort":     sortWork(),
			"atomic":   atomicWork(),
		},
	}
}

// Register adds a caller-supplied workload under name. Names of built-in
// workloads are taken; registering over any existing name is an error.
func (r *Registry) Register(name string, work ratebench.Work) error {
	if name == "" {
		return fmt.Errorf("workload name must not be empty")
	}
	if work == nil {
		return fmt.Errorf("workload %s must not be nil", name)
	}
	if _, ok := r.works[name]; ok {
		return fmt.Errorf("workload already registered: %s", name)
	}

	r.works[name] = work

	return nil
}

// Lookup returns the work function registered under name.
func (r *Registry) Lookup(name string) (ratebench.Work, error) {
	work, ok := r.works[name]
	if !ok {
		return nil, fmt.Errorf("unknown workload: %s", name)
	}

	return work, nil
}

// Names returns the registered workload names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.works))
	for name := range r.works {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func noopWork() ratebench.Work {
	return func() error {
		return nil
	}
}

func sleepWork(d time.Duration) ratebench.Work {
	return func() error {
		time.Sleep(d)
		return nil
	}
}

func sha256Work() ratebench.Work {
	payload := make([]byte, 1024)
	for i := range payload {
		payload[i] = byte(i)
	}

	return func() error {
		sum := sha256.Sum256(payload)
		if sum == [32]byte{} {
			return fmt.Errorf("unexpected zero digest")
		}

		return nil
	}
}

func jsonWork() ratebench.Work {
	doc := []byte(`{"id":42,"name":"ratebench","tags":["micro","rate"],"nested":{"enabled":true,"weight":0.25}}`)

	return func() error {
		var parsed map[string]any
		if err := json.Unmarshal(doc, &parsed); err != nil {
			return err
		}

		return nil
	}
}

func sortWork() ratebench.Work {
	base := make([]int, 1024)
	for i := range base {
		base[i] = len(base) - i
	}

	return func() error {
		vals := make([]int, len(base))
		copy(vals, base)
		sort.Ints(vals)

		return nil
	}
}

func atomicWork() ratebench.Work {
	var counter atomic.Int64

	return func() error {
		counter.Add(1)
		return nil
	}
}
