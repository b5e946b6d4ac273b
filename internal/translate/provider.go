// Package translate sends batches of subtitle text to a translation
// provider and reconciles what comes back with what was asked for.
package translate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"sync"
)

// ErrRateLimited is returned by providers when the remote service asks the
// caller to slow down. The retry decorator backs off on it.
var ErrRateLimited = errors.New("rate limited")

// Provider translates an ordered batch of strings. The result should hold
// one translation per input, in order; callers must tolerate a shorter
// result.
type Provider interface {
	Name() string
	Translate(ctx context.Context, batch []string) ([]string, error)
}

// Options configures a provider instance.
type Options struct {
	APIKey      string
	BaseURL     string
	Model       string
	Context     string // one-line description of the material being translated
	Temperature float64
	HTTPClient  *http.Client
}

// Factory builds a provider from options. Providers register a factory
// from their init function.
type Factory func(opts Options) (Provider, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register adds a provider factory under its name, replacing any previous
// registration. Safe for concurrent use.
func Register(name string, fn Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// New instantiates a registered provider by name.
func New(name string, opts Options) (Provider, error) {
	registryMu.RLock()
	fn, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("translation provider %q not registered", name)
	}
	return fn(opts)
}

// List returns the registered provider names, sorted.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
