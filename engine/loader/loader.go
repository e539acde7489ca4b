package loader

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// LoaderBackendType identifies the model file format backend to use.
type LoaderBackendType int

const (
	// BackendTypeGLTF selects the glTF/GLB loader backend.
	BackendTypeGLTF LoaderBackendType = iota
)

// DefaultWorkers is the default number of concurrent asset loads.
const DefaultWorkers = 4

var (
	// ErrAssetLoad wraps every failure reported through a Future.
	ErrAssetLoad = errors.New("asset load failed")

	// ErrUnsupportedFormat is returned for paths whose extension no backend handles.
	ErrUnsupportedFormat = errors.New("unsupported model format")
)

// Future is the pending result of one asset load.
type Future struct {
	path  string
	done  chan struct{}
	asset *Asset
	err   error
}

func newFuture(path string) *Future {
	return &Future{path: path, done: make(chan struct{})}
}

func (f *Future) resolve(asset *Asset, err error) {
	f.asset, f.err = asset, err
	close(f.done)
}

// Path returns the path the future is loading.
func (f *Future) Path() string {
	return f.path
}

// Done returns a channel closed once the load finishes.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Ready reports whether the load has finished, without blocking.
func (f *Future) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the load finishes.
//
// Returns:
//   - *Asset: the loaded asset, nil on failure
//   - error: an error wrapping ErrAssetLoad on failure
func (f *Future) Wait() (*Asset, error) {
	<-f.done
	return f.asset, f.err
}

// Loader loads model assets asynchronously on a worker pool and caches them by path.
//
// Progress, load and error callbacks run on worker goroutines.
type Loader interface {
	// Load starts loading the asset at path, or returns the in-flight or completed future for it.
	// Failed loads are evicted so a later Load retries.
	//
	// Parameters:
	//   - path: the model file path
	//
	// Returns:
	//   - *Future: the pending result
	Load(path string) *Future

	// LoadAll starts a load for each path.
	//
	// Parameters:
	//   - paths: the model file paths
	//
	// Returns:
	//   - []*Future: one future per path, in order
	LoadAll(paths []string) []*Future

	// Progress returns how many requested items have finished and how many were requested.
	Progress() (loaded, total int)
}

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.Mutex

	backend loaderBackend
	pool    worker.DynamicWorkerPool
	workers int
	logger  *log.Logger

	cache  map[string]*Future
	nextID int
	loaded int
	total  int

	onProgress func(path string, loaded, total int)
	onLoad     func()
	onError    func(path string, err error)
}

var _ Loader = &loader{}

// NewLoader creates a new Loader instance with the specified backend type and options applied.
//
// Parameters:
//   - backendType: the type of loader backend to use (e.g., BackendTypeGLTF)
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided backend and options
func NewLoader(backendType LoaderBackendType, options ...LoaderBuilderOption) Loader {
	l := &loader{
		workers: DefaultWorkers,
		logger:  log.New(os.Stderr, "[LOADER] ", log.LstdFlags),
		cache:   make(map[string]*Future),
	}

	switch backendType {
	case BackendTypeGLTF:
		l.backend = newGLTFLoaderBackend()
	}

	for _, option := range options {
		option(l)
	}

	l.pool = worker.NewDynamicWorkerPool(l.workers, 64, 1*time.Second)
	return l
}

func (l *loader) Load(path string) *Future {
	f, fresh := l.reserve(path)
	if !fresh {
		return f
	}

	if err := checkFormat(path); err != nil {
		l.finish(f, nil, err)
		return f
	}

	l.submit(f, func() (*Asset, error) {
		return l.backend.Load(path)
	})
	return f
}

func (l *loader) LoadAll(paths []string) []*Future {
	out := make([]*Future, len(paths))
	for i, p := range paths {
		out[i] = l.Load(p)
	}
	return out
}

func (l *loader) Progress() (int, int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded, l.total
}

// reserve returns the cached future for key, or registers a new one and counts it as requested.
func (l *loader) reserve(key string) (*Future, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if f, ok := l.cache[key]; ok {
		return f, false
	}
	f := newFuture(key)
	l.cache[key] = f
	l.total++
	return f, true
}

func (l *loader) submit(f *Future, load func() (*Asset, error)) {
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.mu.Unlock()

	l.pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			asset, err := load()
			l.finish(f, asset, err)
			return asset, err
		},
	})
}

// finish updates progress, fires callbacks outside the lock and then resolves f, so waiters
// observe every callback of their item.
func (l *loader) finish(f *Future, asset *Asset, err error) {
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrAssetLoad, f.path, err)
		asset = nil
	}

	l.mu.Lock()
	if err != nil && l.cache[f.path] == f {
		delete(l.cache, f.path)
	}
	l.loaded++
	loaded, total := l.loaded, l.total
	l.mu.Unlock()

	if err != nil {
		l.logger.Printf("%v", err)
		if l.onError != nil {
			l.onError(f.path, err)
		}
	}
	if l.onProgress != nil {
		l.onProgress(f.path, loaded, total)
	}
	if loaded == total && l.onLoad != nil {
		l.onLoad()
	}

	f.resolve(asset, err)
}

// checkFormat rejects extensions no backend handles. Currently only glTF/GLB is supported.
func checkFormat(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gltf", ".glb":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
