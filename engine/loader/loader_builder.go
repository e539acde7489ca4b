package loader

import (
	"log"
)

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithWorkers sets the maximum number of concurrent loads. Values below 1 are ignored.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - LoaderBuilderOption: a function that applies the worker count
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		if n >= 1 {
			l.workers = n
		}
	}
}

// WithLogger sets the logger used to report failed loads.
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - LoaderBuilderOption: a function that applies the logger
func WithLogger(logger *log.Logger) LoaderBuilderOption {
	return func(l *loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithItemProgress registers a callback fired after every finished item, successful or not.
//
// Parameters:
//   - fn: receives the item path and the finished/requested counts
//
// Returns:
//   - LoaderBuilderOption: a function that registers the callback
func WithItemProgress(fn func(path string, loaded, total int)) LoaderBuilderOption {
	return func(l *loader) {
		l.onProgress = fn
	}
}

// WithOnLoad registers a callback fired whenever every requested item has finished.
//
// Parameters:
//   - fn: the callback
//
// Returns:
//   - LoaderBuilderOption: a function that registers the callback
func WithOnLoad(fn func()) LoaderBuilderOption {
	return func(l *loader) {
		l.onLoad = fn
	}
}

// WithOnError registers a callback fired for each failed item.
//
// Parameters:
//   - fn: receives the item path and an error wrapping ErrAssetLoad
//
// Returns:
//   - LoaderBuilderOption: a function that registers the callback
func WithOnError(fn func(path string, err error)) LoaderBuilderOption {
	return func(l *loader) {
		l.onError = fn
	}
}
