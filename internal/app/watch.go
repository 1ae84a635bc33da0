package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/philipparndt/colorcif/pkg/watcher"
)

// Watch renders input once and again every time it changes, until ctx is
// cancelled. Failed re-renders are reported through onError; the watch
// keeps running. The first render must succeed.
func (p *Pipeline) Watch(ctx context.Context, input, output string, debounce time.Duration, onResult func(*Result), onError func(error)) error {
	result, err := p.Run(ctx, input, output)
	if err != nil {
		return err
	}
	onResult(result)

	return p.WatchChanges(ctx, input, output, debounce, onResult, onError)
}

// WatchChanges is Watch without the first render, for callers that
// already hold a result for the current file.
func (p *Pipeline) WatchChanges(ctx context.Context, input, output string, debounce time.Duration, onResult func(*Result), onError func(error)) error {
	fw, err := watcher.NewFileWatcher(
		watcher.WithDebounce(debounce),
		watcher.WithErrorHandler(onError),
	)
	if err != nil {
		return err
	}
	defer fw.Close()

	var mu sync.Mutex
	callback := func(changedFile string) {
		mu.Lock()
		defer mu.Unlock()

		p.Logf("File changed: %s", changedFile)
		result, err := p.Run(ctx, input, output)
		if err != nil {
			onError(fmt.Errorf("re-render failed: %w", err))
			return
		}
		onResult(result)
	}

	if err := fw.Watch([]string{input}, callback); err != nil {
		return fmt.Errorf("failed to watch files: %w", err)
	}
	p.Logf("Watching file for changes: %s", input)

	fw.Run(ctx)
	return nil
}
