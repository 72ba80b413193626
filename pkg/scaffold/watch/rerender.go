package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	g8errors "mercator-hq/g8/pkg/g8/errors"
	"mercator-hq/g8/pkg/g8/props"
	"mercator-hq/g8/pkg/scaffold"
)

// Rerender renders input into a staging directory beside output and then
// replaces output with it. On failure output is left untouched and the
// staging directory is removed.
func Rerender(ctx context.Context, r *scaffold.Renderer, set *props.Set, input, output string) (*scaffold.Result, error) {
	stageRoot, err := os.MkdirTemp(filepath.Dir(output), "."+filepath.Base(output)+".g8-stage-*")
	if err != nil {
		return nil, g8errors.Wrap(g8errors.ErrorTypeFilesystem, err, "creating staging directory for %s", output)
	}
	defer os.RemoveAll(stageRoot)

	staging := filepath.Join(stageRoot, "out")
	result, err := r.With(scaffold.WithOutputLabel(output)).Render(ctx, set, input, staging)
	if err != nil {
		return nil, err
	}

	if err := os.RemoveAll(output); err != nil {
		return nil, g8errors.Wrap(g8errors.ErrorTypeFilesystem, err, "removing previous output %s", output)
	}
	if err := os.Rename(staging, output); err != nil {
		return nil, g8errors.Wrap(g8errors.ErrorTypeFilesystem, err, "moving staged output into %s", output)
	}
	return result, nil
}

// Run renders input into output once, which must not exist, and then
// re-renders on every change until ctx is cancelled. resolve is called
// before each render so property changes are picked up.
func Run(ctx context.Context, w *Watcher, r *scaffold.Renderer, resolve func() (*props.Set, error), input, output string) error {
	set, err := resolve()
	if err != nil {
		return err
	}
	if _, err := r.Render(ctx, set, input, output); err != nil {
		return fmt.Errorf("initial render: %w", err)
	}

	return w.Watch(ctx, func(ctx context.Context) error {
		set, err := resolve()
		if err != nil {
			return err
		}
		_, err = Rerender(ctx, r, set, input, output)
		return err
	})
}
