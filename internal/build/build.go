package build

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gerunddev/docbridge/internal/config"
	"github.com/gerunddev/docbridge/internal/convert"
	"github.com/gerunddev/docbridge/internal/docstring"
	"github.com/gerunddev/docbridge/internal/logger"
	"github.com/gerunddev/docbridge/internal/manifest"
	"github.com/gerunddev/docbridge/internal/state"
)

// Status is the outcome for a single object
type Status string

const (
	StatusConverted Status = "converted" // docstring changed since the last build
	StatusUnchanged Status = "unchanged"
	StatusExcluded  Status = "excluded" // kind excluded by config, passed through
	StatusFailed    Status = "failed"   // conversion error, passed through
)

// ObjectResult is the outcome for a single object
type ObjectResult struct {
	Name       string
	Kind       string
	Convention docstring.Convention
	Params     int
	Status     Status
	Err        error
}

// Result represents the result of a build
type Result struct {
	Output    *manifest.Manifest
	Objects   []ObjectResult
	Converted int
	Unchanged int
	Excluded  int
	Errors    []error
	StartTime time.Time
	EndTime   time.Time
}

// Builder converts every docstring of a manifest
type Builder struct {
	config *config.Config
	state  *state.State
	logger *logger.Logger
	DryRun bool
}

// NewBuilder creates a new builder instance
func NewBuilder(cfg *config.Config, st *state.State) *Builder {
	return &Builder{
		config: cfg,
		state:  st,
		logger: logger.Discard(),
	}
}

// SetLogger sets the logger used for build events
func (b *Builder) SetLogger(l *logger.Logger) {
	b.logger = l
}

// converted is what a worker hands back for one object
type converted struct {
	docstring string
	doc       *docstring.Docstring
	excluded  bool
	err       error
}

// Build converts all objects of m, read from source. Objects are converted concurrently; the
// output keeps the manifest order. A failing object keeps its original
// docstring and is reported in the result.
func (b *Builder) Build(ctx context.Context, source string, m *manifest.Manifest) (*Result, error) {
	result := &Result{
		Output:    &manifest.Manifest{Objects: make([]manifest.Object, len(m.Objects))},
		Objects:   make([]ObjectResult, len(m.Objects)),
		StartTime: time.Now(),
	}

	b.logger.BuildStarted(source, len(m.Objects))

	outcomes := make([]converted, len(m.Objects))
	if err := b.convertAll(ctx, m.Objects, outcomes); err != nil {
		return nil, err
	}

	for i, obj := range m.Objects {
		out := outcomes[i]
		res := ObjectResult{Name: obj.Name, Kind: obj.Kind}
		if out.doc != nil {
			res.Convention = out.doc.Convention()
			res.Params = out.doc.Params()
		}

		switch {
		case out.excluded:
			res.Status = StatusExcluded
			result.Excluded++
			b.logger.ObjectSkipped(obj.Name, "kind excluded")
		case out.err != nil:
			res.Status = StatusFailed
			res.Err = fmt.Errorf("%s: %w", obj.Name, out.err)
			result.Errors = append(result.Errors, res.Err)
			b.logger.ConversionError(obj.Name, out.err)
		case b.state.HasChanged(obj.Name, obj.Docstring):
			res.Status = StatusConverted
			result.Converted++
			b.logger.ObjectConverted(obj.Kind, obj.Name, res.Convention.String())
			if !b.DryRun {
				b.state.Update(obj.Name, obj.Kind, obj.Docstring, res.Convention.String())
			}
		default:
			res.Status = StatusUnchanged
			result.Unchanged++
			b.logger.ObjectSkipped(obj.Name, "unchanged")
		}

		result.Objects[i] = res
		result.Output.Objects[i] = manifest.Object{
			Kind:      obj.Kind,
			Name:      obj.Name,
			Docstring: out.docstring,
		}
	}

	result.EndTime = time.Now()
	b.logger.BuildCompleted(result.Converted, result.Unchanged+result.Excluded, len(result.Errors), result.EndTime.Sub(result.StartTime))

	return result, nil
}

// convertAll fans the objects out to the configured number of workers
func (b *Builder) convertAll(ctx context.Context, objects []manifest.Object, outcomes []converted) error {
	workers := b.config.Workers
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i] = b.convertObject(objects[i])
			}
		}()
	}

	var err error
feed:
	for i := range objects {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	return err
}

// convertObject converts a single docstring; each outcome slot is written
// by exactly one worker
func (b *Builder) convertObject(obj manifest.Object) converted {
	if b.config.Excluded(obj.Kind) {
		return converted{docstring: obj.Docstring, excluded: true}
	}

	doc := docstring.New(obj.Docstring)
	lines, err := convert.Convert(doc)
	if err != nil {
		return converted{docstring: obj.Docstring, doc: doc, err: err}
	}

	return converted{docstring: strings.Join(lines, "\n"), doc: doc}
}

// String returns a human-readable summary of the build result
func (r *Result) String() string {
	duration := r.EndTime.Sub(r.StartTime)
	return fmt.Sprintf(
		"Build complete: %d converted, %d unchanged, %d excluded, %d errors (took %v)",
		r.Converted,
		r.Unchanged,
		r.Excluded,
		len(r.Errors),
		duration,
	)
}
