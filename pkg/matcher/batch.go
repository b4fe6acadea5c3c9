package matcher

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"
)

// BatchOptions configures Batch.
type BatchOptions struct {
	Options
	// Workers is the number of goroutines; values below 1 mean one.
	Workers int
	// KeepGoing records hard errors per sequence instead of aborting.
	KeepGoing bool
}

// BatchResult holds the per-sequence outcomes of a batch in input order.
type BatchResult struct {
	Results []Result
	// Errors holds the hard error of each sequence, nil where it matched.
	Errors    []error
	Unmatched *Tracker
}

// Err returns the aggregate *UnmatchedError of the batch, or nil.
func (b *BatchResult) Err() error {
	return b.Unmatched.Err()
}

// Failed counts the sequences that hit a hard error.
func (b *BatchResult) Failed() int {
	n := 0
	for _, err := range b.Errors {
		if err != nil {
			n++
		}
	}
	return n
}

// Batch matches seqs over a pool of workers. Each worker owns a session
// over a contiguous shard of the input; their trackers are merged once all
// are done. Without KeepGoing the first hard error cancels the batch.
func Batch(ctx context.Context, cat Catalog, seqs []string, opts BatchOptions) (*BatchResult, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(seqs) {
		workers = max(len(seqs), 1)
	}

	res := &BatchResult{
		Results:   make([]Result, len(seqs)),
		Errors:    make([]error, len(seqs)),
		Unmatched: NewTracker(),
	}
	sessions := make([]*Session, workers)
	shard := (len(seqs) + workers - 1) / workers

	p := pool.New().WithMaxGoroutines(workers).WithContext(ctx)
	if !opts.KeepGoing {
		p = p.WithCancelOnError().WithFirstError()
	}
	for w := 0; w < workers; w++ {
		lo, hi := w*shard, min((w+1)*shard, len(seqs))
		sess := NewSession(cat, opts.Options)
		sessions[w] = sess
		p.Go(func(ctx context.Context) error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				r, err := sess.Match(seqs[i])
				if err != nil {
					res.Errors[i] = err
					if !opts.KeepGoing {
						return fmt.Errorf("sequence %d: %w", i+1, err)
					}
					continue
				}
				res.Results[i] = r
			}
			return nil
		})
	}
	err := p.Wait()

	for _, sess := range sessions {
		res.Unmatched.Merge(sess.Tracker())
	}
	if err != nil {
		return res, err
	}
	return res, nil
}
