package matcher

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ChrisMcGann/modmatch/pkg/core"
	"github.com/ChrisMcGann/modmatch/pkg/sequence"
)

var batchSeqs = []string{
	"PEPM[Oxidation]K",
	"AK[Bogus]",
	"PEPS[79.9663]K",
	"[Acetyl]PEPK",
	"PEPK[Bogus]R",
	"C[57.021464]PEPTIDE",
	"K[15.0][16.0]",
}

func TestBatchKeepGoing(t *testing.T) {
	for _, workers := range []int{1, 3, 16} {
		res, err := Batch(context.Background(), core.DefaultCatalog(), batchSeqs, BatchOptions{
			Workers:   workers,
			KeepGoing: true,
		})
		if err != nil {
			t.Fatalf("workers=%d: Batch() error = %v", workers, err)
		}
		for i, r := range res.Results {
			if res.Errors[i] != nil {
				continue
			}
			if r.Sequence != batchSeqs[i] {
				t.Errorf("workers=%d: result %d is %q, want %q", workers, i, r.Sequence, batchSeqs[i])
			}
		}
		if res.Failed() != 1 || !errors.Is(res.Errors[3], sequence.ErrAnnotationBeforeResidue) {
			t.Errorf("workers=%d: errors = %v", workers, res.Errors)
		}
		want := []string{"K[15.0][16.0]", "K[Bogus]"}
		if diff := cmp.Diff(want, res.Unmatched.Report()); diff != "" {
			t.Errorf("workers=%d: unmatched mismatch (-want +got):\n%s", workers, diff)
		}
	}
}

func TestBatchStopsOnError(t *testing.T) {
	_, err := Batch(context.Background(), core.DefaultCatalog(), batchSeqs, BatchOptions{Workers: 1})
	var perr *sequence.ParseError
	if !errors.As(err, &perr) {
		t.Errorf("Batch() error = %v, want *sequence.ParseError", err)
	}
}

func TestBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Batch(ctx, core.DefaultCatalog(), batchSeqs, BatchOptions{Workers: 2, KeepGoing: true})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Batch() error = %v, want context.Canceled", err)
	}
}

func TestBatchEmpty(t *testing.T) {
	res, err := Batch(context.Background(), core.DefaultCatalog(), nil, BatchOptions{Workers: 4})
	if err != nil {
		t.Fatalf("Batch() error = %v", err)
	}
	if len(res.Results) != 0 || res.Err() != nil {
		t.Errorf("Batch(nil) = %+v", res)
	}
}
