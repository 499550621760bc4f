package vecload

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/vecload/blobstore"
	"github.com/hupe1980/vecload/resource"
	"golang.org/x/sync/errgroup"
)

// Job is one unit of IngestMany.
type Job struct {
	// Path is a file path, or a blob name when Store is set.
	Path string
	// Store, if set, is read with IngestBlob semantics.
	Store blobstore.BlobStore
	// Dst must not be shared with any other job.
	Dst *Matrix
}

// IngestMany runs jobs in parallel, each into its own matrix.
//
// Parallelism comes from the configured resource controller, or WithWorkers
// when none is set. A failing job does not stop the others; their errors are
// joined, each prefixed with the job index. reports[i] belongs to jobs[i] and
// is never nil once the jobs have started.
func IngestMany(ctx context.Context, jobs []Job, optFns ...Option) ([]*Report, error) {
	if err := checkDistinct(jobs); err != nil {
		return nil, err
	}

	o := applyOptions(optFns)
	ctrl := o.controller
	if ctrl == nil {
		ctrl = resource.NewController(resource.Config{MaxWorkers: int64(o.workers)})
	}

	reports := make([]*Report, len(jobs))
	errs := make([]error, len(jobs))

	var g errgroup.Group
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctrl.AcquireWorker(ctx); err != nil {
				reports[i] = &Report{}
				errs[i] = fmt.Errorf("job %d (%s): %w", i, job.Path, err)
				return nil
			}
			defer ctrl.ReleaseWorker()

			var err error
			if job.Store != nil {
				reports[i], err = ingestBlob(ctx, job.Store, job.Path, job.Dst, o)
			} else {
				reports[i], err = ingestFile(ctx, job.Path, job.Dst, o)
			}
			if err != nil {
				errs[i] = fmt.Errorf("job %d (%s): %w", i, job.Path, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	return reports, errors.Join(errs...)
}

// checkDistinct rejects jobs whose matrices are the same or share storage.
func checkDistinct(jobs []Job) error {
	byMatrix := make(map[*Matrix]int, len(jobs))
	byData := make(map[*float32]int, len(jobs))
	for i, job := range jobs {
		if job.Dst == nil {
			continue
		}
		if prev, ok := byMatrix[job.Dst]; ok {
			return fmt.Errorf("%w: jobs %d and %d", ErrSharedDestination, prev, i)
		}
		byMatrix[job.Dst] = i

		if len(job.Dst.Data) == 0 {
			continue
		}
		first := &job.Dst.Data[0]
		if prev, ok := byData[first]; ok {
			return fmt.Errorf("%w: jobs %d and %d", ErrSharedDestination, prev, i)
		}
		byData[first] = i
	}
	return nil
}
