package renderer

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PixelResult is one finished pixel sent from a worker to the collector
type PixelResult struct {
	Row   int // Image row, 0 = top
	Col   int
	Color core.Color
}

// WorkerPool farms image rows out to workers.
// Workers are producers on a shared results channel; the caller's goroutine is the only consumer.
type WorkerPool struct {
	raytracer  *Raytracer
	numWorkers int
	rowQueue   chan int
	results    chan PixelResult
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &WorkerPool{
		raytracer:  raytracer,
		numWorkers: numWorkers,
		rowQueue:   make(chan int),
		results:    make(chan PixelResult, raytracer.config.Width),
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders every row and returns all pixel results in arrival order
func (wp *WorkerPool) Run(ctx context.Context) ([]PixelResult, error) {
	g, gctx := errgroup.WithContext(ctx)
	height := wp.raytracer.config.Height

	// Dispatch rows
	g.Go(func() error {
		defer close(wp.rowQueue)
		for row := 0; row < height; row++ {
			if err := gctx.Err(); err != nil {
				return err
			}
			select {
			case wp.rowQueue <- row:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < wp.numWorkers; i++ {
		g.Go(func() error {
			for row := range wp.rowQueue {
				if err := wp.raytracer.renderRow(gctx, row, wp.results); err != nil {
					return err
				}
			}
			return nil
		})
	}

	errc := make(chan error, 1)
	go func() {
		errc <- g.Wait()
		close(wp.results)
	}()

	pixels := wp.collect()
	if err := <-errc; err != nil {
		return nil, err
	}
	return pixels, nil
}

// collect drains the results channel until every worker has finished
func (wp *WorkerPool) collect() []PixelResult {
	width, height := wp.raytracer.config.Width, wp.raytracer.config.Height
	pixels := make([]PixelResult, 0, width*height)

	rowsDone := 0
	remaining := make(map[int]int)
	for result := range wp.results {
		pixels = append(pixels, result)

		if _, ok := remaining[result.Row]; !ok {
			remaining[result.Row] = width
		}
		remaining[result.Row]--
		if remaining[result.Row] == 0 {
			delete(remaining, result.Row)
			rowsDone++
			if rowsDone%progressInterval(height) == 0 || rowsDone == height {
				wp.raytracer.logger.Printf("Rows: %d/%d\n", rowsDone, height)
			}
		}
	}

	return pixels
}

// progressInterval logs roughly every tenth of the image
func progressInterval(height int) int {
	if height < 10 {
		return 1
	}
	return height / 10
}

// SortPixels orders results by row, then column
func SortPixels(pixels []PixelResult) {
	sort.Slice(pixels, func(i, j int) bool {
		if pixels[i].Row != pixels[j].Row {
			return pixels[i].Row < pixels[j].Row
		}
		return pixels[i].Col < pixels[j].Col
	})
}

// assembleImage sorts the collected results and lays them out as an image
func assembleImage(pixels []PixelResult, width, height int) (*Image, error) {
	if len(pixels) != width*height {
		return nil, fmt.Errorf("collected %d pixels, expected %d", len(pixels), width*height)
	}

	SortPixels(pixels)

	img := NewImage(width, height)
	for i, p := range pixels {
		if p.Row*width+p.Col != i {
			return nil, fmt.Errorf("pixel (%d,%d) duplicated or missing", p.Row, p.Col)
		}
		img.Pixels[i] = p.Color
	}
	return img, nil
}
