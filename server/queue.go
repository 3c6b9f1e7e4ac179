package server

import (
	"log/slog"
	"os"
	"sync"

	"github.com/grantdozier/LCR-Area-Calculations-Module/analyze"
	"github.com/grantdozier/LCR-Area-Calculations-Module/document"
)

// job is one queued document run.
type job struct {
	id       string
	path     string
	filename string
}

// queue fans uploaded documents out to a fixed set of workers. Each
// worker processes one document end to end; pages within a document
// stay strictly sequential.
type queue struct {
	registry    *Registry
	newAnalyzer func(jobID string) *analyze.Analyzer
	log         *slog.Logger

	ch chan job
	wg sync.WaitGroup
}

func newQueue(workers int, registry *Registry, newAnalyzer func(jobID string) *analyze.Analyzer, log *slog.Logger) *queue {
	if workers < 1 {
		workers = 1
	}
	q := &queue{
		registry:    registry,
		newAnalyzer: newAnalyzer,
		log:         log,
		ch:          make(chan job, 64),
	}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go func(workerID int) {
			defer q.wg.Done()
			for j := range q.ch {
				q.run(workerID, j)
			}
		}(i + 1)
	}
	return q
}

func (q *queue) enqueue(j job) {
	q.ch <- j
}

func (q *queue) close() {
	close(q.ch)
	q.wg.Wait()
}

func (q *queue) run(workerID int, j job) {
	defer os.Remove(j.path)

	q.registry.SetRunning(j.id)
	log := q.log.With("worker_id", workerID, "job_id", j.id, "filename", j.filename)

	doc, err := document.Open(j.path)
	if err != nil {
		log.Error("open failed", "error", err)
		q.registry.Fail(j.id, err.Error())
		return
	}

	res, err := q.newAnalyzer(j.id).Analyze(doc, j.filename)
	if err != nil {
		log.Error("analysis failed", "error", err)
		q.registry.Fail(j.id, err.Error())
		return
	}

	q.registry.Complete(j.id, res)
	log.Info("job completed", "polygons", res.Summary.TotalPolygons)
}
