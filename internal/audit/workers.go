package audit

import (
	"sync"

	"github.com/dtnitsch/doclang/models"
)

// Job is one document waiting for classification.
type Job struct {
	Index int
	Doc   models.Document
}

// Result holds the outcome of a processed job.
type Result struct {
	Index      int
	Outcome    models.Outcome
	Classified bool
	Error      error
}

// classifyAll classifies docs and returns the results in the same order.
func (a *Auditor) classifyAll(docs []models.Document) ([]Result, error) {
	ordered := make([]Result, len(docs))

	if a.cfg.WorkerCount <= 1 || len(docs) < 2 {
		for i, doc := range docs {
			outcome, ok, err := a.classify(doc)
			if err != nil {
				return nil, err
			}
			ordered[i] = Result{Index: i, Outcome: outcome, Classified: ok}
		}
		return ordered, nil
	}

	workerCount := min(a.cfg.WorkerCount, len(docs))
	var wg sync.WaitGroup
	jobs := make(chan Job, len(docs))
	results := make(chan Result, len(docs))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go a.worker(w, &wg, jobs, results)
	}

	for i, doc := range docs {
		jobs <- Job{Index: i, Doc: doc}
	}
	close(jobs)

	wg.Wait()
	close(results)

	// earliest failing document wins
	var firstErr error
	errIndex := len(docs)
	for r := range results {
		if r.Error != nil {
			if r.Index < errIndex {
				firstErr = r.Error
				errIndex = r.Index
			}
			continue
		}
		ordered[r.Index] = r
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return ordered, nil
}

// worker classifies documents from jobs until the channel is closed.
func (a *Auditor) worker(id int, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		outcome, ok, err := a.classify(job.Doc)
		if err != nil {
			a.logger.Error("Error classifying document", "worker_id", id, "folder", job.Doc.Folder, "error", err)
		}
		results <- Result{Index: job.Index, Outcome: outcome, Classified: ok, Error: err}
	}
}
