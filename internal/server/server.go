package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"imagehost/internal/api"
	"imagehost/internal/config"
)

// worker is one independent server instance. Each worker owns its own
// listener, engine, image store and logger; workers share nothing in
// memory and coordinate only through the images directory.
type worker struct {
	name     string
	srv      *http.Server
	log      *log.Logger
	closeLog func()
}

func newWorker(cfg *config.Config, port int) (*worker, error) {
	name := fmt.Sprintf("worker-%d", port)
	logger, closeLog := newWorkerLogger(cfg.LogDir, name)

	engine, err := api.SetupRouter(cfg, logger)
	if err != nil {
		closeLog()
		return nil, err
	}

	return &worker{
		name: name,
		srv: &http.Server{
			Addr:    fmt.Sprintf("0.0.0.0:%d", port),
			Handler: engine,
		},
		log:      logger,
		closeLog: closeLog,
	}, nil
}

// serve blocks until the listener fails or ctx is canceled. Cancellation
// closes the server immediately, without draining in-flight requests.
func (w *worker) serve(ctx context.Context) {
	defer w.closeLog()

	w.log.Printf("INFO Starting HTTP server on http://%s", w.srv.Addr)

	errc := make(chan error, 1)
	go func() {
		errc <- w.srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			w.log.Printf("ERROR Server stopped: %v", err)
		}
	case <-ctx.Done():
		w.srv.Close()
		<-errc
	}
}

// Run starts cfg.Workers workers on consecutive ports beginning at
// cfg.StartPort and blocks until all of them have stopped. A worker that
// fails to start is logged and skipped; there is no supervision and no
// restart. Run returns an error only when not a single worker came up.
func Run(ctx context.Context, cfg *config.Config) error {
	var wg sync.WaitGroup
	started := 0

	for i := 0; i < cfg.Workers; i++ {
		port := cfg.StartPort + i

		w, err := newWorker(cfg, port)
		if err != nil {
			log.Printf("ERROR Worker %d failed to start on port %d: %v", i+1, port, err)
			continue
		}
		log.Printf("INFO Starting worker %d on port %d", i+1, port)
		started++

		wg.Add(1)
		go func() {
			defer wg.Done()
			w.serve(ctx)
		}()
	}

	if started == 0 {
		return fmt.Errorf("no workers started")
	}

	wg.Wait()
	return nil
}

// newWorkerLogger builds the per-worker logger: stdout always, plus an
// append-only file under logDir. Logging problems never take a worker
// down; on failure the logger degrades to stdout only.
func newWorkerLogger(logDir, name string) (*log.Logger, func()) {
	out := io.Writer(os.Stdout)
	closeLog := func() {}

	if logDir != "" {
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			log.Printf("WARN Cannot create log directory %s: %v", logDir, err)
		} else {
			path := filepath.Join(logDir, name+".log")
			f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				log.Printf("WARN Cannot open log file %s: %v", path, err)
			} else {
				out = io.MultiWriter(os.Stdout, f)
				closeLog = func() { f.Close() }
			}
		}
	}

	return log.New(out, "["+name+"] ", log.LstdFlags), closeLog
}
