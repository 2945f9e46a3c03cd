// Command catalog-import loads gzipped NDJSON catalog dumps into PostgreSQL.
//
// Each dump file holds one raw catalog product per line. Products are
// normalized to their canonical form before writing, and duplicate UUIDs
// across files are skipped so re-exported dumps can overlap safely.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-faster/errors"
	pgzip "github.com/klauspost/pgzip"
	"golang.org/x/sync/errgroup"

	"github.com/velespak/storefront/internal/catalog"
	"github.com/velespak/storefront/internal/repository"
	"github.com/velespak/storefront/internal/store"
)

const (
	bloomCapacity = 10_000_000
	bloomFPR      = 0.001
	batchSize     = 500
	progressEvery = 100_000

	// Dump lines carry full property maps and can get long.
	maxLineSize = 16 << 20
)

// dedup tracks product UUIDs already sent to the writer. A bloom false
// positive drops a product from the current run, which the next import
// picks up again; the flat memory footprint is worth it on large dumps.
type dedup struct {
	mu     sync.Mutex
	filter *bloom.BloomFilter
}

func newDedup() *dedup {
	return &dedup{filter: bloom.NewWithEstimates(bloomCapacity, bloomFPR)}
}

func (d *dedup) seen(uuid string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.filter.TestAndAddString(uuid)
}

func main() {
	var (
		dataDir     string
		databaseURL string
	)

	flag.StringVar(&dataDir, "data-dir", "data", "directory containing products*.ndjson.gz dump files")
	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, dataDir, databaseURL); err != nil {
		slog.Error("catalog import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("catalog import completed successfully")
}

func run(ctx context.Context, dataDir, databaseURL string) error {
	files, err := filepath.Glob(filepath.Join(dataDir, "products*.ndjson.gz"))
	if err != nil {
		return errors.Wrap(err, "list dump files")
	}
	if len(files) == 0 {
		return errors.Errorf("no products*.ndjson.gz files in %s", dataDir)
	}

	slog.Info("importing catalog dumps", slog.Int("files", len(files)))

	pool, err := repository.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	if err := repository.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	repo := repository.NewProductRepository(pool)
	seen := newDedup()
	products := make(chan store.Product, batchSize)

	g, ctx := errgroup.WithContext(ctx)

	// One reader per file, a single batching writer.
	readers, readCtx := errgroup.WithContext(ctx)
	for _, f := range files {
		readers.Go(importFile(readCtx, f, seen, products))
	}
	g.Go(func() error {
		defer close(products)
		return readers.Wait()
	})
	g.Go(writeBatches(ctx, repo, products))

	if err := g.Wait(); err != nil {
		return err
	}

	total, err := repo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "count products")
	}
	slog.Info("products in database", slog.Int64("total", total))

	return nil
}

func importFile(ctx context.Context, path string, seen *dedup, out chan<- store.Product) func() error {
	return func() error {
		var read, skipped uint64

		err := streamGzFile(ctx, path, func(line []byte) error {
			var raw catalog.Product
			if err := json.Unmarshal(line, &raw); err != nil {
				return errors.Wrapf(err, "decode product at line %d", read+1)
			}
			read++
			if read%progressEvery == 0 {
				slog.Info("import progress",
					slog.String("file", filepath.Base(path)),
					slog.Uint64("products", read),
				)
			}

			if raw.UUID == "" || seen.seen(raw.UUID) {
				skipped++
				return nil
			}

			select {
			case out <- store.ProductFromAPI(raw):
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if err != nil {
			return errors.Wrapf(err, "import %s", path)
		}

		slog.Info("file complete",
			slog.String("file", filepath.Base(path)),
			slog.Uint64("products", read),
			slog.Uint64("skipped", skipped),
		)
		return nil
	}
}

func writeBatches(ctx context.Context, repo *repository.ProductRepository, in <-chan store.Product) func() error {
	return func() error {
		batch := make([]store.Product, 0, batchSize)
		var written int

		flush := func() error {
			if len(batch) == 0 {
				return nil
			}
			if err := repo.Upsert(ctx, batch); err != nil {
				return errors.Wrap(err, "upsert batch")
			}
			written += len(batch)
			slog.Info("write progress", slog.Int("written", written))
			batch = batch[:0]
			return nil
		}

		for p := range in {
			batch = append(batch, p)
			if len(batch) == batchSize {
				if err := flush(); err != nil {
					return err
				}
			}
		}
		return flush()
	}
}

// streamGzFile opens a gzip-compressed file and calls fn for each non-empty line.
func streamGzFile(ctx context.Context, path string, fn func(line []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	gz, err := pgzip.NewReader(f)
	if err != nil {
		return errors.Wrapf(err, "create gzip reader for %s", path)
	}
	defer func() { _ = gz.Close() }()

	scanner := bufio.NewScanner(gz)
	scanner.Buffer(make([]byte, 0, 1<<20), maxLineSize)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "scan %s", path)
	}

	return nil
}
