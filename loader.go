package holdings

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/phuslu/log"
	"golang.org/x/sync/errgroup"
)

// Extract is the raw table of one fund, before normalization.
type Extract struct {
	Fund  string
	Table *Table
}

// LoadOptions configures the loading of extracts.
type LoadOptions struct {
	Schema  Schema
	Workers int // see Workers
	// JSONRows is the JSONPath selecting the rows of JSON extracts.
	JSONRows string
}

// extractPattern matches extract file names, like "ivw-etf-holdings.csv".
var extractPattern = regexp.MustCompile(`^(.+)-etf-holdings\.(?i:csv|json)$`)

// FundFromFilename derives the fund identifier from an extract file name,
// upper-cased: ".../ivw-etf-holdings.csv" is "IVW".
func FundFromFilename(path string) (string, error) {
	base := filepath.Base(path)
	m := extractPattern.FindStringSubmatch(base)
	if m == nil {
		return "", &InvalidFundError{Fund: base, Reason: "file name does not match {fund}-etf-holdings.{csv,json}"}
	}
	fund := strings.ToUpper(m[1])
	if err := ValidateFund(fund); err != nil {
		return "", err
	}
	return fund, nil
}

// FindExtracts scans 'dir' recursively for extract files and returns their
// paths, sorted.
func FindExtracts(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && extractPattern.MatchString(d.Name()) {
			paths = append(paths, p)
		}
		return nil
	})
	// WalkDir visits files in lexical order
	return paths, err
}

// ReadExtract reads an extract file, choosing the reader by extension.
func ReadExtract(path, jsonRows string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open extract %q: %w", path, err)
	}
	defer f.Close()

	var t *Table
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		t, err = ReadCSV(f)
	case ".json":
		t, err = ReadJSON(f, jsonRows)
	default:
		return nil, fmt.Errorf("extract %q: %w %q", path, ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read extract %q: %w", path, err)
	}
	return t, nil
}

// Load normalizes 'extracts' in parallel on a pool of opts.Workers
// goroutines and merges them into a Portfolio.
//
// Loading fails fast: the first normalization error aborts the whole load,
// a partial portfolio would understate fund coverage. The result does not
// depend on the order in which the workers complete.
func Load(ctx context.Context, extracts []Extract, opts LoadOptions) (*Portfolio, error) {
	funds := make([]string, len(extracts))
	for i, e := range extracts {
		funds[i] = e.Fund
	}
	if err := checkDuplicates(funds); err != nil {
		return nil, err
	}
	return load(ctx, len(extracts), opts, func(i int) (string, *Table, error) {
		return extracts[i].Fund, extracts[i].Table, nil
	})
}

// LoadDir finds, reads and normalizes every extract of 'dir'.
func LoadDir(ctx context.Context, dir string, opts LoadOptions) (*Portfolio, error) {
	paths, err := FindExtracts(dir)
	if err != nil {
		return nil, fmt.Errorf("could not scan %q: %w", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no extract matching {fund}-etf-holdings.{csv,json} found in %q", dir)
	}
	funds := make([]string, len(paths))
	for i, p := range paths {
		if funds[i], err = FundFromFilename(p); err != nil {
			return nil, err
		}
	}
	if err := checkDuplicates(funds); err != nil {
		return nil, err
	}
	log.Debug().Str("dir", dir).Int("extracts", len(paths)).Msg("found extracts")

	return load(ctx, len(paths), opts, func(i int) (string, *Table, error) {
		t, err := ReadExtract(paths[i], opts.JSONRows)
		return funds[i], t, err
	})
}

// load runs 'n' read and normalize tasks on the worker pool.
func load(ctx context.Context, n int, opts LoadOptions, read func(i int) (string, *Table, error)) (*Portfolio, error) {
	workers := Workers(opts.Workers)
	batches := make([]Batch, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fund, t, err := read(i)
			if err != nil {
				return err
			}
			hs, err := Normalize(t, fund, opts.Schema)
			if err != nil {
				return err
			}
			batches[i] = Batch{Fund: fund, Holdings: hs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p := Merge(batches...)
	log.Debug().Int("funds", len(p.funds)).Int("holdings", p.Len()).Int("workers", workers).Msg("loaded portfolio")
	return p, nil
}

func checkDuplicates(funds []string) error {
	seen := make(map[string]bool, len(funds))
	for _, f := range funds {
		if seen[f] {
			return &InvalidFundError{Fund: f, Reason: "duplicate"}
		}
		seen[f] = true
	}
	return nil
}
