package repository

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"pressroom/internal/domains/post"
	"pressroom/internal/frontmatter"
)

// FilesystemRepository walks the content root, one subdirectory per section:
//
//	content/
//	  posts/
//	    monads-for-mortals.md
//	  talks/
//	    parser-combinators.md
//
// The walk fans out across a bounded worker count; each file produces an
// isolated result merged after all reads complete, so there is no shared
// mutable state beyond the work queue.
type FilesystemRepository struct {
	dir     string
	workers int
}

func NewFilesystemRepository(dir string, workers int) *FilesystemRepository {
	if workers < 1 {
		workers = 1
	}
	return &FilesystemRepository{dir: dir, workers: workers}
}

// fileResult is the per-file buffer: exactly one of raw / verr is set.
type fileResult struct {
	path string
	raw  *post.RawPost
	verr *post.ValidationError
}

func (r *FilesystemRepository) Scan(ctx context.Context) ([]post.RawPost, []post.ValidationError, error) {
	if _, err := os.Stat(r.dir); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", post.ErrContentDirUnreadable, err)
	}

	paths, err := r.collectPaths()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", post.ErrContentDirUnreadable, err)
	}

	results := make([]fileResult, len(paths))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.parseFile(paths[i])
			}
		}()
	}

	for i := range paths {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, nil, ctx.Err()
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	// Merge per-file buffers in path order: identical input tree,
	// identical output sequences.
	sort.Slice(results, func(i, j int) bool { return results[i].path < results[j].path })

	raws := make([]post.RawPost, 0, len(results))
	var verrs []post.ValidationError
	for _, res := range results {
		switch {
		case res.raw != nil:
			raws = append(raws, *res.raw)
		case res.verr != nil:
			verrs = append(verrs, *res.verr)
		}
	}

	log.Debug().
		Int("files", len(paths)).
		Int("parsed", len(raws)).
		Int("parse_errors", len(verrs)).
		Str("dir", r.dir).
		Msg("Content scan complete")

	return raws, verrs, nil
}

func (r *FilesystemRepository) collectPaths() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(r.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// _index.md-style section folders are still walked; hidden
			// directories are the generator's own business, skip them.
			if strings.HasPrefix(d.Name(), ".") && path != r.dir {
				return fs.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

func (r *FilesystemRepository) parseFile(path string) fileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileResult{path: path, verr: &post.ValidationError{
			File:    path,
			Rule:    post.RuleMalformedFrontMatter,
			Message: fmt.Sprintf("cannot read file: %v", err),
		}}
	}

	matter, body, err := frontmatter.Parse(string(data))
	if err != nil {
		return fileResult{path: path, verr: &post.ValidationError{
			File:    path,
			Rule:    post.RuleMalformedFrontMatter,
			Message: err.Error(),
		}}
	}

	rel, err := filepath.Rel(r.dir, path)
	if err != nil {
		rel = path
	}
	section := ""
	if parts := strings.Split(filepath.ToSlash(rel), "/"); len(parts) > 1 {
		section = parts[0]
	}

	return fileResult{path: path, raw: &post.RawPost{
		Matter:     matter,
		Body:       body,
		Slug:       strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Section:    section,
		SourcePath: path,
	}}
}
