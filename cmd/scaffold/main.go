// cmd/scaffold/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"pressroom/internal/config"
	"pressroom/internal/frontmatter"
	"pressroom/internal/shared/utils"
)

// scaffold creates a new content file with pre-filled front matter:
//
//	scaffold posts/computation-expressions-intro.md
//	scaffold -title "Monads for Mortals" -author "Jane Doe" posts/monads.md
//	scaffold -title "Monads for Mortals" posts/        (filename from the title)
//
// New posts start as drafts so they stay out of the production render
// until the author flips the flag.
func main() {
	title := flag.String("title", "", "post title (derived from the filename if empty)")
	authorName := flag.String("author", "", "authors entry to pre-fill")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: scaffold [-title T] [-author A] <section>/[<name>.md]")
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("[Config] No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Config] %v", err)
	}

	path, err := createPost(cfg.Content.Dir, flag.Arg(0), *title, *authorName, time.Now().UTC())
	if err != nil {
		log.Fatalf("[Scaffold] %v", err)
	}

	log.Printf("[Scaffold] Created %s", path)
}

// createPost resolves the target path under the content root and writes the
// pre-filled file. rel names the file ("posts/monads.md") or just the
// section ("posts/"), in which case the filename is the slugged title.
// Never overwrites: an existing file is an error.
func createPost(contentDir, rel, title, authorName string, now time.Time) (string, error) {
	rel = filepath.ToSlash(rel)
	if strings.HasSuffix(rel, "/") {
		slug := utils.GenerateSlug(title)
		if slug == "" {
			return "", fmt.Errorf("a -title is required to derive a filename under %s", rel)
		}
		rel += slug + ".md"
	}
	if !strings.HasSuffix(rel, ".md") {
		rel += ".md"
	}
	path := filepath.Join(contentDir, filepath.FromSlash(rel))

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists, refusing to overwrite", path)
	}

	matter := &frontmatter.Matter{
		Title: title,
		Draft: true,
	}
	if matter.Title == "" {
		matter.Title = utils.TitleFromFilename(filepath.Base(rel))
	}
	if authorName != "" {
		matter.Authors = []string{authorName}
	}
	date := now.Truncate(24 * time.Hour)
	matter.Date = &date

	block, err := frontmatter.Encode(matter)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	content := block + "\nWrite here.\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
