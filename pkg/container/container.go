package container

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"pressroom/internal/config"
	"pressroom/internal/domains/author"
	authorHandler "pressroom/internal/domains/author/handler"
	authorRepo "pressroom/internal/domains/author/repository"
	authorService "pressroom/internal/domains/author/service"
	"pressroom/internal/domains/post"
	postHandler "pressroom/internal/domains/post/handler"
	postRepo "pressroom/internal/domains/post/repository"
	postService "pressroom/internal/domains/post/service"
)

// Container holds the whole dependency graph. Everything is a stateless
// singleton over read-only filesystem access, so there is nothing to clean
// up on shutdown.
//
// Initialization order: config → repositories → services → handlers.
type Container struct {
	Config *config.Config

	// Repository layer (filesystem access)
	PostRepo   post.Repository
	AuthorRepo author.Repository

	// Service layer (validation + content set)
	PostService   post.Service
	AuthorService author.Service

	// Handler layer (HTTP)
	PostHandler   *postHandler.PostHandler
	AuthorHandler *authorHandler.AuthorHandler
}

// NewContainer builds and wires the dependency graph.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	log.Info().
		Str("content_dir", cfg.Content.Dir).
		Str("authors_dir", cfg.Content.AuthorsDir).
		Int("scan_workers", cfg.Content.ScanWorkers).
		Msg("Config loaded")

	c.PostRepo = postRepo.NewFilesystemRepository(cfg.Content.Dir, cfg.Content.ScanWorkers)
	c.AuthorRepo = authorRepo.NewFilesystemRepository(cfg.Content.AuthorsDir)

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.PostService = postService.NewPostService(c.PostRepo, c.AuthorService, cfg.Content.DefaultTemplate)

	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService, c.PostService)

	return c, nil
}
