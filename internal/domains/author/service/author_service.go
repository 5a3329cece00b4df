package service

import (
	"context"

	"pressroom/internal/domains/author"
)

type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) All(ctx context.Context) ([]author.Author, error) {
	return s.repo.LoadAll(ctx)
}

func (s *authorService) GetBySlug(ctx context.Context, slug string) (*author.Author, error) {
	authors, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range authors {
		if authors[i].Slug == slug {
			return &authors[i], nil
		}
	}
	return nil, author.ErrAuthorNotFound
}

func (s *authorService) Index(ctx context.Context) (author.Index, error) {
	authors, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return author.NewIndex(authors), nil
}

func (s *authorService) Resolve(ctx context.Context, name string) (*author.Author, bool) {
	ix, err := s.Index(ctx)
	if err != nil {
		return nil, false
	}
	return ix.Resolve(name)
}
