package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pressroom/internal/domains/author"
)

type stubRepository struct {
	authors []author.Author
}

func (s *stubRepository) LoadAll(context.Context) ([]author.Author, error) {
	return s.authors, nil
}

func TestGetBySlug(t *testing.T) {
	svc := NewAuthorService(&stubRepository{authors: []author.Author{
		{Name: "Jane Doe", Slug: "jane-doe"},
		{Name: "John Smith", Slug: "john-smith"},
	}})

	a, err := svc.GetBySlug(context.Background(), "jane-doe")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", a.Name)

	_, err = svc.GetBySlug(context.Background(), "nobody")
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestResolveIsExact(t *testing.T) {
	svc := NewAuthorService(&stubRepository{authors: []author.Author{
		{Name: "Jane Doe", Slug: "jane-doe"},
	}})

	_, ok := svc.Resolve(context.Background(), "Jane Doe")
	assert.True(t, ok)

	_, ok = svc.Resolve(context.Background(), "jane doe")
	assert.False(t, ok, "match is case sensitive")

	_, ok = svc.Resolve(context.Background(), "Jane  Doe")
	assert.False(t, ok, "match is spelling sensitive")
}

func TestIndexLoadsOnce(t *testing.T) {
	svc := NewAuthorService(&stubRepository{authors: []author.Author{
		{Name: "Jane Doe", Slug: "jane-doe"},
		{Name: "John Smith", Slug: "john-smith"},
	}})

	ix, err := svc.Index(context.Background())
	require.NoError(t, err)
	assert.Len(t, ix, 2)

	a, ok := ix.Resolve("John Smith")
	require.True(t, ok)
	assert.Equal(t, "john-smith", a.Slug)
}
