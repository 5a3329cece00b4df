package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pressroom/internal/domains/author"
	"pressroom/internal/domains/post"
	"pressroom/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
	posts   post.Service
}

func NewAuthorHandler(svc author.Service, posts post.Service) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
		posts:   posts,
	}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /v1/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.All(c.Request.Context())
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), author.ToErrorCode(err), err.Error())
		return
	}

	resp := make([]author.AuthorResponse, 0, len(authors))
	for i := range authors {
		resp = append(resp, *authors[i].ToResponse())
	}

	response.SuccessWithMeta(c, http.StatusOK, resp, &response.Meta{Total: len(resp)})
}

// ════════════════════════════════════════════════════════════════
// READ: GET /v1/authors/:slug
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	a, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), author.ToErrorCode(err), err.Error())
		return
	}

	// Their production posts, newest first.
	posts, err := h.posts.All(c.Request.Context(), post.Filter{Author: a.Name})
	if err != nil {
		response.ErrorResponse(c, post.ToHTTPStatus(err), post.ToErrorCode(err), err.Error())
		return
	}
	slugs := make([]string, 0, len(posts))
	for i := range posts {
		slugs = append(slugs, posts[i].Slug)
	}

	response.Success(c, http.StatusOK, a.ToDetailResponse(slugs))
}
