package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pressroom/internal/domains/post"
	"pressroom/internal/shared/response"
)

type PostHandler struct {
	service post.Service
}

func NewPostHandler(svc post.Service) *PostHandler {
	return &PostHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /v1/posts?drafts=true&tag=fsharp&category=functional&author=Jane Doe
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) List(c *gin.Context) {
	var filter post.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	posts, err := h.service.All(c.Request.Context(), filter)
	if err != nil {
		response.ErrorResponse(c, post.ToHTTPStatus(err), post.ToErrorCode(err), err.Error())
		return
	}

	drafts := 0
	resp := make([]post.PostResponse, 0, len(posts))
	for i := range posts {
		if posts[i].Draft {
			drafts++
		}
		resp = append(resp, *posts[i].ToResponse())
	}

	response.SuccessWithMeta(c, http.StatusOK, resp, &response.Meta{
		Total:    len(resp),
		Drafts:   drafts,
		Filtered: filter.Tag != "" || filter.Category != "" || filter.Author != "",
	})
}

// ════════════════════════════════════════════════════════════════
// READ: GET /v1/posts/:slug
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	p, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		response.ErrorResponse(c, post.ToHTTPStatus(err), post.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, p.ToDetailResponse())
}

// ════════════════════════════════════════════════════════════════
// TAXONOMIES: GET /v1/tags, GET /v1/categories
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) Tags(c *gin.Context) {
	tags, err := h.service.Tags(c.Request.Context())
	if err != nil {
		response.ErrorResponse(c, post.ToHTTPStatus(err), post.ToErrorCode(err), err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, tags, &response.Meta{Total: len(tags)})
}

func (h *PostHandler) Categories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		response.ErrorResponse(c, post.ToHTTPStatus(err), post.ToErrorCode(err), err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, categories, &response.Meta{Total: len(categories)})
}

// ════════════════════════════════════════════════════════════════
// REPORT: GET /v1/report
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) Report(c *gin.Context) {
	report, err := h.service.Load(c.Request.Context())
	if err != nil {
		response.ErrorResponse(c, post.ToHTTPStatus(err), post.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, report.ToReportResponse())
}
