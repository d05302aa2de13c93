package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/inkwell-cms/inkwell/domain"
	"github.com/inkwell-cms/inkwell/internal/rest/request"
	"github.com/inkwell-cms/inkwell/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

const (
	DefaultPageSize = 20
	PageMaxSize     = 100
)

// CommentHandler represent the httphandler for comment moderation
type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// List will fetch comments of the given type with take/skip paging.
// take=0 returns every matching comment.
func (h *CommentHandler) List(c *gin.Context) {
	take, err := strconv.Atoi(c.DefaultQuery("take", strconv.Itoa(DefaultPageSize)))
	if err != nil || take < 0 || take > PageMaxSize {
		take = DefaultPageSize
	}
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	commentType := domain.CommentType(c.DefaultQuery("type", string(domain.CommentAll)))

	ctx := c.Request.Context()
	comments, err := h.Service.List(ctx, domain.ListOptions{
		Type: commentType,
		Take: take,
		Skip: skip,
	})
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Comment, len(comments))
	for i := range comments {
		res[i] = response.NewCommentFromDomain(&comments[i])
	}
	c.JSON(http.StatusOK, res)
}

// Counts returns the per-state comment tally for the dashboard badge.
func (h *CommentHandler) Counts(c *gin.Context) {
	counts, err := h.Service.CountByState(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, counts)
}

// GetByID will get comment by given id, searching the full comment set
// including deleted comments.
func (h *CommentHandler) GetByID(c *gin.Context) {
	comment, err := h.Service.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromDomain(&comment))
}

// Create will store a comment on the post given in the URL.
func (h *CommentHandler) Create(c *gin.Context) {
	var req request.CreateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	ctx := c.Request.Context()
	created, err := h.Service.Add(ctx, req.ToDomain(c.Param("id"), c.ClientIP()))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&created))
}

// Update applies a moderation action (approve, unapprove) or a full field
// update when the action is anything else.
func (h *CommentHandler) Update(c *gin.Context) {
	var req request.UpdateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	action := c.Query("action")

	ok, err := h.Service.Update(c.Request.Context(), action, req.ToDomain(c.Param("id")))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment updated successfully"})
}

// Delete will soft-delete the comment by given id
func (h *CommentHandler) Delete(c *gin.Context) {
	ok, err := h.Service.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAll sweeps pending or spam comments across all published posts.
func (h *CommentHandler) DeleteAll(c *gin.Context) {
	commentType := domain.CommentType(c.Query("type"))

	if err := h.Service.DeleteAll(c.Request.Context(), commentType); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// getStatusCode will get the http status code for the given domain error
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch err {
	case domain.ErrInternalServerError:
		return http.StatusInternalServerError
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrConflict:
		return http.StatusConflict
	case domain.ErrForbidden:
		return http.StatusForbidden
	case domain.ErrBadParamInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
