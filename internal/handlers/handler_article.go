package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ncabrera/purchasing_backend/internal/apperrors"
	portssvc "github.com/ncabrera/purchasing_backend/internal/core/ports/services"
	"github.com/ncabrera/purchasing_backend/internal/dto"
	"github.com/ncabrera/purchasing_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// articleHandler handles HTTP requests related to articles.
type articleHandler struct {
	articleService portssvc.ArticleSvcFacade
}

func newArticleHandler(as portssvc.ArticleSvcFacade) *articleHandler {
	return &articleHandler{articleService: as}
}

// registerArticleRoutes registers routes related to articles.
func registerArticleRoutes(rg *gin.RouterGroup, articleService portssvc.ArticleSvcFacade) {
	h := newArticleHandler(articleService)

	articles := rg.Group("/articles")
	{
		articles.POST("", h.createArticle)
		articles.GET("", h.listArticles)
		articles.GET("/:id", h.getArticleByID)
		articles.PUT("/:id", h.updateArticle)
		articles.DELETE("/:id", h.deleteArticle)
	}
}

// createArticle godoc
// @Summary Create a new article
// @Description Adds an inventory article. The referenced measure unit must exist and be active.
// @Tags articles
// @Accept  json
// @Produce  json
// @Param   article body dto.CreateArticleRequest true "Article details"
// @Success 201 {object} dto.ArticleResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /articles [post]
func (h *articleHandler) createArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create article", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create article"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToArticleResponse(article))
}

// listArticles godoc
// @Summary List articles
// @Description Retrieves all articles with their measure unit included.
// @Tags articles
// @Produce  json
// @Success 200 {array} dto.ArticleResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /articles [get]
func (h *articleHandler) listArticles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	articles, err := h.articleService.ListArticles(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list articles", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list articles"})
		return
	}

	c.JSON(http.StatusOK, dto.ToArticleResponses(articles))
}

// getArticleByID godoc
// @Summary Get an article by ID
// @Tags articles
// @Produce  json
// @Param   id path string true "Article ID (UUID)"
// @Success 200 {object} dto.ArticleResponse
// @Failure 404 {object} ErrorResponse "Article not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /articles/{id} [get]
func (h *articleHandler) getArticleByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	articleID := c.Param("id")

	article, err := h.articleService.GetArticleByID(c.Request.Context(), articleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Article not found"})
			return
		}
		logger.Error("Failed to get article", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve article"})
		return
	}

	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

// updateArticle godoc
// @Summary Update an article
// @Tags articles
// @Accept  json
// @Produce  json
// @Param   id path string true "Article ID (UUID)"
// @Param   article body dto.UpdateArticleRequest true "Fields to update"
// @Success 200 {object} dto.ArticleResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Article not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /articles/{id} [put]
func (h *articleHandler) updateArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	articleID := c.Param("id")

	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	article, err := h.articleService.UpdateArticle(c.Request.Context(), articleID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Article not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update article", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update article"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

// deleteArticle godoc
// @Summary Delete an article
// @Tags articles
// @Produce  json
// @Param   id path string true "Article ID (UUID)"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Article not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /articles/{id} [delete]
func (h *articleHandler) deleteArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	articleID := c.Param("id")

	if err := h.articleService.DeleteArticle(c.Request.Context(), articleID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Article not found"})
			return
		}
		logger.Error("Failed to delete article", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete article"})
		return
	}

	c.Status(http.StatusNoContent)
}
