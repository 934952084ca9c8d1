package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/app/services"
	"github.com/konaseema/zpportal/internal/middleware"
	"github.com/konaseema/zpportal/internal/pkg/helpers"
)

// ContentController handles forum posts, bulletins, news and galleries
type ContentController struct {
	contentService services.ContentService
}

// NewContentController creates a new ContentController
func NewContentController(contentService services.ContentService) *ContentController {
	return &ContentController{contentService: contentService}
}

func contentFilter(ctx *gin.Context) models.ContentFilter {
	return models.ContentFilter{
		SchoolID: helpers.QueryString(ctx, "school_id"),
		Category: helpers.QueryString(ctx, "category"),
	}
}

// ListForumPosts lists forum posts
// @Summary List forum posts
// @Tags forum
// @Produce json
// @Param school_id query string false "School ID"
// @Param category query string false "Category"
// @Success 200 {object} dto.APIResponse{data=[]models.ForumPost} "Posts"
// @Router /forums/posts [get]
func (c *ContentController) ListForumPosts(ctx *gin.Context) {
	posts, err := c.contentService.ListForumPosts(ctx.Request.Context(), contentFilter(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(posts))
}

// CreateForumPost starts a forum thread
// @Summary Create a forum post
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ForumPostRequest true "Post"
// @Success 201 {object} dto.APIResponse{data=models.ForumPost} "Post created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /forums/posts [post]
func (c *ContentController) CreateForumPost(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}
	var req dto.ForumPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	post, err := c.contentService.CreateForumPost(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(post))
}

// ListBulletins lists notices
// @Summary List bulletins
// @Tags bulletins
// @Produce json
// @Param school_id query string false "School ID"
// @Param category query string false "Category"
// @Success 200 {object} dto.APIResponse{data=[]models.Bulletin} "Bulletins"
// @Router /bulletins [get]
func (c *ContentController) ListBulletins(ctx *gin.Context) {
	bulletins, err := c.contentService.ListBulletins(ctx.Request.Context(), contentFilter(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(bulletins))
}

// CreateBulletin publishes a notice
// @Summary Create a bulletin
// @Tags bulletins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulletinRequest true "Bulletin"
// @Success 201 {object} dto.APIResponse{data=models.Bulletin} "Bulletin created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /bulletins [post]
func (c *ContentController) CreateBulletin(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}
	var req dto.BulletinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	bulletin, err := c.contentService.CreateBulletin(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(bulletin))
}

// ListNews lists news items
// @Summary List news
// @Tags news
// @Produce json
// @Param school_id query string false "School ID"
// @Success 200 {object} dto.APIResponse{data=[]models.News} "News"
// @Router /news [get]
func (c *ContentController) ListNews(ctx *gin.Context) {
	news, err := c.contentService.ListNews(ctx.Request.Context(), helpers.QueryString(ctx, "school_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(news))
}

// CreateNews publishes a news item
// @Summary Create news
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.NewsRequest true "News"
// @Success 201 {object} dto.APIResponse{data=models.News} "News created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /news [post]
func (c *ContentController) CreateNews(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}
	var req dto.NewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	news, err := c.contentService.CreateNews(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(news))
}

// ListGalleries lists galleries
// @Summary List galleries
// @Tags galleries
// @Produce json
// @Param school_id query string false "School ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Gallery} "Galleries"
// @Router /galleries [get]
func (c *ContentController) ListGalleries(ctx *gin.Context) {
	galleries, err := c.contentService.ListGalleries(ctx.Request.Context(), helpers.QueryString(ctx, "school_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(galleries))
}

// CreateGallery publishes a gallery
// @Summary Create a gallery
// @Tags galleries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GalleryRequest true "Gallery"
// @Success 201 {object} dto.APIResponse{data=models.Gallery} "Gallery created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /galleries [post]
func (c *ContentController) CreateGallery(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}
	var req dto.GalleryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	gallery, err := c.contentService.CreateGallery(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(gallery))
}
