package handler

import (
	"Verity/config"
	"Verity/middleware"
	"Verity/pkg/context"
	"Verity/pkg/response"
	"Verity/service"
	"Verity/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Post struct {
	Config      *config.Config
	PostService service.IPostService
	OssService  service.IOssService
}

func (h *Post) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/posts")
	g.GET("", context.Wrap(h.Feed))
	g.GET("/:id", context.Wrap(h.Get))
	g.GET("/code/:code", context.Wrap(h.GetByCode))
	g.POST("", authorize, context.Wrap(h.Create))
	g.PUT("/:id", authorize, context.Wrap(h.Update))
	g.DELETE("/:id", authorize, context.Wrap(h.Delete))
	g.POST("/upload", authorize, context.Wrap(h.UploadImage))
}

// Feed 帖子流，新帖在前
func (h *Post) Feed(c *gin.Context) error {
	var req types.FeedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	items, err := h.PostService.Feed(c.Request.Context(), req.Limit, req.Offset)
	if err != nil {
		return err
	}
	response.Success(c, types.FeedResponse{Items: items})
	return nil
}

func (h *Post) Get(c *gin.Context) error {
	postID, err := parseID(c)
	if err != nil {
		return err
	}
	item, err := h.PostService.GetByID(c.Request.Context(), postID)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

func (h *Post) GetByCode(c *gin.Context) error {
	item, err := h.PostService.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

func (h *Post) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	item, err := h.PostService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

func (h *Post) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	postID, err := parseID(c)
	if err != nil {
		return err
	}

	var req types.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	item, err := h.PostService.Update(c.Request.Context(), postID, userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

func (h *Post) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	postID, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.PostService.Delete(c.Request.Context(), postID, userID); err != nil {
		return err
	}
	response.Success(c, gin.H{"id": postID})
	return nil
}

func (h *Post) UploadImage(c *gin.Context) error {
	header, err := c.FormFile("image")
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.OssService.UploadImage(c.Request.Context(), header)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewError(http.StatusBadRequest, "invalid post id")
	}
	return id, nil
}
