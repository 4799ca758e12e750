package handler

import (
	"Verity/config"
	"Verity/middleware"
	"Verity/pkg/context"
	"Verity/pkg/jwt"
	"Verity/pkg/response"
	"Verity/service"
	"Verity/types"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Vote struct {
	Config      *config.Config
	VoteService service.IVoteService
}

func (h *Vote) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/posts/:id/votes")
	g.GET("", context.Wrap(h.Tally))
	g.POST("", authorize, context.Wrap(h.Cast))
}

// Cast 投票，重复投按已投过处理不报错
func (h *Vote) Cast(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	postID, err := parseID(c)
	if err != nil {
		return err
	}

	var req types.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := h.VoteService.Cast(c.Request.Context(), postID, userID, req.VoteType)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// Tally 票面
// 登录态可带 pending 声明在途乐观票，计票时本人至多算一次
func (h *Vote) Tally(c *gin.Context) error {
	postID, err := parseID(c)
	if err != nil {
		return err
	}

	// 该接口匿名可读，登录态才有 user_vote
	viewerID := h.viewerID(c)
	pending := ""
	if viewerID != 0 {
		pending = c.Query("pending")
	}

	tally, err := h.VoteService.Tally(c.Request.Context(), postID, viewerID, pending)
	if err != nil {
		return err
	}
	response.Success(c, tally)
	return nil
}

func (h *Vote) viewerID(c *gin.Context) int64 {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0
	}
	claims, err := jwt.ParseToken([]byte(h.Config.Jwt.Secret), parts[1])
	if err != nil {
		return 0
	}
	return claims.UserID
}
