package handler

import (
	"Verity/pkg/context"
	"Verity/pkg/response"
	"Verity/service"
	"Verity/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	UserService service.IUserService
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/auth")
	g.POST("/claim", context.Wrap(h.ClaimName))
}

// ClaimName 按展示名登记身份并签发 token
func (h *Auth) ClaimName(c *gin.Context) error {
	var req types.ClaimNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := h.UserService.ClaimName(c.Request.Context(), req.Name)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
