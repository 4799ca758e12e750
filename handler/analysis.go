package handler

import (
	"Verity/config"
	"Verity/middleware"
	"Verity/pkg/context"
	"Verity/pkg/response"
	"Verity/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Analysis struct {
	Config          *config.Config
	AnalysisService service.IAnalysisService
}

func (h *Analysis) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/posts/:id/analyze")
	g.POST("", authorize, context.Wrap(h.Analyze))
}

// Analyze 双模型核查，模型不可用时也能给出占位结论
func (h *Analysis) Analyze(c *gin.Context) error {
	if _, err := context.GetUserID(c); err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	postID, err := parseID(c)
	if err != nil {
		return err
	}

	result, err := h.AnalysisService.Analyze(c.Request.Context(), postID)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}
