// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/emall/internal/product/internal/domain"
	"github.com/ecodeclub/emall/internal/product/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

// AdminHandler 平台侧类目管理
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/admin/product")
	g.POST("/type/create", ginx.B[CreateProductTypeReq](h.CreateProductType))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) CreateProductType(ctx *ginx.Context, req CreateProductTypeReq) (ginx.Result, error) {
	id, err := h.svc.CreateProductType(ctx.Request.Context(), domain.ProductType{
		Code:     req.Code,
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	switch {
	case errors.Is(err, service.ErrInvalidProduct):
		return invalidProductResult, fmt.Errorf("类目信息非法: %w", err)
	case errors.Is(err, service.ErrProductTypeNotFound):
		return productTypeNotFoundResult, fmt.Errorf("父类目不存在: %w", err)
	case err != nil:
		return systemErrorResult, fmt.Errorf("创建类目失败: %w", err)
	}
	return ginx.Result{
		Data: CreateProductTypeResp{ID: id},
	}, nil
}
