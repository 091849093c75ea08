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

	"github.com/ecodeclub/emall/internal/discount/internal/domain"
	"github.com/ecodeclub/emall/internal/discount/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

// AdminHandler 平台侧折扣管理, 创建全场季节性折扣与运费折扣
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/admin/discount")
	g.POST("/create", ginx.B[CreateDiscountReq](h.CreateSystemDiscount))
	g.POST("/deactivate", ginx.B[DeactivateDiscountReq](h.DeactivateDiscount))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

// CreateSystemDiscount 系统折扣仅支持季节性与运费两种类型
func (h *AdminHandler) CreateSystemDiscount(ctx *ginx.Context, req CreateDiscountReq) (ginx.Result, error) {
	d := domain.Discount{
		Code:              req.Code,
		Type:              domain.Type(req.Type),
		Name:              req.Name,
		Description:       req.Description,
		MinPurchaseAmount: req.MinPurchaseAmount,
		StartDatetime:     req.StartDatetime,
		EndDatetime:       req.EndDatetime,
		IsActive:          true,
		UsageLimit:        req.UsageLimit,
		CreatedByType:     domain.CreatedBySystem,
	}
	switch d.Type {
	case domain.TypeSeasonal:
		d.Detail.Seasonal = &domain.Seasonal{Rate: req.Rate, MaxAmount: req.MaxAmount}
	case domain.TypeShipping:
		d.Detail.Shipping = &domain.Shipping{Amount: req.Amount}
	default:
		return invalidDiscountResult, fmt.Errorf("系统折扣类型非法: %d", req.Type)
	}
	id, err := h.svc.Create(ctx.Request.Context(), d)
	switch {
	case errors.Is(err, service.ErrDuplicatedCode):
		return duplicatedCodeResult, fmt.Errorf("折扣码已存在: %w", err)
	case errors.Is(err, service.ErrInvalidDiscount):
		return invalidDiscountResult, fmt.Errorf("折扣信息非法: %w", err)
	case err != nil:
		return systemErrorResult, fmt.Errorf("创建折扣失败: %w", err)
	}
	return ginx.Result{
		Data: CreateDiscountResp{ID: id},
	}, nil
}

func (h *AdminHandler) DeactivateDiscount(ctx *ginx.Context, req DeactivateDiscountReq) (ginx.Result, error) {
	err := h.svc.Deactivate(ctx.Request.Context(), req.ID, domain.CreatedBySystem, 0)
	if err != nil {
		return discountNotFoundResult, fmt.Errorf("停用折扣失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
