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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/emall/internal/discount/internal/domain"
	"github.com/ecodeclub/emall/internal/discount/internal/service"
	"github.com/ecodeclub/emall/internal/store"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 卖家折扣管理, 卖家只能创建作用于自己店铺的特殊折扣
type Handler struct {
	svc      service.Service
	storeSvc store.Service
}

func NewHandler(svc service.Service, storeSvc store.Service) *Handler {
	return &Handler{svc: svc, storeSvc: storeSvc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/discount")
	g.POST("/create", ginx.BS[CreateDiscountReq](h.CreateSpecialDiscount))
	g.POST("/deactivate", ginx.BS[DeactivateDiscountReq](h.DeactivateDiscount))
	g.POST("/list", ginx.BS[ListDiscountsReq](h.ListDiscounts))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// CreateSpecialDiscount 卖家创建店铺特殊折扣
func (h *Handler) CreateSpecialDiscount(ctx *ginx.Context, req CreateDiscountReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	st, err := h.storeSvc.FindBySellerID(ctx.Request.Context(), uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查找卖家店铺失败: %w", err)
	}
	id, err := h.svc.Create(ctx.Request.Context(), domain.Discount{
		Code:              req.Code,
		Type:              domain.TypeSpecial,
		Name:              req.Name,
		Description:       req.Description,
		MinPurchaseAmount: req.MinPurchaseAmount,
		StartDatetime:     req.StartDatetime,
		EndDatetime:       req.EndDatetime,
		IsActive:          true,
		UsageLimit:        req.UsageLimit,
		CreatedByType:     domain.CreatedBySeller,
		CreatedByID:       uid,
		Detail: domain.Detail{
			Special: &domain.Special{
				StoreID:       st.ID,
				ProductTypeID: req.ProductTypeID,
				Rate:          req.Rate,
				MaxAmount:     req.MaxAmount,
			},
		},
	})
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

// DeactivateDiscount 卖家停用自己创建的折扣
func (h *Handler) DeactivateDiscount(ctx *ginx.Context, req DeactivateDiscountReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Deactivate(ctx.Request.Context(), req.ID, domain.CreatedBySeller, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrNotDiscountOwner):
		return notDiscountOwnerResult, fmt.Errorf("停用折扣失败: %w", err)
	case err != nil:
		return discountNotFoundResult, fmt.Errorf("折扣未找到: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

// ListDiscounts 分页查询卖家创建的折扣
func (h *Handler) ListDiscounts(ctx *ginx.Context, req ListDiscountsReq, sess session.Session) (ginx.Result, error) {
	ds, total, err := h.svc.ListByCreator(ctx.Request.Context(), domain.CreatedBySeller, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListDiscountsResp{
			Total: total,
			Discounts: slice.Map(ds, func(idx int, src domain.Discount) Discount {
				return newDiscountVO(src)
			}),
		},
	}, nil
}
