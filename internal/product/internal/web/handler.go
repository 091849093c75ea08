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
	"github.com/ecodeclub/emall/internal/product/internal/domain"
	"github.com/ecodeclub/emall/internal/product/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/list", ginx.B[StorefrontReq](h.Storefront))
	g.POST("/detail", ginx.B[DetailReq](h.Detail))
	g.GET("/type/list", ginx.W(h.ProductTypes))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/create", ginx.BS[CreateProductReq](h.Create))
	g.POST("/update", ginx.BS[UpdateProductReq](h.Update))
	g.POST("/publish", ginx.BS[ProductIDReq](h.Publish))
	g.POST("/unpublish", ginx.BS[ProductIDReq](h.Unpublish))
	g.POST("/delete", ginx.BS[ProductIDReq](h.Delete))
	g.POST("/mine", ginx.BS[ListMineReq](h.ListMine))
}

// Storefront 买家货架, 分页返回带折后价的在售商品
func (h *Handler) Storefront(ctx *ginx.Context, req StorefrontReq) (ginx.Result, error) {
	products, total, err := h.svc.Storefront(ctx.Request.Context(), domain.StorefrontQuery{
		StoreID:       req.StoreID,
		ProductTypeID: req.ProductTypeID,
		Keyword:       req.Keyword,
		MinPrice:      req.MinPrice,
		MaxPrice:      req.MaxPrice,
		MinRating:     req.MinRating,
		SortBy:        req.SortBy,
		Desc:          req.Desc,
		Offset:        req.Offset,
		Limit:         req.Limit,
	})
	switch {
	case errors.Is(err, service.ErrProductTypeNotFound):
		return productTypeNotFoundResult, fmt.Errorf("商品类目不存在: %w", err)
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: StorefrontResp{
			Total: total,
			Products: slice.Map(products, func(idx int, src domain.EnrichedProduct) Product {
				return newProductVO(src)
			}),
		},
	}, nil
}

// Detail 商品详情, 仅在售商品可见
func (h *Handler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	p, err := h.svc.Detail(ctx.Request.Context(), req.ID)
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		return productNotFoundResult, fmt.Errorf("商品未找到: %w", err)
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: DetailResp{Product: newProductVO(p)},
	}, nil
}

func (h *Handler) ProductTypes(ctx *ginx.Context) (ginx.Result, error) {
	types, err := h.svc.ProductTypes(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProductTypesResp{
			ProductTypes: slice.Map(types, func(idx int, src domain.ProductType) ProductType {
				return ProductType{
					ID:       src.ID,
					Code:     src.Code,
					Name:     src.Name,
					ParentID: src.ParentID,
				}
			}),
		},
	}, nil
}

// Create 卖家创建商品, 商品归属卖家自己的店铺, 初始为下架状态
func (h *Handler) Create(ctx *ginx.Context, req CreateProductReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx.Request.Context(), sess.Claims().Uid, domain.Product{
		ProductTypeID: req.ProductTypeID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
	})
	switch {
	case errors.Is(err, service.ErrInvalidProduct):
		return invalidProductResult, fmt.Errorf("商品信息非法: %w", err)
	case errors.Is(err, service.ErrProductTypeNotFound):
		return productTypeNotFoundResult, fmt.Errorf("商品类目不存在: %w", err)
	case err != nil:
		return systemErrorResult, fmt.Errorf("创建商品失败: %w", err)
	}
	return ginx.Result{
		Data: CreateProductResp{ID: id},
	}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req UpdateProductReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Update(ctx.Request.Context(), sess.Claims().Uid, domain.Product{
		ID:            req.ID,
		ProductTypeID: req.ProductTypeID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
	})
	if err != nil {
		return h.toMutationErrorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Publish(ctx *ginx.Context, req ProductIDReq, sess session.Session) (ginx.Result, error) {
	if err := h.svc.Publish(ctx.Request.Context(), sess.Claims().Uid, req.ID); err != nil {
		return h.toMutationErrorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Unpublish(ctx *ginx.Context, req ProductIDReq, sess session.Session) (ginx.Result, error) {
	if err := h.svc.Unpublish(ctx.Request.Context(), sess.Claims().Uid, req.ID); err != nil {
		return h.toMutationErrorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req ProductIDReq, sess session.Session) (ginx.Result, error) {
	if err := h.svc.Delete(ctx.Request.Context(), sess.Claims().Uid, req.ID); err != nil {
		return h.toMutationErrorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

// ListMine 卖家查看自己店铺内的商品, 包含已下架的
func (h *Handler) ListMine(ctx *ginx.Context, req ListMineReq, sess session.Session) (ginx.Result, error) {
	products, total, err := h.svc.ListMine(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListMineResp{
			Total: total,
			Products: slice.Map(products, func(idx int, src domain.Product) Product {
				// 卖家视角不做折扣叠加, 原价即现价
				return newProductVO(domain.Enrich(src, 0))
			}),
		},
	}, nil
}

func (h *Handler) toMutationErrorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		return productNotFoundResult, fmt.Errorf("商品未找到: %w", err)
	case errors.Is(err, service.ErrNotProductOwner):
		return notProductOwnerResult, fmt.Errorf("无权操作商品: %w", err)
	case errors.Is(err, service.ErrInvalidProduct):
		return invalidProductResult, fmt.Errorf("商品信息非法: %w", err)
	case errors.Is(err, service.ErrProductTypeNotFound):
		return productTypeNotFoundResult, fmt.Errorf("商品类目不存在: %w", err)
	default:
		return systemErrorResult, err
	}
}
