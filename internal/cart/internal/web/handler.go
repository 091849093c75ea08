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
	"github.com/ecodeclub/emall/internal/cart/internal/domain"
	"github.com/ecodeclub/emall/internal/cart/internal/service"
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

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/cart")
	g.POST("/add", ginx.BS[AddCartItemReq](h.Add))
	g.POST("/quantity", ginx.BS[UpdateQuantityReq](h.UpdateQuantity))
	g.POST("/select", ginx.BS[SelectReq](h.Select))
	g.POST("/remove", ginx.BS[RemoveCartItemReq](h.Remove))
	g.POST("/list", ginx.S(h.List))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Add(ctx *ginx.Context, req AddCartItemReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Add(ctx.Request.Context(), sess.Claims().Uid, req.ProductID, req.Quantity)
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		return invalidQuantityResult, fmt.Errorf("加购数量非法: %w", err)
	case errors.Is(err, service.ErrProductNotOnSale):
		return productNotOnSaleResult, fmt.Errorf("商品不在售: %w", err)
	case err != nil:
		return systemErrorResult, fmt.Errorf("加购失败: %w", err)
	}
	return ginx.Result{
		Data: AddCartItemResp{ID: id},
	}, nil
}

func (h *Handler) UpdateQuantity(ctx *ginx.Context, req UpdateQuantityReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateQuantity(ctx.Request.Context(), sess.Claims().Uid, req.ProductID, req.Quantity)
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		return invalidQuantityResult, fmt.Errorf("购买数量非法: %w", err)
	case errors.Is(err, service.ErrCartItemNotFound):
		return cartItemNotFoundResult, fmt.Errorf("购物车项未找到: %w", err)
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Select(ctx *ginx.Context, req SelectReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Select(ctx.Request.Context(), sess.Claims().Uid, req.ProductIDs, req.Selected)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Remove(ctx *ginx.Context, req RemoveCartItemReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Remove(ctx.Request.Context(), sess.Claims().Uid, req.ProductID)
	switch {
	case errors.Is(err, service.ErrCartItemNotFound):
		return cartItemNotFoundResult, fmt.Errorf("购物车项未找到: %w", err)
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	items, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListCartResp{
			Items: slice.Map(items, func(idx int, src domain.CartItem) CartItem {
				return newCartItemVO(src)
			}),
		},
	}, nil
}
