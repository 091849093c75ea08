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
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/emall/internal/cart"
	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc     service.Service
	cartSvc cart.Service
	cache   ecache.Cache
}

func NewHandler(svc service.Service, cartSvc cart.Service, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, cartSvc: cartSvc, cache: cache}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.BS[CreateOrderReq](h.CreateOrders))
	g.POST("", ginx.BS[RetrieveOrderStatusReq](h.RetrieveOrderStatus))
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/detail", ginx.BS[OrderIDReq](h.RetrieveOrderDetail))
	g.POST("/cancel", ginx.BS[OrderIDReq](h.CancelOrder))
	g.POST("/status", ginx.BS[UpdateOrderStatusReq](h.UpdateStatus))

	seller := server.Group("/order/seller")
	seller.POST("/list", ginx.BS[ListOrdersReq](h.ListStoreOrders))
	seller.POST("/status", ginx.BS[UpdateOrderStatusReq](h.SellerUpdateStatus))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// CreateOrders 结算购物车勾选项.
// 多店铺快照拆成多个订单, 同一 requestId 只结算一次
func (h *Handler) CreateOrders(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return duplicatedRequestResult, fmt.Errorf("请求ID错误: %w", err)
	}

	snapshot, err := h.cartSvc.SelectedSnapshot(ctx.Request.Context(), uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("获取结算快照失败: %w", err)
	}

	orders, err := h.svc.CreateFromSnapshot(ctx.Request.Context(), uid, snapshot, req.PaymentMethod, domain.ShippingAddress{
		Recipient: req.Address.Recipient,
		Phone:     req.Address.Phone,
		Province:  req.Address.Province,
		City:      req.Address.City,
		Detail:    req.Address.Detail,
	}, req.Notes)
	switch {
	case errors.Is(err, service.ErrEmptySnapshot), errors.Is(err, service.ErrInvalidOrder):
		return invalidOrderResult, fmt.Errorf("创建订单失败: %w", err)
	case err != nil:
		return systemErrorResult, fmt.Errorf("创建订单失败: %w", err)
	}
	return ginx.Result{
		Data: CreateOrderResp{
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return newOrderVO(src)
			}),
		},
	}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}

	key := h.createOrderRequestKey(requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("重复请求")
	}
	if err := h.cache.Set(ctx, key, requestID, 0); err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return nil
}

func (h *Handler) createOrderRequestKey(requestID string) string {
	return fmt.Sprintf("order:create:%s", requestID)
}

// RetrieveOrderStatus 按订单号查询状态
func (h *Handler) RetrieveOrderStatus(ctx *ginx.Context, req RetrieveOrderStatusReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindBySNAndBuyerID(ctx.Request.Context(), req.SN, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, fmt.Errorf("订单未找到: %w", err)
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: RetrieveOrderStatusResp{
			Status:     order.Status.ToUint8(),
			StatusName: order.Status.String(),
		},
	}, nil
}

// ListOrders 分页查询买家订单
func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.FindAll(ctx.Request.Context(), sess.Claims().Uid, domain.Status(req.Status), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return newOrderVO(src)
			}),
		},
	}, nil
}

func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req OrderIDReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOne(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, fmt.Errorf("订单未找到: %w", err)
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: RetrieveOrderDetailResp{Order: newOrderVO(order)},
	}, nil
}

func (h *Handler) CancelOrder(ctx *ginx.Context, req OrderIDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.CancelOrder(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if err != nil {
		return h.toTransitionErrorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

// UpdateStatus 买家侧状态流转, 支付结果回写与确认收货都走这里
func (h *Handler) UpdateStatus(ctx *ginx.Context, req UpdateOrderStatusReq, sess session.Session) (ginx.Result, error) {
	next := domain.Status(req.Status)
	if !next.Valid() {
		return invalidOrderResult, fmt.Errorf("目标状态非法: %d", req.Status)
	}
	_, err := h.svc.UpdateStatus(ctx.Request.Context(), sess.Claims().Uid, req.ID, next)
	if err != nil {
		return h.toTransitionErrorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

// ListStoreOrders 卖家查看自己店铺的订单
func (h *Handler) ListStoreOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.FindStoreOrders(ctx.Request.Context(), sess.Claims().Uid, domain.Status(req.Status), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return newOrderVO(src)
			}),
		},
	}, nil
}

// SellerUpdateStatus 卖家推进履约状态, 备货发货送达等
func (h *Handler) SellerUpdateStatus(ctx *ginx.Context, req UpdateOrderStatusReq, sess session.Session) (ginx.Result, error) {
	next := domain.Status(req.Status)
	if !next.Valid() {
		return invalidOrderResult, fmt.Errorf("目标状态非法: %d", req.Status)
	}
	_, err := h.svc.SellerUpdateStatus(ctx.Request.Context(), sess.Claims().Uid, req.ID, next)
	if err != nil {
		return h.toTransitionErrorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) toTransitionErrorResult(err error) (ginx.Result, error) {
	var invalid *domain.InvalidTransitionError
	switch {
	case errors.As(err, &invalid):
		return ginx.Result{
			Code: invalidTransitionResult.Code,
			Msg:  fmt.Sprintf("%s: %s -> %s", invalidTransitionResult.Msg, invalid.From, invalid.To),
		}, err
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, fmt.Errorf("订单未找到: %w", err)
	case errors.Is(err, service.ErrNotStoreOrder):
		return notStoreOrderResult, fmt.Errorf("无权操作订单: %w", err)
	case errors.Is(err, service.ErrConcurrentUpdate):
		return concurrentUpdateResult, fmt.Errorf("并发修改冲突: %w", err)
	default:
		return systemErrorResult, err
	}
}
