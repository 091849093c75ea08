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
	"fmt"

	"github.com/ecodeclub/emall/internal/store/internal/domain"
	"github.com/ecodeclub/emall/internal/store/internal/service"
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
	g := server.Group("/store")
	g.POST("/create", ginx.BS[CreateStoreReq](h.CreateStore))
	g.POST("/mine", ginx.S(h.RetrieveMyStore))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/store")
	g.POST("/detail", ginx.B[StoreDetailReq](h.RetrieveStoreDetail))
}

// CreateStore 卖家开店, 一个卖家仅允许一家店铺
func (h *Handler) CreateStore(ctx *ginx.Context, req CreateStoreReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx.Request.Context(), domain.Store{
		SellerID:    sess.Claims().Uid,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return systemErrorResult, fmt.Errorf("创建店铺失败: %w", err)
	}
	return ginx.Result{
		Data: CreateStoreResp{ID: id},
	}, nil
}

// RetrieveMyStore 卖家查看自己的店铺
func (h *Handler) RetrieveMyStore(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	s, err := h.svc.FindBySellerID(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return storeNotFoundResult, fmt.Errorf("店铺未找到: %w", err)
	}
	return ginx.Result{
		Data: newStoreVO(s),
	}, nil
}

// RetrieveStoreDetail 买家查看店铺主页
func (h *Handler) RetrieveStoreDetail(ctx *ginx.Context, req StoreDetailReq) (ginx.Result, error) {
	s, err := h.svc.FindByID(ctx.Request.Context(), req.ID)
	if err != nil {
		return storeNotFoundResult, fmt.Errorf("店铺未找到: %w", err)
	}
	return ginx.Result{
		Data: newStoreVO(s),
	}, nil
}

func newStoreVO(s domain.Store) Store {
	return Store{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		ProductCount: s.ProductCount,
		Status:       s.Status.ToUint8(),
	}
}
