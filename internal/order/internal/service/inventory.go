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

package service

import (
	"context"

	"github.com/ecodeclub/emall/internal/order/internal/domain"
)

// InventoryHook 库存子系统的扩展点.
// 支付成功时扣减库存, 取消时释放, 接入库存子系统不需要改动状态机
type InventoryHook interface {
	Commit(ctx context.Context, order domain.Order) error
	Release(ctx context.Context, order domain.Order) error
}

func NewNoopInventoryHook() InventoryHook {
	return &noopInventoryHook{}
}

type noopInventoryHook struct{}

func (h *noopInventoryHook) Commit(_ context.Context, _ domain.Order) error {
	return nil
}

func (h *noopInventoryHook) Release(_ context.Context, _ domain.Order) error {
	return nil
}
