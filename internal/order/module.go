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

package order

import (
	"time"

	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/job"
	"github.com/ecodeclub/emall/internal/order/internal/service"
	"github.com/ecodeclub/emall/internal/order/internal/web"
)

type Handler = web.Handler

type Service = service.Service

type Policy = service.Policy

type InventoryHook = service.InventoryHook

type CloseExpiredOrdersJob = job.CloseExpiredOrdersJob

type Order = domain.Order

type OrderItem = domain.OrderItem

type ShippingAddress = domain.ShippingAddress

type Status = domain.Status

const (
	StatusPendingPayment = domain.StatusPendingPayment
	StatusPaymentFailed  = domain.StatusPaymentFailed
	StatusPaid           = domain.StatusPaid
	StatusProcessing     = domain.StatusProcessing
	StatusShipped        = domain.StatusShipped
	StatusDelivered      = domain.StatusDelivered
	StatusCompleted      = domain.StatusCompleted
	StatusCancelled      = domain.StatusCancelled
)

func NewCloseExpiredOrdersJob(svc Service, limit int, minute int64, timeout time.Duration) *CloseExpiredOrdersJob {
	return job.NewCloseExpiredOrdersJob(svc, limit, minute, timeout)
}

type Module struct {
	Hdl *Handler
	Svc Service
}
