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

package repository

import (
	"context"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/repository/dao"
)

// ErrConcurrentUpdate 乐观锁冲突, 由 dao 透传
var ErrConcurrentUpdate = dao.ErrConcurrentUpdate

type ListQuery struct {
	BuyerID int64
	StoreID int64
	Status  domain.Status
	Offset  int
	Limit   int
}

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/order_repository.mock.go -typed OrderRepository
type OrderRepository interface {
	// CreateOrders 一次结算的全部订单原子落库, 返回带ID的订单
	CreateOrders(ctx context.Context, orders []domain.Order) ([]domain.Order, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	List(ctx context.Context, q ListQuery) ([]domain.Order, error)
	Count(ctx context.Context, q ListQuery) (int64, error)
	UpdateStatus(ctx context.Context, order domain.Order) error
	ListExpired(ctx context.Context, maxCtime int64, offset, limit int) ([]domain.Order, error)
	CountExpired(ctx context.Context, maxCtime int64) (int64, error)
	CloseExpired(ctx context.Context, ids []int64, cancelledAt int64) error
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) CreateOrders(ctx context.Context, orders []domain.Order) ([]domain.Order, error) {
	entities := make([]dao.Order, 0, len(orders))
	items := make([][]dao.OrderItem, 0, len(orders))
	for _, order := range orders {
		entities = append(entities, o.toEntity(order))
		items = append(items, slice.Map(order.Items, func(idx int, src domain.OrderItem) dao.OrderItem {
			return o.toItemEntity(src)
		}))
	}
	ids, err := o.d.CreateOrders(ctx, entities, items)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].ID = ids[i]
	}
	return orders, nil
}

func (o *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	order, err := o.d.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := o.d.FindItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("查找订单项失败: %w", err)
	}
	return o.toDomain(order, items), nil
}

func (o *orderRepository) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := o.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := o.d.FindItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("查找订单项失败: %w", err)
	}
	return o.toDomain(order, items), nil
}

func (o *orderRepository) List(ctx context.Context, q ListQuery) ([]domain.Order, error) {
	orders, err := o.d.List(ctx, dao.ListQuery{
		BuyerID: q.BuyerID,
		StoreID: q.StoreID,
		Status:  q.Status.ToUint8(),
		Offset:  q.Offset,
		Limit:   q.Limit,
	})
	if err != nil {
		return nil, err
	}
	res := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		items, err := o.d.FindItemsByOrderID(ctx, order.Id)
		if err != nil {
			return nil, fmt.Errorf("查找订单项失败: %w", err)
		}
		res = append(res, o.toDomain(order, items))
	}
	return res, nil
}

func (o *orderRepository) Count(ctx context.Context, q ListQuery) (int64, error) {
	return o.d.Count(ctx, dao.ListQuery{
		BuyerID: q.BuyerID,
		StoreID: q.StoreID,
		Status:  q.Status.ToUint8(),
	})
}

func (o *orderRepository) UpdateStatus(ctx context.Context, order domain.Order) error {
	return o.d.UpdateStatus(ctx, o.toEntity(order))
}

func (o *orderRepository) ListExpired(ctx context.Context, maxCtime int64, offset, limit int) ([]domain.Order, error) {
	orders, err := o.d.ListExpired(ctx, maxCtime, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src, nil)
	}), nil
}

func (o *orderRepository) CountExpired(ctx context.Context, maxCtime int64) (int64, error) {
	return o.d.CountExpired(ctx, maxCtime)
}

func (o *orderRepository) CloseExpired(ctx context.Context, ids []int64, cancelledAt int64) error {
	return o.d.CloseExpired(ctx, ids, cancelledAt)
}

func (o *orderRepository) toEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:            order.ID,
		SN:            order.SN,
		BuyerId:       order.BuyerID,
		StoreId:       order.StoreID,
		Subtotal:      order.Subtotal,
		ShippingFee:   order.ShippingFee,
		TotalDiscount: order.TotalDiscount,
		TotalAmount:   order.TotalAmount,
		Status:        order.Status.ToUint8(),
		PaymentMethod: order.PaymentMethod,
		ShippingAddress: sqlx.JsonColumn[domain.ShippingAddress]{
			Val:   order.ShippingAddress,
			Valid: true,
		},
		Notes:       order.Notes,
		PaidAt:      order.PaidAt,
		ShippedAt:   order.ShippedAt,
		DeliveredAt: order.DeliveredAt,
		CompletedAt: order.CompletedAt,
		CancelledAt: order.CancelledAt,
		Version:     order.Version,
	}
}

func (o *orderRepository) toItemEntity(item domain.OrderItem) dao.OrderItem {
	return dao.OrderItem{
		Id:            item.ID,
		OrderId:       item.OrderID,
		ProductId:     item.ProductID,
		SN:            item.SN,
		Name:          item.Name,
		Description:   item.Description,
		OriginalPrice: item.OriginalPrice,
		ItemDiscount:  item.ItemDiscount,
		UnitPrice:     item.UnitPrice,
		Subtotal:      item.Subtotal,
		Quantity:      item.Quantity,
	}
}

func (o *orderRepository) toDomain(order dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:              order.Id,
		SN:              order.SN,
		BuyerID:         order.BuyerId,
		StoreID:         order.StoreId,
		Subtotal:        order.Subtotal,
		ShippingFee:     order.ShippingFee,
		TotalDiscount:   order.TotalDiscount,
		TotalAmount:     order.TotalAmount,
		Status:          domain.Status(order.Status),
		PaymentMethod:   order.PaymentMethod,
		ShippingAddress: order.ShippingAddress.Val,
		Notes:           order.Notes,
		PaidAt:          order.PaidAt,
		ShippedAt:       order.ShippedAt,
		DeliveredAt:     order.DeliveredAt,
		CompletedAt:     order.CompletedAt,
		CancelledAt:     order.CancelledAt,
		Version:         order.Version,
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return domain.OrderItem{
				ID:            src.Id,
				OrderID:       src.OrderId,
				ProductID:     src.ProductId,
				SN:            src.SN,
				Name:          src.Name,
				Description:   src.Description,
				OriginalPrice: src.OriginalPrice,
				ItemDiscount:  src.ItemDiscount,
				UnitPrice:     src.UnitPrice,
				Subtotal:      src.Subtotal,
				Quantity:      src.Quantity,
			}
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}
