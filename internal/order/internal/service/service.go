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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/emall/internal/cart"
	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/event"
	"github.com/ecodeclub/emall/internal/order/internal/repository"
	"github.com/ecodeclub/emall/internal/pkg/sequencenumber"
	"github.com/ecodeclub/emall/internal/store"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrEmptySnapshot    = errors.New("结算快照为空")
	ErrInvalidOrder     = errors.New("订单信息非法")
	ErrOrderNotFound    = errors.New("订单不存在")
	ErrNotStoreOrder    = errors.New("订单不属于当前卖家的店铺")
	ErrConcurrentUpdate = repository.ErrConcurrentUpdate
)

// Policy 下单策略, 运费按店铺订单收取, 多店铺购物车产生多份运费
type Policy struct {
	ShippingFee int64
}

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go -typed Service
type Service interface {
	// CreateFromSnapshot 把结算快照按店铺拆成多个订单, 一个事务里全部落库.
	// 快照价即成交价, 不回查商品. 落库成功后尽力清理购物车, 清理失败只记日志
	CreateFromSnapshot(ctx context.Context, uid int64, snapshot cart.Snapshot,
		paymentMethod string, address domain.ShippingAddress, notes string) ([]domain.Order, error)
	// UpdateStatus 买家侧状态流转, 非法流转返回 *domain.InvalidTransitionError
	UpdateStatus(ctx context.Context, uid, orderID int64, next domain.Status) (domain.Order, error)
	// SellerUpdateStatus 卖家侧推进履约状态, 只能操作自己店铺的订单
	SellerUpdateStatus(ctx context.Context, sellerID, orderID int64, next domain.Status) (domain.Order, error)
	CancelOrder(ctx context.Context, uid, orderID int64) error
	FindAll(ctx context.Context, uid int64, status domain.Status, offset, limit int) ([]domain.Order, int64, error)
	FindStoreOrders(ctx context.Context, sellerID int64, status domain.Status, offset, limit int) ([]domain.Order, int64, error)
	FindOne(ctx context.Context, uid, orderID int64) (domain.Order, error)
	FindBySNAndBuyerID(ctx context.Context, sn string, uid int64) (domain.Order, error)

	FindExpiredOrders(ctx context.Context, offset, limit int, maxCtime int64) ([]domain.Order, int64, error)
	CloseExpiredOrders(ctx context.Context, ids []int64, cancelledAt int64) error
}

func NewService(repo repository.OrderRepository,
	cartSvc cart.Service,
	storeSvc store.Service,
	snGenerator *sequencenumber.Generator,
	producer event.OrderEventProducer,
	inventory InventoryHook,
	policy Policy) Service {
	return &service{
		repo:        repo,
		cartSvc:     cartSvc,
		storeSvc:    storeSvc,
		snGenerator: snGenerator,
		producer:    producer,
		inventory:   inventory,
		policy:      policy,
		logger:      elog.DefaultLogger,
	}
}

type service struct {
	repo        repository.OrderRepository
	cartSvc     cart.Service
	storeSvc    store.Service
	snGenerator *sequencenumber.Generator
	producer    event.OrderEventProducer
	inventory   InventoryHook
	policy      Policy
	logger      *elog.Component
}

func (s *service) CreateFromSnapshot(ctx context.Context, uid int64, snapshot cart.Snapshot,
	paymentMethod string, address domain.ShippingAddress, notes string) ([]domain.Order, error) {
	orders, err := s.buildOrders(uid, snapshot, paymentMethod, address, notes)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.CreateOrders(ctx, orders)
	if err != nil {
		return nil, fmt.Errorf("订单落库失败: %w", err)
	}

	for _, order := range created {
		s.produce(ctx, event.OrderEvent{
			OrderSN: order.SN,
			Action:  event.ActionCreated,
			BuyerID: order.BuyerID,
			StoreID: order.StoreID,
			Status:  order.Status.String(),
			Amount:  order.TotalAmount,
		})
	}

	// 快照已结算, 购物车清理失败不影响已生成的订单
	if err = s.cartSvc.ClearSelected(ctx, uid); err != nil {
		s.logger.Error("清理购物车失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid))
	}
	return created, nil
}

// buildOrders 按店铺分组生成订单, 分组键取自每个快照项, 不回查商品
func (s *service) buildOrders(uid int64, snapshot cart.Snapshot,
	paymentMethod string, address domain.ShippingAddress, notes string) ([]domain.Order, error) {
	if snapshot.Empty() {
		return nil, ErrEmptySnapshot
	}
	if paymentMethod == "" {
		return nil, fmt.Errorf("%w: 未选择支付方式", ErrInvalidOrder)
	}

	groups := make(map[int64]int)
	orders := make([]domain.Order, 0, 1)
	for _, item := range snapshot.Items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: 商品数量非法", ErrInvalidOrder)
		}
		storeID := item.Product.StoreID
		idx, ok := groups[storeID]
		if !ok {
			sn, err := s.snGenerator.Generate(uid)
			if err != nil {
				return nil, fmt.Errorf("生成订单号失败: %w", err)
			}
			orders = append(orders, domain.Order{
				SN:              sn,
				BuyerID:         uid,
				StoreID:         storeID,
				ShippingFee:     s.policy.ShippingFee,
				TotalDiscount:   0,
				Status:          domain.StatusPendingPayment,
				PaymentMethod:   paymentMethod,
				ShippingAddress: address,
				Notes:           notes,
				Version:         1,
			})
			idx = len(orders) - 1
			groups[storeID] = idx
		}
		orders[idx].Items = append(orders[idx].Items, domain.OrderItem{
			ProductID:     item.Product.ProductID,
			SN:            item.Product.SN,
			Name:          item.Product.Name,
			Description:   item.Product.Description,
			OriginalPrice: item.Product.Price,
			ItemDiscount:  0,
			UnitPrice:     item.Product.Price,
			Subtotal:      item.Product.Price * item.Quantity,
			Quantity:      item.Quantity,
		})
		orders[idx].Subtotal += item.Product.Price * item.Quantity
	}
	for i := range orders {
		orders[i].TotalAmount = orders[i].Subtotal + orders[i].ShippingFee - orders[i].TotalDiscount
	}
	return orders, nil
}

func (s *service) UpdateStatus(ctx context.Context, uid, orderID int64, next domain.Status) (domain.Order, error) {
	order, err := s.findOwned(ctx, uid, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	return s.transition(ctx, order, next)
}

func (s *service) SellerUpdateStatus(ctx context.Context, sellerID, orderID int64, next domain.Status) (domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, fmt.Errorf("%w: id=%d", ErrOrderNotFound, orderID)
		}
		return domain.Order{}, err
	}
	st, err := s.storeSvc.FindBySellerID(ctx, sellerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("查找卖家店铺失败: %w", err)
	}
	if order.StoreID != st.ID {
		return domain.Order{}, fmt.Errorf("%w: id=%d", ErrNotStoreOrder, orderID)
	}
	return s.transition(ctx, order, next)
}

// transition 校验并持久化一次状态流转, 随后触发库存钩子和事件
func (s *service) transition(ctx context.Context, order domain.Order, next domain.Status) (domain.Order, error) {
	if err := order.Transition(next, time.Now().UnixMilli()); err != nil {
		return domain.Order{}, err
	}
	if err := s.repo.UpdateStatus(ctx, order); err != nil {
		return domain.Order{}, err
	}
	order.Version++

	switch next {
	case domain.StatusPaid:
		if err := s.inventory.Commit(ctx, order); err != nil {
			return domain.Order{}, fmt.Errorf("扣减库存失败: %w", err)
		}
	case domain.StatusCancelled:
		if err := s.inventory.Release(ctx, order); err != nil {
			return domain.Order{}, fmt.Errorf("释放库存失败: %w", err)
		}
	}

	s.produce(ctx, event.OrderEvent{
		OrderSN: order.SN,
		Action:  event.ActionStatusChanged,
		BuyerID: order.BuyerID,
		StoreID: order.StoreID,
		Status:  order.Status.String(),
		Amount:  order.TotalAmount,
	})
	return order, nil
}

func (s *service) CancelOrder(ctx context.Context, uid, orderID int64) error {
	_, err := s.UpdateStatus(ctx, uid, orderID, domain.StatusCancelled)
	return err
}

func (s *service) FindAll(ctx context.Context, uid int64, status domain.Status, offset, limit int) ([]domain.Order, int64, error) {
	return s.list(ctx, repository.ListQuery{
		BuyerID: uid,
		Status:  status,
		Offset:  offset,
		Limit:   limit,
	})
}

func (s *service) FindStoreOrders(ctx context.Context, sellerID int64, status domain.Status, offset, limit int) ([]domain.Order, int64, error) {
	st, err := s.storeSvc.FindBySellerID(ctx, sellerID)
	if err != nil {
		return nil, 0, fmt.Errorf("查找卖家店铺失败: %w", err)
	}
	return s.list(ctx, repository.ListQuery{
		StoreID: st.ID,
		Status:  status,
		Offset:  offset,
		Limit:   limit,
	})
}

func (s *service) list(ctx context.Context, q repository.ListQuery) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.List(ctx, q)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, q)
		return err
	})
	return orders, total, eg.Wait()
}

func (s *service) FindOne(ctx context.Context, uid, orderID int64) (domain.Order, error) {
	return s.findOwned(ctx, uid, orderID)
}

func (s *service) FindBySNAndBuyerID(ctx context.Context, sn string, uid int64) (domain.Order, error) {
	order, err := s.repo.FindBySN(ctx, sn)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, fmt.Errorf("%w: sn=%s", ErrOrderNotFound, sn)
		}
		return domain.Order{}, err
	}
	// 他人的订单一律按不存在处理
	if !order.OwnedBy(uid) {
		return domain.Order{}, fmt.Errorf("%w: sn=%s", ErrOrderNotFound, sn)
	}
	return order, nil
}

func (s *service) FindExpiredOrders(ctx context.Context, offset, limit int, maxCtime int64) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.ListExpired(ctx, maxCtime, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountExpired(ctx, maxCtime)
		return err
	})
	return orders, total, eg.Wait()
}

func (s *service) CloseExpiredOrders(ctx context.Context, ids []int64, cancelledAt int64) error {
	return s.repo.CloseExpired(ctx, ids, cancelledAt)
}

func (s *service) findOwned(ctx context.Context, uid, orderID int64) (domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, fmt.Errorf("%w: id=%d", ErrOrderNotFound, orderID)
		}
		return domain.Order{}, err
	}
	if !order.OwnedBy(uid) {
		return domain.Order{}, fmt.Errorf("%w: id=%d", ErrOrderNotFound, orderID)
	}
	return order, nil
}

func (s *service) produce(ctx context.Context, evt event.OrderEvent) {
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送订单事件失败",
			elog.FieldErr(err),
			elog.String("orderSN", evt.OrderSN),
			elog.String("action", evt.Action))
	}
}
