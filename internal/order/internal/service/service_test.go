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
	"strings"
	"testing"

	"github.com/ecodeclub/emall/internal/cart"
	cartmocks "github.com/ecodeclub/emall/internal/cart/mocks"
	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/event"
	evtmocks "github.com/ecodeclub/emall/internal/order/internal/event/mocks"
	"github.com/ecodeclub/emall/internal/order/internal/repository"
	repomocks "github.com/ecodeclub/emall/internal/order/internal/repository/mocks"
	"github.com/ecodeclub/emall/internal/pkg/sequencenumber"
	"github.com/ecodeclub/emall/internal/store"
	storemocks "github.com/ecodeclub/emall/internal/store/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recordingInventoryHook 记录钩子调用, 供断言
type recordingInventoryHook struct {
	committed []string
	released  []string
	err       error
}

func (h *recordingInventoryHook) Commit(_ context.Context, order domain.Order) error {
	h.committed = append(h.committed, order.SN)
	return h.err
}

func (h *recordingInventoryHook) Release(_ context.Context, order domain.Order) error {
	h.released = append(h.released, order.SN)
	return h.err
}

func snapshotItem(productID, storeID, price, quantity int64) cart.SnapshotItem {
	return cart.SnapshotItem{
		Quantity: quantity,
		Product: cart.ProductSnapshot{
			ProductID: productID,
			SN:        "PRD-test",
			StoreID:   storeID,
			Name:      "测试商品",
			Price:     price,
		},
	}
}

func newTestService(repo repository.OrderRepository,
	cartSvc cart.Service,
	storeSvc store.Service,
	producer event.OrderEventProducer,
	hook InventoryHook) Service {
	return NewService(repo, cartSvc, storeSvc,
		sequencenumber.NewGenerator("ORD"), producer, hook, Policy{ShippingFee: 60})
}

func TestService_CreateFromSnapshot(t *testing.T) {
	t.Parallel()

	addr := domain.ShippingAddress{Recipient: "张三", Phone: "13800000000", Province: "北京", City: "北京", Detail: "某某路1号"}

	testCases := []struct {
		name     string
		snapshot cart.Snapshot
		setup    func(repo *repomocks.MockOrderRepository, cartSvc *cartmocks.MockService, producer *evtmocks.MockOrderEventProducer)
		assert   func(t *testing.T, orders []domain.Order, err error)
	}{
		{
			name: "两个店铺拆成两个订单",
			snapshot: cart.Snapshot{Items: []cart.SnapshotItem{
				snapshotItem(1, 100, 100, 2),
				snapshotItem(2, 100, 200, 1),
				snapshotItem(3, 200, 500, 1),
			}},
			setup: func(repo *repomocks.MockOrderRepository, cartSvc *cartmocks.MockService, producer *evtmocks.MockOrderEventProducer) {
				repo.EXPECT().CreateOrders(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, orders []domain.Order) ([]domain.Order, error) {
						require.Len(t, orders, 2)
						for i := range orders {
							orders[i].ID = int64(i + 1)
						}
						return orders, nil
					}).Times(1)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).Times(2)
				cartSvc.EXPECT().ClearSelected(gomock.Any(), int64(7)).Return(nil).Times(1)
			},
			assert: func(t *testing.T, orders []domain.Order, err error) {
				require.NoError(t, err)
				require.Len(t, orders, 2)

				first, second := orders[0], orders[1]
				assert.Equal(t, int64(100), first.StoreID)
				assert.Equal(t, int64(400), first.Subtotal)
				assert.Equal(t, int64(60), first.ShippingFee)
				assert.Equal(t, int64(0), first.TotalDiscount)
				assert.Equal(t, int64(460), first.TotalAmount)
				assert.Len(t, first.Items, 2)
				assert.Equal(t, int64(200), first.Items[0].Subtotal)
				assert.Equal(t, int64(100), first.Items[0].UnitPrice)
				assert.Equal(t, int64(100), first.Items[0].OriginalPrice)

				assert.Equal(t, int64(200), second.StoreID)
				assert.Equal(t, int64(560), second.TotalAmount)
				assert.Len(t, second.Items, 1)

				for _, o := range orders {
					assert.True(t, strings.HasPrefix(o.SN, "ORD"), o.SN)
					assert.Equal(t, domain.StatusPendingPayment, o.Status)
					assert.Equal(t, int64(7), o.BuyerID)
					assert.Equal(t, int64(1), o.Version)
					assert.Equal(t, o.Subtotal+o.ShippingFee-o.TotalDiscount, o.TotalAmount)
					for _, item := range o.Items {
						assert.Equal(t, item.UnitPrice*item.Quantity, item.Subtotal)
					}
				}
				assert.NotEqual(t, first.SN, second.SN)
			},
		},
		{
			name:     "空快照直接拒绝",
			snapshot: cart.Snapshot{},
			setup: func(repo *repomocks.MockOrderRepository, cartSvc *cartmocks.MockService, producer *evtmocks.MockOrderEventProducer) {
			},
			assert: func(t *testing.T, orders []domain.Order, err error) {
				assert.ErrorIs(t, err, ErrEmptySnapshot)
				assert.Empty(t, orders)
			},
		},
		{
			name: "落库失败不清理购物车",
			snapshot: cart.Snapshot{Items: []cart.SnapshotItem{
				snapshotItem(1, 100, 100, 1),
			}},
			setup: func(repo *repomocks.MockOrderRepository, cartSvc *cartmocks.MockService, producer *evtmocks.MockOrderEventProducer) {
				repo.EXPECT().CreateOrders(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db断开")).Times(1)
			},
			assert: func(t *testing.T, orders []domain.Order, err error) {
				require.Error(t, err)
				assert.Empty(t, orders)
			},
		},
		{
			name: "清理购物车失败不影响下单",
			snapshot: cart.Snapshot{Items: []cart.SnapshotItem{
				snapshotItem(1, 100, 1000, 1),
			}},
			setup: func(repo *repomocks.MockOrderRepository, cartSvc *cartmocks.MockService, producer *evtmocks.MockOrderEventProducer) {
				repo.EXPECT().CreateOrders(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, orders []domain.Order) ([]domain.Order, error) {
						return orders, nil
					}).Times(1)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).Times(1)
				cartSvc.EXPECT().ClearSelected(gomock.Any(), int64(7)).
					Return(errors.New("redis超时")).Times(1)
			},
			assert: func(t *testing.T, orders []domain.Order, err error) {
				require.NoError(t, err)
				require.Len(t, orders, 1)
				assert.Equal(t, int64(1060), orders[0].TotalAmount)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockOrderRepository(ctrl)
			cartSvc := cartmocks.NewMockService(ctrl)
			storeSvc := storemocks.NewMockService(ctrl)
			producer := evtmocks.NewMockOrderEventProducer(ctrl)
			tc.setup(repo, cartSvc, producer)

			svc := newTestService(repo, cartSvc, storeSvc, producer, NewNoopInventoryHook())
			orders, err := svc.CreateFromSnapshot(context.Background(), 7, tc.snapshot, "alipay", addr, "")
			tc.assert(t, orders, err)
		})
	}
}

func TestService_CreateFromSnapshot_NoPaymentMethod(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc := newTestService(repomocks.NewMockOrderRepository(ctrl),
		cartmocks.NewMockService(ctrl), storemocks.NewMockService(ctrl),
		evtmocks.NewMockOrderEventProducer(ctrl), NewNoopInventoryHook())

	_, err := svc.CreateFromSnapshot(context.Background(), 7,
		cart.Snapshot{Items: []cart.SnapshotItem{snapshotItem(1, 100, 100, 1)}},
		"", domain.ShippingAddress{}, "")
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestService_UpdateStatus(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		next   domain.Status
		setup  func(repo *repomocks.MockOrderRepository, producer *evtmocks.MockOrderEventProducer)
		hook   *recordingInventoryHook
		assert func(t *testing.T, hook *recordingInventoryHook, order domain.Order, err error)
	}{
		{
			name: "支付成功触发库存提交",
			next: domain.StatusPaid,
			setup: func(repo *repomocks.MockOrderRepository, producer *evtmocks.MockOrderEventProducer) {
				repo.EXPECT().FindByID(gomock.Any(), int64(11)).
					Return(domain.Order{ID: 11, SN: "ORD-1", BuyerID: 7, Status: domain.StatusPendingPayment, Version: 1}, nil).Times(1)
				repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, order domain.Order) error {
						assert.Equal(t, domain.StatusPaid, order.Status)
						assert.NotZero(t, order.PaidAt)
						assert.Equal(t, int64(1), order.Version)
						return nil
					}).Times(1)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.OrderEvent) error {
						assert.Equal(t, event.ActionStatusChanged, evt.Action)
						assert.Equal(t, "paid", evt.Status)
						return nil
					}).Times(1)
			},
			hook: &recordingInventoryHook{},
			assert: func(t *testing.T, hook *recordingInventoryHook, order domain.Order, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.StatusPaid, order.Status)
				assert.Equal(t, int64(2), order.Version)
				assert.Equal(t, []string{"ORD-1"}, hook.committed)
				assert.Empty(t, hook.released)
			},
		},
		{
			name: "取消触发库存释放",
			next: domain.StatusCancelled,
			setup: func(repo *repomocks.MockOrderRepository, producer *evtmocks.MockOrderEventProducer) {
				repo.EXPECT().FindByID(gomock.Any(), int64(11)).
					Return(domain.Order{ID: 11, SN: "ORD-1", BuyerID: 7, Status: domain.StatusPendingPayment, Version: 1}, nil).Times(1)
				repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(nil).Times(1)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).Times(1)
			},
			hook: &recordingInventoryHook{},
			assert: func(t *testing.T, hook *recordingInventoryHook, order domain.Order, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"ORD-1"}, hook.released)
				assert.Empty(t, hook.committed)
			},
		},
		{
			name: "非法流转",
			next: domain.StatusPaid,
			setup: func(repo *repomocks.MockOrderRepository, producer *evtmocks.MockOrderEventProducer) {
				repo.EXPECT().FindByID(gomock.Any(), int64(11)).
					Return(domain.Order{ID: 11, SN: "ORD-1", BuyerID: 7, Status: domain.StatusDelivered}, nil).Times(1)
			},
			hook: &recordingInventoryHook{},
			assert: func(t *testing.T, hook *recordingInventoryHook, order domain.Order, err error) {
				var invalid *domain.InvalidTransitionError
				require.True(t, errors.As(err, &invalid))
				assert.Equal(t, domain.StatusDelivered, invalid.From)
				assert.Equal(t, domain.StatusPaid, invalid.To)
				assert.Empty(t, hook.committed)
			},
		},
		{
			name: "他人订单按不存在处理",
			next: domain.StatusPaid,
			setup: func(repo *repomocks.MockOrderRepository, producer *evtmocks.MockOrderEventProducer) {
				repo.EXPECT().FindByID(gomock.Any(), int64(11)).
					Return(domain.Order{ID: 11, BuyerID: 999, Status: domain.StatusPendingPayment}, nil).Times(1)
			},
			hook: &recordingInventoryHook{},
			assert: func(t *testing.T, hook *recordingInventoryHook, order domain.Order, err error) {
				assert.ErrorIs(t, err, ErrOrderNotFound)
			},
		},
		{
			name: "版本冲突",
			next: domain.StatusPaid,
			setup: func(repo *repomocks.MockOrderRepository, producer *evtmocks.MockOrderEventProducer) {
				repo.EXPECT().FindByID(gomock.Any(), int64(11)).
					Return(domain.Order{ID: 11, BuyerID: 7, Status: domain.StatusPendingPayment, Version: 1}, nil).Times(1)
				repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).
					Return(repository.ErrConcurrentUpdate).Times(1)
			},
			hook: &recordingInventoryHook{},
			assert: func(t *testing.T, hook *recordingInventoryHook, order domain.Order, err error) {
				assert.ErrorIs(t, err, ErrConcurrentUpdate)
				assert.Empty(t, hook.committed)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockOrderRepository(ctrl)
			producer := evtmocks.NewMockOrderEventProducer(ctrl)
			tc.setup(repo, producer)

			svc := newTestService(repo, cartmocks.NewMockService(ctrl),
				storemocks.NewMockService(ctrl), producer, tc.hook)
			order, err := svc.UpdateStatus(context.Background(), 7, 11, tc.next)
			tc.assert(t, tc.hook, order, err)
		})
	}
}

func TestService_SellerUpdateStatus(t *testing.T) {
	t.Parallel()

	t.Run("卖家推进发货", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockOrderRepository(ctrl)
		storeSvc := storemocks.NewMockService(ctrl)
		producer := evtmocks.NewMockOrderEventProducer(ctrl)

		repo.EXPECT().FindByID(gomock.Any(), int64(11)).
			Return(domain.Order{ID: 11, SN: "ORD-1", BuyerID: 7, StoreID: 100, Status: domain.StatusProcessing}, nil).Times(1)
		storeSvc.EXPECT().FindBySellerID(gomock.Any(), int64(42)).
			Return(store.Store{ID: 100, SellerID: 42}, nil).Times(1)
		repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		svc := newTestService(repo, cartmocks.NewMockService(ctrl), storeSvc, producer, NewNoopInventoryHook())
		order, err := svc.SellerUpdateStatus(context.Background(), 42, 11, domain.StatusShipped)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusShipped, order.Status)
		assert.NotZero(t, order.ShippedAt)
	})

	t.Run("非本店订单", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockOrderRepository(ctrl)
		storeSvc := storemocks.NewMockService(ctrl)

		repo.EXPECT().FindByID(gomock.Any(), int64(11)).
			Return(domain.Order{ID: 11, StoreID: 100, Status: domain.StatusProcessing}, nil).Times(1)
		storeSvc.EXPECT().FindBySellerID(gomock.Any(), int64(42)).
			Return(store.Store{ID: 200, SellerID: 42}, nil).Times(1)

		svc := newTestService(repo, cartmocks.NewMockService(ctrl), storeSvc,
			evtmocks.NewMockOrderEventProducer(ctrl), NewNoopInventoryHook())
		_, err := svc.SellerUpdateStatus(context.Background(), 42, 11, domain.StatusShipped)
		assert.ErrorIs(t, err, ErrNotStoreOrder)
	})
}
