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

//go:build e2e

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/emall/internal/order/internal/repository/dao"
	testioc "github.com/ecodeclub/emall/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestOrderDAOTestSuite(t *testing.T) {
	suite.Run(t, new(OrderDAOTestSuite))
}

type OrderDAOTestSuite struct {
	suite.Suite
	db  *egorm.Component
	dao dao.OrderDAO
}

func (s *OrderDAOTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.dao = dao.NewOrderGORMDAO(s.db)
}

func (s *OrderDAOTestSuite) TearDownSuite() {
	s.NoError(s.db.Exec("DROP TABLE `orders`").Error)
	s.NoError(s.db.Exec("DROP TABLE `order_items`").Error)
}

func (s *OrderDAOTestSuite) TearDownTest() {
	s.NoError(s.db.Exec("TRUNCATE TABLE `orders`").Error)
	s.NoError(s.db.Exec("TRUNCATE TABLE `order_items`").Error)
}

func (s *OrderDAOTestSuite) createOrder(sn string, status uint8) int64 {
	s.T().Helper()
	ids, err := s.dao.CreateOrders(context.Background(),
		[]dao.Order{{
			SN:            sn,
			BuyerId:       7,
			StoreId:       100,
			Subtotal:      400,
			ShippingFee:   60,
			TotalAmount:   460,
			Status:        status,
			PaymentMethod: "credit_card",
		}},
		[][]dao.OrderItem{{{
			ProductId:     11,
			SN:            "PRD-11",
			Name:          "手机",
			OriginalPrice: 200,
			UnitPrice:     200,
			Subtotal:      400,
			Quantity:      2,
		}}})
	require.NoError(s.T(), err)
	require.Len(s.T(), ids, 1)
	return ids[0]
}

func (s *OrderDAOTestSuite) TestCreateOrders_TransactionalBatch() {
	t := s.T()
	ids, err := s.dao.CreateOrders(context.Background(),
		[]dao.Order{
			{SN: "ORD1", BuyerId: 7, StoreId: 100, Subtotal: 400, ShippingFee: 60, TotalAmount: 460, Status: 1, PaymentMethod: "credit_card"},
			{SN: "ORD2", BuyerId: 7, StoreId: 200, Subtotal: 500, ShippingFee: 60, TotalAmount: 560, Status: 1, PaymentMethod: "credit_card"},
		},
		[][]dao.OrderItem{
			{{ProductId: 11, SN: "PRD-11", Name: "手机", OriginalPrice: 200, UnitPrice: 200, Subtotal: 400, Quantity: 2}},
			{{ProductId: 12, SN: "PRD-12", Name: "耳机", OriginalPrice: 500, UnitPrice: 500, Subtotal: 500, Quantity: 1}},
		})
	require.NoError(t, err)
	require.Len(t, ids, 2)

	for _, id := range ids {
		o, err := s.dao.FindByID(context.Background(), id)
		require.NoError(t, err)
		require.Equal(t, int64(1), o.Version)
		require.NotZero(t, o.Ctime)
		items, err := s.dao.FindItemsByOrderID(context.Background(), id)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, id, items[0].OrderId)
	}
}

func (s *OrderDAOTestSuite) TestCreateOrders_RollbackOnFailure() {
	t := s.T()
	// 第二单复用第一单的订单号, 唯一索引拒绝后整批回滚
	_, err := s.dao.CreateOrders(context.Background(),
		[]dao.Order{
			{SN: "ORD-DUP", BuyerId: 7, StoreId: 100, Subtotal: 400, ShippingFee: 60, TotalAmount: 460, Status: 1, PaymentMethod: "credit_card"},
			{SN: "ORD-DUP", BuyerId: 7, StoreId: 200, Subtotal: 500, ShippingFee: 60, TotalAmount: 560, Status: 1, PaymentMethod: "credit_card"},
		},
		[][]dao.OrderItem{
			{{ProductId: 11, SN: "PRD-11", Name: "手机", OriginalPrice: 200, UnitPrice: 200, Subtotal: 400, Quantity: 2}},
			{{ProductId: 12, SN: "PRD-12", Name: "耳机", OriginalPrice: 500, UnitPrice: 500, Subtotal: 500, Quantity: 1}},
		})
	require.Error(t, err)

	// 第一单和它的订单项也不能留下
	var orderCount int64
	require.NoError(t, s.db.Model(&dao.Order{}).Count(&orderCount).Error)
	require.Zero(t, orderCount)
	var itemCount int64
	require.NoError(t, s.db.Model(&dao.OrderItem{}).Count(&itemCount).Error)
	require.Zero(t, itemCount)
}

func (s *OrderDAOTestSuite) TestUpdateStatus_OptimisticLock() {
	t := s.T()
	id := s.createOrder("ORD3", 1)

	o, err := s.dao.FindByID(context.Background(), id)
	require.NoError(t, err)

	// 第一次以当前版本写入成功, 版本号加一
	o.Status = 3
	o.PaidAt = time.Now().UnixMilli()
	require.NoError(t, s.dao.UpdateStatus(context.Background(), o))

	got, err := s.dao.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, uint8(3), got.Status)
	require.Equal(t, o.Version+1, got.Version)
	require.NotZero(t, got.PaidAt)

	// 拿着旧版本再写, 命中不了任何行
	o.Status = 8
	err = s.dao.UpdateStatus(context.Background(), o)
	require.ErrorIs(t, err, dao.ErrConcurrentUpdate)

	got, err = s.dao.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, uint8(3), got.Status)
}

func (s *OrderDAOTestSuite) TestCloseExpired() {
	t := s.T()
	pending := s.createOrder("ORD4", 1)
	paid := s.createOrder("ORD5", 3)

	maxCtime := time.Now().Add(time.Minute).UnixMilli()
	expired, err := s.dao.ListExpired(context.Background(), maxCtime, 0, 10)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	require.Equal(t, pending, expired[0].Id)

	count, err := s.dao.CountExpired(context.Background(), maxCtime)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	// 已支付的订单即便混进ID列表也不会被关闭
	cancelledAt := time.Now().UnixMilli()
	require.NoError(t, s.dao.CloseExpired(context.Background(), []int64{pending, paid}, cancelledAt))

	got, err := s.dao.FindByID(context.Background(), pending)
	require.NoError(t, err)
	require.Equal(t, uint8(8), got.Status)
	require.Equal(t, cancelledAt, got.CancelledAt)
	require.Equal(t, int64(2), got.Version)

	got, err = s.dao.FindByID(context.Background(), paid)
	require.NoError(t, err)
	require.Equal(t, uint8(3), got.Status)
	require.Zero(t, got.CancelledAt)
}
