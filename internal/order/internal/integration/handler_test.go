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
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/emall/internal/cart"
	"github.com/ecodeclub/emall/internal/discount"
	"github.com/ecodeclub/emall/internal/order"
	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/errs"
	"github.com/ecodeclub/emall/internal/order/internal/event"
	"github.com/ecodeclub/emall/internal/order/internal/service"
	"github.com/ecodeclub/emall/internal/order/internal/web"
	"github.com/ecodeclub/emall/internal/product"
	"github.com/ecodeclub/emall/internal/store"
	"github.com/ecodeclub/emall/internal/test"
	testioc "github.com/ecodeclub/emall/internal/test/ioc"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	// uid 既是买家也是自家店铺的卖家
	uid         = int64(123)
	otherSeller = int64(456)
	otherBuyer  = int64(888)
)

func TestOrderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

type OrderHandlerTestSuite struct {
	suite.Suite
	server   *egin.Component
	db       *egorm.Component
	svc      service.Service
	cartSvc  cart.Service
	prodSvc  product.Service
	storeSvc store.Service
	consumer mq.Consumer

	typeID       int64
	myStoreID    int64
	otherStoreID int64
	productA1    int64 // 自家店铺, 1000分
	productA2    int64 // 自家店铺, 500分
	productB1    int64 // 别家店铺, 2000分
}

func (s *OrderHandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	cache := testioc.InitCache()
	q := testioc.InitMQ()

	storeModule := store.InitModule(s.db)
	discountModule := discount.InitModule(s.db, storeModule)
	productModule := product.InitModule(s.db, q, storeModule, discountModule)
	cartModule := cart.InitModule(s.db, productModule)
	orderModule := order.InitModule(s.db, cache, q, service.Policy{ShippingFee: 60}, cartModule, storeModule)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	orderModule.Hdl.PrivateRoutes(server.Engine)

	s.server = server
	s.svc = orderModule.Svc
	s.cartSvc = cartModule.Svc
	s.prodSvc = productModule.Svc
	s.storeSvc = storeModule.Svc

	consumer, err := q.Consumer("order_events", "order_handler_test_group")
	require.NoError(s.T(), err)
	s.consumer = consumer
}

func (s *OrderHandlerTestSuite) SetupTest() {
	t := s.T()
	ctx := context.Background()

	typeID, err := s.prodSvc.CreateProductType(ctx, product.ProductType{Code: "digital", Name: "数码"})
	require.NoError(t, err)
	s.typeID = typeID

	s.myStoreID, err = s.storeSvc.Create(ctx, store.Store{SellerID: uid, Name: "自家店铺"})
	require.NoError(t, err)
	s.otherStoreID, err = s.storeSvc.Create(ctx, store.Store{SellerID: otherSeller, Name: "别家店铺"})
	require.NoError(t, err)

	s.productA1 = s.createOnShelfProduct(uid, "商品A1", 1000)
	s.productA2 = s.createOnShelfProduct(uid, "商品A2", 500)
	s.productB1 = s.createOnShelfProduct(otherSeller, "商品B1", 2000)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	for _, table := range []string{
		"orders", "order_items", "cart_items",
		"products", "product_types", "stores",
		"discounts", "special_discounts",
	} {
		s.NoError(s.db.Exec(fmt.Sprintf("TRUNCATE TABLE `%s`", table)).Error)
	}
}

func (s *OrderHandlerTestSuite) TearDownSuite() {
	for _, table := range []string{
		"orders", "order_items", "cart_items",
		"products", "product_types", "stores",
		"discounts", "special_discounts",
	} {
		s.NoError(s.db.Exec(fmt.Sprintf("DROP TABLE `%s`", table)).Error)
	}
}

func (s *OrderHandlerTestSuite) createOnShelfProduct(sellerID int64, name string, price int64) int64 {
	s.T().Helper()
	ctx := context.Background()
	id, err := s.prodSvc.Create(ctx, sellerID, product.Product{
		ProductTypeID: s.typeID,
		Name:          name,
		Description:   "描述" + name,
		Price:         price,
	})
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.prodSvc.Publish(ctx, sellerID, id))
	return id
}

func (s *OrderHandlerTestSuite) addToCart(productID, quantity int64) {
	s.T().Helper()
	_, err := s.cartSvc.Add(context.Background(), uid, productID, quantity)
	require.NoError(s.T(), err)
}

// createOrder 直接从一份手工快照落库一个订单, 绕过购物车
func (s *OrderHandlerTestSuite) createOrder(buyerID, storeID, price, quantity int64) domain.Order {
	s.T().Helper()
	orders, err := s.svc.CreateFromSnapshot(context.Background(), buyerID, cart.Snapshot{
		Items: []cart.SnapshotItem{
			{
				Quantity: quantity,
				Product: cart.ProductSnapshot{
					ProductID:     s.productA1,
					SN:            "SN-A1",
					StoreID:       storeID,
					ProductTypeID: s.typeID,
					Name:          "商品A1",
					Description:   "描述商品A1",
					Price:         price,
				},
			},
		},
	}, "wechat", domain.ShippingAddress{
		Recipient: "张三",
		Phone:     "13800000000",
		Province:  "广东",
		City:      "深圳",
		Detail:    "南山区1号",
	}, "")
	require.NoError(s.T(), err)
	require.Len(s.T(), orders, 1)
	return orders[0]
}

func requestID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func (s *OrderHandlerTestSuite) TestHandler_CreateOrders() {
	t := s.T()
	// 勾选两家店铺的商品, 结算要拆成两个订单
	s.addToCart(s.productA1, 2)
	s.addToCart(s.productA2, 1)
	s.addToCart(s.productB1, 1)

	req, err := http.NewRequest(http.MethodPost,
		"/order/create", iox.NewJSONReader(web.CreateOrderReq{
			RequestID:     requestID("split"),
			PaymentMethod: "wechat",
			Address: web.ShippingAddress{
				Recipient: "张三",
				Phone:     "13800000000",
				Province:  "广东",
				City:      "深圳",
				Detail:    "南山区1号",
			},
			Notes: "工作日送货",
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CreateOrderResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	resp := recorder.MustScan().Data
	require.Len(t, resp.Orders, 2)
	byStore := slice.ToMap(resp.Orders, func(o web.Order) int64 {
		return o.StoreID
	})

	mine := byStore[s.myStoreID]
	assert.True(t, strings.HasPrefix(mine.SN, "ORD"))
	assert.Equal(t, int64(2500), mine.Subtotal)
	assert.Equal(t, int64(60), mine.ShippingFee)
	assert.Equal(t, int64(0), mine.TotalDiscount)
	assert.Equal(t, int64(2560), mine.TotalAmount)
	assert.Equal(t, domain.StatusPendingPayment.ToUint8(), mine.Status)
	assert.Equal(t, "pending_payment", mine.StatusName)
	assert.Equal(t, "wechat", mine.PaymentMethod)
	assert.Equal(t, "工作日送货", mine.Notes)
	assert.Equal(t, "深圳", mine.ShippingAddress.City)
	require.Len(t, mine.Items, 2)
	itemsByProduct := slice.ToMap(mine.Items, func(it web.OrderItem) int64 {
		return it.ProductID
	})
	a1 := itemsByProduct[s.productA1]
	assert.Equal(t, int64(1000), a1.UnitPrice)
	assert.Equal(t, int64(2), a1.Quantity)
	assert.Equal(t, int64(2000), a1.Subtotal)

	other := byStore[s.otherStoreID]
	assert.Equal(t, int64(2000), other.Subtotal)
	assert.Equal(t, int64(2060), other.TotalAmount)
	require.Len(t, other.Items, 1)

	// 结算过的勾选项要被清掉
	snapshot, err := s.cartSvc.SelectedSnapshot(context.Background(), uid)
	require.NoError(t, err)
	assert.True(t, snapshot.Empty())

	// 每个订单发一条创建事件
	events := s.waitForCreatedEvents(t, mine.SN, other.SN)
	assert.Equal(t, mine.TotalAmount, events[mine.SN].Amount)
	assert.Equal(t, other.TotalAmount, events[other.SN].Amount)
}

// waitForCreatedEvents 把无关事件全部跳过, 直到集齐给定订单号的创建事件
func (s *OrderHandlerTestSuite) waitForCreatedEvents(t *testing.T, sns ...string) map[string]event.OrderEvent {
	t.Helper()
	want := make(map[string]struct{}, len(sns))
	for _, sn := range sns {
		want[sn] = struct{}{}
	}
	got := make(map[string]event.OrderEvent, len(sns))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for len(got) < len(want) {
		msg, err := s.consumer.Consume(ctx)
		require.NoError(t, err)
		var evt event.OrderEvent
		require.NoError(t, json.Unmarshal(msg.Value, &evt))
		if _, ok := want[evt.OrderSN]; ok && evt.Action == event.ActionCreated {
			got[evt.OrderSN] = evt
		}
	}
	return got
}

func (s *OrderHandlerTestSuite) TestHandler_CreateOrders_RequestID() {
	t := s.T()

	createReq := func(id string) *http.Request {
		req, err := http.NewRequest(http.MethodPost,
			"/order/create", iox.NewJSONReader(web.CreateOrderReq{
				RequestID:     id,
				PaymentMethod: "wechat",
			}))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		return req
	}

	// 请求ID为空
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, createReq(""))
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, errs.DuplicatedRequest.Code, recorder.MustScan().Code)

	// 购物车为空, 第一次结算失败, 但请求ID已经被占用
	id := requestID("guard")
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, createReq(id))
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, errs.InvalidOrder.Code, recorder.MustScan().Code)

	// 同一请求ID重放, 按重复请求拒绝
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, createReq(id))
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, errs.DuplicatedRequest.Code, recorder.MustScan().Code)
}

func (s *OrderHandlerTestSuite) TestHandler_RetrieveOrderStatus() {
	t := s.T()
	mine := s.createOrder(uid, s.myStoreID, 1000, 1)
	others := s.createOrder(otherBuyer, s.myStoreID, 1000, 1)

	testCases := []struct {
		name     string
		sn       string
		wantCode int
		wantResp test.Result[web.RetrieveOrderStatusResp]
	}{
		{
			name:     "查到自己的订单状态",
			sn:       mine.SN,
			wantCode: 200,
			wantResp: test.Result[web.RetrieveOrderStatusResp]{
				Data: web.RetrieveOrderStatusResp{
					Status:     domain.StatusPendingPayment.ToUint8(),
					StatusName: "pending_payment",
				},
			},
		},
		{
			name:     "订单号不存在",
			sn:       "ORD-no-such-sn",
			wantCode: 500,
			wantResp: test.Result[web.RetrieveOrderStatusResp]{
				Code: errs.OrderNotFound.Code,
				Msg:  errs.OrderNotFound.Msg,
			},
		},
		{
			name:     "他人订单按不存在处理",
			sn:       others.SN,
			wantCode: 500,
			wantResp: test.Result[web.RetrieveOrderStatusResp]{
				Code: errs.OrderNotFound.Code,
				Msg:  errs.OrderNotFound.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/order", iox.NewJSONReader(web.RetrieveOrderStatusReq{SN: tc.sn}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.RetrieveOrderStatusResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func (s *OrderHandlerTestSuite) TestHandler_ListOrders() {
	t := s.T()
	first := s.createOrder(uid, s.myStoreID, 1000, 1)
	s.createOrder(uid, s.myStoreID, 500, 2)
	s.createOrder(uid, s.otherStoreID, 2000, 1)
	// 别的买家的订单不应出现在列表里
	s.createOrder(otherBuyer, s.myStoreID, 1000, 1)

	_, err := s.svc.UpdateStatus(context.Background(), uid, first.ID, domain.StatusPaid)
	require.NoError(t, err)

	testCases := []struct {
		name      string
		req       web.ListOrdersReq
		wantTotal int64
		wantLen   int
	}{
		{
			name:      "全部订单分页",
			req:       web.ListOrdersReq{Offset: 0, Limit: 2},
			wantTotal: 3,
			wantLen:   2,
		},
		{
			name:      "第二页",
			req:       web.ListOrdersReq{Offset: 2, Limit: 2},
			wantTotal: 3,
			wantLen:   1,
		},
		{
			name:      "按状态过滤",
			req:       web.ListOrdersReq{Status: domain.StatusPaid.ToUint8(), Offset: 0, Limit: 10},
			wantTotal: 1,
			wantLen:   1,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/order/list", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.ListOrdersResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			data := recorder.MustScan().Data
			assert.Equal(t, tc.wantTotal, data.Total)
			assert.Len(t, data.Orders, tc.wantLen)
		})
	}
}

func (s *OrderHandlerTestSuite) TestHandler_RetrieveOrderDetail() {
	t := s.T()
	mine := s.createOrder(uid, s.myStoreID, 1000, 2)
	others := s.createOrder(otherBuyer, s.myStoreID, 1000, 1)

	req, err := http.NewRequest(http.MethodPost,
		"/order/detail", iox.NewJSONReader(web.OrderIDReq{ID: mine.ID}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.RetrieveOrderDetailResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	got := recorder.MustScan().Data.Order
	assert.Equal(t, mine.SN, got.SN)
	assert.Equal(t, int64(2000), got.Subtotal)
	assert.Equal(t, int64(2060), got.TotalAmount)
	assert.Equal(t, "张三", got.ShippingAddress.Recipient)
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(2), got.Items[0].Quantity)
	assert.NotZero(t, got.Ctime)

	// 他人订单按不存在处理
	req, err = http.NewRequest(http.MethodPost,
		"/order/detail", iox.NewJSONReader(web.OrderIDReq{ID: others.ID}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	errRecorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(errRecorder, req)
	require.Equal(t, 500, errRecorder.Code)
	assert.Equal(t, errs.OrderNotFound.Code, errRecorder.MustScan().Code)
}

func (s *OrderHandlerTestSuite) TestHandler_UpdateStatus() {
	t := s.T()
	mine := s.createOrder(uid, s.myStoreID, 1000, 1)

	updateReq := func(id int64, status uint8) *http.Request {
		req, err := http.NewRequest(http.MethodPost,
			"/order/status", iox.NewJSONReader(web.UpdateOrderStatusReq{ID: id, Status: status}))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		return req
	}

	// 待支付到已支付
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, updateReq(mine.ID, domain.StatusPaid.ToUint8()))
	require.Equal(t, 200, recorder.Code)
	paid, err := s.svc.FindOne(context.Background(), uid, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, paid.Status)
	assert.NotZero(t, paid.PaidAt)
	assert.Equal(t, int64(2), paid.Version)

	// 已支付不能直接确认收货
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, updateReq(mine.ID, domain.StatusCompleted.ToUint8()))
	require.Equal(t, 500, recorder.Code)
	result := recorder.MustScan()
	assert.Equal(t, errs.InvalidTransition.Code, result.Code)
	assert.Contains(t, result.Msg, "paid -> completed")

	// 目标状态不在状态表里
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, updateReq(mine.ID, 99))
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, errs.InvalidOrder.Code, recorder.MustScan().Code)
}

func (s *OrderHandlerTestSuite) TestHandler_CancelOrder() {
	t := s.T()
	mine := s.createOrder(uid, s.myStoreID, 1000, 1)

	cancelReq := func(id int64) *http.Request {
		req, err := http.NewRequest(http.MethodPost,
			"/order/cancel", iox.NewJSONReader(web.OrderIDReq{ID: id}))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		return req
	}

	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, cancelReq(mine.ID))
	require.Equal(t, 200, recorder.Code)
	cancelled, err := s.svc.FindOne(context.Background(), uid, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	assert.NotZero(t, cancelled.CancelledAt)

	// 已取消是终态, 再取消按非法流转拒绝
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, cancelReq(mine.ID))
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, errs.InvalidTransition.Code, recorder.MustScan().Code)

	// 订单不存在
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, cancelReq(99999))
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, errs.OrderNotFound.Code, recorder.MustScan().Code)
}

func (s *OrderHandlerTestSuite) TestHandler_SellerFlow() {
	t := s.T()
	ctx := context.Background()
	mine := s.createOrder(uid, s.myStoreID, 1000, 1)
	othersStore := s.createOrder(uid, s.otherStoreID, 2000, 1)
	_, err := s.svc.UpdateStatus(ctx, uid, mine.ID, domain.StatusPaid)
	require.NoError(t, err)

	sellerReq := func(path string, body any) *http.Request {
		req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		return req
	}

	// 卖家依次推进 备货中 已发货 已送达
	for _, next := range []domain.Status{domain.StatusProcessing, domain.StatusShipped, domain.StatusDelivered} {
		recorder := test.NewJSONResponseRecorder[any]()
		s.server.ServeHTTP(recorder, sellerReq("/order/seller/status",
			web.UpdateOrderStatusReq{ID: mine.ID, Status: next.ToUint8()}))
		require.Equal(t, 200, recorder.Code)
	}

	// 买家确认收货
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, sellerReq("/order/status",
		web.UpdateOrderStatusReq{ID: mine.ID, Status: domain.StatusCompleted.ToUint8()}))
	require.Equal(t, 200, recorder.Code)

	completed, err := s.svc.FindOne(ctx, uid, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, completed.Status)
	assert.NotZero(t, completed.PaidAt)
	assert.NotZero(t, completed.ShippedAt)
	assert.NotZero(t, completed.DeliveredAt)
	assert.NotZero(t, completed.CompletedAt)
	assert.Equal(t, int64(6), completed.Version)

	// 别家店铺的订单无权操作
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, sellerReq("/order/seller/status",
		web.UpdateOrderStatusReq{ID: othersStore.ID, Status: domain.StatusProcessing.ToUint8()}))
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, errs.NotStoreOrder.Code, recorder.MustScan().Code)

	// 卖家列表只看到自家店铺的订单
	listRecorder := test.NewJSONResponseRecorder[web.ListOrdersResp]()
	s.server.ServeHTTP(listRecorder, sellerReq("/order/seller/list",
		web.ListOrdersReq{Offset: 0, Limit: 10}))
	require.Equal(t, 200, listRecorder.Code)
	data := listRecorder.MustScan().Data
	assert.Equal(t, int64(1), data.Total)
	require.Len(t, data.Orders, 1)
	assert.Equal(t, s.myStoreID, data.Orders[0].StoreID)
}
