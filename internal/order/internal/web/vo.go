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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/emall/internal/order/internal/domain"
)

type CreateOrderReq struct {
	RequestID     string          `json:"requestId"`
	PaymentMethod string          `json:"paymentMethod"`
	Address       ShippingAddress `json:"address"`
	Notes         string          `json:"notes"`
}

type CreateOrderResp struct {
	Orders []Order `json:"orders"`
}

type ShippingAddress struct {
	Recipient string `json:"recipient"`
	Phone     string `json:"phone"`
	Province  string `json:"province"`
	City      string `json:"city"`
	Detail    string `json:"detail"`
}

type ListOrdersReq struct {
	Status uint8 `json:"status,omitempty"`
	Offset int   `json:"offset,omitempty"`
	Limit  int   `json:"limit,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total,omitempty"`
	Orders []Order `json:"orders,omitempty"`
}

type OrderIDReq struct {
	ID int64 `json:"id"`
}

type RetrieveOrderDetailResp struct {
	Order Order `json:"order"`
}

type RetrieveOrderStatusReq struct {
	SN string `json:"sn"`
}

type RetrieveOrderStatusResp struct {
	Status     uint8  `json:"status"`
	StatusName string `json:"statusName"`
}

type UpdateOrderStatusReq struct {
	ID     int64 `json:"id"`
	Status uint8 `json:"status"`
}

type Order struct {
	ID              int64           `json:"id"`
	SN              string          `json:"sn"`
	StoreID         int64           `json:"storeId"`
	Subtotal        int64           `json:"subtotal"`
	ShippingFee     int64           `json:"shippingFee"`
	TotalDiscount   int64           `json:"totalDiscount"`
	TotalAmount     int64           `json:"totalAmount"`
	Status          uint8           `json:"status"`
	StatusName      string          `json:"statusName"`
	PaymentMethod   string          `json:"paymentMethod"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Notes           string          `json:"notes,omitempty"`
	PaidAt          int64           `json:"paidAt,omitempty"`
	ShippedAt       int64           `json:"shippedAt,omitempty"`
	DeliveredAt     int64           `json:"deliveredAt,omitempty"`
	CompletedAt     int64           `json:"completedAt,omitempty"`
	CancelledAt     int64           `json:"cancelledAt,omitempty"`
	Items           []OrderItem     `json:"items,omitempty"`
	Ctime           int64           `json:"ctime"`
	Utime           int64           `json:"utime"`
}

type OrderItem struct {
	ProductID     int64  `json:"productId"`
	SN            string `json:"sn"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	OriginalPrice int64  `json:"originalPrice"`
	ItemDiscount  int64  `json:"itemDiscount"`
	UnitPrice     int64  `json:"unitPrice"`
	Subtotal      int64  `json:"subtotal"`
	Quantity      int64  `json:"quantity"`
}

func newOrderVO(order domain.Order) Order {
	return Order{
		ID:            order.ID,
		SN:            order.SN,
		StoreID:       order.StoreID,
		Subtotal:      order.Subtotal,
		ShippingFee:   order.ShippingFee,
		TotalDiscount: order.TotalDiscount,
		TotalAmount:   order.TotalAmount,
		Status:        order.Status.ToUint8(),
		StatusName:    order.Status.String(),
		PaymentMethod: order.PaymentMethod,
		ShippingAddress: ShippingAddress{
			Recipient: order.ShippingAddress.Recipient,
			Phone:     order.ShippingAddress.Phone,
			Province:  order.ShippingAddress.Province,
			City:      order.ShippingAddress.City,
			Detail:    order.ShippingAddress.Detail,
		},
		Notes:       order.Notes,
		PaidAt:      order.PaidAt,
		ShippedAt:   order.ShippedAt,
		DeliveredAt: order.DeliveredAt,
		CompletedAt: order.CompletedAt,
		CancelledAt: order.CancelledAt,
		Items: slice.Map(order.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				ProductID:     src.ProductID,
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
