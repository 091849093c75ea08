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

package domain

// ShippingAddress 下单时刻的收货地址快照
type ShippingAddress struct {
	Recipient string `json:"recipient"`
	Phone     string `json:"phone"`
	Province  string `json:"province"`
	City      string `json:"city"`
	Detail    string `json:"detail"`
}

type Order struct {
	ID      int64
	SN      string
	BuyerID int64
	StoreID int64
	// 金额单位为分, TotalAmount = Subtotal + ShippingFee - TotalDiscount
	Subtotal        int64
	ShippingFee     int64
	TotalDiscount   int64
	TotalAmount     int64
	Status          Status
	PaymentMethod   string
	ShippingAddress ShippingAddress
	Notes           string
	PaidAt          int64
	ShippedAt       int64
	DeliveredAt     int64
	CompletedAt     int64
	CancelledAt     int64
	// Version 乐观锁, 并发状态流转时后写者失败
	Version int64
	Items   []OrderItem
	Ctime   int64
	Utime   int64
}

func (o Order) OwnedBy(uid int64) bool {
	return o.BuyerID == uid
}

// OrderItem 创建后只读
type OrderItem struct {
	ID            int64
	OrderID       int64
	ProductID     int64
	SN            string
	Name          string
	Description   string
	OriginalPrice int64
	ItemDiscount  int64
	// UnitPrice = OriginalPrice - ItemDiscount, Subtotal = UnitPrice * Quantity
	UnitPrice int64
	Subtotal  int64
	Quantity  int64
}
