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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	// ErrConcurrentUpdate 版本号不匹配, 订单已被并发修改
	ErrConcurrentUpdate = errors.New("订单已被并发修改")
)

const (
	statusPendingPayment uint8 = 1
	statusCancelled      uint8 = 8
)

type ListQuery struct {
	BuyerID int64
	StoreID int64
	Status  uint8
	Offset  int
	Limit   int
}

type OrderDAO interface {
	// CreateOrders 同一次结算产生的全部订单在一个事务里落库, 全成或全败
	CreateOrders(ctx context.Context, orders []Order, items [][]OrderItem) ([]int64, error)
	FindByID(ctx context.Context, id int64) (Order, error)
	FindBySN(ctx context.Context, sn string) (Order, error)
	FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error)
	List(ctx context.Context, q ListQuery) ([]Order, error)
	Count(ctx context.Context, q ListQuery) (int64, error)
	// UpdateStatus 带版本检查的状态写入, 版本不匹配返回 ErrConcurrentUpdate
	UpdateStatus(ctx context.Context, o Order) error
	ListExpired(ctx context.Context, maxCtime int64, offset, limit int) ([]Order, error)
	CountExpired(ctx context.Context, maxCtime int64) (int64, error)
	CloseExpired(ctx context.Context, ids []int64, cancelledAt int64) error
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (d *OrderGORMDAO) CreateOrders(ctx context.Context, orders []Order, items [][]OrderItem) ([]int64, error) {
	ids := make([]int64, len(orders))
	now := time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range orders {
			orders[i].Ctime, orders[i].Utime = now, now
			if err := tx.Create(&orders[i]).Error; err != nil {
				return err
			}
			ids[i] = orders[i].Id
			for j := range items[i] {
				items[i][j].OrderId = orders[i].Id
				items[i][j].Ctime, items[i][j].Utime = now, now
			}
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (d *OrderGORMDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error) {
	var res []OrderItem
	err := d.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) List(ctx context.Context, q ListQuery) ([]Order, error) {
	var res []Order
	err := d.listQuery(ctx, q).
		Order("ctime DESC").
		Offset(q.Offset).Limit(q.Limit).
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) Count(ctx context.Context, q ListQuery) (int64, error) {
	var count int64
	err := d.listQuery(ctx, q).Count(&count).Error
	return count, err
}

func (d *OrderGORMDAO) listQuery(ctx context.Context, q ListQuery) *gorm.DB {
	db := d.db.WithContext(ctx).Model(&Order{})
	if q.BuyerID > 0 {
		db = db.Where("buyer_id = ?", q.BuyerID)
	}
	if q.StoreID > 0 {
		db = db.Where("store_id = ?", q.StoreID)
	}
	if q.Status > 0 {
		db = db.Where("status = ?", q.Status)
	}
	return db
}

func (d *OrderGORMDAO) UpdateStatus(ctx context.Context, o Order) error {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND version = ?", o.Id, o.Version).
		Updates(map[string]any{
			"status":       o.Status,
			"paid_at":      o.PaidAt,
			"shipped_at":   o.ShippedAt,
			"delivered_at": o.DeliveredAt,
			"completed_at": o.CompletedAt,
			"cancelled_at": o.CancelledAt,
			"version":      o.Version + 1,
			"utime":        time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConcurrentUpdate
	}
	return nil
}

func (d *OrderGORMDAO) ListExpired(ctx context.Context, maxCtime int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("status = ? AND ctime < ?", statusPendingPayment, maxCtime).
		Order("ctime ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountExpired(ctx context.Context, maxCtime int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("status = ? AND ctime < ?", statusPendingPayment, maxCtime).
		Count(&count).Error
	return count, err
}

// CloseExpired 批量取消超时未支付订单.
// 只有仍处于待支付的行会被更新, 被并发支付的订单天然跳过
func (d *OrderGORMDAO) CloseExpired(ctx context.Context, ids []int64, cancelledAt int64) error {
	if len(ids) == 0 {
		return nil
	}
	return d.db.WithContext(ctx).Model(&Order{}).
		Where("id IN ? AND status = ?", ids, statusPendingPayment).
		Updates(map[string]any{
			"status":       statusCancelled,
			"cancelled_at": cancelledAt,
			"version":      gorm.Expr("version + 1"),
			"utime":        time.Now().UnixMilli(),
		}).Error
}

type Order struct {
	Id              int64                                   `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN              string                                  `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单号"`
	BuyerId         int64                                   `gorm:"not null;index:idx_buyer_id;comment:买家ID"`
	StoreId         int64                                   `gorm:"not null;index:idx_store_id;comment:店铺ID, 订单始终只属于一家店铺"`
	Subtotal        int64                                   `gorm:"not null;comment:商品小计;单位为分"`
	ShippingFee     int64                                   `gorm:"not null;comment:运费;单位为分"`
	TotalDiscount   int64                                   `gorm:"not null;default:0;comment:订单级优惠;单位为分"`
	TotalAmount     int64                                   `gorm:"not null;comment:应付总额;单位为分"`
	Status          uint8                                   `gorm:"type:tinyint unsigned;not null;default:1;comment:订单状态 1=待支付 2=支付失败 3=已支付 4=备货中 5=已发货 6=已送达 7=已完成 8=已取消"`
	PaymentMethod   string                                  `gorm:"type:varchar(64);not null;comment:支付方式"`
	ShippingAddress sqlx.JsonColumn[domain.ShippingAddress] `gorm:"type:json;not null;comment:收货地址快照JSON"`
	Notes           string                                  `gorm:"not null;default:'';comment:买家备注"`
	PaidAt          int64                                   `gorm:"comment:支付时间"`
	ShippedAt       int64                                   `gorm:"comment:发货时间"`
	DeliveredAt     int64                                   `gorm:"comment:送达时间"`
	CompletedAt     int64                                   `gorm:"comment:完成时间"`
	CancelledAt     int64                                   `gorm:"comment:取消时间"`
	Version         int64                                   `gorm:"not null;default:1;comment:乐观锁版本号"`
	Ctime           int64
	Utime           int64
}

type OrderItem struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId       int64  `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	ProductId     int64  `gorm:"not null;index:idx_product_id;comment:商品ID"`
	SN            string `gorm:"type:varchar(255);not null;comment:商品序列号快照"`
	Name          string `gorm:"type:varchar(255);not null;comment:商品名称快照"`
	Description   string `gorm:"not null;comment:商品描述快照"`
	OriginalPrice int64  `gorm:"not null;comment:快照单价;单位为分"`
	ItemDiscount  int64  `gorm:"not null;default:0;comment:单品优惠;单位为分"`
	UnitPrice     int64  `gorm:"not null;comment:实付单价;单位为分"`
	Subtotal      int64  `gorm:"not null;comment:单项小计;单位为分"`
	Quantity      int64  `gorm:"not null;comment:购买数量"`
	Ctime         int64
	Utime         int64
}
