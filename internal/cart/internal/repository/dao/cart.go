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
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/emall/internal/cart/internal/domain"
	"github.com/ego-component/egorm"
)

type CartDAO interface {
	Create(ctx context.Context, item CartItem) (int64, error)
	FindByUIDAndProductID(ctx context.Context, uid, productID int64) (CartItem, error)
	UpdateQuantity(ctx context.Context, uid, productID, quantity int64) (int64, error)
	UpdateSelected(ctx context.Context, uid int64, productIDs []int64, selected bool) error
	Delete(ctx context.Context, uid, productID int64) (int64, error)
	ListByUID(ctx context.Context, uid int64) ([]CartItem, error)
	ListSelectedByUID(ctx context.Context, uid int64) ([]CartItem, error)
	DeleteSelected(ctx context.Context, uid int64) error
}

type CartGORMDAO struct {
	db *egorm.Component
}

func NewCartGORMDAO(db *egorm.Component) CartDAO {
	return &CartGORMDAO{db: db}
}

func (d *CartGORMDAO) Create(ctx context.Context, item CartItem) (int64, error) {
	now := time.Now().UnixMilli()
	item.Utime, item.Ctime = now, now
	err := d.db.WithContext(ctx).Create(&item).Error
	return item.Id, err
}

func (d *CartGORMDAO) FindByUIDAndProductID(ctx context.Context, uid, productID int64) (CartItem, error) {
	var res CartItem
	err := d.db.WithContext(ctx).
		Where("uid = ? AND product_id = ?", uid, productID).
		First(&res).Error
	return res, err
}

func (d *CartGORMDAO) UpdateQuantity(ctx context.Context, uid, productID, quantity int64) (int64, error) {
	res := d.db.WithContext(ctx).Model(&CartItem{}).
		Where("uid = ? AND product_id = ?", uid, productID).
		Updates(map[string]any{
			"quantity": quantity,
			"utime":    time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (d *CartGORMDAO) UpdateSelected(ctx context.Context, uid int64, productIDs []int64, selected bool) error {
	return d.db.WithContext(ctx).Model(&CartItem{}).
		Where("uid = ? AND product_id IN ?", uid, productIDs).
		Updates(map[string]any{
			"selected": selected,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (d *CartGORMDAO) Delete(ctx context.Context, uid, productID int64) (int64, error) {
	res := d.db.WithContext(ctx).
		Where("uid = ? AND product_id = ?", uid, productID).
		Delete(&CartItem{})
	return res.RowsAffected, res.Error
}

func (d *CartGORMDAO) ListByUID(ctx context.Context, uid int64) ([]CartItem, error) {
	var res []CartItem
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC").
		Find(&res).Error
	return res, err
}

func (d *CartGORMDAO) ListSelectedByUID(ctx context.Context, uid int64) ([]CartItem, error) {
	var res []CartItem
	err := d.db.WithContext(ctx).
		Where("uid = ? AND selected = ?", uid, true).
		Order("ctime ASC").
		Find(&res).Error
	return res, err
}

func (d *CartGORMDAO) DeleteSelected(ctx context.Context, uid int64) error {
	return d.db.WithContext(ctx).
		Where("uid = ? AND selected = ?", uid, true).
		Delete(&CartItem{}).Error
}

type CartItem struct {
	Id        int64                                    `gorm:"primaryKey;autoIncrement;comment:购物车项自增ID"`
	Uid       int64                                    `gorm:"not null;uniqueIndex:uniq_uid_product_id;comment:买家ID"`
	ProductId int64                                    `gorm:"not null;uniqueIndex:uniq_uid_product_id;comment:商品ID"`
	Quantity  int64                                    `gorm:"not null;comment:购买数量"`
	Selected  bool                                     `gorm:"not null;default:true;comment:是否勾选结算"`
	Snapshot  sqlx.JsonColumn[domain.ProductSnapshot]  `gorm:"type:json;not null;comment:加购时刻商品快照JSON"`
	Ctime     int64
	Utime     int64
}
