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

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type StoreDAO interface {
	Create(ctx context.Context, s Store) (int64, error)
	FindByID(ctx context.Context, id int64) (Store, error)
	FindBySellerID(ctx context.Context, sellerID int64) (Store, error)
	UpdateProductCount(ctx context.Context, id int64, delta int64) error
}

type StoreGORMDAO struct {
	db *egorm.Component
}

func NewStoreGORMDAO(db *egorm.Component) StoreDAO {
	return &StoreGORMDAO{db: db}
}

func (d *StoreGORMDAO) Create(ctx context.Context, s Store) (int64, error) {
	now := time.Now().UnixMilli()
	s.Ctime, s.Utime = now, now
	err := d.db.WithContext(ctx).Create(&s).Error
	return s.Id, err
}

func (d *StoreGORMDAO) FindByID(ctx context.Context, id int64) (Store, error) {
	var res Store
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *StoreGORMDAO) FindBySellerID(ctx context.Context, sellerID int64) (Store, error) {
	var res Store
	err := d.db.WithContext(ctx).Where("seller_id = ?", sellerID).First(&res).Error
	return res, err
}

func (d *StoreGORMDAO) UpdateProductCount(ctx context.Context, id int64, delta int64) error {
	return d.db.WithContext(ctx).Model(&Store{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"product_count": gorm.Expr("product_count + ?", delta),
			"utime":         time.Now().UnixMilli(),
		}).Error
}

type Store struct {
	Id           int64  `gorm:"primaryKey;autoIncrement;comment:店铺自增ID"`
	SellerId     int64  `gorm:"not null;uniqueIndex:uniq_seller_id;comment:卖家ID"`
	Name         string `gorm:"type:varchar(255);not null;comment:店铺名称"`
	Description  string `gorm:"not null;comment:店铺描述"`
	ProductCount int64  `gorm:"not null;default:0;comment:在售商品数量"`
	Status       uint8  `gorm:"type:tinyint unsigned;not null;default:2;comment:状态 1=关闭 2=营业中"`
	Ctime        int64
	Utime        int64
}
