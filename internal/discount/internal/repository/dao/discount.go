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
	"database/sql"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrDuplicatedCode = errors.New("折扣码重复")
)

type DiscountDAO interface {
	Create(ctx context.Context, d Discount, sp *SpecialDiscount) (int64, error)
	FindByID(ctx context.Context, id int64) (Discount, *SpecialDiscount, error)
	MaxSpecialRate(ctx context.Context, storeID, productTypeID, now int64) (float64, error)
	Deactivate(ctx context.Context, id int64) error
	ListByCreator(ctx context.Context, byType uint8, byID int64, offset, limit int) ([]Discount, error)
	CountByCreator(ctx context.Context, byType uint8, byID int64) (int64, error)
}

type DiscountGORMDAO struct {
	db *egorm.Component
}

func NewDiscountGORMDAO(db *egorm.Component) DiscountDAO {
	return &DiscountGORMDAO{db: db}
}

func (d *DiscountGORMDAO) Create(ctx context.Context, disc Discount, sp *SpecialDiscount) (int64, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		disc.Ctime, disc.Utime = now, now
		if err := tx.Create(&disc).Error; err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) {
				const uniqueIndexErrNo uint16 = 1062
				if me.Number == uniqueIndexErrNo {
					return ErrDuplicatedCode
				}
			}
			return err
		}
		if sp != nil {
			sp.DiscountId = disc.Id
			sp.Ctime, sp.Utime = now, now
			if err := tx.Create(sp).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return disc.Id, err
}

func (d *DiscountGORMDAO) FindByID(ctx context.Context, id int64) (Discount, *SpecialDiscount, error) {
	var res Discount
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	if err != nil {
		return Discount{}, nil, err
	}
	if res.Type != typeSpecial {
		return res, nil, nil
	}
	var sp SpecialDiscount
	err = d.db.WithContext(ctx).Where("discount_id = ?", id).First(&sp).Error
	if err != nil {
		return Discount{}, nil, err
	}
	return res, &sp, nil
}

// MaxSpecialRate 查询店铺内当前生效的最大特殊折扣率
// 分类作用域为 NULL 的行作用于全店, 否则仅作用于指定分类
func (d *DiscountGORMDAO) MaxSpecialRate(ctx context.Context, storeID, productTypeID, now int64) (float64, error) {
	var rate float64
	err := d.db.WithContext(ctx).Model(&SpecialDiscount{}).
		Select("COALESCE(MAX(special_discounts.discount_rate), 0)").
		Joins("JOIN discounts ON discounts.id = special_discounts.discount_id").
		Where("special_discounts.store_id = ?", storeID).
		Where("special_discounts.product_type_id IS NULL OR special_discounts.product_type_id = ?", productTypeID).
		Where("discounts.is_active = ? AND discounts.start_datetime <= ? AND discounts.end_datetime >= ?",
			true, now, now).
		Scan(&rate).Error
	return rate, err
}

func (d *DiscountGORMDAO) Deactivate(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Model(&Discount{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_active": false,
			"utime":     time.Now().UnixMilli(),
		}).Error
}

func (d *DiscountGORMDAO) ListByCreator(ctx context.Context, byType uint8, byID int64, offset, limit int) ([]Discount, error) {
	var res []Discount
	err := d.db.WithContext(ctx).
		Where("created_by_type = ? AND created_by_id = ?", byType, byID).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *DiscountGORMDAO) CountByCreator(ctx context.Context, byType uint8, byID int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Discount{}).
		Where("created_by_type = ? AND created_by_id = ?", byType, byID).
		Count(&res).Error
	return res, err
}

const typeSpecial uint8 = 3

// Discount 折扣主表, 子类型明细直接落在本表列上, 特殊折扣的作用域另见 SpecialDiscount
type Discount struct {
	Id                int64  `gorm:"primaryKey;autoIncrement;comment:折扣自增ID"`
	Code              string `gorm:"type:varchar(50);not null;uniqueIndex:uniq_discount_code;comment:折扣码"`
	Type              uint8  `gorm:"type:tinyint unsigned;not null;index:idx_discount_type;comment:折扣类型 1=季节 2=运费 3=特殊"`
	Name              string `gorm:"type:varchar(200);not null;comment:折扣名称"`
	Description       string `gorm:"not null;comment:折扣描述"`
	MinPurchaseAmount int64  `gorm:"not null;default:0;comment:最低消费金额;单位为分"`
	StartDatetime     int64  `gorm:"not null;index:idx_active_period,priority:2;comment:生效开始时间,UTC Unix毫秒数"`
	EndDatetime       int64  `gorm:"not null;index:idx_active_period,priority:3;comment:生效结束时间,UTC Unix毫秒数"`
	IsActive          bool   `gorm:"not null;default:true;index:idx_active_period,priority:1;comment:是否生效"`
	UsageLimit        int64  `gorm:"not null;default:0;comment:使用次数上限,0表示不限"`
	UsageCount        int64  `gorm:"not null;default:0;comment:已使用次数"`
	CreatedByType     uint8  `gorm:"type:tinyint unsigned;not null;index:idx_created_by,priority:1;comment:创建者类型 1=系统 2=卖家"`
	CreatedById       int64  `gorm:"not null;index:idx_created_by,priority:2;comment:创建者ID"`
	SeasonalRate      float64 `gorm:"not null;default:0;comment:季节性折扣率,[0,1]"`
	ShippingAmount    int64   `gorm:"not null;default:0;comment:运费减免金额;单位为分"`
	MaxDiscountAmount int64   `gorm:"not null;default:0;comment:单笔折扣封顶金额,0表示不封顶;单位为分"`
	Ctime             int64
	Utime             int64
}

// SpecialDiscount 特殊折扣作用域表, 每个(store, product_type, discount)组合至多一行
type SpecialDiscount struct {
	Id                int64         `gorm:"primaryKey;autoIncrement;comment:特殊折扣自增ID"`
	DiscountId        int64         `gorm:"not null;uniqueIndex:uniq_store_type_discount,priority:3;comment:折扣自增ID"`
	StoreId           int64         `gorm:"not null;index:idx_store_id;uniqueIndex:uniq_store_type_discount,priority:1;comment:店铺ID"`
	ProductTypeId     sql.NullInt64 `gorm:"index:idx_product_type_id;uniqueIndex:uniq_store_type_discount,priority:2;comment:商品分类ID,NULL表示全店"`
	DiscountRate      float64       `gorm:"not null;comment:折扣率,[0,1]"`
	MaxDiscountAmount int64         `gorm:"not null;default:0;comment:单笔折扣封顶金额,0表示不封顶;单位为分"`
	Ctime             int64
	Utime             int64
}
