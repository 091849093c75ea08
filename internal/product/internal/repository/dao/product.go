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

const (
	statusOnShelf uint8 = 2
)

type ProductDAO interface {
	Create(ctx context.Context, p Product) (int64, error)
	Update(ctx context.Context, p Product) error
	UpdateStatus(ctx context.Context, id int64, status uint8) error
	UpdateRating(ctx context.Context, id int64, avgRating float64, totalReviews int64) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (Product, error)
	FindBySN(ctx context.Context, sn string) (Product, error)
	FindOnShelfByID(ctx context.Context, id int64) (Product, error)
	ListByStoreID(ctx context.Context, storeID int64, offset, limit int) ([]Product, error)
	CountByStoreID(ctx context.Context, storeID int64) (int64, error)

	ListStorefront(ctx context.Context, q StorefrontQuery) ([]StorefrontProduct, error)
	CountStorefront(ctx context.Context, q StorefrontQuery) (int64, error)

	CreateProductType(ctx context.Context, t ProductType) (int64, error)
	FindProductTypeByID(ctx context.Context, id int64) (ProductType, error)
	ListActiveProductTypes(ctx context.Context) ([]ProductType, error)
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) Create(ctx context.Context, p Product) (int64, error) {
	now := time.Now().UnixMilli()
	p.Utime, p.Ctime = now, now
	err := d.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (d *ProductGORMDAO) Update(ctx context.Context, p Product) error {
	return d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ? AND deleted = 0", p.Id).
		Updates(map[string]any{
			"product_type_id": p.ProductTypeId,
			"name":            p.Name,
			"description":     p.Description,
			"price":           p.Price,
			"utime":           time.Now().UnixMilli(),
		}).Error
}

func (d *ProductGORMDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	return d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ? AND deleted = 0", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *ProductGORMDAO) UpdateRating(ctx context.Context, id int64, avgRating float64, totalReviews int64) error {
	return d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ? AND deleted = 0", id).
		Updates(map[string]any{
			"average_rating": avgRating,
			"total_reviews":  totalReviews,
			"utime":          time.Now().UnixMilli(),
		}).Error
}

// Delete 软删除, 商品从所有查询中消失但订单快照仍可回溯
func (d *ProductGORMDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"deleted": 1,
			"utime":   time.Now().UnixMilli(),
		}).Error
}

func (d *ProductGORMDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("id = ? AND deleted = 0", id).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindBySN(ctx context.Context, sn string) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("sn = ? AND deleted = 0", sn).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindOnShelfByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).
		Where("id = ? AND status = ? AND deleted = 0", id, statusOnShelf).
		First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) ListByStoreID(ctx context.Context, storeID int64, offset, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).
		Where("store_id = ? AND deleted = 0", storeID).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) CountByStoreID(ctx context.Context, storeID int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Product{}).
		Where("store_id = ? AND deleted = 0", storeID).
		Count(&count).Error
	return count, err
}

// StorefrontQuery 零值字段表示未设置该过滤条件
type StorefrontQuery struct {
	StoreID        int64
	ProductTypeIDs []int64
	Keyword        string
	MinPrice       int64
	MaxPrice       int64
	MinRating      float64
	SortBy         string
	Desc           bool
	Offset         int
	Limit          int
	Now            int64
}

type StorefrontProduct struct {
	Id            int64
	SN            string
	StoreId       int64
	ProductTypeId int64
	Name          string
	Description   string
	Price         int64
	Status        uint8
	AverageRating float64
	TotalReviews  int64
	CurrentPrice  int64
	DiscountRate  float64
	Ctime         int64
	Utime         int64
}

var storefrontSortColumns = map[string]string{
	"price":   "current_price",
	"rating":  "average_rating",
	"reviews": "total_reviews",
	"newest":  "ctime",
}

// ListStorefront 货架查询.
// 折扣在SQL里一次性聚合, 保证过滤和排序用的折后价与每个商品返回的折后价一致.
func (d *ProductGORMDAO) ListStorefront(ctx context.Context, q StorefrontQuery) ([]StorefrontProduct, error) {
	var res []StorefrontProduct
	db := d.storefrontBase(ctx, q).
		Select(`products.id, products.sn, products.store_id, products.product_type_id,
products.name, products.description, products.price, products.status,
products.average_rating, products.total_reviews, products.ctime, products.utime,
CAST(ROUND(products.price * (1 - COALESCE(MAX(sd.discount_rate), 0))) AS SIGNED) AS current_price,
COALESCE(MAX(sd.discount_rate), 0) AS discount_rate`).
		Group("products.id")
	db = d.storefrontPriceFilter(db, q)

	column, ok := storefrontSortColumns[q.SortBy]
	if !ok {
		column = "ctime"
		q.Desc = true
	}
	direction := "ASC"
	if q.Desc {
		direction = "DESC"
	}
	err := db.Order(column + " " + direction + ", products.id ASC").
		Offset(q.Offset).Limit(q.Limit).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) CountStorefront(ctx context.Context, q StorefrontQuery) (int64, error) {
	var count int64
	if q.MinPrice <= 0 && q.MaxPrice <= 0 {
		err := d.storefrontBase(ctx, q).Distinct("products.id").Count(&count).Error
		return count, err
	}
	// 按折后价过滤时要先聚合再数行
	sub := d.storefrontBase(ctx, q).
		Select(`products.id, CAST(ROUND(products.price * (1 - COALESCE(MAX(sd.discount_rate), 0))) AS SIGNED) AS current_price`).
		Group("products.id")
	sub = d.storefrontPriceFilter(sub, q)
	err := d.db.WithContext(ctx).Table("(?) AS sp", sub).Count(&count).Error
	return count, err
}

func (d *ProductGORMDAO) storefrontBase(ctx context.Context, q StorefrontQuery) *gorm.DB {
	db := d.db.WithContext(ctx).Model(&Product{}).
		Joins(`LEFT JOIN (SELECT s.store_id, s.product_type_id, s.discount_rate
FROM special_discounts AS s
JOIN discounts ON discounts.id = s.discount_id
WHERE discounts.is_active = ? AND discounts.start_datetime <= ? AND discounts.end_datetime >= ?) AS sd
ON sd.store_id = products.store_id
AND (sd.product_type_id IS NULL OR sd.product_type_id = products.product_type_id)`,
			true, q.Now, q.Now).
		Where("products.status = ? AND products.deleted = 0", statusOnShelf)
	if q.StoreID > 0 {
		db = db.Where("products.store_id = ?", q.StoreID)
	}
	if len(q.ProductTypeIDs) > 0 {
		db = db.Where("products.product_type_id IN ?", q.ProductTypeIDs)
	}
	if q.Keyword != "" {
		like := "%" + q.Keyword + "%"
		db = db.Where("products.name LIKE ? OR products.description LIKE ?", like, like)
	}
	if q.MinRating > 0 {
		db = db.Where("products.average_rating >= ?", q.MinRating)
	}
	return db
}

func (d *ProductGORMDAO) storefrontPriceFilter(db *gorm.DB, q StorefrontQuery) *gorm.DB {
	if q.MinPrice > 0 {
		db = db.Having("current_price >= ?", q.MinPrice)
	}
	if q.MaxPrice > 0 {
		db = db.Having("current_price <= ?", q.MaxPrice)
	}
	return db
}

func (d *ProductGORMDAO) CreateProductType(ctx context.Context, t ProductType) (int64, error) {
	now := time.Now().UnixMilli()
	t.Utime, t.Ctime = now, now
	err := d.db.WithContext(ctx).Create(&t).Error
	return t.Id, err
}

func (d *ProductGORMDAO) FindProductTypeByID(ctx context.Context, id int64) (ProductType, error) {
	var res ProductType
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) ListActiveProductTypes(ctx context.Context) ([]ProductType, error) {
	var res []ProductType
	err := d.db.WithContext(ctx).Where("is_active = ?", true).Find(&res).Error
	return res, err
}

type Product struct {
	Id            int64   `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	SN            string  `gorm:"type:varchar(255);not null;uniqueIndex:uniq_product_sn;comment:商品序列号"`
	StoreId       int64   `gorm:"not null;index:idx_store_id;comment:所属店铺ID"`
	ProductTypeId int64   `gorm:"not null;index:idx_product_type_id;comment:商品类目ID"`
	Name          string  `gorm:"type:varchar(255);not null;comment:商品名称"`
	Description   string  `gorm:"not null;comment:商品描述"`
	Price         int64   `gorm:"not null;comment:商品单价;单位为分, 999表示9.99元"`
	Status        uint8   `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	AverageRating float64 `gorm:"not null;default:0;comment:平均评分"`
	TotalReviews  int64   `gorm:"not null;default:0;comment:评价总数"`
	Deleted       uint8   `gorm:"type:tinyint unsigned;not null;default:0;comment:软删除标记"`
	Ctime         int64
	Utime         int64
}

type ProductType struct {
	Id       int64  `gorm:"primaryKey;autoIncrement;comment:类目自增ID"`
	Code     string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_product_type_code;comment:类目编码"`
	Name     string `gorm:"type:varchar(255);not null;comment:类目名称"`
	ParentId int64  `gorm:"not null;default:0;index:idx_parent_id;comment:父类目ID, 0表示根类目"`
	IsActive bool   `gorm:"not null;default:true;comment:是否启用"`
	Ctime    int64
	Utime    int64
}
