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

import "time"

type Type uint8

func (t Type) ToUint8() uint8 {
	return uint8(t)
}

const (
	TypeSeasonal Type = 1 // 季节性折扣
	TypeShipping Type = 2 // 运费折扣
	TypeSpecial  Type = 3 // 店铺特殊折扣
)

type CreatedByType uint8

func (t CreatedByType) ToUint8() uint8 {
	return uint8(t)
}

const (
	CreatedBySystem CreatedByType = 1
	CreatedBySeller CreatedByType = 2
)

// Discount 折扣主记录, Detail 按 Type 取且仅取一个分支
type Discount struct {
	ID                int64
	Code              string
	Type              Type
	Name              string
	Description       string
	MinPurchaseAmount int64
	StartDatetime     int64
	EndDatetime       int64
	IsActive          bool
	// UsageLimit 为 0 表示不限次数; 两个字段仅作记录, 解析折扣时不参与判定
	UsageLimit    int64
	UsageCount    int64
	CreatedByType CreatedByType
	CreatedByID   int64
	Detail        Detail
	Ctime         int64
	Utime         int64
}

// EffectiveAt 折扣在指定时刻是否生效
func (d Discount) EffectiveAt(now time.Time) bool {
	ts := now.UnixMilli()
	return d.IsActive && d.StartDatetime <= ts && ts <= d.EndDatetime
}

// Detail 折扣子类型明细, 与 Type 一一对应
type Detail struct {
	Seasonal *Seasonal
	Shipping *Shipping
	Special  *Special
}

// Seasonal 全场折扣率, MaxAmount 为单笔封顶金额, 0 表示不封顶
type Seasonal struct {
	Rate      float64
	MaxAmount int64
}

// Shipping 运费减免金额
type Shipping struct {
	Amount int64
}

// Special 店铺折扣, ProductTypeID 为 0 表示作用于店铺全部商品分类
type Special struct {
	StoreID       int64
	ProductTypeID int64
	Rate          float64
	MaxAmount     int64
}
