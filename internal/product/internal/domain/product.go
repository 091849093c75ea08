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

import "math"

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusOffShelf Status = 1 // 下架
	StatusOnShelf  Status = 2 // 上架
)

type Product struct {
	ID            int64
	SN            string
	StoreID       int64
	ProductTypeID int64
	Name          string
	Description   string
	Price         int64 // 单位为分, 999表示9.99元
	Status        Status
	AverageRating float64
	TotalReviews  int64
	Ctime         int64
	Utime         int64
}

func (p Product) OnShelf() bool {
	return p.Status == StatusOnShelf
}

// EnrichedProduct 在商品上叠加查询时刻生效的最大专属折扣
type EnrichedProduct struct {
	Product
	OriginalPrice int64
	CurrentPrice  int64
	DiscountRate  float64
}

// Enrich 按折扣率计算当前售价, 四舍五入到分
func Enrich(p Product, rate float64) EnrichedProduct {
	current := p.Price
	if rate > 0 {
		current = int64(math.Round(float64(p.Price) * (1 - rate)))
	}
	return EnrichedProduct{
		Product:       p,
		OriginalPrice: p.Price,
		CurrentPrice:  current,
		DiscountRate:  rate,
	}
}
