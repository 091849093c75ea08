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

import "github.com/ecodeclub/emall/internal/discount/internal/domain"

type CreateDiscountReq struct {
	Code              string  `json:"code"`
	Type              uint8   `json:"type"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	MinPurchaseAmount int64   `json:"minPurchaseAmount"`
	StartDatetime     int64   `json:"startDatetime"`
	EndDatetime       int64   `json:"endDatetime"`
	UsageLimit        int64   `json:"usageLimit"`
	ProductTypeID     int64   `json:"productTypeId"`
	Rate              float64 `json:"rate"`
	MaxAmount         int64   `json:"maxAmount"`
	Amount            int64   `json:"amount"`
}

type CreateDiscountResp struct {
	ID int64 `json:"id"`
}

type DeactivateDiscountReq struct {
	ID int64 `json:"id"`
}

type ListDiscountsReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListDiscountsResp struct {
	Total     int64      `json:"total,omitempty"`
	Discounts []Discount `json:"discounts,omitempty"`
}

type Discount struct {
	ID                int64   `json:"id"`
	Code              string  `json:"code"`
	Type              uint8   `json:"type"`
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	MinPurchaseAmount int64   `json:"minPurchaseAmount"`
	StartDatetime     int64   `json:"startDatetime"`
	EndDatetime       int64   `json:"endDatetime"`
	IsActive          bool    `json:"isActive"`
	UsageLimit        int64   `json:"usageLimit"`
	UsageCount        int64   `json:"usageCount"`
	Rate              float64 `json:"rate,omitempty"`
	MaxAmount         int64   `json:"maxAmount,omitempty"`
	Amount            int64   `json:"amount,omitempty"`
	StoreID           int64   `json:"storeId,omitempty"`
	ProductTypeID     int64   `json:"productTypeId,omitempty"`
}

func newDiscountVO(d domain.Discount) Discount {
	vo := Discount{
		ID:                d.ID,
		Code:              d.Code,
		Type:              d.Type.ToUint8(),
		Name:              d.Name,
		Description:       d.Description,
		MinPurchaseAmount: d.MinPurchaseAmount,
		StartDatetime:     d.StartDatetime,
		EndDatetime:       d.EndDatetime,
		IsActive:          d.IsActive,
		UsageLimit:        d.UsageLimit,
		UsageCount:        d.UsageCount,
	}
	switch {
	case d.Detail.Seasonal != nil:
		vo.Rate = d.Detail.Seasonal.Rate
		vo.MaxAmount = d.Detail.Seasonal.MaxAmount
	case d.Detail.Shipping != nil:
		vo.Amount = d.Detail.Shipping.Amount
	case d.Detail.Special != nil:
		vo.Rate = d.Detail.Special.Rate
		vo.MaxAmount = d.Detail.Special.MaxAmount
		vo.StoreID = d.Detail.Special.StoreID
		vo.ProductTypeID = d.Detail.Special.ProductTypeID
	}
	return vo
}
