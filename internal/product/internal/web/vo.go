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

import "github.com/ecodeclub/emall/internal/product/internal/domain"

type StorefrontReq struct {
	StoreID       int64   `json:"storeId"`
	ProductTypeID int64   `json:"productTypeId"`
	Keyword       string  `json:"keyword"`
	MinPrice      int64   `json:"minPrice"`
	MaxPrice      int64   `json:"maxPrice"`
	MinRating     float64 `json:"minRating"`
	SortBy        string  `json:"sortBy"`
	Desc          bool    `json:"desc"`
	Offset        int     `json:"offset,omitempty"`
	Limit         int     `json:"limit,omitempty"`
}

type StorefrontResp struct {
	Total    int64     `json:"total,omitempty"`
	Products []Product `json:"products,omitempty"`
}

type DetailReq struct {
	ID int64 `json:"id"`
}

type DetailResp struct {
	Product Product `json:"product"`
}

type Product struct {
	ID            int64   `json:"id"`
	SN            string  `json:"sn"`
	StoreID       int64   `json:"storeId"`
	ProductTypeID int64   `json:"productTypeId"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	OriginalPrice int64   `json:"originalPrice"`
	CurrentPrice  int64   `json:"currentPrice"`
	DiscountRate  float64 `json:"discountRate"`
	Status        uint8   `json:"status"`
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int64   `json:"totalReviews"`
}

func newProductVO(p domain.EnrichedProduct) Product {
	return Product{
		ID:            p.ID,
		SN:            p.SN,
		StoreID:       p.StoreID,
		ProductTypeID: p.ProductTypeID,
		Name:          p.Name,
		Description:   p.Description,
		OriginalPrice: p.OriginalPrice,
		CurrentPrice:  p.CurrentPrice,
		DiscountRate:  p.DiscountRate,
		Status:        p.Status.ToUint8(),
		AverageRating: p.AverageRating,
		TotalReviews:  p.TotalReviews,
	}
}

type CreateProductReq struct {
	ProductTypeID int64  `json:"productTypeId"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         int64  `json:"price"`
}

type CreateProductResp struct {
	ID int64 `json:"id"`
}

type UpdateProductReq struct {
	ID            int64  `json:"id"`
	ProductTypeID int64  `json:"productTypeId"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         int64  `json:"price"`
}

type ProductIDReq struct {
	ID int64 `json:"id"`
}

type ListMineReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListMineResp struct {
	Total    int64     `json:"total,omitempty"`
	Products []Product `json:"products,omitempty"`
}

type ProductTypesResp struct {
	ProductTypes []ProductType `json:"productTypes,omitempty"`
}

type ProductType struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	ParentID int64  `json:"parentId"`
}

type CreateProductTypeReq struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	ParentID int64  `json:"parentId"`
}

type CreateProductTypeResp struct {
	ID int64 `json:"id"`
}
