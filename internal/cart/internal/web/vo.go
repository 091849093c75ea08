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

import "github.com/ecodeclub/emall/internal/cart/internal/domain"

type AddCartItemReq struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type AddCartItemResp struct {
	ID int64 `json:"id"`
}

type UpdateQuantityReq struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type SelectReq struct {
	ProductIDs []int64 `json:"productIds"`
	Selected   bool    `json:"selected"`
}

type RemoveCartItemReq struct {
	ProductID int64 `json:"productId"`
}

type ListCartResp struct {
	Items []CartItem `json:"items,omitempty"`
}

type CartItem struct {
	ProductID int64  `json:"productId"`
	StoreID   int64  `json:"storeId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	Selected  bool   `json:"selected"`
}

func newCartItemVO(item domain.CartItem) CartItem {
	return CartItem{
		ProductID: item.Product.ProductID,
		StoreID:   item.Product.StoreID,
		Name:      item.Product.Name,
		Price:     item.Product.Price,
		Quantity:  item.Quantity,
		Selected:  item.Selected,
	}
}
