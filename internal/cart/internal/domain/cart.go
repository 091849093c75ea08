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

// ProductSnapshot 加购时刻的商品快照.
// 下单只消费快照, 不回查商品, 商品后续改价不影响已生成的快照
type ProductSnapshot struct {
	ProductID     int64  `json:"productId"`
	SN            string `json:"sn"`
	StoreID       int64  `json:"storeId"`
	ProductTypeID int64  `json:"productTypeId"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         int64  `json:"price"`
}

type CartItem struct {
	ID       int64
	UID      int64
	Quantity int64
	Selected bool
	Product  ProductSnapshot
	Ctime    int64
	Utime    int64
}

// Snapshot 勾选商品的结算快照, 交给下单编排消费
type Snapshot struct {
	Items []SnapshotItem
}

type SnapshotItem struct {
	Quantity int64
	Product  ProductSnapshot
}

func (s Snapshot) Empty() bool {
	return len(s.Items) == 0
}
