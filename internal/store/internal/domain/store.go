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

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusClosed Status = 1 // 关闭
	StatusOpen   Status = 2 // 营业中
)

type Store struct {
	ID           int64
	SellerID     int64
	Name         string
	Description  string
	ProductCount int64
	Status       Status
	Ctime        int64
	Utime        int64
}

// OwnedBy 店铺是否归属指定卖家
func (s Store) OwnedBy(sellerID int64) bool {
	return s.SellerID == sellerID
}
