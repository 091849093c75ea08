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

package errs

var (
	SystemError      = ErrorCode{Code: 514001, Msg: "系统错误"}
	InvalidQuantity  = ErrorCode{Code: 514002, Msg: "购买数量非法"}
	CartItemNotFound = ErrorCode{Code: 514003, Msg: "购物车项不存在"}
	ProductNotOnSale = ErrorCode{Code: 514004, Msg: "商品不在售"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
