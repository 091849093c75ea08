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
	SystemError       = ErrorCode{Code: 515001, Msg: "系统错误"}
	InvalidOrder      = ErrorCode{Code: 515002, Msg: "订单信息非法"}
	OrderNotFound     = ErrorCode{Code: 515003, Msg: "订单不存在"}
	InvalidTransition = ErrorCode{Code: 515004, Msg: "订单状态非法流转"}
	ConcurrentUpdate  = ErrorCode{Code: 515005, Msg: "订单已被并发修改, 请重试"}
	NotStoreOrder     = ErrorCode{Code: 515006, Msg: "无权操作该订单"}
	DuplicatedRequest = ErrorCode{Code: 515007, Msg: "重复请求"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
