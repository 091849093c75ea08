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
	SystemError      = ErrorCode{Code: 512001, Msg: "系统错误"}
	InvalidDiscount  = ErrorCode{Code: 512002, Msg: "折扣信息非法"}
	DuplicatedCode   = ErrorCode{Code: 512003, Msg: "折扣码已存在"}
	DiscountNotFound = ErrorCode{Code: 512004, Msg: "折扣不存在"}
	NotDiscountOwner = ErrorCode{Code: 512005, Msg: "仅折扣创建者可以操作"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
