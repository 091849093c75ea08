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

// StorefrontQuery 货架查询条件, 零值字段表示不过滤.
// ProductTypeID 会展开为整棵子树
type StorefrontQuery struct {
	StoreID       int64
	ProductTypeID int64
	Keyword       string
	MinPrice      int64
	MaxPrice      int64
	MinRating     float64
	SortBy        string
	Desc          bool
	Offset        int
	Limit         int
}
