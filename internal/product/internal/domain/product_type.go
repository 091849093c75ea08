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

// maxTypeDepth 类目树的最大深度, 超出即视为脏数据
const maxTypeDepth = 16

type ProductType struct {
	ID       int64
	Code     string
	Name     string
	ParentID int64 // 0表示根类目
	IsActive bool
	Ctime    int64
	Utime    int64
}

// DescendantIDs 迭代收集rootID及其所有子孙类目ID.
// 逐层遍历, 用visited去重, 脏数据成环或超深时提前终止.
func DescendantIDs(all []ProductType, rootID int64) []int64 {
	children := make(map[int64][]int64, len(all))
	for _, t := range all {
		children[t.ParentID] = append(children[t.ParentID], t.ID)
	}

	visited := map[int64]struct{}{rootID: {}}
	res := []int64{rootID}
	frontier := []int64{rootID}
	for depth := 0; depth < maxTypeDepth && len(frontier) > 0; depth++ {
		var next []int64
		for _, id := range frontier {
			for _, cid := range children[id] {
				if _, ok := visited[cid]; ok {
					continue
				}
				visited[cid] = struct{}{}
				res = append(res, cid)
				next = append(next, cid)
			}
		}
		frontier = next
	}
	return res
}
