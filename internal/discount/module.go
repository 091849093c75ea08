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

package discount

import (
	"github.com/ecodeclub/emall/internal/discount/internal/domain"
	"github.com/ecodeclub/emall/internal/discount/internal/service"
	"github.com/ecodeclub/emall/internal/discount/internal/web"
)

type Handler = web.Handler
type AdminHandler = web.AdminHandler
type Service = service.Service
type Discount = domain.Discount
type Detail = domain.Detail
type Seasonal = domain.Seasonal
type Shipping = domain.Shipping
type Special = domain.Special
type Type = domain.Type

const (
	TypeSeasonal = domain.TypeSeasonal
	TypeShipping = domain.TypeShipping
	TypeSpecial  = domain.TypeSpecial
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
}
