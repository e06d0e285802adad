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

type AddCartItemReq struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type UpdateCartItemReq struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type RemoveCartItemReq struct {
	ProductID int64 `json:"product_id"`
}

type MigrateCartReq struct {
	// Token 是匿名购物车的会话标识,为空时取 X-Cart-Session 请求头
	Token string `json:"token"`
}

type MigrateCartResp struct {
	Migrated int64 `json:"migrated"`
}

type CartItem struct {
	ProductID   int64   `json:"product_id"`
	SellerID    int64   `json:"seller_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int64   `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

type CartResp struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice float64    `json:"total_price"`
}
