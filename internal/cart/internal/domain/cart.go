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

import "github.com/shopspring/decimal"

// Actor 购物车的归属者:已登录用户(UID > 0)或匿名会话(仅持有令牌)。
// 匿名购物车是会话级的临时数据,登录后通过 Migrate 合并进持久购物车。
type Actor struct {
	UID          int64
	SessionToken string
}

func (a Actor) Anonymous() bool {
	return a.UID <= 0
}

// StoredLine 存储层的原始行:仅 (商品, 数量)。
type StoredLine struct {
	ProductID int64
	Quantity  int64
	Ctime     int64
}

// Line 视图层的购物车行,带商品快照和小计。
type Line struct {
	ProductID   int64
	SellerID    int64
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int64
	Subtotal    decimal.Decimal
	Ctime       int64
}

type Cart struct {
	Lines      []Line
	TotalItems int
	TotalPrice decimal.Decimal
}
