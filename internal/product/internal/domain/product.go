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

// Status 对外契约的一部分,用字符串而不是数字编码
type Status string

const (
	StatusActive    Status = "active"
	StatusSold      Status = "sold"
	StatusDraft     Status = "draft"
	StatusSuspended Status = "suspended"
)

func (s Status) String() string {
	return string(s)
}

// Product 交易链路消费的读模型,
// 购物车和订单只关心价格、状态和卖家。
type Product struct {
	ID          int64
	SellerID    int64
	Name        string
	Description string
	Price       decimal.Decimal
	Status      Status
	Ctime       int64
	Utime       int64
}

func (p Product) Active() bool {
	return p.Status == StatusActive
}
