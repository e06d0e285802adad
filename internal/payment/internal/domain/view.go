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

// StatusView 一次状态查询的结果快照
type StatusView struct {
	TransactionID string
	OrderID       int64
	Provider      Provider
	Status        Status
	Amount        decimal.Decimal
	// SettlementRef 成功时的结算凭证号
	SettlementRef string
	// FailureReason 失败时的原因码
	FailureReason string
	Message       string
	Utime         int64
}
