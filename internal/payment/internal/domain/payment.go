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

// Provider 移动支付运营商
type Provider string

const (
	ProviderMTN    Provider = "mtn"
	ProviderAirtel Provider = "airtel"
)

func (p Provider) String() string {
	return string(p)
}

// PaymentMethod 写回订单的支付方式标识,如 mtn_mobile_money
func (p Provider) PaymentMethod() string {
	return string(p) + "_mobile_money"
}

// Status 网关侧的交易状态
type Status string

const (
	StatusPending Status = "PENDING"
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

// PendingPayment 在途支付,只在买家视角下存在,
// 到达终态或超过一小时未决后被清掉。
type PendingPayment struct {
	TransactionID string
	// ExternalID 本系统生成的对账关联号,与网关的交易号区分开
	ExternalID  string
	OrderID     int64
	Amount      decimal.Decimal
	PhoneNumber string
	Provider    Provider
	Status      Status
	Ctime       int64
	Utime       int64
}

// Method 可用的支付方式,用于前端展示
type Method struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	Countries   []string
}
