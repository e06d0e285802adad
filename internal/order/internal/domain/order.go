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

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// Valid 只校验取值是否在枚举内,不校验状态流转图,
// 任何合法取值都可以从任何状态直接设置。
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) String() string {
	return string(s)
}

type Order struct {
	ID       int64
	BuyerID  int64
	SellerID int64

	ProductID   int64
	ProductName string
	// UnitPrice 和 TotalPrice 都是下单时的快照,
	// 商品价格之后变动不影响已创建的订单。
	UnitPrice  decimal.Decimal
	Quantity   int64
	TotalPrice decimal.Decimal

	ShippingAddress string
	PaymentMethod   string
	PaymentStatus   PaymentStatus
	// PaymentRef 支付成功后的结算凭证号
	PaymentRef string
	// FailureReason 支付失败原因
	FailureReason  string
	Status         Status
	TrackingNumber string

	Ctime int64
	Utime int64
}
