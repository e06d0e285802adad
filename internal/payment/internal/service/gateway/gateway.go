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

// Package gateway 模拟两家移动支付网关。规则是确定性的,方便测试:
// 手机号末位 0-7 受理成功,8-9 拒绝;交易状态由交易号哈希模 3 得出。
package gateway

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strconv"

	"github.com/ecodeclub/marketplace/internal/payment/internal/domain"
	"github.com/shopspring/decimal"
)

type Gateway interface {
	Provider() domain.Provider
	// RequestToPay 发起收款请求。阻塞调用,发出后无法中途取消。
	// 网关侧拒绝时返回 *RejectedError。
	RequestToPay(ctx context.Context, req RequestToPayReq) (RequestToPayResp, error)
	// CheckStatus 查询交易状态。同一交易号每次查询都重新推算状态,
	// 前后两次结果可能不一致,这是模拟器的已知行为。
	CheckStatus(ctx context.Context, transactionID string) (StatusResp, error)
}

type RequestToPayReq struct {
	Amount      decimal.Decimal
	PhoneNumber string
	ExternalID  string
	Message     string
}

type RequestToPayResp struct {
	TransactionID string
	Status        domain.Status
	Message       string
}

type StatusResp struct {
	TransactionID string
	Status        domain.Status
	// SettlementRef 成功时的结算凭证号
	SettlementRef string
	// FailureReason 失败时的原因码
	FailureReason string
	Message       string
}

// RejectedError 网关拒绝收款请求,携带运营商错误码
type RejectedError struct {
	Code    string
	Message string
}

func (e *RejectedError) Error() string {
	return e.Code + ": " + e.Message
}

// lastDigit 取手机号末位数字,末位不是数字按 0 算
func lastDigit(phoneNumber string) int {
	if phoneNumber == "" {
		return 0
	}
	d, err := strconv.Atoi(phoneNumber[len(phoneNumber)-1:])
	if err != nil {
		return 0
	}
	return d
}

// statusOf 用交易号 md5 前8位十六进制模 3 推算状态
func statusOf(transactionID string) domain.Status {
	sum := md5.Sum([]byte(transactionID))
	v, _ := strconv.ParseUint(hex.EncodeToString(sum[:])[:8], 16, 64)
	switch v % 3 {
	case 0:
		return domain.StatusPending
	case 1:
		return domain.StatusSuccess
	default:
		return domain.StatusFailed
	}
}
