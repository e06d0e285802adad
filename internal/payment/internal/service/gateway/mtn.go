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

package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/marketplace/internal/payment/internal/domain"
	"github.com/lithammer/shortuuid/v4"
)

// NewMTNGateway latency 模拟一次网络往返的耗时,测试里传 0
func NewMTNGateway(latency time.Duration) Gateway {
	return &mtnGateway{latency: latency}
}

type mtnGateway struct {
	latency time.Duration
}

func (g *mtnGateway) Provider() domain.Provider {
	return domain.ProviderMTN
}

func (g *mtnGateway) RequestToPay(_ context.Context, req RequestToPayReq) (RequestToPayResp, error) {
	time.Sleep(g.latency)
	if lastDigit(req.PhoneNumber) >= 8 {
		return RequestToPayResp{}, &RejectedError{
			Code:    "PAYER_NOT_FOUND",
			Message: "该手机号未注册 Mobile Money",
		}
	}
	return RequestToPayResp{
		TransactionID: shortuuid.New(),
		Status:        domain.StatusPending,
		Message:       "支付请求已发送",
	}, nil
}

func (g *mtnGateway) CheckStatus(_ context.Context, transactionID string) (StatusResp, error) {
	time.Sleep(g.latency / 2)
	resp := StatusResp{
		TransactionID: transactionID,
		Status:        statusOf(transactionID),
	}
	switch resp.Status {
	case domain.StatusSuccess:
		resp.SettlementRef = fmt.Sprintf("FT%d", time.Now().Unix())
		resp.Message = "支付成功"
	case domain.StatusFailed:
		resp.FailureReason = "INSUFFICIENT_FUNDS"
		resp.Message = "余额不足"
	default:
		resp.Message = "支付处理中"
	}
	return resp, nil
}
