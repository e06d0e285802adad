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
	"strings"
	"testing"

	"github.com/ecodeclub/marketplace/internal/payment/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestToPay_LastDigitRule(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		gw       Gateway
		phone    string
		wantCode string
	}{
		{name: "MTN 末位3受理", gw: NewMTNGateway(0), phone: "+237670123453"},
		{name: "MTN 末位7受理", gw: NewMTNGateway(0), phone: "+237670123457"},
		{name: "MTN 末位8拒绝", gw: NewMTNGateway(0), phone: "+237670123458", wantCode: "PAYER_NOT_FOUND"},
		{name: "MTN 末位9拒绝", gw: NewMTNGateway(0), phone: "+237670123459", wantCode: "PAYER_NOT_FOUND"},
		{name: "Airtel 末位0受理", gw: NewAirtelGateway(0), phone: "+237750123450"},
		{name: "Airtel 末位9拒绝", gw: NewAirtelGateway(0), phone: "+237750123459", wantCode: "INVALID_MSISDN"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			resp, err := tc.gw.RequestToPay(context.Background(), RequestToPayReq{
				Amount:      decimal.NewFromFloat(100),
				PhoneNumber: tc.phone,
				ExternalID:  "KM_1_1693468800",
			})
			if tc.wantCode != "" {
				var rejected *RejectedError
				require.ErrorAs(t, err, &rejected)
				assert.Equal(t, tc.wantCode, rejected.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusPending, resp.Status)
			assert.NotEmpty(t, resp.TransactionID)
		})
	}
}

func TestRequestToPay_FreshTransactionID(t *testing.T) {
	t.Parallel()
	gw := NewMTNGateway(0)
	req := RequestToPayReq{Amount: decimal.NewFromFloat(50), PhoneNumber: "+237670123453"}
	r1, err := gw.RequestToPay(context.Background(), req)
	require.NoError(t, err)
	r2, err := gw.RequestToPay(context.Background(), req)
	require.NoError(t, err)
	assert.NotEqual(t, r1.TransactionID, r2.TransactionID)
}

func TestCheckStatus_DeterministicFromID(t *testing.T) {
	t.Parallel()
	gw := NewMTNGateway(0)
	resp, err := gw.CheckStatus(context.Background(), "txn-fixed-id")
	require.NoError(t, err)
	// 同一交易号在同一网关实现下状态推算一致
	again, err := gw.CheckStatus(context.Background(), "txn-fixed-id")
	require.NoError(t, err)
	assert.Equal(t, resp.Status, again.Status)

	switch resp.Status {
	case domain.StatusSuccess:
		assert.True(t, strings.HasPrefix(resp.SettlementRef, "FT"))
	case domain.StatusFailed:
		assert.Equal(t, "INSUFFICIENT_FUNDS", resp.FailureReason)
	default:
		assert.Equal(t, domain.StatusPending, resp.Status)
	}
}

func TestCheckStatus_AirtelRefs(t *testing.T) {
	t.Parallel()
	gw := NewAirtelGateway(0)
	// 穷举若干交易号,保证三种状态都能出现
	seen := map[domain.Status]bool{}
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	for _, id := range ids {
		resp, err := gw.CheckStatus(context.Background(), id)
		require.NoError(t, err)
		seen[resp.Status] = true
		if resp.Status == domain.StatusSuccess {
			assert.True(t, strings.HasPrefix(resp.SettlementRef, "AM"))
		}
		if resp.Status == domain.StatusFailed {
			assert.Equal(t, "INSUFFICIENT_BALANCE", resp.FailureReason)
		}
	}
	assert.True(t, len(seen) >= 2, "状态分布过于集中: %v", seen)
}
