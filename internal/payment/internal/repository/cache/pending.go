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

package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/shopspring/decimal"
)

// PendingPaymentCache 买家维度的在途支付集合,
// 整个集合作为一个 JSON blob 存在 redis 里,键是买家ID,
// 值是 交易号 -> 在途支付。
type PendingPaymentCache interface {
	Get(ctx context.Context, uid int64) (map[string]PendingPayment, error)
	Set(ctx context.Context, uid int64, payments map[string]PendingPayment) error
	Delete(ctx context.Context, uid int64) error
}

// PendingPayment 缓存里的存储形态
type PendingPayment struct {
	TransactionID string          `json:"transaction_id"`
	ExternalID    string          `json:"external_id"`
	OrderID       int64           `json:"order_id"`
	Amount        decimal.Decimal `json:"amount"`
	PhoneNumber   string          `json:"phone_number"`
	Provider      string          `json:"provider"`
	Status        string          `json:"status"`
	Ctime         int64           `json:"ctime"`
	Utime         int64           `json:"utime"`
}

type pendingPaymentECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewPendingPaymentECache(c ecache.Cache) PendingPaymentCache {
	return &pendingPaymentECache{
		cache: &ecache.NamespaceCache{
			Namespace: "payment:pending:",
			C:         c,
		},
		// 业务上一小时未决就会被惰性清掉,缓存层给双倍余量
		expiration: time.Hour * 2,
	}
}

func (c *pendingPaymentECache) Get(ctx context.Context, uid int64) (map[string]PendingPayment, error) {
	val := c.cache.Get(ctx, c.key(uid))
	if val.KeyNotFound() {
		return map[string]PendingPayment{}, nil
	}
	if val.Err != nil {
		return nil, val.Err
	}
	var payments map[string]PendingPayment
	if err := val.JSONScan(&payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (c *pendingPaymentECache) Set(ctx context.Context, uid int64, payments map[string]PendingPayment) error {
	data, err := json.Marshal(payments)
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, c.key(uid), data, c.expiration)
}

func (c *pendingPaymentECache) Delete(ctx context.Context, uid int64) error {
	_, err := c.cache.Delete(ctx, c.key(uid))
	return err
}

func (c *pendingPaymentECache) key(uid int64) string {
	return strconv.FormatInt(uid, 10)
}
