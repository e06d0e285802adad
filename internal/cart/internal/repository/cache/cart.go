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
	"time"

	"github.com/ecodeclub/ecache"
)

// AnonymousCartCache 匿名购物车:整个购物车作为一个 JSON blob 存在 redis 里,
// 键是客户端生成的会话令牌,值是 商品ID -> 数量。
type AnonymousCartCache interface {
	Get(ctx context.Context, token string) (map[int64]int64, error)
	Set(ctx context.Context, token string, lines map[int64]int64) error
	Delete(ctx context.Context, token string) error
}

type anonymousCartECache struct {
	cache ecache.Cache
	// 过期时间
	expiration time.Duration
}

func NewAnonymousCartECache(c ecache.Cache) AnonymousCartCache {
	return &anonymousCartECache{
		cache: &ecache.NamespaceCache{
			Namespace: "cart:anon:",
			C:         c,
		},
		// 匿名购物车是会话级数据,给一个宽松的上限
		expiration: time.Hour * 24 * 30,
	}
}

func (c *anonymousCartECache) Get(ctx context.Context, token string) (map[int64]int64, error) {
	val := c.cache.Get(ctx, token)
	if val.KeyNotFound() {
		return map[int64]int64{}, nil
	}
	if val.Err != nil {
		return nil, val.Err
	}
	var lines map[int64]int64
	if err := val.JSONScan(&lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (c *anonymousCartECache) Set(ctx context.Context, token string, lines map[int64]int64) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, token, data, c.expiration)
}

func (c *anonymousCartECache) Delete(ctx context.Context, token string) error {
	_, err := c.cache.Delete(ctx, token)
	return err
}
