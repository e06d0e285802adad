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

package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/marketplace/internal/cart/internal/domain"
	"github.com/ecodeclub/marketplace/internal/cart/internal/repository/cache"
	"github.com/ecodeclub/marketplace/internal/cart/internal/repository/dao"
	"gorm.io/gorm"
)

var ErrLineNotFound = errors.New("购物车中没有该商品")

// CartRepository 统一已登录(MySQL)和匿名(redis)两种存储。
type CartRepository interface {
	Lines(ctx context.Context, actor domain.Actor) ([]domain.StoredLine, error)
	// AddQuantity 追加数量,行不存在时创建。
	AddQuantity(ctx context.Context, actor domain.Actor, productID, qty int64) error
	// SetQuantity 覆盖数量。行不存在返回 ErrLineNotFound。
	SetQuantity(ctx context.Context, actor domain.Actor, productID, qty int64) error
	Remove(ctx context.Context, actor domain.Actor, productID int64) error
	Clear(ctx context.Context, actor domain.Actor) error
}

func NewCartRepository(d dao.CartDAO, c cache.AnonymousCartCache) CartRepository {
	return &cartRepository{d: d, c: c}
}

type cartRepository struct {
	d dao.CartDAO
	c cache.AnonymousCartCache
}

func (r *cartRepository) Lines(ctx context.Context, actor domain.Actor) ([]domain.StoredLine, error) {
	if actor.Anonymous() {
		m, err := r.c.Get(ctx, actor.SessionToken)
		if err != nil {
			return nil, err
		}
		res := make([]domain.StoredLine, 0, len(m))
		for pid, qty := range m {
			res = append(res, domain.StoredLine{ProductID: pid, Quantity: qty})
		}
		// map 遍历无序,按商品ID排一下,保证响应稳定
		sort.Slice(res, func(i, j int) bool { return res[i].ProductID < res[j].ProductID })
		return res, nil
	}
	ls, err := r.d.FindByUID(ctx, actor.UID)
	if err != nil {
		return nil, err
	}
	return slice.Map(ls, func(idx int, src dao.CartLine) domain.StoredLine {
		return domain.StoredLine{
			ProductID: src.ProductId,
			Quantity:  src.Quantity,
			Ctime:     src.Ctime,
		}
	}), nil
}

func (r *cartRepository) AddQuantity(ctx context.Context, actor domain.Actor, productID, qty int64) error {
	if actor.Anonymous() {
		m, err := r.c.Get(ctx, actor.SessionToken)
		if err != nil {
			return err
		}
		m[productID] += qty
		return r.c.Set(ctx, actor.SessionToken, m)
	}
	return r.d.Upsert(ctx, actor.UID, productID, qty)
}

func (r *cartRepository) SetQuantity(ctx context.Context, actor domain.Actor, productID, qty int64) error {
	if actor.Anonymous() {
		m, err := r.c.Get(ctx, actor.SessionToken)
		if err != nil {
			return err
		}
		if _, ok := m[productID]; !ok {
			return ErrLineNotFound
		}
		if qty == 0 {
			delete(m, productID)
		} else {
			m[productID] = qty
		}
		return r.c.Set(ctx, actor.SessionToken, m)
	}
	if qty == 0 {
		// 先确认行存在,和匿名路径保持同样的语义
		if err := r.d.UpdateQuantity(ctx, actor.UID, productID, 0); err != nil {
			return r.translate(err)
		}
		return r.d.Delete(ctx, actor.UID, productID)
	}
	return r.translate(r.d.UpdateQuantity(ctx, actor.UID, productID, qty))
}

func (r *cartRepository) Remove(ctx context.Context, actor domain.Actor, productID int64) error {
	if actor.Anonymous() {
		m, err := r.c.Get(ctx, actor.SessionToken)
		if err != nil {
			return err
		}
		delete(m, productID)
		return r.c.Set(ctx, actor.SessionToken, m)
	}
	return r.d.Delete(ctx, actor.UID, productID)
}

func (r *cartRepository) Clear(ctx context.Context, actor domain.Actor) error {
	if actor.Anonymous() {
		return r.c.Delete(ctx, actor.SessionToken)
	}
	return r.d.DeleteByUID(ctx, actor.UID)
}

func (r *cartRepository) translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrLineNotFound
	}
	return err
}
