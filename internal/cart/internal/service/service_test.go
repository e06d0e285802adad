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

package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/ecodeclub/marketplace/internal/cart/internal/domain"
	"github.com/ecodeclub/marketplace/internal/cart/internal/repository"
	"github.com/ecodeclub/marketplace/internal/product"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	// key 是 uid 或匿名 token
	carts map[string]map[int64]int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{carts: make(map[string]map[int64]int64)}
}

func (f *fakeRepo) key(actor domain.Actor) string {
	if actor.Anonymous() {
		return "anon:" + actor.SessionToken
	}
	return "uid:" + strconv.FormatInt(actor.UID, 10)
}

func (f *fakeRepo) bucket(actor domain.Actor) map[int64]int64 {
	k := f.key(actor)
	if f.carts[k] == nil {
		f.carts[k] = make(map[int64]int64)
	}
	return f.carts[k]
}

func (f *fakeRepo) Lines(_ context.Context, actor domain.Actor) ([]domain.StoredLine, error) {
	b := f.bucket(actor)
	res := make([]domain.StoredLine, 0, len(b))
	for pid, qty := range b {
		res = append(res, domain.StoredLine{ProductID: pid, Quantity: qty})
	}
	return res, nil
}

func (f *fakeRepo) AddQuantity(_ context.Context, actor domain.Actor, productID, qty int64) error {
	f.bucket(actor)[productID] += qty
	return nil
}

func (f *fakeRepo) SetQuantity(_ context.Context, actor domain.Actor, productID, qty int64) error {
	b := f.bucket(actor)
	if _, ok := b[productID]; !ok {
		return repository.ErrLineNotFound
	}
	if qty == 0 {
		delete(b, productID)
		return nil
	}
	b[productID] = qty
	return nil
}

func (f *fakeRepo) Remove(_ context.Context, actor domain.Actor, productID int64) error {
	delete(f.bucket(actor), productID)
	return nil
}

func (f *fakeRepo) Clear(_ context.Context, actor domain.Actor) error {
	delete(f.carts, f.key(actor))
	return nil
}

type fakeProductSvc struct {
	products map[int64]product.Product
}

func (f *fakeProductSvc) FindByID(_ context.Context, id int64) (product.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return product.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProductSvc) FindActiveByID(ctx context.Context, id int64) (product.Product, error) {
	p, err := f.FindByID(ctx, id)
	if err != nil {
		return product.Product{}, err
	}
	if !p.Active() {
		return product.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProductSvc) Create(_ context.Context, p product.Product) (int64, error) {
	f.products[p.ID] = p
	return p.ID, nil
}

func (f *fakeProductSvc) MarkSold(_ context.Context, id int64) error {
	p := f.products[id]
	p.Status = product.StatusSold
	f.products[id] = p
	return nil
}

func newFakeProductSvc() *fakeProductSvc {
	return &fakeProductSvc{products: map[int64]product.Product{
		100: {ID: 100, SellerID: 1, Name: "键盘", Price: decimal.NewFromFloat(19.99), Status: product.StatusActive},
		101: {ID: 101, SellerID: 2, Name: "显示器", Price: decimal.NewFromFloat(150.50), Status: product.StatusActive},
		102: {ID: 102, SellerID: 1, Name: "旧手机", Price: decimal.NewFromFloat(88), Status: product.StatusSold},
	}}
}

func TestService_Add(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		productID int64
		qty       int64
		wantErr   error
	}{
		{
			name:      "正常添加",
			productID: 100,
			qty:       2,
		},
		{
			name:      "数量为零",
			productID: 100,
			qty:       0,
			wantErr:   ErrInvalidQuantity,
		},
		{
			name:      "数量为负",
			productID: 100,
			qty:       -3,
			wantErr:   ErrInvalidQuantity,
		},
		{
			name:      "商品不存在",
			productID: 999,
			qty:       1,
			wantErr:   ErrProductNotFound,
		},
		{
			name:      "商品已售出",
			productID: 102,
			qty:       1,
			wantErr:   ErrProductUnavailable,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc := NewService(newFakeRepo(), newFakeProductSvc())
			err := svc.Add(context.Background(), domain.Actor{UID: 7}, tc.productID, tc.qty)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_Get(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	svc := NewService(repo, newFakeProductSvc())
	actor := domain.Actor{UID: 7}
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, actor, 100, 2))
	require.NoError(t, svc.Add(ctx, actor, 101, 1))
	// 同一商品再次添加,数量累加
	require.NoError(t, svc.Add(ctx, actor, 100, 1))
	// 加入后商品被售出,读取时应被过滤
	require.NoError(t, repo.AddQuantity(ctx, actor, 102, 1))

	cart, err := svc.Get(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.TotalItems)
	// 19.99 * 3 + 150.50 = 210.47
	assert.True(t, decimal.NewFromFloat(210.47).Equal(cart.TotalPrice),
		"total = %s", cart.TotalPrice)
	for _, l := range cart.Lines {
		if l.ProductID == 100 {
			assert.Equal(t, int64(3), l.Quantity)
			assert.True(t, decimal.NewFromFloat(59.97).Equal(l.Subtotal))
		}
	}
}

func TestService_Update(t *testing.T) {
	t.Parallel()
	svc := NewService(newFakeRepo(), newFakeProductSvc())
	actor := domain.Actor{UID: 7}
	ctx := context.Background()
	require.NoError(t, svc.Add(ctx, actor, 100, 2))

	assert.ErrorIs(t, svc.Update(ctx, actor, 100, -1), ErrInvalidQuantity)
	assert.ErrorIs(t, svc.Update(ctx, actor, 101, 5), ErrLineNotFound)

	require.NoError(t, svc.Update(ctx, actor, 100, 5))
	cart, err := svc.Get(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cart.Lines[0].Quantity)

	// 数量归零等价于删除
	require.NoError(t, svc.Update(ctx, actor, 100, 0))
	cart, err = svc.Get(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, 0, cart.TotalItems)
}

func TestService_RemoveAndClear(t *testing.T) {
	t.Parallel()
	svc := NewService(newFakeRepo(), newFakeProductSvc())
	actor := domain.Actor{UID: 7}
	ctx := context.Background()
	require.NoError(t, svc.Add(ctx, actor, 100, 1))
	require.NoError(t, svc.Add(ctx, actor, 101, 1))

	require.NoError(t, svc.Remove(ctx, actor, 100))
	cart, err := svc.Get(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.TotalItems)

	require.NoError(t, svc.Clear(ctx, actor))
	cart, err = svc.Get(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, 0, cart.TotalItems)
}

func TestService_Migrate(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	svc := NewService(repo, newFakeProductSvc())
	ctx := context.Background()
	anon := domain.Actor{SessionToken: "tok-1"}
	user := domain.Actor{UID: 9}

	require.NoError(t, svc.Add(ctx, anon, 100, 2))
	require.NoError(t, svc.Add(ctx, anon, 101, 1))
	// 已登录用户自己也有同一商品
	require.NoError(t, svc.Add(ctx, user, 100, 1))
	// 匿名购物车里混入的已售商品不迁移
	require.NoError(t, repo.AddQuantity(ctx, anon, 102, 1))

	n, err := svc.Migrate(ctx, "tok-1", 9)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	cart, err := svc.Get(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.TotalItems)
	for _, l := range cart.Lines {
		if l.ProductID == 100 {
			assert.Equal(t, int64(3), l.Quantity)
		}
	}

	// 再次迁移是幂等的
	n, err = svc.Migrate(ctx, "tok-1", 9)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	cart, err = svc.Get(ctx, user)
	require.NoError(t, err)
	for _, l := range cart.Lines {
		if l.ProductID == 100 {
			assert.Equal(t, int64(3), l.Quantity)
		}
	}
}
