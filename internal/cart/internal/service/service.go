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
	"errors"

	"github.com/ecodeclub/marketplace/internal/cart/internal/domain"
	"github.com/ecodeclub/marketplace/internal/cart/internal/repository"
	"github.com/ecodeclub/marketplace/internal/product"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity    = errors.New("数量非法")
	ErrProductNotFound    = product.ErrProductNotFound
	ErrProductUnavailable = errors.New("商品不可购买")
	ErrLineNotFound       = repository.ErrLineNotFound
)

//go:generate mockgen -source=./service.go -package=cartmocks -destination=../../mocks/cart.mock.go -typed Service
type Service interface {
	Get(ctx context.Context, actor domain.Actor) (domain.Cart, error)
	Add(ctx context.Context, actor domain.Actor, productID, qty int64) error
	Update(ctx context.Context, actor domain.Actor, productID, qty int64) error
	Remove(ctx context.Context, actor domain.Actor, productID int64) error
	Clear(ctx context.Context, actor domain.Actor) error
	// Migrate 把匿名购物车合并进已登录用户的购物车,数量累加,
	// 之后删除匿名副本。匿名购物车为空时是幂等的 no-op,返回 0。
	Migrate(ctx context.Context, fromToken string, toUID int64) (int64, error)
}

func NewService(repo repository.CartRepository, productSvc product.Service) Service {
	return &service{repo: repo, productSvc: productSvc}
}

type service struct {
	repo       repository.CartRepository
	productSvc product.Service
}

// Get 过滤掉已下架/已售出的商品,汇总金额保留两位小数。
func (s *service) Get(ctx context.Context, actor domain.Actor) (domain.Cart, error) {
	stored, err := s.repo.Lines(ctx, actor)
	if err != nil {
		return domain.Cart{}, err
	}
	res := domain.Cart{
		Lines:      make([]domain.Line, 0, len(stored)),
		TotalPrice: decimal.Zero,
	}
	for _, l := range stored {
		p, err := s.productSvc.FindActiveByID(ctx, l.ProductID)
		if err != nil {
			if errors.Is(err, product.ErrProductNotFound) {
				continue
			}
			return domain.Cart{}, err
		}
		subtotal := p.Price.Mul(decimal.NewFromInt(l.Quantity)).Round(2)
		res.Lines = append(res.Lines, domain.Line{
			ProductID:   p.ID,
			SellerID:    p.SellerID,
			ProductName: p.Name,
			UnitPrice:   p.Price,
			Quantity:    l.Quantity,
			Subtotal:    subtotal,
			Ctime:       l.Ctime,
		})
		res.TotalPrice = res.TotalPrice.Add(subtotal)
	}
	res.TotalItems = len(res.Lines)
	res.TotalPrice = res.TotalPrice.Round(2)
	return res, nil
}

func (s *service) Add(ctx context.Context, actor domain.Actor, productID, qty int64) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	p, err := s.productSvc.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if !p.Active() {
		return ErrProductUnavailable
	}
	return s.repo.AddQuantity(ctx, actor, productID, qty)
}

func (s *service) Update(ctx context.Context, actor domain.Actor, productID, qty int64) error {
	if qty < 0 {
		return ErrInvalidQuantity
	}
	return s.repo.SetQuantity(ctx, actor, productID, qty)
}

func (s *service) Remove(ctx context.Context, actor domain.Actor, productID int64) error {
	return s.repo.Remove(ctx, actor, productID)
}

func (s *service) Clear(ctx context.Context, actor domain.Actor) error {
	return s.repo.Clear(ctx, actor)
}

func (s *service) Migrate(ctx context.Context, fromToken string, toUID int64) (int64, error) {
	from := domain.Actor{SessionToken: fromToken}
	stored, err := s.repo.Lines(ctx, from)
	if err != nil {
		return 0, err
	}
	var migrated int64
	to := domain.Actor{UID: toUID}
	for _, l := range stored {
		_, err := s.productSvc.FindActiveByID(ctx, l.ProductID)
		if err != nil {
			if errors.Is(err, product.ErrProductNotFound) {
				continue
			}
			return migrated, err
		}
		if err := s.repo.AddQuantity(ctx, to, l.ProductID, l.Quantity); err != nil {
			return migrated, err
		}
		migrated++
	}
	if err := s.repo.Clear(ctx, from); err != nil {
		return migrated, err
	}
	return migrated, nil
}
