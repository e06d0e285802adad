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

	"github.com/ecodeclub/marketplace/internal/product/internal/domain"
	"github.com/ecodeclub/marketplace/internal/product/internal/repository"
)

//go:generate mockgen -source=./service.go -package=productmocks -destination=../../mocks/product.mock.go -typed Service
type Service interface {
	// FindByID 不论商品处于什么状态都返回,
	// 调用方自己检查 Status,这样"不存在"和"已下架"是可以区分的。
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	// FindActiveByID 只返回在售商品,不存在和已下架一律视为找不到
	FindActiveByID(ctx context.Context, id int64) (domain.Product, error)
	Create(ctx context.Context, p domain.Product) (int64, error)
	// MarkSold 把商品置为已售出,并发场景下后写覆盖先写
	MarkSold(ctx context.Context, id int64) error
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ProductRepository
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindActiveByID(ctx context.Context, id int64) (domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	if !p.Active() {
		return domain.Product{}, repository.ErrProductNotFound
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, p domain.Product) (int64, error) {
	return s.repo.Create(ctx, p)
}

func (s *service) MarkSold(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, domain.StatusSold)
}
