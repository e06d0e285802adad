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

	"github.com/ecodeclub/marketplace/internal/cart"
	"github.com/ecodeclub/marketplace/internal/order/internal/domain"
	"github.com/ecodeclub/marketplace/internal/order/internal/repository"
	"github.com/ecodeclub/marketplace/internal/product"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound      = repository.ErrOrderNotFound
	ErrForbidden          = errors.New("无权操作该订单")
	ErrInvalidStatus      = errors.New("订单状态非法")
	ErrProductUnavailable = errors.New("商品不可购买")
	ErrSelfPurchase       = errors.New("不能购买自己发布的商品")
	ErrEmptyCart          = errors.New("购物车为空")
)

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go -typed Service
type Service interface {
	// CreateFromProduct 直接购买单个商品,qty 小于 1 时按 1 处理
	CreateFromProduct(ctx context.Context, buyerID, productID, qty int64, address, method string) (domain.Order, error)
	// CreateFromCart 把购物车整车下单,每个商品行一张订单,
	// 下架和自己发布的商品静默跳过,下单和清空购物车在同一事务里。
	CreateFromCart(ctx context.Context, buyerID int64, address, method string) ([]domain.Order, error)
	// Find 买家和卖家都可以查看自己相关的订单
	Find(ctx context.Context, actorID, orderID int64) (domain.Order, error)
	// UpdateStatus 只有卖家可以改订单状态。流转到 confirmed 时,
	// 如果商品还是在售状态,顺带把商品标记为已售出。
	UpdateStatus(ctx context.Context, actorID, orderID int64, status domain.Status) (domain.Order, error)
	MarkPaid(ctx context.Context, orderID int64, method, ref string) error
	MarkPaymentFailed(ctx context.Context, orderID int64, reason string) error
	// ListByBuyer / ListBySeller 分页加总数,status 为空时不过滤
	ListByBuyer(ctx context.Context, buyerID int64, offset, limit int, status domain.Status) ([]domain.Order, int64, error)
	ListBySeller(ctx context.Context, sellerID int64, offset, limit int, status domain.Status) ([]domain.Order, int64, error)
}

func NewService(repo repository.OrderRepository,
	productSvc product.Service,
	cartSvc cart.Service) Service {
	return &service{repo: repo, productSvc: productSvc, cartSvc: cartSvc}
}

type service struct {
	repo       repository.OrderRepository
	productSvc product.Service
	cartSvc    cart.Service
}

func (s *service) CreateFromProduct(ctx context.Context, buyerID, productID, qty int64, address, method string) (domain.Order, error) {
	if qty < 1 {
		qty = 1
	}
	p, err := s.productSvc.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return domain.Order{}, ErrProductUnavailable
		}
		return domain.Order{}, err
	}
	if !p.Active() {
		return domain.Order{}, ErrProductUnavailable
	}
	if p.SellerID == buyerID {
		return domain.Order{}, ErrSelfPurchase
	}
	return s.repo.Create(ctx, s.newOrder(buyerID, p.SellerID, p.ID, p.Name, p.Price, qty, address, method))
}

func (s *service) CreateFromCart(ctx context.Context, buyerID int64, address, method string) ([]domain.Order, error) {
	c, err := s.cartSvc.Get(ctx, cart.Actor{UID: buyerID})
	if err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(c.Lines))
	for _, l := range c.Lines {
		// 自己发布的商品静默跳过,下架商品在读购物车时已被过滤
		if l.SellerID == buyerID {
			continue
		}
		orders = append(orders, s.newOrder(buyerID, l.SellerID, l.ProductID, l.ProductName, l.UnitPrice, l.Quantity, address, method))
	}
	if len(orders) == 0 {
		return nil, ErrEmptyCart
	}
	return s.repo.CreateFromCart(ctx, orders, buyerID)
}

func (s *service) newOrder(buyerID, sellerID, productID int64, name string, price decimal.Decimal, qty int64, address, method string) domain.Order {
	return domain.Order{
		BuyerID:         buyerID,
		SellerID:        sellerID,
		ProductID:       productID,
		ProductName:     name,
		UnitPrice:       price,
		Quantity:        qty,
		TotalPrice:      price.Mul(decimal.NewFromInt(qty)).Round(2),
		ShippingAddress: address,
		PaymentMethod:   method,
		PaymentStatus:   domain.PaymentStatusPending,
		Status:          domain.StatusPending,
	}
}

func (s *service) Find(ctx context.Context, actorID, orderID int64) (domain.Order, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if o.BuyerID != actorID && o.SellerID != actorID {
		return domain.Order{}, ErrForbidden
	}
	return o, nil
}

func (s *service) UpdateStatus(ctx context.Context, actorID, orderID int64, status domain.Status) (domain.Order, error) {
	if !status.Valid() {
		return domain.Order{}, ErrInvalidStatus
	}
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if o.SellerID != actorID {
		return domain.Order{}, ErrForbidden
	}
	if err := s.repo.UpdateStatus(ctx, orderID, status); err != nil {
		return domain.Order{}, err
	}
	o.Status = status
	if status == domain.StatusConfirmed {
		if err := s.markProductSold(ctx, o.ProductID); err != nil {
			return domain.Order{}, err
		}
	}
	return o, nil
}

// markProductSold 确认成交后把在售商品翻成已售出。
// 读和写之间没有锁,并发确认时后写的生效。
func (s *service) markProductSold(ctx context.Context, productID int64) error {
	p, err := s.productSvc.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if !p.Active() {
		return nil
	}
	return s.productSvc.MarkSold(ctx, productID)
}

func (s *service) MarkPaid(ctx context.Context, orderID int64, method, ref string) error {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := s.repo.MarkPaid(ctx, orderID, method, ref); err != nil {
		return err
	}
	return s.markProductSold(ctx, o.ProductID)
}

func (s *service) MarkPaymentFailed(ctx context.Context, orderID int64, reason string) error {
	return s.repo.MarkPaymentFailed(ctx, orderID, reason)
}

func (s *service) ListByBuyer(ctx context.Context, buyerID int64, offset, limit int, status domain.Status) ([]domain.Order, int64, error) {
	if status != "" && !status.Valid() {
		return nil, 0, ErrInvalidStatus
	}
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.ListByBuyer(ctx, buyerID, offset, limit, status)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByBuyer(ctx, buyerID, status)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (s *service) ListBySeller(ctx context.Context, sellerID int64, offset, limit int, status domain.Status) ([]domain.Order, int64, error) {
	if status != "" && !status.Valid() {
		return nil, 0, ErrInvalidStatus
	}
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.ListBySeller(ctx, sellerID, offset, limit, status)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountBySeller(ctx, sellerID, status)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}
