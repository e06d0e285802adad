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

package web

type CreateOrderReq struct {
	// RequestID 由前端生成,用于防止重复提交
	RequestID string `json:"request_id"`
	// ProductID 大于 0 时直接购买该商品,否则把购物车整车下单
	ProductID       int64  `json:"product_id"`
	Quantity        int64  `json:"quantity"`
	ShippingAddress string `json:"shipping_address"`
	PaymentMethod   string `json:"payment_method"`
}

type CreateOrderResp struct {
	// Groups 按卖家分组,仅用于展示,每个商品行仍是独立订单
	Groups []SellerOrders `json:"groups"`
}

type SellerOrders struct {
	SellerID int64   `json:"seller_id"`
	Orders   []Order `json:"orders"`
}

type RetrieveOrderDetailReq struct {
	OrderID int64 `json:"order_id"`
}

type UpdateOrderStatusReq struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

type ListOrdersReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	// Status 可选,按订单状态过滤
	Status string `json:"status"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

type Order struct {
	ID              int64   `json:"id"`
	BuyerID         int64   `json:"buyer_id"`
	SellerID        int64   `json:"seller_id"`
	ProductID       int64   `json:"product_id"`
	ProductName     string  `json:"product_name"`
	UnitPrice       float64 `json:"unit_price"`
	Quantity        int64   `json:"quantity"`
	TotalPrice      float64 `json:"total_price"`
	ShippingAddress string  `json:"shipping_address"`
	PaymentMethod   string  `json:"payment_method"`
	PaymentStatus   string  `json:"payment_status"`
	PaymentRef      string  `json:"payment_ref,omitempty"`
	FailureReason   string  `json:"failure_reason,omitempty"`
	Status          string  `json:"status"`
	TrackingNumber  string  `json:"tracking_number"`
	Ctime           int64   `json:"ctime"`
	Utime           int64   `json:"utime"`
}
