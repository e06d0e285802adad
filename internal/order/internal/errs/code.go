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

package errs

var (
	SystemError        = ErrorCode{Code: 504001, Msg: "系统错误"}
	OrderNotFound      = ErrorCode{Code: 504002, Msg: "订单不存在"}
	Forbidden          = ErrorCode{Code: 504003, Msg: "无权操作该订单"}
	InvalidStatus      = ErrorCode{Code: 504004, Msg: "订单状态非法"}
	ProductUnavailable = ErrorCode{Code: 504005, Msg: "商品不可购买"}
	SelfPurchase       = ErrorCode{Code: 504006, Msg: "不能购买自己发布的商品"}
	EmptyCart          = ErrorCode{Code: 504007, Msg: "购物车为空"}
	DuplicateRequest   = ErrorCode{Code: 504008, Msg: "请求ID错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
