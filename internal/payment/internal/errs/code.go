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
	SystemError     = ErrorCode{Code: 505001, Msg: "系统错误"}
	PaymentNotFound = ErrorCode{Code: 505002, Msg: "交易不存在"}
	Forbidden       = ErrorCode{Code: 505003, Msg: "无权操作该交易"}
	AlreadyPaid     = ErrorCode{Code: 505004, Msg: "该订单已支付或已取消"}
	InvalidPhone    = ErrorCode{Code: 505005, Msg: "手机号格式非法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

// NewPaymentRejectedErr 网关拒绝支付请求时,把网关返回的提示带给调用方
func NewPaymentRejectedErr(msg string) ErrorCode {
	return ErrorCode{Code: 505006, Msg: msg}
}
