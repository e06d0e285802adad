package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/marketplace/internal/payment/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	paymentNotFoundResult = ginx.Result{
		Code: errs.PaymentNotFound.Code,
		Msg:  errs.PaymentNotFound.Msg,
	}
	forbiddenResult = ginx.Result{
		Code: errs.Forbidden.Code,
		Msg:  errs.Forbidden.Msg,
	}
	alreadyPaidResult = ginx.Result{
		Code: errs.AlreadyPaid.Code,
		Msg:  errs.AlreadyPaid.Msg,
	}
	invalidPhoneResult = ginx.Result{
		Code: errs.InvalidPhone.Code,
		Msg:  errs.InvalidPhone.Msg,
	}
)

func paymentRejectedResult(msg string) ginx.Result {
	ec := errs.NewPaymentRejectedErr(msg)
	return ginx.Result{Code: ec.Code, Msg: ec.Msg}
}
