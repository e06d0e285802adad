package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/marketplace/internal/order/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	forbiddenResult = ginx.Result{
		Code: errs.Forbidden.Code,
		Msg:  errs.Forbidden.Msg,
	}
	invalidStatusResult = ginx.Result{
		Code: errs.InvalidStatus.Code,
		Msg:  errs.InvalidStatus.Msg,
	}
	productUnavailableResult = ginx.Result{
		Code: errs.ProductUnavailable.Code,
		Msg:  errs.ProductUnavailable.Msg,
	}
	selfPurchaseResult = ginx.Result{
		Code: errs.SelfPurchase.Code,
		Msg:  errs.SelfPurchase.Msg,
	}
	emptyCartResult = ginx.Result{
		Code: errs.EmptyCart.Code,
		Msg:  errs.EmptyCart.Msg,
	}
	duplicateRequestResult = ginx.Result{
		Code: errs.DuplicateRequest.Code,
		Msg:  errs.DuplicateRequest.Msg,
	}
)
