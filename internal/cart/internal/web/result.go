package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/marketplace/internal/cart/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidQuantityResult = ginx.Result{
		Code: errs.InvalidQuantity.Code,
		Msg:  errs.InvalidQuantity.Msg,
	}
	productNotFoundResult = ginx.Result{
		Code: errs.ProductNotFound.Code,
		Msg:  errs.ProductNotFound.Msg,
	}
	productUnavailableResult = ginx.Result{
		Code: errs.ProductUnavailable.Code,
		Msg:  errs.ProductUnavailable.Msg,
	}
	lineNotFoundResult = ginx.Result{
		Code: errs.LineNotFound.Code,
		Msg:  errs.LineNotFound.Msg,
	}
	sessionRequiredResult = ginx.Result{
		Code: errs.MissingCartSession.Code,
		Msg:  errs.MissingCartSession.Msg,
	}
)
