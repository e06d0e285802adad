package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/marketplace/internal/cart"
	"github.com/ecodeclub/marketplace/internal/order"
	"github.com/ecodeclub/marketplace/internal/payment"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	cartModule *cart.Module,
	orderModule *order.Module,
	paymentModule *payment.Module,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Cart-Session"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "kitalamarket.com")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 匿名用户也能用购物车和查支付方式
	cartModule.Hdl.PublicRoutes(res.Engine)
	paymentModule.Hdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	cartModule.Hdl.PrivateRoutes(res.Engine)
	orderModule.Hdl.PrivateRoutes(res.Engine)
	paymentModule.Hdl.PrivateRoutes(res.Engine)
	return res
}
