// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"bmshub/internal/delivery/http/middleware"
	"bmshub/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AgreementHandler    *handler.AgreementHandler
	MemberHandler       *handler.MemberHandler
	UserHandler         *handler.UserHandler
	PaymentHandler      *handler.PaymentHandler
	ApartmentHandler    *handler.ApartmentHandler
	CouponHandler       *handler.CouponHandler
	AnnouncementHandler *handler.AnnouncementHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	agreementHandler    *handler.AgreementHandler
	memberHandler       *handler.MemberHandler
	userHandler         *handler.UserHandler
	paymentHandler      *handler.PaymentHandler
	apartmentHandler    *handler.ApartmentHandler
	couponHandler       *handler.CouponHandler
	announcementHandler *handler.AnnouncementHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		agreementHandler:    params.AgreementHandler,
		memberHandler:       params.MemberHandler,
		userHandler:         params.UserHandler,
		paymentHandler:      params.PaymentHandler,
		apartmentHandler:    params.ApartmentHandler,
		couponHandler:       params.CouponHandler,
		announcementHandler: params.AnnouncementHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Each path is registered exactly once; identity gating applies only to
// the full agreement listing and the payment history.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Agreement lifecycle
	agreementGroup := e.Group("/agreements")
	{
		agreementGroup.GET("", r.agreementHandler.ListByEmail)
		agreementGroup.GET("/all", r.agreementHandler.ListAll, r.authMiddleware.Authenticate)
		agreementGroup.GET("/:id", r.agreementHandler.Get)
		agreementGroup.POST("", r.agreementHandler.Submit)
		agreementGroup.PATCH("/accept/:id", r.agreementHandler.Accept)
		agreementGroup.PATCH("/reject/:id", r.agreementHandler.Reject)
		agreementGroup.DELETE("/:id", r.agreementHandler.Delete)
	}

	// Membership-approval track
	memberGroup := e.Group("/members")
	{
		memberGroup.GET("", r.memberHandler.List)
		memberGroup.GET("/pending", r.memberHandler.ListPending)
		memberGroup.POST("", r.memberHandler.Apply)
		memberGroup.PATCH("/:id", r.memberHandler.UpdateStatus)
	}

	// User accounts and role management
	userGroup := e.Group("/users")
	{
		userGroup.GET("/members", r.userHandler.ListMembers)
		userGroup.GET("/search", r.userHandler.Search)
		userGroup.GET("/:email", r.userHandler.GetByEmail)
		userGroup.POST("", r.userHandler.Register)
		userGroup.PATCH("/remove-member/:id", r.userHandler.RemoveMember)
		userGroup.PATCH("/:id", r.userHandler.UpdateRole)
	}
	e.GET("/user/:email/role", r.userHandler.GetRole)

	// Payments
	e.GET("/payments", r.paymentHandler.History, r.authMiddleware.Authenticate)
	e.POST("/payments", r.paymentHandler.Record)
	e.POST("/create-payment-intent", r.paymentHandler.CreateIntent)

	// Reference data
	e.GET("/apartments", r.apartmentHandler.List)
	e.POST("/apartments", r.apartmentHandler.Create)
	e.GET("/coupons", r.couponHandler.List)
	e.GET("/coupons/:code/qr", r.couponHandler.QR)
	e.POST("/coupons", r.couponHandler.Create)
	e.GET("/announcements", r.announcementHandler.List)
	e.POST("/announcements", r.announcementHandler.Create)
}
