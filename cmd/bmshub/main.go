package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"bmshub/config"
	"bmshub/internal/delivery"
	"bmshub/internal/delivery/http"
	"bmshub/internal/delivery/http/middleware"
	"bmshub/internal/delivery/http/router/handler"
	"bmshub/internal/domain/service"
	"bmshub/internal/infra/auth"
	logs "bmshub/internal/infra/log"
	"bmshub/internal/infra/payment"
	"bmshub/internal/infra/persistence/mongodb"
	"bmshub/internal/infra/qrcode"
	"bmshub/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		mongodb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongodb.NewUserRepository,
			mongodb.NewAgreementRepository,
			mongodb.NewMemberRepository,
			mongodb.NewPaymentRepository,
			mongodb.NewApartmentRepository,
			mongodb.NewCouponRepository,
			mongodb.NewAnnouncementRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newTokenVerifier,
			newPaymentGateway,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates the coupon QR renderer with default sizing
func newQRCodeService() service.QRCodeService {
	return qrcode.NewQRCodeService(256, "M")
}

// newTokenVerifier creates the identity verifier with dependency injection.
// Without Firebase configuration the verifier is nil and the gated routes
// refuse every request.
func newTokenVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.TokenVerifier, error) {
	if cfg.Firebase == nil {
		logger.Warn("Firebase is not configured; identity-gated routes will reject all requests")

		return nil, nil
	}

	verifier, err := auth.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create token verifier: %w", err)
	}

	return verifier, nil
}

// newPaymentGateway creates the payment gateway with dependency injection
func newPaymentGateway(cfg *config.Config) service.PaymentGateway {
	secretKey := ""
	if cfg.Stripe != nil {
		secretKey = cfg.Stripe.SecretKey
	}

	return payment.NewStripeGateway(secretKey)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAgreementService,
			impl.NewPaymentService,
			impl.NewMemberService,
			impl.NewUserService,
			impl.NewApartmentService,
			impl.NewCouponService,
			impl.NewAnnouncementService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAgreementHandler,
			handler.NewMemberHandler,
			handler.NewUserHandler,
			handler.NewPaymentHandler,
			handler.NewApartmentHandler,
			handler.NewCouponHandler,
			handler.NewAnnouncementHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
