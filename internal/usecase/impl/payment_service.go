package impl

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"bmshub/config"
	deliverycontext "bmshub/internal/delivery/context"
	"bmshub/internal/domain/entity"
	domainerrors "bmshub/internal/domain/errors"
	"bmshub/internal/domain/repository"
	"bmshub/internal/domain/service"
	"bmshub/internal/errors"
	"bmshub/internal/usecase"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	paymentRepo   repository.PaymentRepository
	agreementRepo repository.AgreementRepository
	gateway       service.PaymentGateway
	currency      string
	logger        *slog.Logger
}

// PaymentServiceParams holds dependencies for paymentService, injected
// by Fx.
type PaymentServiceParams struct {
	fx.In

	PaymentRepo   repository.PaymentRepository
	AgreementRepo repository.AgreementRepository
	Gateway       service.PaymentGateway
	Config        *config.Config
	Logger        *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	currency := "usd"
	if params.Config != nil && params.Config.Stripe != nil && params.Config.Stripe.Currency != "" {
		currency = params.Config.Stripe.Currency
	}

	return &paymentService{
		paymentRepo:   params.PaymentRepo,
		agreementRepo: params.AgreementRepo,
		gateway:       params.Gateway,
		currency:      currency,
		logger:        params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Record treats the status flip and the payment insert as one logical
// unit ordered so that a failed flip writes nothing: MarkPaid only matches
// a non-paid agreement, and the payment document is inserted only after a
// successful flip. The reverse window (flip applied, insert failed) is a
// known single-document-atomicity limitation and is logged loudly.
func (srv *paymentService) Record(ctx context.Context, input *usecase.RecordPaymentInput) (string, error) {
	modified, err := srv.agreementRepo.MarkPaid(ctx, input.AgreementID)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return "", domainerrors.ErrInvalidID
		}

		return "", domainerrors.NewDatabaseExecuteError(err, "failed to mark agreement paid")
	}
	if modified == 0 {
		return "", domainerrors.ErrAgreementNotPayable
	}

	payment := &entity.Payment{
		AgreementID:   input.AgreementID,
		UserEmail:     input.UserEmail,
		Amount:        input.Amount,
		Month:         input.Month,
		TransactionID: input.TransactionID,
		PaymentMethod: input.PaymentMethod,
		Date:          time.Now(),
	}

	id, err := srv.paymentRepo.Insert(ctx, payment)
	if err != nil {
		srv.log(ctx).Error("Agreement marked paid but payment insert failed",
			slog.String("agreementID", input.AgreementID),
			slog.String("userEmail", input.UserEmail),
			slog.Any("error", err))

		return "", domainerrors.NewDatabaseExecuteError(err, "failed to insert payment")
	}

	srv.log(ctx).Info("Payment recorded",
		slog.String("paymentID", id),
		slog.String("agreementID", input.AgreementID),
		slog.Int64("amount", input.Amount))

	return id, nil
}

func (srv *paymentService) History(ctx context.Context, email string) ([]*entity.Payment, error) {
	payments, err := srv.paymentRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch payments")
	}

	return payments, nil
}

func (srv *paymentService) CreateIntent(ctx context.Context, amount int64) (string, error) {
	secret, err := srv.gateway.CreateIntent(ctx, amount, srv.currency)
	if err != nil {
		return "", domainerrors.NewUpstreamError(err, "failed to create payment intent")
	}

	return secret, nil
}
