package impl

import (
	"io"
	"log/slog"

	"bmshub/config"
	mockRepo "bmshub/internal/mocks/repository"
	mockSvc "bmshub/internal/mocks/service"
	"bmshub/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(currency string) *config.Config {
	cfg := &config.Config{}
	cfg.Stripe = &config.StripeConfig{
		SecretKey: "sk_test_dummy",
		Currency:  currency,
	}

	return cfg
}

type agreementServiceFixture struct {
	service       usecase.AgreementUsecase
	agreementRepo *mockRepo.AgreementRepository
	userRepo      *mockRepo.UserRepository
}

func createTestAgreementService() *agreementServiceFixture {
	agreementRepo := &mockRepo.AgreementRepository{}
	userRepo := &mockRepo.UserRepository{}

	return &agreementServiceFixture{
		service: NewAgreementService(AgreementServiceParams{
			AgreementRepo: agreementRepo,
			UserRepo:      userRepo,
			Logger:        newDiscardLogger(),
		}),
		agreementRepo: agreementRepo,
		userRepo:      userRepo,
	}
}

type paymentServiceFixture struct {
	service       usecase.PaymentUsecase
	paymentRepo   *mockRepo.PaymentRepository
	agreementRepo *mockRepo.AgreementRepository
	gateway       *mockSvc.PaymentGateway
}

func createTestPaymentService(currency string) *paymentServiceFixture {
	paymentRepo := &mockRepo.PaymentRepository{}
	agreementRepo := &mockRepo.AgreementRepository{}
	gateway := &mockSvc.PaymentGateway{}

	return &paymentServiceFixture{
		service: NewPaymentService(PaymentServiceParams{
			PaymentRepo:   paymentRepo,
			AgreementRepo: agreementRepo,
			Gateway:       gateway,
			Config:        newTestConfig(currency),
			Logger:        newDiscardLogger(),
		}),
		paymentRepo:   paymentRepo,
		agreementRepo: agreementRepo,
		gateway:       gateway,
	}
}

type memberServiceFixture struct {
	service    usecase.MemberUsecase
	memberRepo *mockRepo.MemberRepository
	userRepo   *mockRepo.UserRepository
}

func createTestMemberService() *memberServiceFixture {
	memberRepo := &mockRepo.MemberRepository{}
	userRepo := &mockRepo.UserRepository{}

	return &memberServiceFixture{
		service: NewMemberService(MemberServiceParams{
			MemberRepo: memberRepo,
			UserRepo:   userRepo,
			Logger:     newDiscardLogger(),
		}),
		memberRepo: memberRepo,
		userRepo:   userRepo,
	}
}

type userServiceFixture struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.UserRepository
}

func createTestUserService() *userServiceFixture {
	userRepo := &mockRepo.UserRepository{}

	return &userServiceFixture{
		service: NewUserService(UserServiceParams{
			UserRepo: userRepo,
			Logger:   newDiscardLogger(),
		}),
		userRepo: userRepo,
	}
}
