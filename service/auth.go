package service

import (
	"context"

	"github.com/jrsteele09/ainote-client/executor"
	"github.com/jrsteele09/ainote-client/model"
)

// AuthService wraps the anonymous sign-in endpoints. It does not touch the
// session; persisting the returned credentials is the caller's job.
type AuthService struct {
	executor executor.Executor
}

func NewAuthService(exec executor.Executor) *AuthService {
	return &AuthService{executor: exec}
}

func (s *AuthService) Captcha(ctx context.Context) (model.CaptchaResponse, error) {
	return call[model.CaptchaResponse](ctx, s.executor, &executor.Request{
		Path:   "/auth/captcha",
		Method: executor.MethodGet,
	})
}

func (s *AuthService) Login(ctx context.Context, body model.LoginInput) (model.AuthResponse, error) {
	return call[model.AuthResponse](ctx, s.executor, &executor.Request{
		Path:   "/auth/login",
		Method: executor.MethodPost,
		Body:   body,
	})
}

func (s *AuthService) Register(ctx context.Context, body model.RegisterInput) (model.AuthResponse, error) {
	return call[model.AuthResponse](ctx, s.executor, &executor.Request{
		Path:   "/auth/register",
		Method: executor.MethodPost,
		Body:   body,
	})
}

func (s *AuthService) SmsLogin(ctx context.Context, body model.SmsLoginInput) (model.AuthResponse, error) {
	return call[model.AuthResponse](ctx, s.executor, &executor.Request{
		Path:   "/auth/smsLogin",
		Method: executor.MethodPost,
		Body:   body,
	})
}

// SendSmsCode asks the backend to text a one-time code to phone.
func (s *AuthService) SendSmsCode(ctx context.Context, phone string) error {
	if err := required("AuthService.SendSmsCode", "phone", phone); err != nil {
		return err
	}
	return callVoid(ctx, s.executor, &executor.Request{
		Path:   "/auth/sendSms",
		Method: executor.MethodPost,
		Query:  executor.Query{}.Add("phone", phone),
	})
}
