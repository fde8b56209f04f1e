package service

import (
	"context"

	"github.com/jrsteele09/ainote-client/executor"
	"github.com/jrsteele09/ainote-client/model"
)

type AccountService struct {
	executor executor.Executor
}

func NewAccountService(exec executor.Executor) *AccountService {
	return &AccountService{executor: exec}
}

// JoinCompany attaches the current account to one or more companies.
func (s *AccountService) JoinCompany(ctx context.Context, body model.JoinCompany) (string, error) {
	return call[string](ctx, s.executor, &executor.Request{
		Path:   "/account/joinCompany",
		Method: executor.MethodPost,
		Body:   body,
	})
}

// Me returns the signed-in account, or nil when the backend sends no body.
func (s *AccountService) Me(ctx context.Context) (*model.AccountSimple, error) {
	return call[*model.AccountSimple](ctx, s.executor, &executor.Request{
		Path:   "/account/me",
		Method: executor.MethodGet,
	})
}

type AccountPageOptions struct {
	Paging
	SortCode *string
	Search   model.AccountSearch
}

func (s *AccountService) Page(ctx context.Context, opts AccountPageOptions) (model.Page[model.AccountSimple], error) {
	query := executor.Query{}.
		Add("keyword", opts.Search.Keyword).
		Add("status", opts.Search.Status).
		Add("role", opts.Search.Role)
	query = opts.Paging.addTo(query).Add("sortCode", opts.SortCode)

	return call[model.Page[model.AccountSimple]](ctx, s.executor, &executor.Request{
		Path:   "/account/page",
		Method: executor.MethodGet,
		Query:  query,
	})
}

func (s *AccountService) Update(ctx context.Context, body model.UpdateInput) (model.SaveResult[model.Account], error) {
	return call[model.SaveResult[model.Account]](ctx, s.executor, &executor.Request{
		Path:   "/account/update",
		Method: executor.MethodPut,
		Body:   body,
	})
}

// ChangeStatus activates, locks or deletes an account. Admin only.
func (s *AccountService) ChangeStatus(ctx context.Context, body model.ChangeAccountStatusInput) (model.SaveResult[model.Account], error) {
	return call[model.SaveResult[model.Account]](ctx, s.executor, &executor.Request{
		Path:   "/account/changeStatus",
		Method: executor.MethodPut,
		Body:   body,
	})
}
