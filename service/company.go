package service

import (
	"context"

	"github.com/jrsteele09/ainote-client/executor"
	"github.com/jrsteele09/ainote-client/model"
)

type CompanyService struct {
	executor executor.Executor
}

func NewCompanyService(exec executor.Executor) *CompanyService {
	return &CompanyService{executor: exec}
}

// Add creates a company. The input travels as query parameters, not as a
// JSON body.
func (s *CompanyService) Add(ctx context.Context, input model.CompanyAddInput) (string, error) {
	if err := required("CompanyService.Add", "name", input.Name, "code", input.Code, "tenant", input.Tenant); err != nil {
		return "", err
	}
	query := executor.Query{}.
		Add("name", input.Name).
		Add("code", input.Code).
		Add("phone", input.Phone).
		Add("address", input.Address).
		Add("contact", input.Contact).
		Add("status", input.Status).
		Add("tenant", input.Tenant)

	return call[string](ctx, s.executor, &executor.Request{
		Path:   "/company/add",
		Method: executor.MethodPost,
		Query:  query,
	})
}

func (s *CompanyService) AllCompanyNames(ctx context.Context) ([]model.CompanyName, error) {
	return call[[]model.CompanyName](ctx, s.executor, &executor.Request{
		Path:   "/company/names",
		Method: executor.MethodGet,
	})
}

func (s *CompanyService) Delete(ctx context.Context, id string) error {
	if err := required("CompanyService.Delete", "id", id); err != nil {
		return err
	}
	return callVoid(ctx, s.executor, &executor.Request{
		Path:   "/company/delete",
		Method: executor.MethodPost,
		Query:  executor.Query{}.Add("id", id),
	})
}

func (s *CompanyService) GetCompanyMembers(ctx context.Context, companyID string) ([]model.CompanyMember, error) {
	if err := required("CompanyService.GetCompanyMembers", "companyId", companyID); err != nil {
		return nil, err
	}
	return call[[]model.CompanyMember](ctx, s.executor, &executor.Request{
		Path:   "/company/members",
		Method: executor.MethodGet,
		Query:  executor.Query{}.Add("companyId", companyID),
	})
}

// MyCompany lists the companies the signed-in account belongs to.
func (s *CompanyService) MyCompany(ctx context.Context) ([]model.CompanyName, error) {
	return call[[]model.CompanyName](ctx, s.executor, &executor.Request{
		Path:   "/company/my",
		Method: executor.MethodGet,
	})
}

type CompanyPageOptions struct {
	Paging
	SortCode *string
	Search   model.CompanySearch
}

func (s *CompanyService) PageCompany(ctx context.Context, opts CompanyPageOptions) (model.Page[model.CompanyListItem], error) {
	query := executor.Query{}.
		Add("keywords", opts.Search.Keywords).
		Add("contact", opts.Search.Contact).
		Add("status", opts.Search.Status)
	query = opts.Paging.addTo(query).Add("sortCode", opts.SortCode)

	return call[model.Page[model.CompanyListItem]](ctx, s.executor, &executor.Request{
		Path:   "/company/page",
		Method: executor.MethodGet,
		Query:  query,
	})
}

func (s *CompanyService) SetAdmin(ctx context.Context, body model.ChangeCompanyRole) (string, error) {
	return call[string](ctx, s.executor, &executor.Request{
		Path:   "/company/setAdmin",
		Method: executor.MethodPost,
		Body:   body,
	})
}
