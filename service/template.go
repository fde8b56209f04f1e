package service

import (
	"context"

	"github.com/jrsteele09/ainote-client/executor"
	"github.com/jrsteele09/ainote-client/model"
)

// TemplateService manages ledger templates.
type TemplateService struct {
	executor executor.Executor
}

func NewTemplateService(exec executor.Executor) *TemplateService {
	return &TemplateService{executor: exec}
}

func (s *TemplateService) Add(ctx context.Context, body model.CreateTemplate) (string, error) {
	return call[string](ctx, s.executor, &executor.Request{
		Path:   "/template/add",
		Method: executor.MethodPost,
		Body:   body,
	})
}

func (s *TemplateService) ChangeStatus(ctx context.Context, body model.ChangeTemplateStatus) (model.SaveResult[model.LedgerTemplate], error) {
	return call[model.SaveResult[model.LedgerTemplate]](ctx, s.executor, &executor.Request{
		Path:   "/template/changeStatus",
		Method: executor.MethodPut,
		Body:   body,
	})
}

// CreateFields replaces the field set of a template.
func (s *TemplateService) CreateFields(ctx context.Context, body model.UpdateTemplate) (string, error) {
	return call[string](ctx, s.executor, &executor.Request{
		Path:   "/template/updateFields",
		Method: executor.MethodPost,
		Body:   body,
	})
}

func (s *TemplateService) Delete(ctx context.Context, id string) error {
	if err := required("TemplateService.Delete", "id", id); err != nil {
		return err
	}
	return callVoid(ctx, s.executor, &executor.Request{
		Path:   segment("/template/", id),
		Method: executor.MethodDelete,
	})
}

func (s *TemplateService) Detail(ctx context.Context, id string) (*model.TemplateSimple, error) {
	if err := required("TemplateService.Detail", "id", id); err != nil {
		return nil, err
	}
	return call[*model.TemplateSimple](ctx, s.executor, &executor.Request{
		Path:   segment("/template/", id),
		Method: executor.MethodGet,
	})
}

func (s *TemplateService) GenerateFields(ctx context.Context, body model.CreateTemplate) ([]model.CreateTemplateField, error) {
	return call[[]model.CreateTemplateField](ctx, s.executor, &executor.Request{
		Path:   "/template/generateFields",
		Method: executor.MethodPost,
		Body:   body,
	})
}

type TemplatePageOptions struct {
	Paging
	Sort   *string
	Search model.SearchTemplate
}

func (o TemplatePageOptions) query() executor.Query {
	query := executor.Query{}.
		Add("keyword", o.Search.Keyword).
		Add("category", o.Search.Category).
		Add("enabled", o.Search.Enabled)
	return o.Paging.addTo(query).Add("sort", o.Sort)
}

// MyTemplatePage pages over templates created by the signed-in account.
func (s *TemplateService) MyTemplatePage(ctx context.Context, opts TemplatePageOptions) (model.Page[model.TemplateListItem], error) {
	return call[model.Page[model.TemplateListItem]](ctx, s.executor, &executor.Request{
		Path:   "/template/myTemplatePage",
		Method: executor.MethodGet,
		Query:  opts.query(),
	})
}

// TenantTemplatePage pages over every template of the current tenant.
func (s *TemplateService) TenantTemplatePage(ctx context.Context, opts TemplatePageOptions) (model.Page[model.TemplateListItem], error) {
	return call[model.Page[model.TemplateListItem]](ctx, s.executor, &executor.Request{
		Path:   "/template/tenantTemplatePage",
		Method: executor.MethodGet,
		Query:  opts.query(),
	})
}
