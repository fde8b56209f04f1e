package service

import (
	"context"

	"github.com/jrsteele09/ainote-client/executor"
	"github.com/jrsteele09/ainote-client/model"
)

type AiService struct {
	executor executor.Executor
}

func NewAiService(exec executor.Executor) *AiService {
	return &AiService{executor: exec}
}

func (s *AiService) Chat(ctx context.Context, body model.AiChatRequest) (model.AiChatResponse, error) {
	return call[model.AiChatResponse](ctx, s.executor, &executor.Request{
		Path:   "/ai/chat",
		Method: executor.MethodPost,
		Body:   body,
	})
}

// GenerateTemplateFields asks the assistant to propose fields for a
// template description.
func (s *AiService) GenerateTemplateFields(ctx context.Context, body model.CreateTemplate) ([]model.CreateTemplateField, error) {
	return call[[]model.CreateTemplateField](ctx, s.executor, &executor.Request{
		Path:   "/ai/template-fields",
		Method: executor.MethodPost,
		Body:   body,
	})
}
