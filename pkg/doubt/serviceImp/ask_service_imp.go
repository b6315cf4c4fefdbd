package serviceImp

import (
	"context"

	"eduassist/entities"
	"eduassist/pkg/ai"
	convRepo "eduassist/pkg/doubt/repository"
	modRepo "eduassist/pkg/module/repository"
)

const defaultAnswerTokens = 500

// AskService runs the ask pipeline: fetch the module's text, resolve an
// answer, persist the exchange.
type AskService struct {
	modules       modRepo.ModuleRepository
	conversations convRepo.ConversationRepository
	llm           ai.Client
}

func New(m modRepo.ModuleRepository, c convRepo.ConversationRepository, llm ai.Client) *AskService {
	return &AskService{modules: m, conversations: c, llm: llm}
}

// Ask resolves question against the module's reference text and stores
// the resulting exchange. The only error cases are an unknown module and
// a failed write; resolution itself never fails.
func (s *AskService) Ask(ctx context.Context, moduleID uint, question string) (*entities.Conversation, error) {
	m, err := s.modules.FindByID(moduleID)
	if err != nil {
		return nil, err
	}

	answer := s.llm.AnswerQuestion(ctx, question, m.ContentText, defaultAnswerTokens)

	// An aborted request must not persist a half-resolved answer.
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	cv := &entities.Conversation{ModuleID: moduleID, Question: question, Answer: answer}
	if err := s.conversations.Create(cv); err != nil {
		return nil, err
	}
	return cv, nil
}

// History returns the module's past exchanges, newest first.
func (s *AskService) History(moduleID uint) ([]entities.Conversation, error) {
	if _, err := s.modules.FindByID(moduleID); err != nil {
		return nil, err
	}
	return s.conversations.ListByModule(moduleID)
}
