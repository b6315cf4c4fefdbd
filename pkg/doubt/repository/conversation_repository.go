package repository

import "eduassist/entities"

type ConversationRepository interface {
	Create(cv *entities.Conversation) error
	ListByModule(moduleID uint) ([]entities.Conversation, error)
}
