package repositoryImp

import (
	"gorm.io/gorm"

	"eduassist/entities"
	"eduassist/pkg/doubt/repository"
)

type convRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ConversationRepository { return &convRepo{db} }

func (r *convRepo) Create(cv *entities.Conversation) error { return r.db.Create(cv).Error }

func (r *convRepo) ListByModule(moduleID uint) ([]entities.Conversation, error) {
	var cs []entities.Conversation
	err := r.db.Where("module_id = ?", moduleID).Order("created_at DESC").Find(&cs).Error
	return cs, err
}
