package repositoryImp

import (
	"gorm.io/gorm"

	"eduassist/entities"
	"eduassist/pkg/module/repository"
)

type moduleRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ModuleRepository { return &moduleRepo{db} }

func (r *moduleRepo) Create(m *entities.Module) error { return r.db.Create(m).Error }

func (r *moduleRepo) List() ([]entities.Module, error) {
	var ms []entities.Module
	err := r.db.
		Select("module_id", "module_name", "filename", "source_url", "created_at").
		Order("created_at DESC").
		Find(&ms).Error
	return ms, err
}

func (r *moduleRepo) FindByID(id uint) (*entities.Module, error) {
	var m entities.Module
	if err := r.db.First(&m, "module_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *moduleRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entities.Conversation{}, "module_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Module{}, "module_id = ?", id).Error
	})
}
