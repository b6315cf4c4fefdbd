package repository

import "eduassist/entities"

type ModuleRepository interface {
	Create(m *entities.Module) error
	List() ([]entities.Module, error)
	FindByID(id uint) (*entities.Module, error)
	// Delete removes the module row and its conversation history.
	Delete(id uint) error
}
