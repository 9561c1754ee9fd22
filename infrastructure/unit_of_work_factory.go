package infrastructure

import (
	"casinobot/database"
	"casinobot/domain/interfaces"
	"casinobot/repository"
)

// UnitOfWorkFactory creates units of work whose events are released only on commit
type UnitOfWorkFactory struct {
	repoFactory interface {
		CreateWithPublisher(transactionalPublisher interfaces.TransactionalEventPublisher) interfaces.UnitOfWork
	}
	eventPublisher interfaces.EventPublisher
}

// NewUnitOfWorkFactory creates a new UnitOfWorkFactory
func NewUnitOfWorkFactory(db *database.DB, eventPublisher interfaces.EventPublisher) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		repoFactory:    repository.NewUnitOfWorkFactory(db),
		eventPublisher: eventPublisher,
	}
}

// Create returns a fresh unit of work with its own pending event queue
func (f *UnitOfWorkFactory) Create() interfaces.UnitOfWork {
	return f.repoFactory.CreateWithPublisher(NewTransactionalPublisher(f.eventPublisher))
}
