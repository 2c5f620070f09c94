package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, notifier ports.Notifier, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDNAServiceCommandHandler() commands.CreateDNAServiceCommandHandler {
	var f commands.ServiceUoWFactory = FuncServiceUoWFactory(func() commands.ServiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDNAServiceCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterIdentityCommandHandler() commands.RegisterIdentityCommandHandler {
	var f commands.IdentityUoWFactory = FuncIdentityUoWFactory(func() commands.IdentityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterIdentityCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	var f commands.IdentityUoWFactory = FuncIdentityUoWFactory(func() commands.IdentityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateChangePasswordCommandHandler() commands.ChangePasswordCommandHandler {
	var f commands.IdentityUoWFactory = FuncIdentityUoWFactory(func() commands.IdentityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangePasswordCommandHandler(f)
}

func (c *CompositionRoot) CreateActivateAccountCommandHandler() commands.ActivateAccountCommandHandler {
	var f commands.IdentityUoWFactory = FuncIdentityUoWFactory(func() commands.IdentityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewActivateAccountCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteReadyOrdersCommandHandler() commands.CompleteReadyOrdersCommandHandler {
	var f commands.SweepUoWFactory = FuncSweepUoWFactory(func() commands.SweepUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteReadyOrdersCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateGetIncompleteOrdersQueryHandler() queries.GetIncompleteOrdersQueryHandler {
	return queries.NewGetIncompleteOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetIdentitiesQueryHandler() queries.GetIdentitiesQueryHandler {
	return queries.NewGetIdentitiesQueryHandler(c.gormDB)
}

// CreateUnitOfWork builds a standalone unit of work, used by the HTTP layer
// to resolve the acting identity outside any use case.
func (c *CompositionRoot) CreateUnitOfWork() ports.UnitOfWork {
	return c.uowFactory.Create()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncServiceUoWFactory func() commands.ServiceUoW

func (f FuncServiceUoWFactory) Create() commands.ServiceUoW {
	return f()
}

type FuncIdentityUoWFactory func() commands.IdentityUoW

func (f FuncIdentityUoWFactory) Create() commands.IdentityUoW {
	return f()
}

type FuncSweepUoWFactory func() commands.SweepUoW

func (f FuncSweepUoWFactory) Create() commands.SweepUoW {
	return f()
}
