package container

import (
	"bookstore-royalties/internal/config"
	authorModel "bookstore-royalties/internal/domains/author/model"
	authorService "bookstore-royalties/internal/domains/author/service"
	bookModel "bookstore-royalties/internal/domains/book/model"
	bookService "bookstore-royalties/internal/domains/book/service"
	contractModel "bookstore-royalties/internal/domains/contract/model"
	contractService "bookstore-royalties/internal/domains/contract/service"
	"bookstore-royalties/pkg/logger"
)

// Container is the root of the dependency graph. It owns the three
// registries, so every container is an isolated ledger.
type Container struct {
	Config *config.Config

	// Registries, the single source of truth for every entity
	Authors   *authorModel.Registry
	Books     *bookModel.Registry
	Contracts *contractModel.Registry

	AuthorService   authorService.ServiceInterface
	BookService     bookService.ServiceInterface
	ContractService contractService.ServiceInterface
}

// NewContainer builds the registries and the services on top of them.
// cfg may be nil; logging is left as it is in that case.
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}

	if cfg != nil {
		logger.Init(cfg.App.Environment, cfg.Log.Level)
	}

	c.Authors = authorModel.NewRegistry()
	c.Books = bookModel.NewRegistry()
	c.Contracts = contractModel.NewRegistry()

	c.AuthorService = authorService.NewAuthorService(c.Authors, c.Contracts)
	c.BookService = bookService.NewBookService(c.Books, c.Contracts)
	c.ContractService = contractService.NewContractService(c.Contracts)

	logger.Debug("container initialized")

	return c
}
