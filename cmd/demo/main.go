package main

import (
	"os"

	"bookstore-royalties/internal/config"
	"bookstore-royalties/pkg/container"
	"bookstore-royalties/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env is optional; system environment wins when it is missing
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", err)
		os.Exit(1)
	}

	c := container.NewContainer(cfg)

	if err := run(c); err != nil {
		logger.Error("demo failed", err)
		os.Exit(1)
	}
}

func run(c *container.Container) error {
	leGuin := c.AuthorService.Create("Le Guin")
	dispossessed := c.BookService.Create("The Dispossessed")

	contract, err := c.AuthorService.SignContract(leGuin, dispossessed, "1974-03-01", 1500)
	if err != nil {
		return err
	}

	log.Info().Stringer("contract", contract).Msg("signed")
	log.Info().
		Stringer("book", dispossessed).
		Interface("authors", names(c.BookService.Authors(dispossessed))).
		Msg("book authors")
	log.Info().
		Stringer("author", leGuin).
		Int("books", len(c.AuthorService.Books(leGuin))).
		Int("total_royalties", c.AuthorService.TotalRoyalties(leGuin)).
		Msg("author totals")

	return nil
}

func names[T interface{ String() string }](items []T) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.String())
	}
	return out
}
