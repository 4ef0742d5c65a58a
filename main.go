package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	_ "go.uber.org/automaxprocs"

	"github.com/boardcamp/api/internal/config"
	database "github.com/boardcamp/api/internal/database/connection"
	"github.com/boardcamp/api/internal/database/repository"
	"github.com/boardcamp/api/internal/server"
	"github.com/boardcamp/api/internal/usecases/categories"
	"github.com/boardcamp/api/internal/usecases/customers"
	"github.com/boardcamp/api/internal/usecases/games"
	"github.com/boardcamp/api/internal/usecases/rentals"
)

func main() {
	args := os.Args
	lArgs := len(args)
	if lArgs > 2 {
		fmt.Println("USAGE: ./boardcamp <port>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	bindAddr := cfg.Port
	if lArgs == 2 {
		bindAddr = args[1]
	}
	if !strings.HasPrefix(bindAddr, ":") {
		bindAddr = ":" + bindAddr
	}

	dbConn, err := database.NewDBConn(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		panic(err)
	}
	if err := dbConn.Migrate(context.Background()); err != nil {
		panic(err)
	}

	categoriesUsecase := categories.NewUsecase(repository.NewCategories(dbConn))
	gamesUsecase := games.NewUsecase(repository.NewGames(dbConn))
	customersUsecase := customers.NewUsecase(repository.NewCustomers(dbConn))
	rentalsUsecase := rentals.NewUsecase(repository.NewRentals(dbConn))

	s := server.NewServer(categoriesUsecase, gamesUsecase, customersUsecase, rentalsUsecase)

	s.Logger.Fatal(s.Start(bindAddr))
}
