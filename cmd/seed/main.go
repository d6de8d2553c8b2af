package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/uwm-cs361-dev/course-staffing/backend/internal/config"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/repository"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/seed"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operation to run (1: insert random accounts, 2: insert baseline data)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open only builds the pool, it does not dial, so ping explicitly
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no operation given")
	case 1:
		if n <= 0 {
			slog.Error("account count must be positive")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			account, err := utils.GenerateRandomAccount(cfg.Seed.Account.Password, cfg.Email.UserDomain)
			if err != nil {
				slog.Error("unable to generate random account", slog.String("error", err.Error()))
				continue
			}
			account.Phone = utils.GenerateRandomPhone()

			if err := repo.CreateAccount(account); err != nil {
				slog.Error("unable to insert account", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("accounts inserted", slog.Int("count", n-cnt))
	case 2:
		if err := seed.Baseline(cfg, repo); err != nil {
			slog.Error("unable to seed baseline data", slog.String("error", err.Error()))
			return
		}
		slog.Info("baseline data inserted")
	default:
		slog.Error("unknown operation")
	}
}
