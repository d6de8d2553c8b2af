package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/peterh/liner"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/command"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/config"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/notifier"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/repository"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/seed"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/throttle"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var memoryMode bool
	var supervisorPassword string

	flag.BoolVar(&memoryMode, "memory", false, "run against an in-memory store with seeded sample data")
	flag.StringVar(&supervisorPassword, "supervisor-password", "changeme", "supervisor password for -memory mode")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	var cfg *config.Config
	var store command.Store
	var n notifier.Notifier
	var limiter throttle.Limiter

	if memoryMode {
		cfg = &config.Config{}
		cfg.Email.UserDomain = "uwm.edu"
		cfg.NewAccount.PasswordLength = 12
		cfg.InitialSupervisor.Username = "supervisor"
		cfg.InitialSupervisor.Password = supervisorPassword
		cfg.InitialSupervisor.Name = "Course Supervisor"
		cfg.Seed.Account.Password = supervisorPassword

		memory := repository.NewMemory()
		if err := seed.EnsureSupervisor(cfg, memory); err != nil {
			logger.Error("unable to create initial supervisor", "error", err)
			return
		}
		if err := seed.Baseline(cfg, memory); err != nil {
			logger.Error("unable to seed baseline data", "error", err)
			return
		}

		store = memory
		n = notifier.Discard{}
	} else {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			logger.Error("unable to load config", "error", err)
			return
		}

		dbpool, err := sql.Open("pgx", cfg.Database.DSN)
		if err != nil {
			logger.Error("unable to create database pool", "error", err)
			return
		}
		defer dbpool.Close()

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
		defer cancel()

		if err := dbpool.PingContext(ctx); err != nil {
			logger.Error("unable to connect to database", "error", err)
			return
		}

		conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
		if err != nil {
			logger.Error("unable to connect to rabbitmq", "error", err)
			return
		}
		defer conn.Close()

		ch, err := conn.Channel()
		if err != nil {
			logger.Error("unable to open channel", "error", err)
			return
		}
		defer ch.Close()

		if err := notifier.DeclareQueue(ch); err != nil {
			logger.Error("unable to declare queue", "error", err)
			return
		}

		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       0,
		})

		store = repository.NewRepository(cfg, dbpool)
		n = notifier.NewAMQP(cfg, ch)
		limiter = throttle.NewRedis(cfg, rdb)
	}

	interpreter, err := command.NewInterpreter(cfg, store, n, limiter)
	if err != nil {
		logger.Error("unable to create interpreter", "error", err)
		return
	}

	repl(interpreter)
}

func repl(interpreter *command.Interpreter) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	sess := command.NewSession()

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Println()
				return
			}
			slog.Error("unable to read input", "error", err)
			return
		}

		if input != "" {
			line.AppendHistory(input)
		}

		if response := interpreter.Command(sess, input); response != "" {
			fmt.Println(response)
		}
	}
}
