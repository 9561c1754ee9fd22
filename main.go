package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"casinobot/cmd"
	"casinobot/database"
	"casinobot/domain/games"

	log "github.com/sirupsen/logrus"
)

func main() {
	if len(os.Args) > 1 {
		var err error
		switch os.Args[1] {
		case "migrate":
			err = handleMigrationCommand()
		case "add-balance":
			err = handleAddBalance()
		case "odds":
			err = handleOdds()
		default:
			err = fmt.Errorf("unknown command: %s (expected migrate, add-balance or odds)", os.Args[1])
		}
		if err != nil {
			log.Fatalf("%s error: %v", os.Args[1], err)
		}
		return
	}

	// Normal bot operation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("Received shutdown signal, shutting down gracefully...")
		cancel()
	}()

	if err := cmd.Run(ctx); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func handleMigrationCommand() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: casinobot migrate [up|down|status] [args...]")
	}

	command := os.Args[2]
	switch command {
	case "up":
		return database.MigrateUp()
	case "down":
		steps := "1"
		if len(os.Args) > 3 {
			steps = os.Args[3]
		}
		return database.MigrateDown(steps)
	case "status":
		return database.MigrateStatus()
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
}

func handleAddBalance() error {
	if len(os.Args) < 4 {
		return fmt.Errorf("usage: casinobot add-balance <discord-id> <amount>")
	}
	userID, err := strconv.ParseInt(os.Args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid discord id %q: %w", os.Args[2], err)
	}
	amount, err := strconv.ParseInt(os.Args[3], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", os.Args[3], err)
	}
	return cmd.AddBalance(context.Background(), userID, amount)
}

func handleOdds() error {
	spins, bet := 1_000_000, int64(10)
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil {
			return fmt.Errorf("invalid spin count %q: %w", os.Args[2], err)
		}
		spins = n
	}
	if len(os.Args) > 3 {
		b, err := strconv.ParseInt(os.Args[3], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid bet %q: %w", os.Args[3], err)
		}
		bet = b
	}
	return cmd.PrintOdds(os.Stdout, games.DefaultRandom, spins, bet)
}
