package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/banking-services/internal/banking"
	"github.com/sheikh-saqib/banking-services/internal/config"
	"github.com/sheikh-saqib/banking-services/internal/events/kafka"
	"github.com/sheikh-saqib/banking-services/internal/events/memory"
	interfaces "github.com/sheikh-saqib/banking-services/internal/interfaces"
	"github.com/sheikh-saqib/banking-services/internal/logger"
	"github.com/sheikh-saqib/banking-services/internal/models"
)

func main() {
	id := flag.String("id", "", "Transaction identifier (generated when empty)")
	client := flag.String("client", "", "Client name (required)")
	amountStr := flag.String("amount", "", "Amount to transfer, e.g. 500.00 (required)")
	account := flag.String("account", "", "Destination account, at least 10 digits (required)")
	dateStr := flag.String("date", "", "Transaction date in RFC3339 (defaults to now)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.WithLevel(logger.New(), cfg.LogLevel)
	ctx := logger.WithContext(context.Background(), log)

	if *id == "" {
		*id = uuid.NewString()
	}

	amount, err := decimal.NewFromString(*amountStr)
	if err != nil {
		log.Fatal().Err(err).Str("amount", *amountStr).Msg("could not parse amount")
	}

	var opts []models.Option
	if *dateStr != "" {
		date, err := time.Parse(time.RFC3339, *dateStr)
		if err != nil {
			log.Fatal().Err(err).Str("date", *dateStr).Msg("could not parse date")
		}
		opts = append(opts, models.WithDate(date))
	}

	transfer, err := models.NewTransfer(*id, *client, amount, *account, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid transfer")
	}

	var publisher interfaces.EventPublisher = memory.NewPublisher()
	if len(cfg.KafkaBrokers) > 0 {
		kp := kafka.NewPublisher(cfg.KafkaBrokers)
		defer kp.Close()
		publisher = kp
	}

	processor := banking.NewProcessor(publisher, cfg.KafkaTopic, log)
	if _, err := processor.Process(ctx, transfer); err != nil {
		log.Error().Err(err).Msg("outcome was not published")
	}

	fmt.Println(transfer)
}
