package banking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	interfaces "github.com/sheikh-saqib/banking-services/internal/interfaces"
	"github.com/sheikh-saqib/banking-services/internal/logger"
	"github.com/sheikh-saqib/banking-services/internal/models"
	"github.com/sheikh-saqib/banking-services/internal/models/events"
)

// Processor runs the business rule of a bank service and announces the outcome.
type Processor struct {
	publisher interfaces.EventPublisher // where outcome events go, Kafka or in-memory
	topic     string
	log       zerolog.Logger
	now       func() time.Time
}

// NewProcessor creates a Processor publishing to topic.
func NewProcessor(publisher interfaces.EventPublisher, topic string, log zerolog.Logger) *Processor {
	return &Processor{
		publisher: publisher,
		topic:     topic,
		log:       log,
		now:       time.Now,
	}
}

// Process calls svc.ProcessTransaction and publishes a TransactionProcessed
// event. A logger carried by ctx takes precedence over the Processor's own.
//
// The boolean is the business outcome; a limit rejection is not an
// error. An error means only that the event could not be published, the
// status change on svc has already happened.
func (p *Processor) Process(ctx context.Context, svc models.BankService) (bool, error) {
	ok := svc.ProcessTransaction()
	cost := svc.CalculateCost()

	log := logger.WithFields(logger.FromContextOr(ctx, p.log), map[string]interface{}{
		"transaction_id": svc.TransactionID(),
		"service_type":   string(svc.ServiceType()),
		"amount":         svc.Amount().StringFixed(2),
		"cost":           cost.StringFixed(2),
		"status":         string(svc.Status()),
	})

	if ok {
		log.Info().Msg("transaction completed")
	} else {
		log.Warn().Msg("transaction cancelled by business rule")
	}

	event := events.TransactionProcessed{
		EventID:       uuid.NewString(),
		TransactionID: svc.TransactionID(),
		ServiceType:   string(svc.ServiceType()),
		Client:        svc.Client(),
		Amount:        svc.Amount(),
		Cost:          cost,
		Status:        string(svc.Status()),
		Succeeded:     ok,
		OccurredAt:    p.now().UTC(),
	}

	if err := p.publisher.Publish(ctx, p.topic, event.TransactionID, event); err != nil {
		log.Error().Err(err).Msg("failed to publish outcome event")
		return ok, fmt.Errorf("publish outcome of %s: %w", event.TransactionID, err)
	}
	return ok, nil
}
