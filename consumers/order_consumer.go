package consumers

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"bakery-api/config"
	"bakery-api/models"
)

// StartOrderConsumer drains the order queue and the dead-letter queue. This
// service keeps no database, so consumption is limited to logging: the queue
// exists so other processes (kitchen display, bookkeeping) can bind their
// own consumers, and this one keeps the topology observable.
func StartOrderConsumer(ch *amqp.Channel, cfg *config.Config) {
	msgs, err := ch.Consume(
		cfg.OrderQueue,
		"bakery-api", // consumer tag
		false,        // auto-ack
		false,        // exclusive
		false,        // no-local
		false,        // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("Failed to register consumer: %v", err)
	}

	go func() {
		for msg := range msgs {
			processOrderMessage(msg)
		}
	}()

	dlqMsgs, err := ch.Consume(
		cfg.DeadLetterQueue,
		"bakery-api-dlq", // consumer tag
		false,            // auto-ack
		false,            // exclusive
		false,            // no-local
		false,            // no-wait
		nil,
	)
	if err != nil {
		log.Printf("Failed to register DLQ consumer: %v", err)
	}

	go func() {
		for msg := range dlqMsgs {
			processDeadLetterMessage(msg)
		}
	}()
}

func processOrderMessage(msg amqp.Delivery) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic in message processing: %v", r)
		}
	}()

	var event models.OrderEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		log.Printf("Invalid order event: %s", msg.Body)
		err := msg.Nack(false, false)
		if err != nil {
			return
		} // reject without requeue, lands in the DLQ
		return
	}

	switch event.Type {
	case "accepted":
		log.Printf("Order accepted: name=%s mode=%s items=%d total=%.2f",
			event.Name, event.Mode, event.Items, event.Total)
	default:
		log.Printf("Unknown event type: %s", event.Type)
	}

	err := msg.Ack(false)
	if err != nil {
		return
	}
}

func processDeadLetterMessage(msg amqp.Delivery) {
	log.Printf("Received dead letter: %s", msg.Body)
	err := msg.Ack(false)
	if err != nil {
		return
	}
}
