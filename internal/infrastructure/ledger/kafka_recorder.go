package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"kasra-bnpl/internal/usecase/interfaces"

	"github.com/IBM/sarama"
)

// KafkaRecorder publishes ledger events to a Kafka topic used as an
// append-only external log. The record id is the topic/partition/offset
// coordinate of the accepted message.

type KafkaRecorder struct {
	producer sarama.SyncProducer
	topic    string
}

var _ interfaces.ILedgerRecorder = (*KafkaRecorder)(nil)

func NewKafkaRecorder(brokers []string, topic string) (*KafkaRecorder, error) {
	if len(brokers) == 0 {
		err := errors.New("kafka brokers list is empty")
		log.Printf("[ledger][kafka] invalid configuration err=%v", err)
		return nil, err
	}
	if topic == "" {
		err := errors.New("kafka topic is empty")
		log.Printf("[ledger][kafka] invalid configuration err=%v", err)
		return nil, err
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		log.Printf("[ledger][kafka] failed to create producer err=%v", err)
		return nil, err
	}

	return &KafkaRecorder{producer: producer, topic: topic}, nil
}

func (r *KafkaRecorder) Record(ctx context.Context, event interfaces.LedgerEvent) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	value, err := json.Marshal(event)
	if err != nil {
		return "", err
	}

	msg := &sarama.ProducerMessage{
		Topic: r.topic,
		Key:   sarama.StringEncoder(event.AgreementID),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("Event-Type"), Value: []byte(event.Type)},
		},
	}

	partition, offset, err := r.producer.SendMessage(msg)
	if err != nil {
		log.Printf("[ledger][kafka] send failed agreement_id=%s err=%v", event.AgreementID, err)
		return "", err
	}

	recordID := fmt.Sprintf("%s/%d/%d", r.topic, partition, offset)
	log.Printf("[ledger][kafka] record success agreement_id=%s record_id=%s", event.AgreementID, recordID)
	return recordID, nil
}

func (r *KafkaRecorder) Close() error {
	log.Printf("[ledger][kafka] closing producer")
	return r.producer.Close()
}
