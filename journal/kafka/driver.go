// pixelcycle/journal/kafka/driver.go
package kafka

import (
	"fmt"

	"github.com/IBM/sarama"

	"pixelcycle/journal"
)

/* ────────── public config ────────── */
type Config struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
	Acks    int16    `yaml:"required_acks"` // 0,1,-1
}

// driver publishes each journal line to a Kafka topic through an async
// producer. Delivery is fire-and-forget, same contract as the display tool.
type driver struct {
	cfg Config
	p   sarama.AsyncProducer
}

func (d *driver) Configure(raw any) error {
	cfg, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("kafka-journal: expected Config, got %T", raw)
	}
	if len(cfg.Brokers) == 0 || cfg.Topic == "" {
		return fmt.Errorf("kafka-journal: brokers and topic are required")
	}
	d.cfg = cfg

	sc := sarama.NewConfig()
	sc.Producer.RequiredAcks = sarama.RequiredAcks(cfg.Acks)
	var err error
	d.p, err = sarama.NewAsyncProducer(cfg.Brokers, sc)
	return err
}

func (d *driver) Append(e journal.Entry) error {
	d.p.Input() <- &sarama.ProducerMessage{
		Topic:     d.cfg.Topic,
		Value:     sarama.StringEncoder(e.Line()),
		Timestamp: e.Time,
	}
	return nil
}

func (d *driver) Close() error {
	return d.p.Close()
}

/* ────────── auto-register ────────── */
func init() {
	journal.Register("kafka", func() journal.Adapter { return &driver{} })
}
