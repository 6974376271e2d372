package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует события записей в Kafka
// Ключом сообщения служит ID мастера, поэтому события одного мастера
// попадают в одну партицию и сохраняют порядок
type Publisher struct {
	writer *kafka.Writer
	log    Logger
}

// NewPublisher создает publisher событий записей
func NewPublisher(brokers []string, topic string, log Logger) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
		log: log,
	}
}

// Close закрывает соединение с Kafka
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// AppointmentCreated публикует событие создания записи
func (p *Publisher) AppointmentCreated(ctx context.Context, appt *domain.Appointment) error {
	return p.publish(ctx, TypeAppointmentCreated, appt)
}

// AppointmentCancelled публикует событие отмены записи
func (p *Publisher) AppointmentCancelled(ctx context.Context, appt *domain.Appointment) error {
	return p.publish(ctx, TypeAppointmentCancelled, appt)
}

// publish сериализует и отправляет событие
func (p *Publisher) publish(ctx context.Context, eventType string, appt *domain.Appointment) error {
	startTime, err := types.NewTimeStringFromMinutes(appt.StartMinute)
	if err != nil {
		return fmt.Errorf("events: invalid start minute %d: %v", appt.StartMinute, err)
	}

	event := AppointmentEvent{
		EventID:         uuid.NewString(),
		Type:            eventType,
		AppointmentID:   appt.ID,
		ProfessionalID:  appt.ProfessionalID,
		ServiceID:       appt.ServiceID,
		Date:            appt.Date.Format(domain.DateFormat),
		StartTime:       startTime.String(),
		DurationMinutes: appt.DurationMinutes,
		OccurredAt:      time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: failed to marshal event: %v", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(appt.ProfessionalID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(eventType)},
			{Key: "event-id", Value: []byte(event.EventID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("events: failed to write message: %v", err)
	}

	p.log.Info("events: published %s for appointment id=%d", eventType, appt.ID)
	return nil
}

// NopPublisher заглушка, используется когда публикация событий отключена
type NopPublisher struct{}

// NewNopPublisher создает publisher-заглушку
func NewNopPublisher() *NopPublisher {
	return &NopPublisher{}
}

func (p *NopPublisher) AppointmentCreated(ctx context.Context, appt *domain.Appointment) error {
	return nil
}

func (p *NopPublisher) AppointmentCancelled(ctx context.Context, appt *domain.Appointment) error {
	return nil
}
