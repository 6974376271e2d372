package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// SlotsCache кэш ответов о доступных слотах
//
// Списки слотов по своей природе рекомендательные (авторитетная проверка
// выполняется только при бронировании), поэтому короткое кэширование
// безопасно. Любая запись или мутация расписания инвалидирует день
type SlotsCache struct {
	client *redis.Client
	ttl    time.Duration
	log    Logger
}

// NewSlotsCache создает кэш слотов поверх Redis
func NewSlotsCache(client *redis.Client, ttl time.Duration, log Logger) *SlotsCache {
	return &SlotsCache{client: client, ttl: ttl, log: log}
}

// slotsKey ключ кэша для конкретного запроса слотов
func slotsKey(professionalID, serviceID int64, date time.Time, step int) string {
	return fmt.Sprintf("agenda:slots:%d:%s:%d:%d", professionalID, date.Format(domain.DateFormat), serviceID, step)
}

// dayPattern шаблон всех ключей слотов мастера на дату
func dayPattern(professionalID int64, date time.Time) string {
	return fmt.Sprintf("agenda:slots:%d:%s:*", professionalID, date.Format(domain.DateFormat))
}

// professionalPattern шаблон всех ключей слотов мастера
func professionalPattern(professionalID int64) string {
	return fmt.Sprintf("agenda:slots:%d:*", professionalID)
}

// Get читает закэшированный список слотов
// Возвращает false при промахе или любой ошибке - кэш строго best-effort
func (c *SlotsCache) Get(ctx context.Context, professionalID, serviceID int64, date time.Time, step int, dest interface{}) bool {
	payload, err := c.client.Get(ctx, slotsKey(professionalID, serviceID, date, step)).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		c.log.Warn("cache: get failed: %v", err)
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		c.log.Warn("cache: unmarshal failed: %v", err)
		return false
	}
	return true
}

// Set сохраняет список слотов с коротким TTL
func (c *SlotsCache) Set(ctx context.Context, professionalID, serviceID int64, date time.Time, step int, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("cache: marshal failed: %v", err)
		return
	}
	if err := c.client.Set(ctx, slotsKey(professionalID, serviceID, date, step), payload, c.ttl).Err(); err != nil {
		c.log.Warn("cache: set failed: %v", err)
	}
}

// InvalidateDay удаляет все закэшированные слоты мастера на дату
// Вызывается после создания или отмены записи
func (c *SlotsCache) InvalidateDay(ctx context.Context, professionalID int64, date time.Time) {
	c.deleteByPattern(ctx, dayPattern(professionalID, date))
}

// InvalidateProfessional удаляет все закэшированные слоты мастера
// Вызывается после мутации расписания (окна, блокировки)
func (c *SlotsCache) InvalidateProfessional(ctx context.Context, professionalID int64) {
	c.deleteByPattern(ctx, professionalPattern(professionalID))
}

// deleteByPattern удаляет ключи по шаблону через SCAN
func (c *SlotsCache) deleteByPattern(ctx context.Context, pattern string) {
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warn("cache: delete %s failed: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Warn("cache: scan %s failed: %v", pattern, err)
	}
}

// NopSlotsCache заглушка, используется когда кэширование отключено
type NopSlotsCache struct{}

// NewNopSlotsCache создает кэш-заглушку
func NewNopSlotsCache() *NopSlotsCache {
	return &NopSlotsCache{}
}

func (c *NopSlotsCache) Get(ctx context.Context, professionalID, serviceID int64, date time.Time, step int, dest interface{}) bool {
	return false
}

func (c *NopSlotsCache) Set(ctx context.Context, professionalID, serviceID int64, date time.Time, step int, value interface{}) {
}

func (c *NopSlotsCache) InvalidateDay(ctx context.Context, professionalID int64, date time.Time) {}

func (c *NopSlotsCache) InvalidateProfessional(ctx context.Context, professionalID int64) {}
