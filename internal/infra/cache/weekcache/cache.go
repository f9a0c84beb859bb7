package weekcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

const (
	keyPrefix  = "deskbooking:bookings"
	versionKey = keyPrefix + ":version"
	// entriesPattern все закэшированные недели всех версий, без ключа версии
	entriesPattern = keyPrefix + ":v[0-9]*"

	purgeBatch = 100
)

// Repository кэширует списки броней недели в Redis.
// Любая успешная запись увеличивает версию, старые ключи перестают читаться и истекают по TTL.
// Ошибки Redis не влияют на результат: чтение идет в хранилище напрямую.
type Repository struct {
	next   BookingRepository
	client *redis.Client
	ttl    time.Duration
	logger Logger
}

// NewRepository оборачивает next кэшем
func NewRepository(next BookingRepository, client *redis.Client, ttl time.Duration, logger Logger) *Repository {
	return &Repository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

type cachedBooking struct {
	DeskID   int     `json:"desk_id"`
	Date     string  `json:"date"`
	BookedBy string  `json:"booked_by"`
	Note     *string `json:"note"`
}

func (r *Repository) Create(ctx context.Context, booking *domain.Booking) error {
	if err := r.next.Create(ctx, booking); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *Repository) DeleteOwned(ctx context.Context, deskID int, date civil.Date, bookedBy string) error {
	if err := r.next.DeleteOwned(ctx, deskID, date, bookedBy); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *Repository) ListByDateRange(ctx context.Context, from, to civil.Date) ([]*domain.Booking, error) {
	version, err := r.client.Get(ctx, versionKey).Int64()
	if err != nil && err != redis.Nil {
		r.logger.Warn("weekcache: get version: %v", err)
		return r.next.ListByDateRange(ctx, from, to)
	}

	key := fmt.Sprintf("%s:v%d:%s:%s", keyPrefix, version, from, to)
	if bookings, ok := r.read(ctx, key); ok {
		return bookings, nil
	}

	bookings, err := r.next.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	r.write(ctx, key, bookings)
	return bookings, nil
}

// Ping проверяет доступность Redis
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Repository) read(ctx context.Context, key string) ([]*domain.Booking, bool) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.Warn("weekcache: get %s: %v", key, err)
		}
		return nil, false
	}

	var cached []cachedBooking
	if err := json.Unmarshal(val, &cached); err != nil {
		r.logger.Warn("weekcache: decode %s: %v", key, err)
		return nil, false
	}

	bookings := make([]*domain.Booking, 0, len(cached))
	for _, c := range cached {
		date, err := civil.ParseDate(c.Date)
		if err != nil {
			r.logger.Warn("weekcache: decode date %q: %v", c.Date, err)
			return nil, false
		}
		bookings = append(bookings, &domain.Booking{
			DeskID:   c.DeskID,
			Date:     date,
			BookedBy: c.BookedBy,
			Note:     c.Note,
		})
	}
	return bookings, true
}

func (r *Repository) write(ctx context.Context, key string, bookings []*domain.Booking) {
	cached := make([]cachedBooking, 0, len(bookings))
	for _, b := range bookings {
		cached = append(cached, cachedBooking{
			DeskID:   b.DeskID,
			Date:     b.Date.String(),
			BookedBy: b.BookedBy,
			Note:     b.Note,
		})
	}

	data, err := json.Marshal(cached)
	if err != nil {
		r.logger.Warn("weekcache: encode %s: %v", key, err)
		return
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.logger.Warn("weekcache: set %s: %v", key, err)
	}
}

// invalidate поднимает версию. Если INCR не прошел, удаляет все закэшированные недели,
// иначе чтение отдавало бы старую неделю до истечения TTL.
func (r *Repository) invalidate(ctx context.Context) {
	err := r.client.Incr(ctx, versionKey).Err()
	if err == nil {
		return
	}
	r.logger.Warn("weekcache: bump version: %v", err)

	if err := r.purge(ctx); err != nil {
		r.logger.Warn("weekcache: purge entries: %v", err)
	}
}

func (r *Repository) purge(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, entriesPattern, purgeBatch).Iterator()
	keys := make([]string, 0, purgeBatch)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) == purgeBatch {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}
