package components

import (
	"hotel-booking-api/internal/infra/cache"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/infra/readstore"
	"hotel-booking-api/internal/infra/uow"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	cacheModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	// NewPostgresUoW already returns the shared.UnitOfWork interface.
	uow.NewPostgresUoW,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewHotelReadStore,
			fx.As(new(queries.HotelViewRepo)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserViewRepo)),
		),
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		fx.Annotate(
			NewVoucherCache,
			fx.As(new(queries.ArtifactCache)),
			fx.As(new(commands.VoucherInvalidator)),
		),
		fx.Annotate(
			NewSearchCache,
			fx.As(new(queries.SearchCache)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewVoucherCache(client *redis.Client, cfg config.Config) *cache.VoucherCache {
	return cache.NewVoucherCache(client, cfg.Voucher.CacheTTL)
}

func NewSearchCache(client *redis.Client, cfg config.Config) *cache.SearchCache {
	return cache.NewSearchCache(client, cfg.Search.CacheTTL)
}
