package components

import (
	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra/welcome"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	booking.NewFactory,
	fx.Annotate(
		NewWelcomeClient,
		fx.As(new(welcome.MessageProvider)),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewHotelQueries,
		queries.NewCouponQueries,
		queries.NewQuoteQueries,
		queries.NewBookingQueries,
		NewVoucherQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewHotelCommands,
	),
)

func NewWelcomeClient(cfg config.Config) *welcome.Client {
	return welcome.NewClient(cfg.Welcome)
}
