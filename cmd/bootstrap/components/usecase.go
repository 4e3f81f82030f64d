package components

import (
	"mentorsync/internal/pkg/clock"
	"mentorsync/internal/usecase"
	"mentorsync/internal/usecase/commands"
	"mentorsync/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		clock.NewRealClock,
		commands.NewAuthCommands,
		commands.NewTimeslotCommands,
		commands.NewBookingCommands,
		commands.NewSessionCommands,
		commands.NewPositionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewTimeslotQueries,
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewSessionQueries,
		queries.NewPositionQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
