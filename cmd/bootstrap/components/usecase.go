package components

import (
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewTxBeginner,
		usecase.NewUserUseCase,
		usecase.NewItemUseCase,
		usecase.NewRequestUseCase,
		usecase.NewBookingUseCase,
	),
)

func NewTxBeginner(pool *pgxpool.Pool) usecase.TxBeginner {
	return pool
}
