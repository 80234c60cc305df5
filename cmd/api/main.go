package main

import (
	"context"
	"os/signal"
	"syscall"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/logger"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	//.envがあれば読む（無ければ環境変数だけで動く）
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Setup(cfg.GoEnv, cfg.LogLevel)

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Item{},
		&model.Cart{},
		&model.CartEntry{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	itemRepo := infraRepo.NewItemGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//bcrypt（会員登録でハッシュ化）
	hasher := usecase.NewBcryptPasswordHasher(bcrypt.DefaultCost)

	//Validator
	userValidator := validator.NewUserValidator(userRepo)

	//Usecase生成
	userUC := usecase.NewUserUsecase(txManager, userRepo, cartRepo, userValidator, hasher)
	itemUC := usecase.NewItemUsecase(itemRepo)
	cartUC := usecase.NewCartUsecase(txManager)
	orderUC := usecase.NewOrderUsecase(txManager, cfg.ClearCartOnSubmit)

	//Handler生成
	userH := handler.NewUserHandler(userUC)
	itemH := handler.NewItemHandler(itemUC)
	cartH := handler.NewCartHandler(cartUC)
	orderH := handler.NewOrderHandler(orderUC)

	e := server.New(userH, itemH, cartH, orderH)

	addr := ":" + cfg.Port
	log.Info().
		Str("addr", addr).
		Bool("clear_cart_on_submit", cfg.ClearCartOnSubmit).
		Msg("starting api server")

	//SIGINT/SIGTERMでgraceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx, e, addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
