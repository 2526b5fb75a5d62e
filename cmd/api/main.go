package main

import (
	"os"

	"catalog/internal/config"
	"catalog/internal/domain/model"
	"catalog/internal/handler"
	"catalog/internal/infra/db"
	infraRepo "catalog/internal/infra/repository"
	"catalog/internal/server"
	"catalog/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	//.env（無ければ環境変数だけで動く）
	_ = godotenv.Load()

	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}

	//中間テーブルはIDを持つ独自モデルで張る
	if err := gormDB.SetupJoinTable(&model.Product{}, "Tags", &model.ProductTag{}); err != nil {
		log.Fatal().Err(err).Msg("setup join table failed")
	}
	if err := gormDB.AutoMigrate(
		&model.Category{},
		&model.Tag{},
		&model.Product{},
	); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	//Repository（GORM実装）生成
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	tagRepo := infraRepo.NewTagGormRepository(gormDB)
	productTagRepo := infraRepo.NewProductTagGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	categoryUC := usecase.NewCategoryUsecase(categoryRepo, txm)
	productUC := usecase.NewProductUsecase(productRepo, productTagRepo, txm, log)
	tagUC := usecase.NewTagUsecase(tagRepo)

	//Handler生成
	categoryH := handler.NewCategoryHandler(categoryUC)
	productH := handler.NewProductHandler(productUC)
	tagH := handler.NewTagHandler(tagUC)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	log.Info().Str("addr", addr).Msg("catalog api starting")
	if err := server.Start(addr, log, categoryH, productH, tagH); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
