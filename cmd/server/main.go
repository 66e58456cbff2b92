package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/gemarathon/backend/boardsrvc"
	"github.com/gemarathon/backend/conf"
	"github.com/gemarathon/backend/histstore"
	"github.com/gemarathon/backend/http"
	"github.com/gemarathon/backend/s3bucket"
	"github.com/gemarathon/backend/snapcache"
	"github.com/gemarathon/backend/xlsxstore"
)

func main() {
	// the env file is optional in deployed environments
	_ = godotenv.Load()

	cfg, err := conf.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	aliases, err := conf.ReadAliasTable(cfg.AliasTablePath)
	if err != nil {
		slog.Error("failed to read class alias table", "error", err)
		os.Exit(1)
	}

	store := xlsxstore.NewStore(cfg.WorkbookPath, aliases)

	history, err := histstore.NewStore(cfg.HistoryDBPath)
	if err != nil {
		slog.Error("failed to open history store", "error", err)
		os.Exit(1)
	}
	defer history.Close()

	var cache snapcache.Cache
	if cfg.RedisAddr != "" {
		redisCache, err := snapcache.NewRedis(cfg.RedisAddr)
		if err != nil {
			slog.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		cache = redisCache
	}

	boardSrvc := boardsrvc.New(store, history, cache)

	if cfg.S3Bucket != "" {
		bucket, err := s3bucket.NewS3Bucket(cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			slog.Error("failed to set up s3 backups", "error", err)
			os.Exit(1)
		}
		boardSrvc.WithBackup(bucket, cfg.WorkbookPath)
	}

	boardSrvc.StartRefresher(context.Background(), cfg.RefreshInterval)

	httpServer := http.NewHttpServer(
		boardSrvc,
		[]byte(cfg.JwtKey),
		cfg.AdminPasswordHash,
		cfg.LockFilePath,
	)

	log.Printf("Starting server on %s", cfg.HTTPAddress)
	err = httpServer.Start(cfg.HTTPAddress)
	log.Printf("Server stopped with error: %v", err)
}
