package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FantomCode25/Quaternary/internal/config"
	"github.com/FantomCode25/Quaternary/internal/handler"
	"github.com/FantomCode25/Quaternary/internal/rabbitmq"
	"github.com/FantomCode25/Quaternary/internal/repository"
	"github.com/FantomCode25/Quaternary/internal/repository/mongorepo"
	"github.com/FantomCode25/Quaternary/internal/repository/redisrepo"
	"github.com/FantomCode25/Quaternary/internal/server"
	"github.com/FantomCode25/Quaternary/internal/service"
	"github.com/FantomCode25/Quaternary/internal/storage"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := loadEnv(); err != nil {
		logger.Sugar().Warnf("no .env file loaded: %s", err.Error())
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Panicf("failed to initialize yaml config: %s", err.Error())
	}

	var (
		mongoRepo *mongorepo.MongoRepository
		store     *mongorepo.Store
	)
	if mongoConfig := mongoConfigFromEnv(); mongoConfig.URI != "" {
		var err error
		store, err = mongorepo.Connect(ctx, mongoConfig)
		if err != nil {
			logger.Sugar().Panicf("failed to connect to mongodb: %s", err.Error())
		}
		mongoRepo = mongorepo.New(store)
		logger.Info("Successfully connected to MongoDB")
	} else {
		mongoRepo = mongorepo.NewMemory()
		logger.Warn("MONGODB_URI is not set, posts are kept in memory")
	}

	var (
		rdb       *redis.Client
		redisRepo *redisrepo.RedisRepository
	)
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisConfig := config.RedisConfig{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		}
		rdb = redis.NewClient(&redis.Options{
			Addr:     redisConfig.Addr,
			Password: redisConfig.Password,
		})
		pong, err := rdb.Ping(ctx).Result()
		if err != nil {
			logger.Sugar().Panicf("failed to ping redis: %s", err.Error())
		}
		logger.Sugar().Infof("Successfully connected to Redis: %s", pong)
		redisRepo = redisrepo.New(rdb)
	}

	var (
		mq        *rabbitmq.MQConn
		publisher service.Publisher
	)
	if connString := os.Getenv("RABBITMQ_CONN_STRING"); connString != "" {
		var err error
		mq, err = rabbitmq.New(connString)
		if err != nil {
			logger.Sugar().Panicf("failed to connect to rabbitmq: %s", err.Error())
		}
		publisher = mq
		logger.Info("Successfully connected to RabbitMQ")
	}

	var uploader service.Uploader
	if bucket := os.Getenv("S3_BUCKET_NAME"); bucket != "" {
		s3Uploader, err := storage.NewS3Uploader(ctx, config.S3Config{
			Region: os.Getenv("AWS_REGION"),
			Bucket: bucket,
		})
		if err != nil {
			logger.Sugar().Panicf("failed to configure s3: %s", err.Error())
		}
		uploader = s3Uploader
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Panic("JWT_SECRET is not set")
	}

	repos := repository.New(mongoRepo, redisRepo)
	services := service.New(logger, repos, publisher, uploader, service.Config{
		ClampLikes:    viper.GetBool("posts.clamp_likes"),
		CacheTTL:      viper.GetDuration("cache.ttl"),
		MaxUploadSize: viper.GetInt64("upload.max_size"),
	})
	handlers := handler.New(services, logger, handler.Config{
		JWTSecret:    []byte(jwtSecret),
		ClientOrigin: viper.GetString("client.origin"),
	})

	srv := server.New(config.ServerConfig{
		Port:           viper.GetString("app.port"),
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 10,
	})
	go func() {
		if err := srv.Run(); err != nil {
			logger.Sugar().Panicf("failed to run http server: %s", err.Error())
		}
	}()

	logger.Info("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shut down http server: %s", err.Error())
	}
	if mq != nil {
		if err := mq.Close(); err != nil {
			logger.Sugar().Errorf("failed to close rabbitmq connection: %s", err.Error())
		}
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Sugar().Errorf("failed to close redis client: %s", err.Error())
		}
	}
	if store != nil {
		if err := store.Close(shutdownCtx); err != nil {
			logger.Sugar().Errorf("failed to disconnect from mongodb: %s", err.Error())
		}
	}
}

func mongoConfigFromEnv() config.MongoConfig {
	return config.MongoConfig{
		URI:      os.Getenv("MONGODB_URI"),
		Database: os.Getenv("MONGODB_DB"),
		Timeout:  viper.GetDuration("mongo.timeout"),
	}
}

func loadEnv() error {
	return godotenv.Load()
}

func initConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}
