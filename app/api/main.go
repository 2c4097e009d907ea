package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/note-keeper/app/api/docs"
	"github.com/ribgsilva/note-keeper/app/api/handlers"
	"github.com/ribgsilva/note-keeper/business/v1/note"
	"github.com/ribgsilva/note-keeper/business/v1/todo"
	notestore "github.com/ribgsilva/note-keeper/persistence/v1/note"
	"github.com/ribgsilva/note-keeper/persistence/v1/schema"
	"github.com/ribgsilva/note-keeper/platform/env"
	"github.com/ribgsilva/note-keeper/platform/logger"
	"github.com/ribgsilva/note-keeper/platform/postgrest"
	"github.com/ribgsilva/note-keeper/sys"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/gin-swagger/swaggerFiles"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"gocloud.dev/pubsub/awssnssqs"

	_ "github.com/go-sql-driver/mysql"
)

// @title Note API
// @version 1.0
// @description Service to keep notes, with pin, color, archive and trash.
// @contact.name Gabriel Ribeiro Silva
func main() {
	log, err := logger.New("Notes-API")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer func(log *zap.SugaredLogger) {
		_ = log.Sync()
	}(log)

	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =======================================================================================================
	// Setup max procs
	if _, err := maxprocs.Set(); err != nil {
		return fmt.Errorf("maxprocs: %w", err)
	}
	log.Infow("startup", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	// =======================================================================================================
	// Setup configs
	sys.Configs.Http.Port = env.OrDefault(log, "HTTP_PORT", "8080")
	sys.Configs.Http.ReadTimeout = env.DurationDefault(log, "HTTP_READ_TIMEOUT", "5s")
	sys.Configs.Http.IdleTimeout = env.DurationDefault(log, "HTTP_IDLE_TIMEOUT", "120s")
	sys.Configs.Http.WriteTimeout = env.DurationDefault(log, "HTTP_WRITE_TIMEOUT", "10s")
	sys.Configs.Http.ShutdownTimeout = env.DurationDefault(log, "HTTP_SHUTDOWN_TIMEOUT", "60s")
	sys.Configs.Swagger.Protocol = env.OrDefault(log, "SWAGGER_PROTOCOL", "http")
	sys.Configs.Swagger.Host = env.OrDefault(log, "SWAGGER_HOST", "localhost:"+sys.Configs.Http.Port)
	sys.Configs.Storage.Driver = env.OrDefault(log, "STORAGE_DRIVER", "redis")
	sys.Configs.Storage.FilePath = env.OrDefault(log, "STORAGE_FILE_PATH", "data/"+note.SlotKey+".json")
	sys.Configs.Storage.Key = env.OrDefault(log, "STORAGE_KEY", note.SlotKey)
	sys.Configs.Storage.Watch = env.BoolDefault(log, "STORAGE_WATCH", "t")
	sys.Configs.Cache.ConnectionURL = env.OrDefault(log, "CACHE_CONNECTION_URL", "localhost:6379")
	sys.Configs.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	sys.Configs.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@localhost:3306/note?parseTime=true")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Remote.Driver = env.OrDefault(log, "REMOTE_DRIVER", "none")
	sys.Configs.Remote.URL = env.OrDefault(log, "REMOTE_URL", "")
	sys.Configs.Remote.APIKey = env.OrDefault(log, "REMOTE_API_KEY", "")
	sys.Configs.Remote.Table = env.OrDefault(log, "REMOTE_TABLE", "todo")
	sys.Configs.Remote.Timeout = env.DurationDefault(log, "REMOTE_TIMEOUT", "10s")
	sys.Configs.Remote.Buffer = env.IntDefault(log, "REMOTE_RESULT_BUFFER", "64")
	sys.Configs.Messaging.TopicName = env.OrDefault(log, "MESSAGING_TOPIC_NAME", "")
	sys.Configs.Messaging.ShutdownTimeout = env.DurationDefault(log, "MESSAGING_SHUTDOWN_TIMEOUT", "10s")
	sys.Configs.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", "notes-api")
	sys.Configs.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	sys.Configs.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	sys.Configs.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	sys.Configs.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")

	// =======================================================================================================
	// Setup static resources

	// logger
	sys.R.Log = log

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// note slot
	var slot note.Slot
	var fileSlot *notestore.FileSlot
	switch sys.Configs.Storage.Driver {
	case "redis":
		// doing in a func, so I can use defer to cancel the contexts
		var rdb *redis.Client
		if err := func() error {
			rdb = redis.NewClient(&redis.Options{
				Addr:     sys.Configs.Cache.ConnectionURL,
				Username: sys.Configs.Cache.User,
				Password: sys.Configs.Cache.Pass,
			})
			rdsCtx, rdsCancel := context.WithTimeout(context.Background(), sys.Configs.Cache.PingTimeout)
			defer rdsCancel()
			if err := rdb.Ping(rdsCtx).Err(); err != nil {
				return fmt.Errorf("could not connect to redis: %w", err)
			}
			return nil
		}(); err != nil {
			return err
		}
		defer func() {
			_ = rdb.Close()
		}()
		sys.R.Cache = rdb
		slot = notestore.NewRedisSlot(rdb, sys.Configs.Storage.Key, sys.Configs.Cache.OperationTimeout)
	case "file":
		fileSlot = notestore.NewFileSlot(sys.Configs.Storage.FilePath)
		slot = fileSlot
	default:
		return fmt.Errorf("unknown storage driver %q", sys.Configs.Storage.Driver)
	}

	// remote table
	var table todo.Table
	switch sys.Configs.Remote.Driver {
	case "none":
	case "rest":
		table = todo.NewRESTTable(postgrest.New(postgrest.Config{
			BaseURL: sys.Configs.Remote.URL,
			APIKey:  sys.Configs.Remote.APIKey,
			Timeout: sys.Configs.Remote.Timeout,
		}), sys.Configs.Remote.Table)
	case "sql", "pubsub":
		var db *sql.DB
		if err := func() error {
			mysqlDb, err := sql.Open("mysql", sys.Configs.Database.ConnectionURL)
			if err != nil {
				return fmt.Errorf("error to connect to database: %w", err)
			}
			dbCtx, dbCancel := context.WithTimeout(context.Background(), sys.Configs.Database.PingTimeout)
			defer dbCancel()
			if err := mysqlDb.PingContext(dbCtx); err != nil {
				return fmt.Errorf("could not connect to database: %w", err)
			}
			db = mysqlDb
			return nil
		}(); err != nil {
			return err
		}
		defer func() {
			_ = db.Close()
		}()
		sys.R.Database = db
		if err := schema.Create(ctx); err != nil {
			return err
		}
		table = todo.SQLTable{}

		if sys.Configs.Remote.Driver == "pubsub" {
			if sys.Configs.Messaging.TopicName == "" {
				return fmt.Errorf("MESSAGING_TOPIC_NAME is required by the pubsub remote driver")
			}
			cfg, err := config.LoadDefaultConfig(ctx)
			if err != nil {
				return err
			}
			topic := awssnssqs.OpenSQSTopicV2(ctx, sqs.NewFromConfig(cfg), sys.Configs.Messaging.TopicName, nil)
			defer func() {
				stdCtx, stdCancel := context.WithTimeout(context.Background(), sys.Configs.Messaging.ShutdownTimeout)
				defer stdCancel()
				if err := topic.Shutdown(stdCtx); err != nil {
					log.Errorf("could not stop topic gracefully: %s", err)
				}
			}()
			table = todo.NewPublisher(topic, table)
		}
	default:
		return fmt.Errorf("unknown remote driver %q", sys.Configs.Remote.Driver)
	}

	// note store
	var opts []note.Option
	if table != nil {
		mirror := note.NewMirror(log, table, sys.Configs.Remote.Timeout, sys.Configs.Remote.Buffer)
		defer mirror.Close()
		go func() {
			for r := range mirror.Results() {
				if r.Err == nil {
					log.Debugw("note mirrored", "title", r.Title)
				}
			}
		}()
		opts = append(opts, note.WithCreations(mirror))
	}
	store := note.NewStore(ctx, log, slot, opts...)
	log.Infow("startup", "notes", len(store.Notes()), "storage", sys.Configs.Storage.Driver, "remote", sys.Configs.Remote.Driver)

	if fileSlot != nil && sys.Configs.Storage.Watch {
		if err := fileSlot.Watch(ctx, log, func() {
			_ = store.Refresh(ctx)
		}); err != nil {
			return err
		}
	}

	// =======================================================================================================
	// NR

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(sys.Configs.NewRelic.AppName),
		newrelic.ConfigLicense(sys.Configs.NewRelic.Licence),
		newrelic.ConfigEnabled(sys.Configs.NewRelic.Enabled),
	)
	if err != nil {
		return err
	}
	if sys.Configs.NewRelic.Enabled {
		if err := nrApp.WaitForConnection(sys.Configs.NewRelic.ConnectionTimeout); err != nil {
			return err
		}
	}
	defer nrApp.Shutdown(sys.Configs.NewRelic.ShutdownTimeout)

	// =======================================================================================================
	// Router configuration

	router := gin.New()
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/v1/healthcheck"},
	}), gin.Recovery(), nrgin.Middleware(nrApp))

	handlers.MapDefaults(router)
	handlers.MapApi(router, store, table)

	docs.SwaggerInfo.Host = sys.Configs.Swagger.Host
	url := ginSwagger.URL(fmt.Sprintf("%s://%s/swagger/doc.json", sys.Configs.Swagger.Protocol, sys.Configs.Swagger.Host))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url))

	// =======================================================================================================
	// App start and shutdown

	svr := &http.Server{
		Addr:         fmt.Sprintf(":%s", sys.Configs.Http.Port),
		Handler:      router,
		ReadTimeout:  sys.Configs.Http.ReadTimeout,
		WriteTimeout: sys.Configs.Http.WriteTimeout,
		IdleTimeout:  sys.Configs.Http.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("started http server")
		serverErrors <- svr.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), sys.Configs.Http.ShutdownTimeout)
		defer cancel()

		if err := svr.Shutdown(ctx); err != nil {
			_ = svr.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}
