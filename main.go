package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"googlemaps.github.io/maps"

	"github.com/caremate/companion-api/alarm"
	"github.com/caremate/companion-api/api"
	"github.com/caremate/companion-api/background"
	"github.com/caremate/companion-api/external/airquality"
	"github.com/caremate/companion-api/external/inference"
	"github.com/caremate/companion-api/external/ipgeo"
	"github.com/caremate/companion-api/geo"
	"github.com/caremate/companion-api/reminder"
	"github.com/caremate/companion-api/schema"
	"github.com/caremate/companion-api/store"
	"github.com/caremate/companion-api/triage"
	"github.com/caremate/companion-api/utils"
)

var (
	server *api.Server
	ormDB  *gorm.DB
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("companion")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())
	schedulerCtx, cancelScheduler := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		cancelScheduler()

		if server != nil {
			log.Info("Shutdown companion api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if ormDB != nil {
			log.Info("Shutting down db store")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// i18n message bundle for localized air quality advice
	utils.InitI18NBundle()
	log.WithField("prefix", "init").Info("Initialized i18n bundle")

	// Init redis
	var conf = &machineryconf.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  "companion_tasks",
		ResultBackend: viper.GetString("redis.conn"),
	}
	machineryServer, err := machinery.NewServer(conf)
	if err != nil {
		log.Panic(err)
	}

	ormDB, err = gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}
	ormDB.AutoMigrate(&schema.TriageRecord{})

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))
	companionStore := store.NewCompanionStore(ormDB)

	// Country resolution chain: IP geolocation first, then reverse
	// geocoding of the configured home coordinates, then the static
	// fallback. Emergency numbers depend on whichever answers first.
	resolvers := []geo.CountryResolver{
		geo.NewIPCountryResolver(ipgeo.New(viper.GetString("ipgeo.endpoint"), httpClient)),
	}
	if mapKey := viper.GetString("map.key"); mapKey != "" {
		mapClient, err := maps.NewClient(maps.WithAPIKey(mapKey))
		if nil != err {
			log.Panicf("create maps client with error: %s", err)
		}
		resolvers = append(resolvers, geo.NewGeocodingCountryResolver(
			mapClient,
			viper.GetFloat64("home.latitude"),
			viper.GetFloat64("home.longitude"),
		))
	}
	resolvers = append(resolvers, geo.NewStaticCountryResolver(viper.GetString("geo.default_country")))
	geo.SetCountryResolver(geo.NewMultipleCountryResolver(resolvers...))

	airQuality := airquality.New(
		viper.GetString("openweather.key"),
		viper.GetString("openweather.endpoint"),
		httpClient,
	)

	triageEngine := triage.NewEngine(inference.New(
		viper.GetString("inference.token"),
		viper.GetString("inference.endpoint"),
		httpClient,
	))

	// Reminder scheduler with the audible alarm and a queue hand-off
	// for out-of-process notification delivery.
	metricScope, metricCloser := tally.NewRootScope(tally.ScopeOptions{
		Prefix: "companion",
	}, time.Second)
	defer metricCloser.Close()

	scheduler := reminder.NewScheduler(
		mongoStore,
		alarm.NewToneSounder(),
		reminder.SystemClock(),
		metricScope,
		viper.GetDuration("reminder.poll_interval"),
		func(r schema.Reminder) {
			if err := background.EnqueueReminderFired(machineryServer, r); nil != err {
				log.WithField("prefix", "reminder").WithError(err).Warn("enqueue reminder notification")
			}
		},
	)
	scheduler.Hydrate(context.Background())
	go scheduler.Run(schedulerCtx)

	// Init http server
	server = api.NewServer(
		companionStore,
		mongoStore,
		scheduler,
		triageEngine,
		airQuality)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
