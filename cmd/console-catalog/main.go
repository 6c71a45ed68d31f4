package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/consoletracker/console-catalog/internal/config"
	applog "github.com/consoletracker/console-catalog/internal/pkg/log"
	"github.com/consoletracker/console-catalog/internal/pkg/version"
	"github.com/consoletracker/console-catalog/internal/service/api"
	"github.com/consoletracker/console-catalog/internal/service/catalogsvc"
	"github.com/consoletracker/console-catalog/internal/service/contract"
)

const banner = `
   ____                      _         ____      _        _
  / ___|___  _ __  ___  ___ | | ___   / ___|__ _| |_ __ _| | ___   __ _
 | |   / _ \| '_ \/ __|/ _ \| |/ _ \ | |   / _' | __/ _' | |/ _ \ / _' |
 | |__| (_) | | | \__ \ (_) | |  __/ | |__| (_| | || (_| | | (_) | (_| |
  \____\___/|_| |_|___/\___/|_|\___|  \____\__,_|\__\__,_|_|\___/ \__, |
                                                                  |___/ %s
--------------------------------------------------------------------------------
`

func main() {
	// Environment overrides may live in a local .env; absence is fine.
	_ = godotenv.Load()

	configFile := flag.String("config", config.DefaultFilename, "path to the configuration file")
	flag.Parse()

	// Config comes first: the log setup depends on it.
	appConfig, err := config.LoadWithFile(*configFile)
	if err != nil {
		// The logger is not up yet.
		fmt.Fprintf(os.Stderr, "[FATAL] failed to load the configuration: %v\n", err)
		os.Exit(1)
	}

	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] failed to initialize the log system: %v\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()

	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", log.Fields{
		"version": buildInfo.String(),
		"config":  *configFile,
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("server initialization starting")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	catalogService := catalogsvc.NewService(appConfig.Catalog)
	apiService := api.NewService(appConfig, catalogService, buildInfo)

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	services := []contract.Service{catalogService, apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", log.Fields{
				"error": err,
			}).Error("service initialization failed")

			cancel()
			serviceStopWG.Wait()

			log.Fatal("exiting: a service failed to initialize")
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("server is up")

	<-termC

	applog.WithComponent("main").Info("shutdown signal received")
	cancel()
	serviceStopWG.Wait()
}
