// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/prodcon/background"
	"github.com/bitmark-inc/prodcon/handler"
	"github.com/bitmark-inc/prodcon/node"
	"github.com/bitmark-inc/prodcon/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const shutdownTimeout = 5 * time.Second

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	if len(options["help"]) > 0 {
		fmt.Printf("usage: %s [--help] [--version] [--quiet] --config-file=FILE\n", program)
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Infof("family: %s  version: %s", theConfiguration.Family.Name, theConfiguration.Family.Version)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	registry := prometheus.NewRegistry()

	h := handler.New(theConfiguration.Family, logger.New("handler"))
	theNode, err := node.New(logger.New("node"), theConfiguration.QueueSize, theConfiguration.statusExpiry(), registry, h)
	if nil != err {
		log.Criticalf("node initialise error: %s", err)
		exitwithstatus.Message("node initialise error: %s", err)
	}

	processes := background.Start(background.Processes{theNode}, nil)
	defer processes.Stop()

	server := node.NewServer(theNode, logger.New("rest"), theConfiguration.RateLimit, registry)
	router := server.Router()

	servers := make([]*http.Server, 0, len(theConfiguration.Listen))
	for _, listen := range theConfiguration.Listen {
		s := &http.Server{
			Addr:    listen,
			Handler: router,
		}
		servers = append(servers, s)

		log.Infof("listen on: %s", listen)
		go func(s *http.Server) {
			err := s.ListenAndServe()
			if nil != err && http.ErrServerClosed != err {
				log.Criticalf("listen: %s  error: %s", s.Addr, err)
				exitwithstatus.Message("listen: %s  error: %s", s.Addr, err)
			}
		}(s)
	}

	// rate limit follows the configuration file
	watcher, err := newFileWatcher(configurationFile, logger.New(fileWatcherLoggerPrefix))
	if nil == err {
		err = watcher.Start()
	}
	if nil != err {
		log.Warnf("configuration reload disabled: %s", err)
	} else {
		defer watcher.Close()
		go reloader(log, configurationFile, watcher, server)
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, s := range servers {
		if err := s.Shutdown(ctx); nil != err {
			log.Errorf("shutdown: %s  error: %s", s.Addr, err)
		}
	}
}

// re-read the configuration file on change and apply the parts that
// can change at run time
func reloader(log *logger.L, configurationFile string, watcher *FileWatcher, server *node.Server) {
	for {
		select {
		case <-watcher.change:
			limit, err := readRateLimit(configurationFile)
			if nil != err {
				log.Errorf("configuration reload error: %s", err)
				continue
			}
			server.SetRateLimit(limit)

		case <-watcher.remove:
			log.Warn("configuration file removed, keeping current settings")
		}
	}
}

// only the rate limit is taken from a changed file
func readRateLimit(configurationFile string) (node.RateLimit, error) {
	c, err := getConfiguration(configurationFile)
	if nil != err {
		return node.RateLimit{}, err
	}
	return c.RateLimit, nil
}
