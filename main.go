// EDBuddy is a companion app for Elite Dangerous commanders.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"fyne.io/fyne/v2/app"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/edbuddy/edbuddy/internal/app/settings"
	"github.com/edbuddy/edbuddy/internal/app/storage"
	"github.com/edbuddy/edbuddy/internal/app/ui"
	"github.com/edbuddy/edbuddy/internal/singleinstance"
)

const (
	appID     = "io.github.edbuddy.edbuddy"
	mutexName = "edbuddy"
)

func main() {
	flag.Parse()
	slog.SetLogLoggerLevel(levelFlag.value)
	fyneApp := app.NewWithID(appID)
	ad := newAppDirs(fyneApp)
	if *showDirsFlag {
		fmt.Printf("Database: %s\n", ad.data)
		fmt.Printf("Logs: %s\n", ad.log)
		fmt.Printf("Settings: %s\n", ad.settings)
		return
	}
	if *uninstallFlag {
		fmt.Print("Are you sure you want to uninstall this app and delete all user files (y/N)?")
		var input string
		fmt.Scanln(&input)
		if strings.ToLower(input) == "y" {
			if err := ad.deleteAll(); err != nil {
				log.Fatal(err)
			}
			fmt.Println("App uninstalled")
		} else {
			fmt.Println("Aborted")
		}
		return
	}

	// ensure single instance
	lock, err := singleinstance.Acquire(mutexName, singleinstance.DefaultTimeout)
	if errors.Is(err, singleinstance.ErrAlreadyRunning) {
		fmt.Println("Another instance of this app is already running")
		os.Exit(1)
	} else if err != nil {
		log.Fatal(err)
	}
	defer lock.Release()

	if *logFileFlag {
		fn, err := ad.initLogFile()
		if err != nil {
			log.Fatal(err)
		}
		log.SetOutput(&lumberjack.Logger{
			Filename:   fn,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
		})
	}
	dsn := *dbFlag
	if dsn == "" {
		dsn, err = ad.initDSN()
		if err != nil {
			log.Fatal(err)
		}
	}
	slog.Info("Starting app", "dsn", dsn)
	dbRW, dbRO, err := storage.InitDB(dsn)
	if err != nil {
		log.Fatalf("Failed to initialize database %s: %s", dsn, err)
	}
	defer dbRW.Close()
	defer dbRO.Close()
	st := storage.New(dbRW, dbRO)
	u := ui.New(ui.Params{
		App:      fyneApp,
		Settings: settings.New(st),
		Storage:  st,
	})
	u.ShowAndRun()
}
