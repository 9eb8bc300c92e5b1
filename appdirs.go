package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	xappdirs "github.com/chasinglogic/appdirs"
)

const (
	appName     = "edbuddy"
	logFileName = "edbuddy.log"
	dbFileName  = "edbuddy.sqlite"
)

// appDirs represents the app's local directories for storing logs etc.
type appDirs struct {
	data     string
	log      string
	settings string
}

func newAppDirs(fyneApp fyne.App) appDirs {
	ad := xappdirs.New(appName)
	x := appDirs{
		data:     ad.UserData(),
		log:      ad.UserLog(),
		settings: fyneApp.Storage().RootURI().Path(),
	}
	return x
}

func (ad appDirs) deleteAll() error {
	for _, p := range []string{ad.log, ad.data, ad.settings} {
		if err := os.RemoveAll(p); err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", p)
	}
	return nil
}

func (ad appDirs) initLogFile() (string, error) {
	if err := os.MkdirAll(ad.log, os.ModePerm); err != nil {
		return "", err
	}
	return filepath.Join(ad.log, logFileName), nil
}

func (ad appDirs) initDSN() (string, error) {
	if err := os.MkdirAll(ad.data, os.ModePerm); err != nil {
		return "", err
	}
	dsn := "file:" + filepath.Join(ad.data, dbFileName)
	return dsn, nil
}
