package main

import (
	"fx-data/internal/app"
	"fx-data/internal/dukascopy"
	"fx-data/internal/saver"
)

// App holds application dependencies built by Wire.
type App struct {
	Config  *app.Config
	Fetcher *dukascopy.Fetcher
	Bars    saver.BarSaver
	Ticks   saver.TickSaver
}
