/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	_ "embed"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
)

//go:embed assets/home.html
var homeHTML []byte

//go:embed assets/room.html
var roomHTML []byte

func serveHomePage(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		written, err := w.Write(homeHTML)
		if err != nil {
			errs <- err

			return
		}

		logf(cfg, "SERVE: Home page (%s) to %s", humanReadableSize(int64(written)), realIP(r))
	}
}

// serveRoomPage serves the generic room page for any code; code
// validity is only checked when the page joins over the websocket.
func serveRoomPage(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		securityHeaders(cfg, w)

		written, err := w.Write(roomHTML)
		if err != nil {
			errs <- err

			return
		}

		logf(cfg, "SERVE: Room page for %s (%s) to %s", p.ByName("code"), humanReadableSize(int64(written)), realIP(r))
	}
}
