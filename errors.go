package main

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

// ErrRoomNotFound is returned when a room identifier does not map to a
// live room. Surfaced to the requesting client only; no room state is
// touched.
var ErrRoomNotFound = errors.New("room not found")

// ErrLetterNotSet is returned when a word arrives before both teams
// have a starting letter. The judge is never invoked in that case.
var ErrLetterNotSet = errors.New("letter not set for both teams")

func logf(cfg *Config, format string, args ...any) {
	if !cfg.verbose {
		return
	}

	log.Printf("%s | "+format, append([]any{time.Now().Format(logDate)}, args...)...)
}

func newPage(title, body string) string {
	var htmlBody strings.Builder

	htmlBody.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
	htmlBody.WriteString(`<style>`)
	htmlBody.WriteString(`html,body,a{display:block;height:100%;width:100%;text-decoration:none;color:inherit;cursor:auto;}</style>`)
	htmlBody.WriteString(fmt.Sprintf("<title>%s</title></head>", title))
	htmlBody.WriteString(fmt.Sprintf("<body><a href=\"/\">%s</a></body></html>", body))

	return htmlBody.String()
}
