package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Local mode: the same rules engine as the relay server, driven from a
// single terminal. Teams share one keyboard and alternate turns; an
// empty line ends the game and writes the transcript.

// captureWord issues one prompt and blocks for exactly one line: the
// local stand-in for a single speech-capture request, resolving with a
// word, an error, or cancellation (EOF).
func captureWord(r *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)

	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func captureLetter(r *bufio.Reader, out io.Writer, teamNumber int) (string, error) {
	for {
		letter, err := captureWord(r, out, fmt.Sprintf("ટીમ %d અક્ષર: ", teamNumber))
		if err != nil {
			return "", err
		}
		if letter != "" {
			return letter, nil
		}
	}
}

func RunLocal(cfg *Config, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	g := newGameState()

	fmt.Fprintln(out, "શબ્દ સ્પર્ધા | wordcompetition v"+releaseVersion)
	fmt.Fprintln(out, "(ખાલી લીટી રમત સમાપ્ત કરે છે; \"score\" ગુણ બતાવે છે; \"state\" બોલાયેલા શબ્દો બતાવે છે)")

	letter1, err := captureLetter(reader, out, 1)
	if err != nil {
		return err
	}
	letter2, err := captureLetter(reader, out, 2)
	if err != nil {
		return err
	}

	g.Team1.Letter = letter1
	g.Team2.Letter = letter2

	for {
		speaking, _ := g.teams(g.CurrentTurn)
		letter := speaking.Letter

		word, err := captureWord(reader, out, fmt.Sprintf("ટીમ %d (%s): ", g.CurrentTurn, letter))
		if err != nil || word == "" {
			break
		}

		if word == "score" {
			fmt.Fprintf(out, "ટીમ 1: %d | ટીમ 2: %d\n", g.Team1.Score, g.Team2.Score)
			continue
		}

		if word == "state" {
			fmt.Fprint(out, renderTranscript(g))
			continue
		}

		outcome, err := speakWord(g, g.CurrentTurn, word, cfg.scope)
		if err != nil {
			return err
		}

		message, _ := outcomeMessage(outcome, word, letter)
		fmt.Fprintln(out, message)
	}

	fmt.Fprintln(out, winnerText(g))
	fmt.Fprint(out, renderTranscript(g))

	path, err := writeTranscript(cfg.transcriptDir, g)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Transcript: %s\n", path)

	return nil
}
