package main

import (
	"os"
	"strings"
	"testing"
)

func finishedGame() *GameState {
	g := &GameState{
		Team1:       Team{Letter: "ક", Score: 2, Words: []string{"કમળ", "કલમ"}},
		Team2:       Team{Letter: "ખ", Score: -1, Words: []string{"ખમણ"}},
		CurrentTurn: 2,
	}
	return g
}

func TestRenderTranscript(t *testing.T) {
	transcript := renderTranscript(finishedGame())

	for _, want := range []string{
		"શબ્દ સ્પર્ધા - બોલાયેલા શબ્દો",
		"ટીમ 1 (અક્ષર: ક) | 2 ગુણ",
		"ટીમ 2 (અક્ષર: ખ) | -1 ગુણ",
		"કમળ",
		"કલમ",
		"ખમણ",
		"🏆 ટીમ 1 જીત્યું!",
	} {
		if !strings.Contains(transcript, want) {
			t.Errorf("transcript missing %q:\n%s", want, transcript)
		}
	}
}

func TestRenderTranscriptEmptyGame(t *testing.T) {
	transcript := renderTranscript(newGameState())

	if !strings.Contains(transcript, "કોઈ શબ્દ બોલાયો નથી") {
		t.Errorf("empty team lists need a placeholder:\n%s", transcript)
	}
	if !strings.Contains(transcript, "🤝 મેચ ડ્રો!") {
		t.Errorf("a fresh game is a draw:\n%s", transcript)
	}
	if !strings.Contains(transcript, "(અક્ષર: ?)") {
		t.Errorf("unset letters render as ?:\n%s", transcript)
	}
}

func TestRenderPrintReport(t *testing.T) {
	report, err := renderPrintReport(finishedGame())
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"<table>",
		"<td>ટીમ 1</td><td>2</td>",
		"કમળ, કલમ",
		"🏆 ટીમ 1 જીત્યું!",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestWriteTranscript(t *testing.T) {
	dir := t.TempDir()

	path, err := writeTranscript(dir, finishedGame())
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "કમળ") {
		t.Errorf("written transcript missing accepted word")
	}

	if _, err := writeTranscript("/nonexistent-dir-for-sure", finishedGame()); err == nil {
		t.Error("expected error writing to a missing directory")
	}
}
