package main

import (
	"fmt"
	"slices"
	"strings"
)

// Team is one of the two fixed participants in a game. Words holds
// every accepted word in speaking order; entries are never removed.
type Team struct {
	Score  int      `json:"score"`
	Words  []string `json:"words"`
	Letter string   `json:"letter"`
}

// GameState is the single source of truth for one room (networked) or
// one terminal session (local). CurrentTurn is always 1 or 2 and is
// the only field deciding whose word will be judged.
type GameState struct {
	Team1       Team `json:"team1"`
	Team2       Team `json:"team2"`
	CurrentTurn int  `json:"currentTurn"`
}

func newGameState() *GameState {
	return &GameState{
		Team1:       Team{Words: []string{}},
		Team2:       Team{Words: []string{}},
		CurrentTurn: 1,
	}
}

// clone returns a deep copy, safe to hand out while the original keeps
// mutating.
func (g *GameState) clone() *GameState {
	c := *g
	c.Team1.Words = slices.Clone(g.Team1.Words)
	c.Team2.Words = slices.Clone(g.Team2.Words)
	return &c
}

// teams returns the speaking team and the other team for a team number.
func (g *GameState) teams(teamNumber int) (speaking, other *Team) {
	if teamNumber == 1 {
		return &g.Team1, &g.Team2
	}
	return &g.Team2, &g.Team1
}

// Outcome classifies the result of judging one spoken word.
type Outcome int

const (
	// WrongTurn means the word came from the team whose turn it is not.
	// A benign race; nothing is mutated and the turn does not switch.
	WrongTurn Outcome = iota
	// InvalidPrefix means the word does not start with the team's letter.
	InvalidPrefix
	// Repeated means the word was already spoken.
	Repeated
	// Accepted means the word scored.
	Accepted
)

func (o Outcome) String() string {
	switch o {
	case WrongTurn:
		return "wrong_turn"
	case InvalidPrefix:
		return "invalid_prefix"
	case Repeated:
		return "repeated"
	case Accepted:
		return "accepted"
	}
	return "unknown"
}

// RepeatScope selects which word lists the repeat check covers. The
// original clients disagreed on this, so it is an explicit knob rather
// than an accident of which variant got ported.
type RepeatScope int

const (
	// RepeatOwnTeam rejects only words already in the speaking team's list.
	RepeatOwnTeam RepeatScope = iota
	// RepeatBothTeams also rejects words the other team has used.
	RepeatBothTeams
)

func parseRepeatScope(s string) (RepeatScope, error) {
	switch s {
	case "own-team":
		return RepeatOwnTeam, nil
	case "both-teams":
		return RepeatBothTeams, nil
	}
	return 0, fmt.Errorf("invalid repeat scope (must be own-team or both-teams): %q", s)
}

// judgeWord is the single authoritative decision procedure, shared by
// the session store and local mode. It mutates g in place for every
// outcome except WrongTurn, and switches the turn unconditionally
// after scoring.
//
// Callers must ensure both teams have a letter set before calling;
// judgeWord assumes that precondition.
func judgeWord(g *GameState, teamNumber int, word string, scope RepeatScope) Outcome {
	if teamNumber != g.CurrentTurn {
		return WrongTurn
	}

	speaking, other := g.teams(teamNumber)

	outcome := Accepted
	switch {
	case !strings.HasPrefix(word, speaking.Letter):
		speaking.Score--
		outcome = InvalidPrefix
	case slices.Contains(speaking.Words, word),
		scope == RepeatBothTeams && slices.Contains(other.Words, word):
		speaking.Score--
		outcome = Repeated
	default:
		speaking.Score++
		speaking.Words = append(speaking.Words, word)
	}

	g.CurrentTurn = 3 - g.CurrentTurn

	return outcome
}

// speakWord wraps judgeWord with the letter-set precondition: no word
// may be judged until both teams have a starting letter. The word must
// already be trimmed; the websocket and terminal input paths both
// normalize before calling.
func speakWord(g *GameState, teamNumber int, word string, scope RepeatScope) (Outcome, error) {
	if g.Team1.Letter == "" || g.Team2.Letter == "" {
		return 0, ErrLetterNotSet
	}

	return judgeWord(g, teamNumber, word, scope), nil
}
