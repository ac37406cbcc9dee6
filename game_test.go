package main

import (
	"slices"
	"testing"
)

func gujaratiFixture() *GameState {
	return &GameState{
		Team1:       Team{Letter: "ક", Words: []string{}},
		Team2:       Team{Letter: "ખ", Words: []string{}},
		CurrentTurn: 1,
	}
}

func TestJudgeWord(t *testing.T) {
	tests := []struct {
		name        string
		state       *GameState
		teamNumber  int
		word        string
		scope       RepeatScope
		expected    Outcome
		wantScore1  int
		wantScore2  int
		wantWords1  []string
		wantWords2  []string
		wantTurn    int
	}{
		{
			name:       "Accepted first word",
			state:      gujaratiFixture(),
			teamNumber: 1,
			word:       "કમળ",
			expected:   Accepted,
			wantScore1: 1,
			wantWords1: []string{"કમળ"},
			wantWords2: []string{},
			wantTurn:   2,
		},
		{
			name: "InvalidPrefix against own letter",
			state: &GameState{
				Team1:       Team{Letter: "ક", Score: 1, Words: []string{"કમળ"}},
				Team2:       Team{Letter: "ખ", Words: []string{}},
				CurrentTurn: 2,
			},
			teamNumber: 2,
			word:       "કમળ",
			expected:   InvalidPrefix,
			wantScore1: 1,
			wantScore2: -1,
			wantWords1: []string{"કમળ"},
			wantWords2: []string{},
			wantTurn:   1,
		},
		{
			name: "Repeated within own list",
			state: &GameState{
				Team1:       Team{Letter: "ક", Score: 1, Words: []string{"કમળ"}},
				Team2:       Team{Letter: "ખ", Words: []string{}},
				CurrentTurn: 1,
			},
			teamNumber: 1,
			word:       "કમળ",
			expected:   Repeated,
			wantScore1: 0,
			wantWords1: []string{"કમળ"},
			wantWords2: []string{},
			wantTurn:   2,
		},
		{
			name: "WrongTurn leaves state untouched",
			state: &GameState{
				Team1:       Team{Letter: "ક", Words: []string{}},
				Team2:       Team{Letter: "ગ", Words: []string{}},
				CurrentTurn: 2,
			},
			teamNumber: 1,
			word:       "ગમે",
			expected:   WrongTurn,
			wantWords1: []string{},
			wantWords2: []string{},
			wantTurn:   2,
		},
		{
			name: "Other team's word allowed under own-team scope",
			state: &GameState{
				Team1:       Team{Letter: "ક", Score: 1, Words: []string{"કમળ"}},
				Team2:       Team{Letter: "ક", Words: []string{}},
				CurrentTurn: 2,
			},
			teamNumber: 2,
			word:       "કમળ",
			scope:      RepeatOwnTeam,
			expected:   Accepted,
			wantScore1: 1,
			wantScore2: 1,
			wantWords1: []string{"કમળ"},
			wantWords2: []string{"કમળ"},
			wantTurn:   1,
		},
		{
			name: "Other team's word rejected under both-teams scope",
			state: &GameState{
				Team1:       Team{Letter: "ક", Score: 1, Words: []string{"કમળ"}},
				Team2:       Team{Letter: "ક", Words: []string{}},
				CurrentTurn: 2,
			},
			teamNumber: 2,
			word:       "કમળ",
			scope:      RepeatBothTeams,
			expected:   Repeated,
			wantScore1: 1,
			wantScore2: -1,
			wantWords1: []string{"કમળ"},
			wantWords2: []string{},
			wantTurn:   1,
		},
		{
			name: "Prefix match is exact and case-sensitive",
			state: &GameState{
				Team1:       Team{Letter: "K", Words: []string{}},
				Team2:       Team{Letter: "L", Words: []string{}},
				CurrentTurn: 1,
			},
			teamNumber: 1,
			word:       "kite",
			expected:   InvalidPrefix,
			wantScore1: -1,
			wantWords1: []string{},
			wantWords2: []string{},
			wantTurn:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := judgeWord(tt.state, tt.teamNumber, tt.word, tt.scope)

			if outcome != tt.expected {
				t.Errorf("outcome = %v, want %v", outcome, tt.expected)
			}
			if tt.state.Team1.Score != tt.wantScore1 {
				t.Errorf("team1 score = %d, want %d", tt.state.Team1.Score, tt.wantScore1)
			}
			if tt.state.Team2.Score != tt.wantScore2 {
				t.Errorf("team2 score = %d, want %d", tt.state.Team2.Score, tt.wantScore2)
			}
			if !slices.Equal(tt.state.Team1.Words, tt.wantWords1) {
				t.Errorf("team1 words = %v, want %v", tt.state.Team1.Words, tt.wantWords1)
			}
			if !slices.Equal(tt.state.Team2.Words, tt.wantWords2) {
				t.Errorf("team2 words = %v, want %v", tt.state.Team2.Words, tt.wantWords2)
			}
			if tt.state.CurrentTurn != tt.wantTurn {
				t.Errorf("currentTurn = %d, want %d", tt.state.CurrentTurn, tt.wantTurn)
			}
		})
	}
}

func TestJudgeSecondIdenticalCallIsWrongTurn(t *testing.T) {
	g := gujaratiFixture()

	if outcome := judgeWord(g, 1, "કમળ", RepeatOwnTeam); outcome != Accepted {
		t.Fatalf("first call = %v, want %v", outcome, Accepted)
	}
	if outcome := judgeWord(g, 1, "કમળ", RepeatOwnTeam); outcome != WrongTurn {
		t.Fatalf("second call = %v, want %v", outcome, WrongTurn)
	}
	if g.CurrentTurn != 2 {
		t.Errorf("currentTurn = %d, want 2", g.CurrentTurn)
	}
}

func TestScoreMayGoNegative(t *testing.T) {
	g := gujaratiFixture()

	for i := 0; i < 3; i++ {
		judgeWord(g, g.CurrentTurn, "ઝાડ", RepeatOwnTeam)
		judgeWord(g, g.CurrentTurn, "ઝાડ", RepeatOwnTeam)
	}

	if g.Team1.Score != -3 || g.Team2.Score != -3 {
		t.Errorf("scores = %d/%d, want -3/-3", g.Team1.Score, g.Team2.Score)
	}
	if len(g.Team1.Words)+len(g.Team2.Words) != 0 {
		t.Errorf("rejected words must not be appended")
	}
}

func TestSpeakWordRequiresLetters(t *testing.T) {
	tests := []struct {
		name    string
		letter1 string
		letter2 string
		wantErr bool
	}{
		{"both set", "ક", "ખ", false},
		{"team1 unset", "", "ખ", true},
		{"team2 unset", "ક", "", true},
		{"both unset", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGameState()
			g.Team1.Letter = tt.letter1
			g.Team2.Letter = tt.letter2

			_, err := speakWord(g, 1, "કમળ", RepeatOwnTeam)

			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && g.CurrentTurn != 1 {
				t.Errorf("precondition failure must not switch the turn")
			}
		})
	}
}

func TestNewGameState(t *testing.T) {
	g := newGameState()

	if g.CurrentTurn != 1 {
		t.Errorf("currentTurn = %d, want 1", g.CurrentTurn)
	}
	if g.Team1.Score != 0 || g.Team2.Score != 0 {
		t.Errorf("scores = %d/%d, want 0/0", g.Team1.Score, g.Team2.Score)
	}
	if g.Team1.Letter != "" || g.Team2.Letter != "" {
		t.Errorf("letters must start empty")
	}
	if g.Team1.Words == nil || g.Team2.Words == nil {
		t.Errorf("word lists must be non-nil so they marshal as []")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := gujaratiFixture()
	judgeWord(g, 1, "કમળ", RepeatOwnTeam)

	snapshot := g.clone()
	judgeWord(g, 2, "ખમણ", RepeatOwnTeam)

	if len(snapshot.Team2.Words) != 0 {
		t.Errorf("mutating the original must not affect the clone")
	}
	if snapshot.CurrentTurn != 2 {
		t.Errorf("clone currentTurn = %d, want 2", snapshot.CurrentTurn)
	}
}

func TestParseRepeatScope(t *testing.T) {
	tests := []struct {
		input    string
		expected RepeatScope
		wantErr  bool
	}{
		{"own-team", RepeatOwnTeam, false},
		{"both-teams", RepeatBothTeams, false},
		{"everything", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			scope, err := parseRepeatScope(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && scope != tt.expected {
				t.Errorf("scope = %v, want %v", scope, tt.expected)
			}
		})
	}
}
