package main

import "fmt"

// Display text shown alongside each judged word. Kinds match the
// styling hooks in the embedded client: success, warning, error.
const (
	kindSuccess = "success"
	kindWarning = "warning"
	kindError   = "error"
)

// outcomeMessage renders the user-facing Gujarati text for a judged
// word. WrongTurn intentionally has no message; it is absorbed
// silently as a UI desync.
func outcomeMessage(outcome Outcome, word, letter string) (message, kind string) {
	switch outcome {
	case InvalidPrefix:
		return fmt.Sprintf("❌ %q ખોટો છે, %q થી શરૂ થતો નથી!", word, letter), kindError
	case Repeated:
		return fmt.Sprintf("⚠️ %q પહેલાથી બોલાયું છે!", word), kindWarning
	case Accepted:
		return fmt.Sprintf("🎉 અભિનંદન! %q સ્વીકારવામાં આવ્યું ✅", word), kindSuccess
	}
	return "", ""
}

// winnerText compares final scores and names the winning team, or a
// draw.
func winnerText(g *GameState) string {
	switch {
	case g.Team1.Score > g.Team2.Score:
		return "🏆 ટીમ 1 જીત્યું!"
	case g.Team2.Score > g.Team1.Score:
		return "🏆 ટીમ 2 જીત્યું!"
	}
	return "🤝 મેચ ડ્રો!"
}
