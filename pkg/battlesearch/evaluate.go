package battlesearch

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// forfeitEndType is the endType value of a battle a player conceded.
	forfeitEndType = "forfeit"

	// logSuffix is stripped from file names to get the room name.
	logSuffix = ".log.json"
)

// Evaluate decides whether a battle log is reported for opts.
//
// Return values:
//   - (*MatchReport, nil): the battle matches and should be printed
//   - (nil, nil): the searched player is not in the battle, or a filter
//     rejected it
//   - (nil, error): a player field is missing (ErrMalformedDocument)
//
// path is the log file path, used for the room name; label is the context
// label printed in front of the report.
func Evaluate(fields Fields, opts SearchOptions, path, label string) (*MatchReport, error) {
	if !fields.Player1.Present {
		return nil, fmt.Errorf("%w: no p1 value", ErrMalformedDocument)
	}
	if !fields.Player2.Present {
		return nil, fmt.Errorf("%w: no p2 value", ErrMalformedDocument)
	}

	p1 := ToID(fields.Player1.Value)
	p2 := ToID(fields.Player2.Value)
	if p1 != opts.SearchedUserID && p2 != opts.SearchedUserID {
		return nil, nil
	}

	crit := newCriteria(opts.WinsOnly, opts.ForfeitsOnly)

	// A winner with no letters or digits is reported as no winner.
	var winner ID
	if fields.Winner.Present {
		winner = ToID(fields.Winner.Value)
	}
	if !crit.allowsResult(winner != "" && winner == opts.SearchedUserID) {
		return nil, nil
	}

	isForfeit := fields.EndType.Present && fields.EndType.Value == forfeitEndType
	if !crit.allowsEnd(isForfeit) {
		return nil, nil
	}

	return &MatchReport{
		Label:   label,
		Room:    roomName(path),
		Player1: p1,
		Player2: p2,
		Outcome: outcome(winner, isForfeit),
	}, nil
}

func outcome(winner ID, isForfeit bool) string {
	if winner == "" {
		return "there was no winner"
	}
	how := "normally"
	if isForfeit {
		how = "by forfeit"
	}
	return fmt.Sprintf("%s won %s", winner, how)
}

// roomName returns the file name of path without a trailing .log.json.
func roomName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), logSuffix)
}
