package roster

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Loaders turn raw CSV/JSON files into validated records. The scoring core
// never sees file bytes: everything below validates at the boundary and
// fails on the first malformed row.

// matchupDocument is the JSON shape of a matchup input file:
// a batters array plus a single pitcher object. "pitcher_stats" is an
// accepted legacy alias, "pitchers" is used by the versus format.
type matchupDocument struct {
	Batters      []Batter  `json:"batters"`
	Pitcher      *Pitcher  `json:"pitcher"`
	PitcherStats *Pitcher  `json:"pitcher_stats"`
	Pitchers     []Pitcher `json:"pitchers"`
}

// LoadMatchupFile parses a matchup statistics file (.json or .csv) into
// validated batter records and exactly one pitcher record.
func LoadMatchupFile(path string) ([]Batter, *Pitcher, error) {
	batters, pitchers, err := loadMatchup(path)
	if err != nil {
		return nil, nil, err
	}
	if len(pitchers) == 0 {
		return nil, nil, fmt.Errorf("%s: pitcher statistics not found", path)
	}
	if len(pitchers) > 1 {
		return nil, nil, fmt.Errorf("%s: multiple pitcher entries found", path)
	}
	return batters, &pitchers[0], nil
}

// LoadVersusFile parses a batter-versus-pitchers file: one or more batters
// and one or more pitchers. Callers pick the batter to analyze.
func LoadVersusFile(path string) ([]Batter, []Pitcher, error) {
	batters, pitchers, err := loadMatchup(path)
	if err != nil {
		return nil, nil, err
	}
	if len(pitchers) == 0 {
		return nil, nil, fmt.Errorf("%s: pitcher statistics not found", path)
	}
	if len(batters) == 0 {
		return nil, nil, fmt.Errorf("%s: batter statistics not found", path)
	}
	return batters, pitchers, nil
}

func loadMatchup(path string) ([]Batter, []Pitcher, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return loadMatchupJSON(path)
	case ".csv":
		return loadMatchupCSV(path)
	}
	return nil, nil, fmt.Errorf("unsupported file format %q: use .csv or .json", filepath.Ext(path))
}

func loadMatchupJSON(path string) ([]Batter, []Pitcher, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var doc matchupDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	pitchers := doc.Pitchers
	if len(pitchers) == 0 && doc.Pitcher != nil {
		pitchers = []Pitcher{*doc.Pitcher}
	}
	if len(pitchers) == 0 && doc.PitcherStats != nil {
		pitchers = []Pitcher{*doc.PitcherStats}
	}

	batters := doc.Batters
	for i := range batters {
		if err := finishBatter(&batters[i]); err != nil {
			return nil, nil, fmt.Errorf("%s: batter %q: %w", path, batters[i].Name, err)
		}
	}
	for i := range pitchers {
		if err := finishPitcher(&pitchers[i]); err != nil {
			return nil, nil, fmt.Errorf("%s: pitcher %q: %w", path, pitchers[i].Name, err)
		}
	}
	return batters, pitchers, nil
}

func loadMatchupCSV(path string) ([]Batter, []Pitcher, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, nil, err
	}

	var batters []Batter
	var pitchers []Pitcher
	for n, row := range rows {
		// A row carrying an ERA value is a pitcher row; everything else
		// is a batter row.
		if row["era"] != "" {
			p, err := pitcherFromRow(row)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: row %d: %w", path, n+2, err)
			}
			pitchers = append(pitchers, p)
			continue
		}
		b, err := batterFromRow(row)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: row %d: %w", path, n+2, err)
		}
		batters = append(batters, b)
	}
	return batters, pitchers, nil
}

// LoadDefenseFile parses a defensive statistics file (.json or .csv) into
// validated fielder records. JSON accepts either a bare array of players
// or an object with a "players" array; the positions field may be a list
// or a comma/slash separated string.
func LoadDefenseFile(path string) ([]Fielder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return loadDefenseJSON(path)
	case ".csv":
		return loadDefenseCSV(path)
	}
	return nil, fmt.Errorf("unsupported file format %q: use .csv or .json", filepath.Ext(path))
}

// rawFielder tolerates the two positions encodings seen in input data.
type rawFielder struct {
	Name              string          `json:"name"`
	PlayerName        string          `json:"player_name"`
	FieldingPct       float64         `json:"fielding_pct"`
	Errors            int             `json:"errors"`
	Putouts           int             `json:"putouts"`
	PassedBalls       int             `json:"passed_balls"`
	CaughtStealingPct float64         `json:"caught_stealing_pct"`
	Positions         json.RawMessage `json:"positions"`
}

func (r *rawFielder) toFielder() (Fielder, error) {
	name := r.Name
	if name == "" {
		name = r.PlayerName
	}
	f := Fielder{
		Name:              name,
		FieldingPct:       r.FieldingPct,
		Errors:            r.Errors,
		Putouts:           r.Putouts,
		PassedBalls:       r.PassedBalls,
		CaughtStealingPct: r.CaughtStealingPct,
	}

	if len(r.Positions) > 0 {
		var list []string
		if err := json.Unmarshal(r.Positions, &list); err == nil {
			positions, err := ParsePositions(strings.Join(list, ","))
			if err != nil {
				return Fielder{}, err
			}
			f.Positions = positions
		} else {
			var joined string
			if err := json.Unmarshal(r.Positions, &joined); err != nil {
				return Fielder{}, fmt.Errorf("positions must be a list or a string")
			}
			positions, err := ParsePositions(joined)
			if err != nil {
				return Fielder{}, err
			}
			f.Positions = positions
		}
	}

	if err := f.Validate(); err != nil {
		return Fielder{}, err
	}
	return f, nil
}

func loadDefenseJSON(path string) ([]Fielder, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw []rawFielder
	if err := json.Unmarshal(content, &raw); err != nil {
		var doc struct {
			Players []rawFielder `json:"players"`
		}
		if err := json.Unmarshal(content, &doc); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		raw = doc.Players
	}

	players := make([]Fielder, 0, len(raw))
	for i := range raw {
		f, err := raw[i].toFielder()
		if err != nil {
			return nil, fmt.Errorf("%s: player %q: %w", path, raw[i].Name, err)
		}
		players = append(players, f)
	}
	return players, nil
}

func loadDefenseCSV(path string) ([]Fielder, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	players := make([]Fielder, 0, len(rows))
	for n, row := range rows {
		positions, err := ParsePositions(row["positions"])
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, n+2, err)
		}
		f := Fielder{
			Name:              row["name"],
			FieldingPct:       toFloat(row["fielding_pct"]),
			Errors:            toInt(row["errors"]),
			Putouts:           toInt(row["putouts"]),
			PassedBalls:       toInt(row["passed_balls"]),
			CaughtStealingPct: toFloat(row["caught_stealing_pct"]),
			Positions:         positions,
		}
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, n+2, err)
		}
		players = append(players, f)
	}
	return players, nil
}

// finishBatter normalizes the handedness field and validates the record.
func finishBatter(b *Batter) error {
	hand, err := ParseBatterHand(string(b.Hand))
	if err != nil {
		return err
	}
	b.Hand = hand
	return b.Validate()
}

// finishPitcher normalizes the handedness field ("LHP"/"RHP" accepted)
// and validates the record.
func finishPitcher(p *Pitcher) error {
	hand, err := ParsePitcherHand(string(p.Hand))
	if err != nil {
		return err
	}
	p.Hand = hand
	return p.Validate()
}

func batterFromRow(row map[string]string) (Batter, error) {
	b := Batter{
		Name: strings.TrimSpace(row["name"]),
		BA:   toFloat(row["ba"]),
		K:    toInt(row["k"]),
		OBP:  toFloat(row["obp"]),
		SLG:  toFloat(row["slg"]),
		HR:   toInt(row["hr"]),
		RBI:  toInt(row["rbi"]),
		Hand: Handedness(row["handedness"]),
	}
	return b, finishBatter(&b)
}

func pitcherFromRow(row map[string]string) (Pitcher, error) {
	p := Pitcher{
		Name:     strings.TrimSpace(row["name"]),
		ERA:      toFloat(row["era"]),
		WHIP:     toFloat(row["whip"]),
		KRate:    toFloat(row["k_rate"]),
		WalkRate: toFloat(row["walk_rate"]),
		Hand:     Handedness(row["handedness"]),
	}
	return p, finishPitcher(&p)
}

// readCSV reads a headered CSV file into one map per data row.
func readCSV(path string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, column := range header {
			if i < len(record) {
				row[strings.ToLower(strings.TrimSpace(column))] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func toFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func toInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}
