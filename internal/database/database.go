package database

import (
	"database/sql"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

const tableName = "spades_results"

// Service is a sqlite-backed store of finished game results.
type Service struct {
	db *sql.DB
	m  sync.Mutex
}

// New opens (creating if necessary) the results database at path.
func New(path string) (*Service, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	sqlStmt := `
	create table if not exists ` + tableName + ` (
		id string not null primary key,
		created_at string,
		north string,
		east string,
		south string,
		west string,
		team1_score integer,
		team2_score integer,
		winning_team integer,
		rounds integer
	);
	`
	if _, err := db.Exec(sqlStmt); err != nil {
		db.Close()
		return nil, err
	}

	return &Service{db: db}, nil
}

func (s *Service) Close() error {
	return s.db.Close()
}

func (s *Service) GetAll() ([]GameRecord, error) {
	s.m.Lock()
	defer s.m.Unlock()
	rows, err := s.db.Query("SELECT * FROM " + tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []GameRecord
	for rows.Next() {
		var r GameRecord
		if err := scanRecord(rows.Scan, &r); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func (s *Service) GetByID(id string) (GameRecord, error) {
	s.m.Lock()
	defer s.m.Unlock()
	var r GameRecord
	row := s.db.QueryRow("SELECT * FROM "+tableName+" WHERE id = ?", id)
	if err := scanRecord(row.Scan, &r); err != nil {
		return GameRecord{}, err
	}
	return r, nil
}

func (s *Service) Insert(r GameRecord) error {
	s.m.Lock()
	defer s.m.Unlock()
	_, err := s.db.Exec("INSERT INTO "+tableName+
		" (id, created_at, north, east, south, west, team1_score, team2_score, winning_team, rounds)"+
		" VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		r.ID,
		r.CreatedAt,
		r.North,
		r.East,
		r.South,
		r.West,
		r.Team1Score,
		r.Team2Score,
		r.WinningTeam,
		r.Rounds)
	return err
}

// GetByPlayer returns games in which the named player sat at any seat.
func (s *Service) GetByPlayer(name string) ([]GameRecord, error) {
	s.m.Lock()
	defer s.m.Unlock()
	rows, err := s.db.Query("SELECT * FROM "+tableName+
		" WHERE north = ? OR east = ? OR south = ? OR west = ?",
		name, name, name, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []GameRecord
	for rows.Next() {
		var r GameRecord
		if err := scanRecord(rows.Scan, &r); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, sql.ErrNoRows
	}
	return results, nil
}

func scanRecord(scan func(...any) error, r *GameRecord) error {
	return scan(
		&r.ID,
		&r.CreatedAt,
		&r.North,
		&r.East,
		&r.South,
		&r.West,
		&r.Team1Score,
		&r.Team2Score,
		&r.WinningTeam,
		&r.Rounds)
}
