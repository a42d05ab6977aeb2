// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	practicesession "github.com/careerpilot/backend/internal/domain/practice_session"
	"github.com/careerpilot/backend/internal/domain/questionbank"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    position TEXT NOT NULL,
    industry TEXT NOT NULL,
    tier TEXT NOT NULL,
    catalog_version TEXT NOT NULL,
    status TEXT NOT NULL,
    current_question_index INTEGER NOT NULL DEFAULT 0,
    overall_score INTEGER,
    created_at TEXT NOT NULL,
    completed_at TEXT
);

CREATE INDEX IF NOT EXISTS idx_sessions_owner ON sessions(owner_id);

CREATE TABLE IF NOT EXISTS session_questions (
    session_id TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    text TEXT NOT NULL,
    category TEXT NOT NULL,
    tips TEXT NOT NULL,
    PRIMARY KEY (session_id, ordinal),
    FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS responses (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL,
    question_number INTEGER NOT NULL,
    question_text TEXT NOT NULL,
    question_category TEXT NOT NULL,
    response_text TEXT NOT NULL,
    score INTEGER NOT NULL,
    communication_score INTEGER NOT NULL,
    content_score INTEGER NOT NULL,
    structure_score INTEGER NOT NULL,
    strengths TEXT NOT NULL,
    improvements TEXT NOT NULL,
    suggested_answer TEXT NOT NULL,
    key_points_covered TEXT NOT NULL,
    key_points_missed TEXT NOT NULL,
    created_at TEXT NOT NULL,
    UNIQUE (session_id, question_number),
    FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS feedback (
    session_id TEXT PRIMARY KEY,
    overall_score INTEGER NOT NULL,
    readiness_level TEXT NOT NULL,
    aggregated_strengths TEXT NOT NULL,
    aggregated_improvements TEXT NOT NULL,
    category_scores TEXT NOT NULL,
    average_communication INTEGER NOT NULL,
    average_content INTEGER NOT NULL,
    average_structure INTEGER NOT NULL,
    generated_at TEXT NOT NULL,
    FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
);
`

type SQLiteStore struct {
	db *sql.DB
}

// Compile-time check: *SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)

// NewSQLite opens (or creates) the database at dbPath. ":memory:" gives a
// private in-memory database, which is what the tests use.
//
// The pool is limited to one connection: SQLite serializes writers anyway,
// and an in-memory database only lives as long as its connection.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping reports whether the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ============================================================================
// Sessions
// ============================================================================

func (s *SQLiteStore) SaveSession(ctx context.Context, session *practicesession.Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sessions (id, owner_id, position, industry, tier, catalog_version,
		                      status, current_question_index, overall_score, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID, session.OwnerID, session.Position, session.Industry, string(session.Tier),
		session.CatalogVersion, string(session.Status), session.CurrentQuestionIndex,
		nullableInt(session.OverallScore), formatTime(session.CreatedAt), nullableTime(session.CompletedAt),
	)
	if err != nil {
		return err
	}

	for i, q := range session.Questions {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO session_questions (session_id, ordinal, text, category, tips) VALUES (?, ?, ?, ?, ?)",
			session.ID, i, q.Text, string(q.Category), encodeList(q.Tips),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetSession reads the session and its questions in one transaction so a
// concurrent delete is seen either entirely or not at all.
func (s *SQLiteStore) GetSession(ctx context.Context, id string) (*practicesession.Session, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var (
		session      practicesession.Session
		tier, status string
		overall      sql.NullInt64
		createdAt    string
		completedAt  sql.NullString
	)
	err = tx.QueryRowContext(ctx, `
		SELECT id, owner_id, position, industry, tier, catalog_version, status,
		       current_question_index, overall_score, created_at, completed_at
		FROM sessions WHERE id = ?`, id,
	).Scan(&session.ID, &session.OwnerID, &session.Position, &session.Industry, &tier,
		&session.CatalogVersion, &status, &session.CurrentQuestionIndex, &overall, &createdAt, &completedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	session.Tier = questionbank.DifficultyTier(tier)
	session.Status = practicesession.Status(status)
	session.OverallScore = intPtr(overall)
	if session.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if session.CompletedAt, err = parseNullTime(completedAt); err != nil {
		return nil, err
	}

	session.Questions, err = loadQuestions(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	return &session, nil
}

func loadQuestions(ctx context.Context, q querier, sessionID string) ([]questionbank.QuestionTemplate, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT text, category, tips FROM session_questions WHERE session_id = ? ORDER BY ordinal",
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []questionbank.QuestionTemplate{}
	for rows.Next() {
		var (
			qt             questionbank.QuestionTemplate
			category, tips string
		)
		if err := rows.Scan(&qt.Text, &category, &tips); err != nil {
			return nil, err
		}
		qt.Category = questionbank.Category(category)
		if qt.Tips, err = decodeList(tips); err != nil {
			return nil, err
		}
		questions = append(questions, qt)
	}
	return questions, rows.Err()
}

// ListSessionsByOwner returns the owner's sessions, newest first.
func (s *SQLiteStore) ListSessionsByOwner(ctx context.Context, ownerID string) ([]practicesession.Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.position, s.industry, s.tier, s.status, s.current_question_index,
		       (SELECT COUNT(*) FROM session_questions q WHERE q.session_id = s.id),
		       s.overall_score, s.created_at, s.completed_at
		FROM sessions s
		WHERE s.owner_id = ?
		ORDER BY s.created_at DESC, s.id`, ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []practicesession.Summary{}
	for rows.Next() {
		var (
			sum          practicesession.Summary
			tier, status string
			overall      sql.NullInt64
			createdAt    string
			completedAt  sql.NullString
		)
		if err := rows.Scan(&sum.ID, &sum.Position, &sum.Industry, &tier, &status,
			&sum.CurrentQuestionIndex, &sum.TotalQuestions, &overall, &createdAt, &completedAt); err != nil {
			return nil, err
		}
		sum.Tier = questionbank.DifficultyTier(tier)
		sum.Status = practicesession.Status(status)
		sum.OverallScore = intPtr(overall)
		if sum.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if sum.CompletedAt, err = parseNullTime(completedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

func (s *SQLiteStore) DeleteSession(ctx context.Context, id, ownerID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var owner string
	err = tx.QueryRowContext(ctx, "SELECT owner_id FROM sessions WHERE id = ?", id).Scan(&owner)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if owner != ownerID {
		return ErrForbidden
	}

	for _, stmt := range []string{
		"DELETE FROM feedback WHERE session_id = ?",
		"DELETE FROM responses WHERE session_id = ?",
		"DELETE FROM session_questions WHERE session_id = ?",
		"DELETE FROM sessions WHERE id = ?",
	} {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ============================================================================
// Responses
// ============================================================================

func (s *SQLiteStore) RecordResponse(ctx context.Context, r *practicesession.Response, expectedIndex int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE sessions SET current_question_index = current_question_index + 1
		WHERE id = ? AND status = ? AND current_question_index = ?`,
		r.SessionID, string(practicesession.StatusInProgress), expectedIndex,
	)
	if err != nil {
		return err
	}
	if err := expectOneRow(ctx, tx, result, r.SessionID); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO responses (id, session_id, question_number, question_text, question_category,
		                       response_text, score, communication_score, content_score, structure_score,
		                       strengths, improvements, suggested_answer, key_points_covered,
		                       key_points_missed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.SessionID, r.QuestionNumber, r.QuestionText, string(r.QuestionCategory),
		r.ResponseText, r.Score, r.CommunicationScore, r.ContentScore, r.StructureScore,
		encodeList(r.Strengths), encodeList(r.Improvements), r.SuggestedAnswer,
		encodeList(r.KeyPointsCovered), encodeList(r.KeyPointsMissed), formatTime(r.CreatedAt),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// ListResponses returns the session's responses by ascending question number.
func (s *SQLiteStore) ListResponses(ctx context.Context, sessionID string) ([]practicesession.Response, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, question_number, question_text, question_category, response_text,
		       score, communication_score, content_score, structure_score, strengths, improvements,
		       suggested_answer, key_points_covered, key_points_missed, created_at
		FROM responses WHERE session_id = ? ORDER BY question_number`, sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := []practicesession.Response{}
	for rows.Next() {
		var (
			r                          practicesession.Response
			category                   string
			strengths, improvements    string
			covered, missed, createdAt string
		)
		if err := rows.Scan(&r.ID, &r.SessionID, &r.QuestionNumber, &r.QuestionText, &category,
			&r.ResponseText, &r.Score, &r.CommunicationScore, &r.ContentScore, &r.StructureScore,
			&strengths, &improvements, &r.SuggestedAnswer, &covered, &missed, &createdAt); err != nil {
			return nil, err
		}
		r.QuestionCategory = questionbank.Category(category)
		for _, f := range []struct {
			raw string
			dst *[]string
		}{
			{strengths, &r.Strengths},
			{improvements, &r.Improvements},
			{covered, &r.KeyPointsCovered},
			{missed, &r.KeyPointsMissed},
		} {
			if *f.dst, err = decodeList(f.raw); err != nil {
				return nil, err
			}
		}
		if r.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		responses = append(responses, r)
	}
	return responses, rows.Err()
}

// ============================================================================
// Feedback
// ============================================================================

type storedCategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
	Answered int    `json:"answered"`
}

func (s *SQLiteStore) CompleteSession(ctx context.Context, fb *practicesession.Feedback, questionCount int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM feedback WHERE session_id = ?", fb.SessionID).Scan(&exists)
	if err == nil {
		return ErrFeedbackExists
	}
	if err != sql.ErrNoRows {
		return err
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE sessions SET status = ?, overall_score = ?, completed_at = ?
		WHERE id = ? AND status = ? AND current_question_index = ?`,
		string(practicesession.StatusCompleted), fb.OverallScore, formatTime(fb.GeneratedAt),
		fb.SessionID, string(practicesession.StatusInProgress), questionCount,
	)
	if err != nil {
		return err
	}
	if err := expectOneRow(ctx, tx, result, fb.SessionID); err != nil {
		return err
	}

	categoryScores := make([]storedCategoryScore, len(fb.CategoryScores))
	for i, cs := range fb.CategoryScores {
		categoryScores[i] = storedCategoryScore{Category: string(cs.Category), Score: cs.Score, Answered: cs.Answered}
	}
	categoryJSON, err := json.Marshal(categoryScores)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO feedback (session_id, overall_score, readiness_level, aggregated_strengths,
		                      aggregated_improvements, category_scores, average_communication,
		                      average_content, average_structure, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		fb.SessionID, fb.OverallScore, string(fb.ReadinessLevel),
		encodeList(fb.AggregatedStrengths), encodeList(fb.AggregatedImprovements), string(categoryJSON),
		fb.AverageCommunication, fb.AverageContent, fb.AverageStructure, formatTime(fb.GeneratedAt),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetFeedback(ctx context.Context, sessionID string) (*practicesession.Feedback, error) {
	var (
		fb                                    practicesession.Feedback
		readiness                             string
		strengths, improvements, categoryJSON string
		generatedAt                           string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT session_id, overall_score, readiness_level, aggregated_strengths, aggregated_improvements,
		       category_scores, average_communication, average_content, average_structure, generated_at
		FROM feedback WHERE session_id = ?`, sessionID,
	).Scan(&fb.SessionID, &fb.OverallScore, &readiness, &strengths, &improvements, &categoryJSON,
		&fb.AverageCommunication, &fb.AverageContent, &fb.AverageStructure, &generatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	fb.ReadinessLevel = practicesession.ReadinessLevel(readiness)
	if fb.AggregatedStrengths, err = decodeList(strengths); err != nil {
		return nil, err
	}
	if fb.AggregatedImprovements, err = decodeList(improvements); err != nil {
		return nil, err
	}

	var categoryScores []storedCategoryScore
	if err := json.Unmarshal([]byte(categoryJSON), &categoryScores); err != nil {
		return nil, fmt.Errorf("decode category scores: %w", err)
	}
	fb.CategoryScores = make([]practicesession.CategoryScore, len(categoryScores))
	for i, cs := range categoryScores {
		fb.CategoryScores[i] = practicesession.CategoryScore{
			Category: questionbank.Category(cs.Category),
			Score:    cs.Score,
			Answered: cs.Answered,
		}
	}

	if fb.GeneratedAt, err = parseTime(generatedAt); err != nil {
		return nil, err
	}
	return &fb, nil
}

// ============================================================================
// Helpers
// ============================================================================

// expectOneRow turns a guarded UPDATE that matched nothing into ErrNotFound
// or ErrConflict, depending on whether the session exists at all.
func expectOneRow(ctx context.Context, tx *sql.Tx, result sql.Result, sessionID string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 1 {
		return nil
	}

	var one int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM sessions WHERE id = ?", sessionID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return ErrConflict
}

func encodeList(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return string(b)
}

func decodeList(raw string) ([]string, error) {
	items := []string{}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return items, nil
}

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return t.UTC(), nil
}

func parseNullTime(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid {
		return nil, nil
	}
	t, err := parseTime(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
