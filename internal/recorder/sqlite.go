package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"TrendRadar/internal/model"
)

// SQLiteRecorder persists analysis snapshots to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the bot writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_snapshots (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			code            TEXT NOT NULL,
			current_price   REAL,
			ma5             REAL,
			ma10            REAL,
			ma20            REAL,
			ma60            REAL,
			bias_ma5        REAL,
			bias_ma10       REAL,
			bias_ma20       REAL,
			trend_status    TEXT,
			trend_strength  REAL,
			volume_status   TEXT,
			volume_ratio_5d REAL,
			macd_dif        REAL,
			macd_dea        REAL,
			macd_bar        REAL,
			macd_status     TEXT,
			rsi_6           REAL,
			rsi_12          REAL,
			rsi_24          REAL,
			rsi_status      TEXT,
			kdj_k           REAL,
			kdj_d           REAL,
			kdj_j           REAL,
			kdj_status      TEXT,
			boll_upper      REAL,
			boll_mid        REAL,
			boll_lower      REAL,
			boll_position   REAL,
			boll_status     TEXT,
			obv             REAL,
			signal_score    INTEGER,
			buy_signal      TEXT,
			reasons         TEXT,
			risks           TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON analysis_snapshots(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_code ON analysis_snapshots(code)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordAnalysis inserts one snapshot row for the result.
func (r *SQLiteRecorder) RecordAnalysis(res *model.AnalysisResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO analysis_snapshots
		(timestamp, code, current_price, ma5, ma10, ma20, ma60,
		 bias_ma5, bias_ma10, bias_ma20,
		 trend_status, trend_strength, volume_status, volume_ratio_5d,
		 macd_dif, macd_dea, macd_bar, macd_status,
		 rsi_6, rsi_12, rsi_24, rsi_status,
		 kdj_k, kdj_d, kdj_j, kdj_status,
		 boll_upper, boll_mid, boll_lower, boll_position, boll_status,
		 obv, signal_score, buy_signal, reasons, risks)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), res.Code, res.CurrentPrice,
		res.MA5, res.MA10, res.MA20, res.MA60,
		res.BiasMA5, res.BiasMA10, res.BiasMA20,
		res.TrendStatus.String(), res.TrendStrength,
		res.VolumeStatus.String(), res.VolumeRatio5d,
		res.MACDDIF, res.MACDDEA, res.MACDBar, res.MACDStatus.String(),
		res.RSI6, res.RSI12, res.RSI24, res.RSIStatus.String(),
		res.KDJK, res.KDJD, res.KDJJ, res.KDJStatus.String(),
		res.BollUpper, res.BollMid, res.BollLower, res.BollPosition, res.BollStatus.String(),
		res.OBV, res.SignalScore, res.BuySignal.String(),
		strings.Join(res.SignalReasons, "\n"), strings.Join(res.RiskFactors, "\n"),
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
