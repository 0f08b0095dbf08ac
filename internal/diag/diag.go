// Package diag implements the operator diagnostic probes: an environment
// check, a connection test, and a step-by-step read probe. Probes never fail
// with an error; trouble is part of the report, since the report is the whole
// point. Each run carries a unique ID for log correlation.
package diag

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sandwichsociety/pointsite/internal/config"
	"github.com/sandwichsociety/pointsite/internal/logging"
	"github.com/sandwichsociety/pointsite/internal/sheets"
)

// SheetReader is the slice of the data-source client the probes use.
type SheetReader interface {
	FetchRange(ctx context.Context, rangeRef string) ([][]string, error)
	FetchMetadata(ctx context.Context) (sheets.Metadata, error)
}

// Prober runs diagnostics against the configured data source.
// client is nil when the deployment has no sheet configured.
type Prober struct {
	client SheetReader
	cfg    config.SheetsConfig
}

// NewProber builds a Prober. client may be nil.
func NewProber(client SheetReader, cfg config.SheetsConfig) *Prober {
	return &Prober{client: client, cfg: cfg}
}

// EnvReport describes which connection parameters are present. The private
// key is reported only by presence and length, never by value.
type EnvReport struct {
	RunID               string    `json:"runId"`
	SpreadsheetID       string    `json:"sheetId"`
	ServiceAccountEmail string    `json:"serviceAccountEmail"`
	PrivateKeySet       bool      `json:"privateKeySet"`
	PrivateKeyLength    int       `json:"privateKeyLength"`
	Range               string    `json:"range"`
	Configured          bool      `json:"configured"`
	Timestamp           time.Time `json:"timestamp"`
}

// ConnectionReport is the result of a metadata-only connectivity check.
type ConnectionReport struct {
	RunID      string    `json:"runId"`
	Success    bool      `json:"success"`
	SheetTitle string    `json:"sheetTitle,omitempty"`
	Error      string    `json:"error,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// ProbeStep is one stage of the full read probe.
type ProbeStep struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

// ProbeReport is the result of the step-by-step read probe.
type ProbeReport struct {
	RunID      string      `json:"runId"`
	Success    bool        `json:"success"`
	Steps      []ProbeStep `json:"steps"`
	SheetTitle string      `json:"sheetTitle,omitempty"`
	RowCount   int         `json:"rowCount"`
	FirstRow   []string    `json:"firstRow,omitempty"`
	Error      string      `json:"error,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
}

// Env reports which connection parameters are set.
func (p *Prober) Env() EnvReport {
	return EnvReport{
		RunID:               uuid.NewString(),
		SpreadsheetID:       p.cfg.SpreadsheetID,
		ServiceAccountEmail: p.cfg.ServiceAccountEmail,
		PrivateKeySet:       p.cfg.PrivateKey != "",
		PrivateKeyLength:    len(p.cfg.PrivateKey),
		Range:               p.cfg.Range(),
		Configured:          p.cfg.Configured(),
		Timestamp:           time.Now().UTC(),
	}
}

// TestConnection fetches only the spreadsheet metadata: a cheap check that
// credentials work and the sheet is shared, without touching cell data.
func (p *Prober) TestConnection(ctx context.Context) ConnectionReport {
	report := ConnectionReport{
		RunID:     uuid.NewString(),
		Timestamp: time.Now().UTC(),
	}
	logger := logging.WithFields(ctx, "probe", "connection", "run_id", report.RunID)

	if p.client == nil {
		report.Error = "Google Sheets configuration missing"
		logger.Warn("connection probe skipped", "reason", "unconfigured")
		return report
	}

	md, err := p.client.FetchMetadata(ctx)
	if err != nil {
		report.Error = err.Error()
		logger.Warn("connection probe failed", "error", err)
		return report
	}

	report.Success = true
	report.SheetTitle = md.Title
	logger.Info("connection probe ok", "sheet_title", md.Title)
	return report
}

// Probe walks the full read path stage by stage: configuration, client,
// metadata, values. It stops at the first failing stage so the report names
// exactly where the pipeline breaks.
func (p *Prober) Probe(ctx context.Context) ProbeReport {
	report := ProbeReport{
		RunID:     uuid.NewString(),
		Timestamp: time.Now().UTC(),
	}
	logger := logging.WithFields(ctx, "probe", "full", "run_id", report.RunID)

	step := func(name string, ok bool, detail string) {
		report.Steps = append(report.Steps, ProbeStep{Name: name, OK: ok, Detail: detail})
	}

	if !p.cfg.Configured() {
		step("configuration", false, "connection parameters missing")
		report.Error = "Google Sheets configuration missing"
		logger.Warn("probe failed", "step", "configuration")
		return report
	}
	step("configuration", true, "")

	if p.client == nil {
		step("client", false, "no client constructed")
		report.Error = "data-source client unavailable"
		logger.Warn("probe failed", "step", "client")
		return report
	}
	step("client", true, "")

	md, err := p.client.FetchMetadata(ctx)
	if err != nil {
		step("metadata", false, err.Error())
		report.Error = err.Error()
		logger.Warn("probe failed", "step", "metadata", "error", err)
		return report
	}
	step("metadata", true, md.Title)
	report.SheetTitle = md.Title

	rows, err := p.client.FetchRange(ctx, p.cfg.Range())
	if err != nil {
		step("values", false, err.Error())
		report.Error = err.Error()
		logger.Warn("probe failed", "step", "values", "error", err)
		return report
	}
	step("values", true, "")

	report.Success = true
	report.RowCount = len(rows)
	if len(rows) > 0 {
		report.FirstRow = rows[0]
	}
	logger.Info("probe ok", "rows", len(rows), "sheet_title", md.Title)
	return report
}
