package recon

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/satvik-g4s/Hour-Recon/internal/shared/apperror"
	"github.com/satvik-g4s/Hour-Recon/internal/shared/contextutil"
	"github.com/satvik-g4s/Hour-Recon/internal/sheetio"
)

// DefaultSpecialCustomer is the customer code whose performed hours bypass
// the floor rule (see BuildPivot).
const DefaultSpecialCustomer = "7401"

type Service interface {
	Run(ctx context.Context, in RunInput) (*RunResult, error)
}

// RunResult is the full outcome of one reconciliation run.
type RunResult struct {
	ID        uuid.UUID
	Pivot     []PivotRow
	HubSheets []HubSheet
	Sheets    []sheetio.Sheet
	Stats     RunStats
	Artifact  Artifact
}

type service struct {
	store           ArtifactStore
	hubZones        map[string]HubZone
	specialCustomer string
	logger          *zap.Logger
}

// Config carries the service's tunables; zero values fall back to defaults.
type Config struct {
	SpecialCustomer string
	HubZones        map[string]HubZone
}

func NewService(store ArtifactStore, cfg Config, logger *zap.Logger) Service {
	if cfg.SpecialCustomer == "" {
		cfg.SpecialCustomer = DefaultSpecialCustomer
	}
	if cfg.HubZones == nil {
		cfg.HubZones = HubZones()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		store:           store,
		hubZones:        cfg.HubZones,
		specialCustomer: cfg.SpecialCustomer,
		logger:          logger,
	}
}

// Run executes the whole pipeline synchronously: parse, validate, normalize,
// dedup, join, aggregate, partition, export. Fatal conditions (unreadable
// file, missing columns, duplicate lookup keys) abort before any artifact is
// produced; recoverable ones are logged and reported in the stats.
func (s *service) Run(ctx context.Context, in RunInput) (*RunResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	stats := RunStats{}

	pillarTable, err := s.parseUpload(in.Pillar, &stats)
	if err != nil {
		return nil, err
	}
	dumpTable, err := s.parseUpload(in.InvoiceDump, &stats)
	if err != nil {
		return nil, err
	}
	ownerTable, err := s.parseUpload(in.Owner, &stats)
	if err != nil {
		return nil, err
	}
	attendanceTable, err := s.parseUpload(in.Attendance, &stats)
	if err != nil {
		return nil, err
	}

	if missing := pillarTable.MissingColumns(pillarRequiredColumns); len(missing) > 0 {
		return nil, apperror.MissingColumns(in.Pillar.Field, missing)
	}
	if missing := dumpTable.MissingColumns(invoiceDumpRequiredColumns); len(missing) > 0 {
		return nil, apperror.MissingColumns(in.InvoiceDump.Field, missing)
	}

	records := loadPillar(pillarTable)
	stats.PillarRows = len(pillarTable.Rows)
	stats.RetainedRows = len(records)

	periods, dumpWarnings := loadInvoiceDump(dumpTable)
	stats.InvoiceRows = len(periods)
	stats.FileWarnings = append(stats.FileWarnings, dumpWarnings...)

	owners, missing := loadOwners(ownerTable)
	if len(missing) > 0 {
		return nil, apperror.MissingColumns(in.Owner.Field, missing)
	}
	stats.OwnerRecords = len(owners)

	entries, skipped := loadAttendance(attendanceTable)
	stats.AttendanceEntries = len(entries)
	stats.SkippedAttendanceColumns = skipped
	for _, header := range skipped {
		log.Info("attendance column skipped: no cycle bounds in header",
			zap.String("header", header))
	}

	dedupedPeriods := DedupInvoicePeriods(periods)
	stats.DedupedOrders = len(dedupedPeriods)

	ownerIndex, err := BuildOwnerIndex(owners)
	if err != nil {
		return nil, err
	}
	attendanceIndex, err := BuildAttendanceIndex(entries)
	if err != nil {
		return nil, err
	}

	joined, joinStats := Join(records, s.hubZones, ownerIndex, dedupedPeriods, attendanceIndex)
	stats.Join = joinStats
	logJoinRates(log, joinStats)

	special := in.SpecialCustomer
	if special == "" {
		special = s.specialCustomer
	}
	pivot := BuildPivot(joined, special)
	hubSheets := PartitionByHub(pivot, in.Hubs)
	sheets := buildSheets(pivot, hubSheets)

	data, err := sheetio.WriteWorkbook(sheets)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "failed to write output workbook", 500)
	}

	result := &RunResult{
		ID:        uuid.New(),
		Pivot:     pivot,
		HubSheets: hubSheets,
		Sheets:    sheets,
		Stats:     stats,
		Artifact: Artifact{
			Filename:  "Hours_Recon_Output.xlsx",
			Data:      data,
			CreatedAt: time.Now().UTC(),
		},
	}
	s.store.Put(result.ID, result.Artifact)

	log.Info("reconciliation run completed",
		zap.String("run_id", result.ID.String()),
		zap.Int("pivot_rows", len(pivot)),
		zap.Int("hub_sheets", len(hubSheets)),
	)
	return result, nil
}

func (s *service) parseUpload(file UploadFile, stats *RunStats) (*sheetio.Table, error) {
	if len(file.Data) == 0 {
		return nil, apperror.FileUnreadable(file.Field, fmt.Errorf("empty upload"))
	}
	result, err := sheetio.Parse(file.Name, file.Data)
	if err != nil {
		return nil, apperror.FileUnreadable(file.Field, err)
	}
	stats.FileWarnings = append(stats.FileWarnings, result.Warnings...)
	return result.Table, nil
}

// logJoinRates surfaces unmatched-lookup rates. High null rates are normal
// for incomplete reference data but still worth seeing.
func logJoinRates(log *zap.Logger, js JoinStats) {
	if js.Rows == 0 {
		return
	}
	log.Info("join match rates",
		zap.Int("rows", js.Rows),
		zap.Int("hub_unmatched", js.Rows-js.HubMatched),
		zap.Int("owner_unmatched", js.Rows-js.OwnerMatched),
		zap.Int("period_unmatched", js.Rows-js.PeriodMatched),
		zap.Int("attendance_unmatched", js.Rows-js.AttendanceMatched-js.AttendanceDayOnly),
		zap.Int("attendance_day_only", js.AttendanceDayOnly),
	)
}
