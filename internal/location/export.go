package location

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/notesapp/pocketnotes/models"
)

const exportTimeLayout = "20060102_150405"

var exportHeader = []string{"Latitude", "Longitude", "Accuracy", "Timestamp", "DateTime", "Provider"}

// ExportHistory writes the accepted records as a CSV file named
// location_history_<yyyyMMdd_HHmmss>.csv in the configured export
// directory. The history itself is left untouched.
//
// Returns ErrNoData when no records have been accepted yet.
func (s *Sampler) ExportHistory() (models.LocationExport, error) {
	records := s.History()
	if len(records) == 0 {
		return models.LocationExport{}, ErrNoData
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return models.LocationExport{}, fmt.Errorf("create export directory: %w", err)
	}

	fileName := fmt.Sprintf("location_history_%s.csv", time.Now().Format(exportTimeLayout))
	filePath := filepath.Join(s.exportDir, fileName)

	file, err := os.Create(filePath)
	if err != nil {
		return models.LocationExport{}, fmt.Errorf("create export file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(exportHeader); err != nil {
		return models.LocationExport{}, fmt.Errorf("write export header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.FormatFloat(record.Latitude, 'f', -1, 64),
			strconv.FormatFloat(record.Longitude, 'f', -1, 64),
			strconv.FormatFloat(record.Accuracy, 'f', -1, 64),
			strconv.FormatInt(record.Timestamp, 10),
			record.DateTime,
			record.Provider,
		}
		if err := writer.Write(row); err != nil {
			return models.LocationExport{}, fmt.Errorf("write export row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return models.LocationExport{}, fmt.Errorf("flush export file: %w", err)
	}

	s.logger.Info().Str("func", "Sampler.ExportHistory").Str("file", filePath).Int("records", len(records)).Msg("location history exported")

	return models.LocationExport{
		FilePath:    filePath,
		FileName:    fileName,
		RecordCount: len(records),
	}, nil
}
