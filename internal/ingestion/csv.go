package ingestion

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type csvFileSource struct {
	path string
}

func (s *csvFileSource) Name() string { return s.path }

func (s *csvFileSource) Read(ctx context.Context) ([]string, [][]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening csv: %w", err)
	}
	defer f.Close()

	return readCSV(f)
}

type httpSource struct {
	url string
}

func (s *httpSource) Name() string { return s.url }

func (s *httpSource) Read(ctx context.Context) ([]string, [][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}

	client := &http.Client{
		Timeout: 15 * time.Second,
	}
	defer client.CloseIdleConnections()

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("error while doing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("unexpected status code: %d - status: %s", resp.StatusCode, resp.Status)
	}

	return readCSV(resp.Body)
}

func readCSV(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("csv has no header row")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("error reading csv header: %w", err)
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("error reading csv: %w", err)
		}
		records = append(records, record)
	}

	return header, records, nil
}
