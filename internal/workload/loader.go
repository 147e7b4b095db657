// Package workload reads process sets from files and command-line specs.
package workload

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
)

// LoadFile reads a process set, choosing the format from the extension:
// .csv, .yaml/.yml or .json.
func LoadFile(path string) (*requests.ScheduleRequests, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ParseCSV(bytes.NewReader(data))
	case ".yaml", ".yml":
		return ParseYAML(bytes.NewReader(data))
	case ".json":
		return ParseJSON(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: unsupported workload format %q", core.ErrInvalidInput, ext)
	}
}

// ParseYAML decodes a requests.ScheduleRequests document. Unknown keys are
// rejected so a typo never silently drops a field.
func ParseYAML(r io.Reader) (*requests.ScheduleRequests, error) {
	var req requests.ScheduleRequests
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty workload document", core.ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: parsing workload YAML: %v", core.ErrInvalidInput, err)
	}
	return &req, nil
}

func ParseJSON(r io.Reader) (*requests.ScheduleRequests, error) {
	var req requests.ScheduleRequests
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: parsing workload JSON: %v", core.ErrInvalidInput, err)
	}
	return &req, nil
}

// ParseCSV reads one process per row. Without a header the columns are
// pid,burst,arrival. With a header row, columns are matched by name
// (pid/process_id, name, arrival/arrival_time, burst/burst_time) in any order.
func ParseCSV(r io.Reader) (*requests.ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", core.ErrInvalidInput, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty CSV workload", core.ErrInvalidInput)
	}

	cols := map[string]int{"pid": 0, "burst": 1, "arrival": 2}
	if isHeader(rows[0]) {
		cols, err = headerColumns(rows[0])
		if err != nil {
			return nil, err
		}
		rows = rows[1:]
	}

	req := &requests.ScheduleRequests{Jobs: make([]requests.Job, 0, len(rows))}
	for i, row := range rows {
		job, err := csvJob(row, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		req.Jobs = append(req.Jobs, job)
	}
	return req, nil
}

func isHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 64)
	return err != nil
}

func headerColumns(row []string) (map[string]int, error) {
	cols := make(map[string]int)
	for i, h := range row {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "pid", "id", "process_id":
			cols["pid"] = i
		case "name":
			cols["name"] = i
		case "arrival", "arrival_time":
			cols["arrival"] = i
		case "burst", "burst_time":
			cols["burst"] = i
		default:
			return nil, fmt.Errorf("%w: unknown CSV column %q", core.ErrInvalidInput, h)
		}
	}
	for _, required := range []string{"arrival", "burst"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: CSV header lacks %q column", core.ErrInvalidInput, required)
		}
	}
	return cols, nil
}

func csvJob(row []string, cols map[string]int) (requests.Job, error) {
	field := func(name string) (string, bool) {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	var job requests.Job
	if s, ok := field("pid"); ok && s != "" {
		pid, err := strconv.Atoi(s)
		if err != nil {
			return job, fmt.Errorf("%w: pid %q: %v", core.ErrInvalidInput, s, err)
		}
		job.ProcessId = pid
	}
	if s, ok := field("name"); ok {
		job.Name = s
	}
	for _, c := range []struct {
		name string
		dst  *int64
	}{{"arrival", &job.ArrivalTime}, {"burst", &job.BurstTime}} {
		s, ok := field(c.name)
		if !ok {
			return job, fmt.Errorf("%w: missing %s column", core.ErrInvalidInput, c.name)
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return job, fmt.Errorf("%w: %s %q: %v", core.ErrInvalidInput, c.name, s, err)
		}
		*c.dst = v
	}
	return job, nil
}

// ParseSpecs turns "arrival:burst" or "name=arrival:burst" strings into jobs,
// in the given order.
func ParseSpecs(specs []string) (*requests.ScheduleRequests, error) {
	req := &requests.ScheduleRequests{Jobs: make([]requests.Job, 0, len(specs))}
	for _, spec := range specs {
		var job requests.Job
		body := strings.TrimSpace(spec)
		if name, rest, ok := strings.Cut(body, "="); ok {
			job.Name = strings.TrimSpace(name)
			body = rest
		}
		arrival, burst, ok := strings.Cut(body, ":")
		if !ok {
			return nil, fmt.Errorf("%w: process %q is not arrival:burst", core.ErrInvalidInput, spec)
		}
		var err error
		if job.ArrivalTime, err = strconv.ParseInt(strings.TrimSpace(arrival), 10, 64); err != nil {
			return nil, fmt.Errorf("%w: process %q arrival: %v", core.ErrInvalidInput, spec, err)
		}
		if job.BurstTime, err = strconv.ParseInt(strings.TrimSpace(burst), 10, 64); err != nil {
			return nil, fmt.Errorf("%w: process %q burst: %v", core.ErrInvalidInput, spec, err)
		}
		req.Jobs = append(req.Jobs, job)
	}
	return req, nil
}
