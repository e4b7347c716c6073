// Package daaio reads the state and parameter files the daa engine is
// driven from (spec.md §6): comma-separated timestamped state reports and
// well-clear parameter files. Plan (waypoint) files are not read.
// Timestamps are tracked internally as Julian day numbers, following
// the teacher library's own use of github.com/soniakeys/meeus/julian for
// epoch bookkeeping.
package daaio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/soniakeys/meeus/julian"

	"github.com/rbutler/daaband"
	"github.com/rbutler/daaband/projection"
)

// StateRow is one parsed row of a state file: an aircraft name, a
// geodetic position, a velocity expressed as track/groundspeed/vertical
// speed, and the row's timestamp as a Julian day number.
type StateRow struct {
	Name string
	Pos  projection.Point
	Trk  float64
	Gs   float64
	Vs   float64
	JD   float64
}

// ReadStates parses a state file: each non-blank, non-comment line is
// "name, lat_deg, lon_deg, alt_ft, trk_deg, gs_kt, vs_fpm, time", per
// spec.md §6. A line whose name is quoted and empty repeats the name of
// the previous row, matching the reference engine's "same aircraft as
// above" shorthand for closely spaced reports.
func ReadStates(r io.Reader) ([]StateRow, error) {
	scanner := bufio.NewScanner(r)
	var rows []StateRow
	lastName := ""
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 8 {
			return nil, fmt.Errorf("daaio: state file line %d: expected 8 fields, got %d", lineNo, len(fields))
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		name := strings.Trim(fields[0], "\"")
		if name == "" {
			name = lastName
		}
		lastName = name

		vals := make([]float64, 6)
		for i := 0; i < 6; i++ {
			v, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("daaio: state file line %d: field %d: %w", lineNo, i+2, err)
			}
			vals[i] = v
		}
		t, err := time.Parse(time.RFC3339, fields[7])
		if err != nil {
			return nil, fmt.Errorf("daaio: state file line %d: time: %w", lineNo, err)
		}

		rows = append(rows, StateRow{
			Name: name,
			Pos: projection.Point{
				Lat: daa.ToInternal(vals[0], "deg"),
				Lon: daa.ToInternal(vals[1], "deg"),
				Alt: daa.ToInternal(vals[2], "ft"),
			},
			Trk: daa.ToInternal(vals[3], "deg"),
			Gs:  daa.ToInternal(vals[4], "kn"),
			Vs:  daa.ToInternal(vals[5], "fpm"),
			JD:  julian.TimeToJD(t),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// ToTrafficState converts a StateRow into a daa.TrafficState using proj
// to flatten its geodetic position into proj's local frame.
func ToTrafficState(row StateRow, proj *projection.Projector) daa.TrafficState {
	local := proj.Project(row.Pos)
	pos := daa.NewVect3(local.X, local.Y, local.Z)
	vel := daa.MkTrkGsVs(row.Trk, row.Gs, row.Vs)
	t := (row.JD - julian.TimeToJD(time.Unix(0, 0))) * 86400
	return daa.NewTrafficState(row.Name, pos, vel, t)
}

// ReadParameters parses a "key = value [unit]" parameter file per
// spec.md §6 into a daa.ParameterData.
func ReadParameters(r io.Reader) (*daa.ParameterData, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return daa.LoadParameterLines(lines)
}
