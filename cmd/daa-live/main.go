// Command daa-live ingests ownship/traffic telemetry over a serial link
// and reports live DAA bands. It performs no filtering or state
// estimation of its own: every line read is handed straight to the
// bands engine as-is, the same contract the file-based tools follow
// (spec.md's no-state-estimation non-goal).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"strings"

	serial "github.com/tarm/goserial"

	"github.com/rbutler/daaband"
	"github.com/rbutler/daaband/daaio"
	"github.com/rbutler/daaband/projection"
)

func main() {
	port := flag.String("port", "/dev/ttyUSB0", "serial device")
	baud := flag.Int("baud", 57600, "baud rate")
	flag.Parse()

	cfg := &serial.Config{Name: *port, Baud: *baud}
	conn, err := serial.OpenPort(cfg)
	if err != nil {
		log.Fatalf("[daa:error] daa-live: open %s: %v", *port, err)
	}
	defer conn.Close()

	core := daa.NewDaidalusCore()
	var proj *projection.Projector
	var ownship daa.TrafficState
	haveOwnship := false

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows, err := daaio.ReadStates(strings.NewReader(line + "\n"))
		if err != nil {
			log.Printf("[daa:warn] daa-live: malformed telemetry line: %v", err)
			continue
		}
		for _, row := range rows {
			if proj == nil {
				p := projection.NewProjector(row.Pos)
				proj = p
			}
			ts := daaio.ToTrafficState(row, proj)
			if !haveOwnship {
				ownship = ts
				haveOwnship = true
				core.SetOwnship(ownship)
				continue
			}
			core.SetTraffic(append(core.Traffic, ts))
		}
		if !haveOwnship {
			continue
		}
		bands := core.TrackBands(ownship.Time, daa.ToInternal(1, "deg"))
		for _, b := range bands {
			fmt.Printf("trk [%6.1f, %6.1f] deg -> %s\n",
				daa.FromInternal(b.Interval.Low, "deg"),
				daa.FromInternal(b.Interval.Up, "deg"),
				b.Region)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("[daa:error] daa-live: read: %v", err)
	}
}
