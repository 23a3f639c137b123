package dcres

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/im7mortal/UTM"
	"github.com/maseology/mmio"
)

// LoadSurveyGeo builds a survey from a georeferenced stake log, the format
// field crews hand over: one record per stake past a header line,
//
//	cfg,role,lat,long
//
// where cfg orders the readings and role is one of A,B,M,N. WGS84 positions
// are projected to UTM planar metres; every stake must fall in a single zone
// and hemisphere. Roles absent from a configuration are taken as remote
// electrodes.
func LoadSurveyGeo(fp string) (*Survey, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf(" LoadSurveyGeo %v", err)
	}
	defer f.Close()

	type stakes = map[string]Electrode
	cfgs, zone, north := map[int]stakes{}, 0, false
	ln := 1
	for rec := range mmio.LoadCSV(io.Reader(f), 1) {
		ln++
		if len(rec) < 4 {
			return nil, fmt.Errorf(" LoadSurveyGeo %s line %d: expecting cfg,role,lat,long", fp, ln)
		}
		ci, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf(" LoadSurveyGeo %s line %d: %v", fp, ln, err)
		}
		role := strings.ToUpper(strings.TrimSpace(rec[1]))
		if role != "A" && role != "B" && role != "M" && role != "N" {
			return nil, fmt.Errorf(" LoadSurveyGeo %s line %d: unknown role %q", fp, ln, rec[1])
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
		if err != nil {
			return nil, fmt.Errorf(" LoadSurveyGeo %s line %d: %v", fp, ln, err)
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(rec[3]), 64)
		if err != nil {
			return nil, fmt.Errorf(" LoadSurveyGeo %s line %d: %v", fp, ln, err)
		}
		e, n, znum, _, err := UTM.FromLatLon(lat, lng, lat >= 0.)
		if err != nil {
			return nil, fmt.Errorf(" LoadSurveyGeo %s line %d: %v", fp, ln, err)
		}
		if len(cfgs) == 0 {
			zone, north = znum, lat >= 0.
		} else if znum != zone || (lat >= 0.) != north {
			return nil, fmt.Errorf(" LoadSurveyGeo %s line %d: stake spans UTM zone %d, survey is in %d", fp, ln, znum, zone)
		}
		if _, ok := cfgs[ci]; !ok {
			cfgs[ci] = stakes{}
		}
		if _, ok := cfgs[ci][role]; ok {
			return nil, fmt.Errorf(" LoadSurveyGeo %s line %d: duplicate role %s in config %d", fp, ln, role, ci)
		}
		cfgs[ci][role] = Electrode{X: e, Y: n}
	}
	if len(cfgs) == 0 {
		return nil, fmt.Errorf(" LoadSurveyGeo %s: no stakes", fp)
	}

	ids := make([]int, 0, len(cfgs))
	for ci := range cfgs {
		ids = append(ids, ci)
	}
	sort.Ints(ids)

	pick := func(st stakes, role string) Electrode {
		if e, ok := st[role]; ok {
			return e
		}
		return Electrode{Inf: true}
	}
	s := Survey{Nam: mmio.FileName(fp, false), Arr: General, Cfgs: make([]Config, len(ids))}
	for i, ci := range ids {
		st := cfgs[ci]
		s.Cfgs[i] = Config{A: pick(st, "A"), B: pick(st, "B"), M: pick(st, "M"), N: pick(st, "N")}
	}
	if err := s.Check(); err != nil {
		return nil, err
	}
	return &s, nil
}
