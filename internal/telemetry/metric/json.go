// Package metric renders EdgeRelay stat snapshots for export.
package metric

import (
	"encoding/json"
	"sort"
)

type jsonStat struct {
	Name  string `json:"name"`
	Value uint64 `json:"value"`
}

type jsonStats struct {
	Stats []jsonStat `json:"stats"`
}

// StatsAsJSON renders a snapshot as the internal JSON format:
//
//	{"stats": [{"name": "...", "value": N}, ...]}
//
// Entries are sorted by raw name so output is deterministic. Counters
// and gauges are rendered identically, as unsigned integers.
func StatsAsJSON(samples []Sample) ([]byte, error) {
	out := jsonStats{Stats: make([]jsonStat, 0, len(samples))}
	for _, s := range samples {
		out.Stats = append(out.Stats, jsonStat{Name: s.Name, Value: s.Value})
	}
	sort.Slice(out.Stats, func(i, j int) bool {
		return out.Stats[i].Name < out.Stats[j].Name
	})
	return json.MarshalIndent(out, "", "    ")
}
