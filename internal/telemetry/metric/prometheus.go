// Package metric renders EdgeRelay stat snapshots for export.
package metric

import (
	"bytes"
	"fmt"
	"strings"
)

// Namespace prefixes every exported family name so EdgeRelay metrics
// cannot collide with other exporters on a shared scrape target.
const Namespace = "edgerelay_"

// StatsAsPrometheus renders a snapshot in the Prometheus text
// exposition format, appending to buf. Samples are grouped into
// families by sanitized extracted name; each family is emitted once
// with a single # TYPE header followed by one data line per sample.
// Families appear in order of first occurrence and samples within a
// family keep their snapshot order.
//
// The return value is the number of data lines emitted (distinct
// family/tag-set combinations), which callers use to detect an empty
// snapshot. A family with no samples produces no output at all.
func StatsAsPrometheus(samples []Sample, buf *bytes.Buffer) int {
	type family struct {
		name    string
		kind    Kind
		samples []Sample
	}

	var order []string
	families := make(map[string]*family)

	for _, s := range samples {
		name := MetricName(s.FamilySeed())
		f, ok := families[name]
		if !ok {
			f = &family{name: name, kind: s.Kind}
			families[name] = f
			order = append(order, name)
		}
		f.samples = append(f.samples, s)
	}

	lines := 0
	for _, name := range order {
		f := families[name]
		fmt.Fprintf(buf, "# TYPE %s %s\n", f.name, typeString(f.kind))
		for _, s := range f.samples {
			fmt.Fprintf(buf, "%s{%s} %d\n", f.name, FormattedTags(s.Tags), s.Value)
			lines++
		}
	}
	return lines
}

// MetricName derives the final family name from an extracted stat
// name: sanitize, then prefix with the namespace.
func MetricName(extractedName string) string {
	return Namespace + sanitizeName(extractedName)
}

// FormattedTags renders tags as a comma-separated list of
// name="value" pairs. Tag names are sanitized; values are quoted with
// internal backslashes, quotes and newlines escaped. Order is
// preserved from the snapshot.
func FormattedTags(tags []Tag) string {
	var b strings.Builder
	for i, tag := range tags {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(sanitizeName(tag.Name))
		b.WriteString(`="`)
		b.WriteString(escapeValue(tag.Value))
		b.WriteByte('"')
	}
	return b.String()
}

// sanitizeName maps a raw stat name onto the Prometheus identifier
// grammar [A-Za-z_][A-Za-z0-9_]*. Every character outside
// [A-Za-z0-9_] becomes '_'; a leading character that is not a letter
// or underscore gets '_' prepended. The mapping is idempotent:
// sanitizing sanitized input is a no-op.
func sanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 1)
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
			b.WriteByte(c)
		case c >= '0' && c <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteByte(c)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}

func escapeValue(v string) string {
	var b strings.Builder
	for _, r := range v {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func typeString(k Kind) string {
	if k == KindGauge {
		return "gauge"
	}
	return "counter"
}
