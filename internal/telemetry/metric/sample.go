// Package metric renders EdgeRelay stat snapshots for export.
package metric

// Kind distinguishes counters from gauges.
type Kind int

const (
	// KindCounter is a monotonically increasing value.
	KindCounter Kind = iota
	// KindGauge is a value that can go up and down.
	KindGauge
)

// Tag is one name/value label attached to a sample. Tag order is
// significant and preserved through rendering.
type Tag struct {
	Name  string
	Value string
}

// Sample is a read-only, point-in-time copy of one stat. It carries no
// identity beyond the snapshot it was taken from.
type Sample struct {
	// Name is the full dotted stat name, tag values included
	// (e.g. "cluster.foo.upstream_rq_200").
	Name string

	// ExtractedName is the name with tag-derived segments stripped
	// (e.g. "cluster.upstream_rq"). It seeds the Prometheus family
	// name. Empty means no tags were extracted; Name is used.
	ExtractedName string

	// Tags are the extracted labels, in extraction order.
	Tags []Tag

	Value uint64
	Kind  Kind
}

// FamilySeed returns the name the Prometheus family is derived from.
func (s Sample) FamilySeed() string {
	if s.ExtractedName != "" {
		return s.ExtractedName
	}
	return s.Name
}
