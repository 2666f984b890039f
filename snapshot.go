package depqueue

//go:generate msgp

// TopicSnapshot is the serializable projection of a single Topic: its
// name and the (already-resolved-to-names) item edges. Tuple-encoded
// (msgp:tuple) rather than map-encoded since field order is fixed and
// small, saving the field-name overhead a map encoding would carry.
//
//msgp:tuple TopicSnapshot
type TopicSnapshot struct {
	Name       string   `msg:"name"`
	ProvidedBy []string `msg:"provided_by"`
	RequiredBy []string `msg:"required_by"`
}

// Snapshot is the serializable projection a View.Snapshot exports: topic
// edges, the ready set, and the validity/ending flags, in the shape
// github.com/tinylib/msgp's generator would produce for a plain-data
// struct (SPEC_FULL.md §4, §5.5). It never carries an Item's opaque
// payload.
//
//msgp:tuple Snapshot
type Snapshot struct {
	Topics []TopicSnapshot `msg:"topics"`
	Ready  []string        `msg:"ready"`
	Valid  bool            `msg:"valid"`
	Ending bool            `msg:"ending"`
}
