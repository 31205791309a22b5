package extract

// Fields lists the 13 clinical parameters in the canonical order the
// classifier's feature vector expects.
var Fields = []string{
	"age", "sex", "cp", "trestbps", "chol", "fbs", "restecg",
	"thalach", "exang", "oldpeak", "slope", "ca", "thal",
}

// Record maps every clinical field to its extracted value. A nil entry
// means the value could not be determined; it serializes as JSON null,
// never as zero.
type Record map[string]*float64

// NewRecord returns a record with all 13 fields present and unknown.
func NewRecord() Record {
	r := make(Record, len(Fields))
	for _, f := range Fields {
		r[f] = nil
	}
	return r
}

// Known counts fields with a resolved value.
func (r Record) Known() int {
	n := 0
	for _, v := range r {
		if v != nil {
			n++
		}
	}
	return n
}
