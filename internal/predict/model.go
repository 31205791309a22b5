package predict

// Request carries the 13 clinical parameters. The caller resolves
// unknowns before predicting; this surface only accepts numbers.
type Request struct {
	Age      float64 `json:"age"`
	Sex      float64 `json:"sex"`
	CP       float64 `json:"cp"`
	Trestbps float64 `json:"trestbps"`
	Chol     float64 `json:"chol"`
	FBS      float64 `json:"fbs"`
	Restecg  float64 `json:"restecg"`
	Thalach  float64 `json:"thalach"`
	Exang    float64 `json:"exang"`
	Oldpeak  float64 `json:"oldpeak"`
	Slope    float64 `json:"slope"`
	CA       float64 `json:"ca"`
	Thal     float64 `json:"thal"`
}

// Features returns the vector in the order the model was trained on.
func (r *Request) Features() []float64 {
	return []float64{
		r.Age, r.Sex, r.CP, r.Trestbps, r.Chol, r.FBS, r.Restecg,
		r.Thalach, r.Exang, r.Oldpeak, r.Slope, r.CA, r.Thal,
	}
}

type Result struct {
	Prediction  int     `json:"prediction"`
	Probability float64 `json:"probability"`
}
